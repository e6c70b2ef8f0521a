package actions

import (
	"fmt"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
)

// ActionFinishedMsg reports the exit of a key-bound external command.
type ActionFinishedMsg struct {
	Key     string
	Command string
	Err     error
}

type OpenURLSuccessMsg struct {
	Status string
	Opened bool
}

type OpenURLErrorMsg struct {
	Err error
}

// RunActionCmd hands the terminal to cmd until it exits. Bubble Tea releases
// the screen before the process starts and restores it afterwards, whether
// or not the command succeeded.
func RunActionCmd(key string, cmd *exec.Cmd) tea.Cmd {
	name := cmd.Path
	if len(cmd.Args) > 0 {
		name = cmd.Args[0]
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return ActionFinishedMsg{Key: key, Command: name, Err: err}
	})
}

func OpenURLCmd(url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Opened URL in browser", Opened: true}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Could not open browser, URL copied to clipboard", Opened: false}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not open URL or copy to clipboard")}
	}
}

func CopyURLCmd(url string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "URL copied to clipboard"}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not copy URL to clipboard")}
	}
}
