package dispatch

import (
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/glabrego/redsaved/internal/config"
	"github.com/glabrego/redsaved/internal/saved"
)

var ErrCommandNotFound = errors.New("command not found")

// For mocking in tests
var lookPath = exec.LookPath

// Action is one entry of the action table. Pipe actions write a single
// resolved field to stdin; otherwise Args are resolved into positional
// arguments.
type Action struct {
	Key     string
	Command string
	Args    []string
	Pipe    string
}

func (a Action) Piped() bool {
	return a.Pipe != ""
}

// Describe renders the action for the help overlay, e.g. "echo title url"
// or "wc < text".
func (a Action) Describe() string {
	if a.Piped() {
		return a.Command + " < " + a.Pipe
	}
	if len(a.Args) == 0 {
		return a.Command
	}
	return a.Command + " " + strings.Join(a.Args, " ")
}

type Dispatcher struct {
	actions map[string]Action
}

func New(bindings map[string]config.Binding) (*Dispatcher, error) {
	d := &Dispatcher{actions: make(map[string]Action, len(bindings))}
	for key, binding := range bindings {
		action, err := newAction(key, binding)
		if err != nil {
			return nil, err
		}
		d.actions[key] = action
	}
	return d, nil
}

func newAction(key string, binding config.Binding) (Action, error) {
	if strings.TrimSpace(key) == "" {
		return Action{}, fmt.Errorf("keybinding with empty key")
	}
	command := strings.TrimSpace(binding.Cmd)
	if command == "" {
		return Action{}, fmt.Errorf("keybinding %q: cmd is required", key)
	}
	pipe := strings.TrimSpace(binding.Pipe)
	switch {
	case pipe != "" && len(binding.Args) > 0:
		return Action{}, fmt.Errorf("keybinding %q: use either args or pipe, not both", key)
	case pipe == "" && len(binding.Args) == 0:
		return Action{}, fmt.Errorf("keybinding %q: one of args or pipe is required", key)
	}
	args := make([]string, len(binding.Args))
	copy(args, binding.Args)
	return Action{Key: key, Command: command, Args: args, Pipe: pipe}, nil
}

func (d *Dispatcher) Len() int {
	if d == nil {
		return 0
	}
	return len(d.actions)
}

func (d *Dispatcher) Lookup(key string) (Action, bool) {
	if d == nil {
		return Action{}, false
	}
	action, ok := d.actions[key]
	return action, ok
}

// Actions returns the table sorted by key.
func (d *Dispatcher) Actions() []Action {
	if d == nil {
		return nil
	}
	out := make([]Action, 0, len(d.actions))
	for _, action := range d.actions {
		out = append(out, action)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Arguments resolves the logical field names of an args action against e.
func (a Action) Arguments(e saved.Entry) []string {
	out := make([]string, 0, len(a.Args))
	for _, name := range a.Args {
		out = append(out, saved.ResolveField(e, name))
	}
	return out
}

// Command builds the process for action against e. The caller owns running
// it; the process inherits no stdin unless the action pipes a field.
func (d *Dispatcher) Command(action Action, e saved.Entry) (*exec.Cmd, error) {
	path, err := lookPath(action.Command)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCommandNotFound, action.Command)
	}

	if action.Piped() {
		cmd := exec.Command(path)
		cmd.Stdin = strings.NewReader(saved.ResolveField(e, action.Pipe))
		return cmd, nil
	}
	return exec.Command(path, action.Arguments(e)...), nil
}
