package platform

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// For mocking in tests
var (
	getenv       = os.Getenv
	runCommand   = func(cmd *exec.Cmd) error { return cmd.Run() }
	clipboardPut = clipboard.WriteAll
)

func ValidateEntryURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("entry has no URL")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid URL format")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme: %s", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("invalid URL host")
	}
	return trimmed, nil
}

// browserCommand picks $BROWSER when set, otherwise the platform opener.
func browserCommand(goos, browser, url string) (string, []string) {
	if fields := strings.Fields(browser); len(fields) > 0 {
		return fields[0], append(fields[1:], url)
	}
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

func OpenURLInBrowser(url string) error {
	name, args := browserCommand(runtime.GOOS, getenv("BROWSER"), url)
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("browser %s not found: %w", name, err)
	}
	return runCommand(exec.Command(name, args...))
}

func CopyToClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard command available")
	}
	return clipboardPut(text)
}
