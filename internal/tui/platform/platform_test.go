package platform

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestValidateEntryURL(t *testing.T) {
	valid, err := ValidateEntryURL(" https://example.com/path ")
	if err != nil {
		t.Fatalf("unexpected error for valid URL: %v", err)
	}
	if valid != "https://example.com/path" {
		t.Fatalf("unexpected normalized URL: %q", valid)
	}

	_, err = ValidateEntryURL("ftp://example.com/path")
	if err == nil || !strings.Contains(err.Error(), "unsupported URL scheme") {
		t.Fatalf("expected unsupported scheme error, got %v", err)
	}

	_, err = ValidateEntryURL("https://")
	if err == nil || !strings.Contains(err.Error(), "invalid URL host") {
		t.Fatalf("expected invalid host error, got %v", err)
	}

	if _, err := ValidateEntryURL("  "); err == nil {
		t.Fatal("expected error for empty URL")
	}
}

func TestBrowserCommand(t *testing.T) {
	cases := []struct {
		goos    string
		browser string
		url     string
		name    string
		args    []string
	}{
		{goos: "darwin", url: "https://example.com", name: "open", args: []string{"https://example.com"}},
		{goos: "windows", url: "https://example.com", name: "rundll32", args: []string{"url.dll,FileProtocolHandler", "https://example.com"}},
		{goos: "linux", url: "https://example.com", name: "xdg-open", args: []string{"https://example.com"}},
		{goos: "linux", browser: "firefox --new-tab", url: "https://example.com", name: "firefox", args: []string{"--new-tab", "https://example.com"}},
		{goos: "darwin", browser: "  ", url: "https://example.com", name: "open", args: []string{"https://example.com"}},
	}
	for _, tc := range cases {
		gotName, gotArgs := browserCommand(tc.goos, tc.browser, tc.url)
		if gotName != tc.name || !reflect.DeepEqual(gotArgs, tc.args) {
			t.Fatalf("browserCommand(%q, %q) = (%q, %v), want (%q, %v)", tc.goos, tc.browser, gotName, gotArgs, tc.name, tc.args)
		}
	}
}

func TestOpenURLInBrowser_MissingBrowser(t *testing.T) {
	origGetenv := getenv
	getenv = func(string) string { return "redsaved-no-such-browser" }
	t.Cleanup(func() { getenv = origGetenv })

	err := OpenURLInBrowser("https://example.com")
	if err == nil || !strings.Contains(err.Error(), "redsaved-no-such-browser") {
		t.Fatalf("expected missing browser error, got %v", err)
	}
}

func TestCopyToClipboard_UsesClipboard(t *testing.T) {
	var got string
	origPut := clipboardPut
	clipboardPut = func(s string) error {
		got = s
		return nil
	}
	t.Cleanup(func() { clipboardPut = origPut })

	err := CopyToClipboard("https://example.com")
	if err != nil && !strings.Contains(err.Error(), "no clipboard") {
		t.Fatalf("unexpected error: %v", err)
	}
	if err == nil && got != "https://example.com" {
		t.Fatalf("expected clipboard to receive the URL, got %q", got)
	}

	clipboardPut = func(string) error { return errors.New("boom") }
	if err := CopyToClipboard("x"); err == nil {
		t.Fatal("expected clipboard error to surface")
	}
}
