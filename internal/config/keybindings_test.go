package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestReadKeybindings_Formats(t *testing.T) {
	want := map[string]Binding{
		"d": {Cmd: "echo", Args: []string{"title", "url"}},
		"p": {Cmd: "wc", Pipe: "text"},
	}

	tests := []struct {
		name string
		file string
		body string
	}{
		{
			name: "yaml",
			file: "keys.yaml",
			body: `keybindings:
  d:
    cmd: echo
    args: [title, url]
  p:
    cmd: wc
    pipe: text
`,
		},
		{
			name: "toml",
			file: "keys.toml",
			body: `[keybindings.d]
cmd = "echo"
args = ["title", "url"]

[keybindings.p]
cmd = "wc"
pipe = "text"
`,
		},
		{
			name: "json with comments",
			file: "keys.json",
			body: `{
  // open in a pager
  "keybindings": {
    "d": {"cmd": "echo", "args": ["title", "url"]},
    "p": {"cmd": "wc", "pipe": "text"},
  },
}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			writeFile(t, path, tc.body)

			kb, err := ReadKeybindings(path)
			if err != nil {
				t.Fatalf("ReadKeybindings returned error: %v", err)
			}
			if kb.Source != path {
				t.Fatalf("unexpected source: %s", kb.Source)
			}
			if diff := cmp.Diff(want, kb.Bindings); diff != "" {
				t.Fatalf("bindings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadKeybindings_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.yaml")
	writeFile(t, path, "keybindings:\n  d:\n    args: title\n")

	_, err := ReadKeybindings(path)
	if err == nil {
		t.Fatal("expected parse error for scalar args")
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected error to name the file, got %v", err)
	}
}

func TestReadKeybindings_MissingFile(t *testing.T) {
	_, err := ReadKeybindings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestKeybindingCandidates_Order(t *testing.T) {
	got := KeybindingCandidates("/work", "/home/u/.config")
	want := []string{
		"/work/.redsaved.yaml",
		"/work/.redsaved.yml",
		"/work/.redsaved.toml",
		"/work/.redsaved.json",
		"/home/u/.config/redsaved/config.yaml",
		"/home/u/.config/redsaved/config.yml",
		"/home/u/.config/redsaved/config.toml",
		"/home/u/.config/redsaved/config.json",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadKeybindings_DiscoveryPrefersWorkDir(t *testing.T) {
	work := t.TempDir()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	origGetwd := osGetwd
	osGetwd = func() (string, error) { return work, nil }
	t.Cleanup(func() { osGetwd = origGetwd })

	writeFile(t, filepath.Join(home, "redsaved", "config.yaml"), "keybindings:\n  h:\n    cmd: home\n    args: [id]\n")

	kb, err := LoadKeybindings("")
	if err != nil {
		t.Fatalf("LoadKeybindings returned error: %v", err)
	}
	if _, ok := kb.Bindings["h"]; !ok {
		t.Fatalf("expected user config binding, got %+v", kb.Bindings)
	}

	writeFile(t, filepath.Join(work, ".redsaved.toml"), "[keybindings.w]\ncmd = \"work\"\nargs = [\"id\"]\n")

	kb, err = LoadKeybindings("")
	if err != nil {
		t.Fatalf("LoadKeybindings returned error: %v", err)
	}
	if _, ok := kb.Bindings["w"]; !ok {
		t.Fatalf("expected project binding to win, got %+v", kb.Bindings)
	}
	if filepath.Base(kb.Source) != ".redsaved.toml" {
		t.Fatalf("unexpected source: %s", kb.Source)
	}
}

func TestLoadKeybindings_NothingFound(t *testing.T) {
	work := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	origGetwd := osGetwd
	osGetwd = func() (string, error) { return work, nil }
	t.Cleanup(func() { osGetwd = origGetwd })

	kb, err := LoadKeybindings("")
	if err != nil {
		t.Fatalf("LoadKeybindings returned error: %v", err)
	}
	if kb.Source != "" || len(kb.Bindings) != 0 {
		t.Fatalf("expected empty keybindings, got %+v", kb)
	}
}

func TestLoadKeybindings_ExplicitPathMustExist(t *testing.T) {
	if _, err := LoadKeybindings(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing explicit path")
	}
}
