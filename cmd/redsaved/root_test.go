package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"REDSAVED_CONFIG", "REDSAVED_LOG_FILE", "REDSAVED_DB_PATH", "REDSAVED_UTC"} {
		t.Setenv(name, "")
	}
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestMergeCmd_WritesDedupedRecords(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	a := writeFile(t, dir, "a.jsonl", `{"id":"1"}`+"\n"+`{"id":"2"}`+"\n")
	b := writeFile(t, dir, "b.jsonl", `{"id":"2","dup":true}`+"\n"+`{"id":"3"}`+"\n")

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"merge", a, b})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("merge returned error: %v", err)
	}

	want := `{"id":"1"}` + "\n" + `{"id":"2"}` + "\n" + `{"id":"3"}` + "\n"
	if out.String() != want {
		t.Fatalf("unexpected merge output:\n%s", out.String())
	}
	if !strings.Contains(errOut.String(), "merged 3 entries") {
		t.Fatalf("unexpected summary: %q", errOut.String())
	}
}

func TestImportCmd_RequiresDatabase(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "a.jsonl", `{"id":"1"}`+"\n")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"import", path})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "needs a database") {
		t.Fatalf("expected database error, got %v", err)
	}
}

func TestImportCmd_StoresEntries(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "a.jsonl", `{"id":"1"}`+"\n"+`{"id":"2"}`+"\n")
	db := filepath.Join(dir, "saved.db")

	for i, want := range []string{"imported 2 of 2 entries", "imported 0 of 2 entries"} {
		want += " into " + db + " (2 stored)"
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"import", "--db", db, path})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("run %d: import returned error: %v", i, err)
		}
		if !strings.Contains(out.String(), want) {
			t.Fatalf("run %d: expected %q, got %q", i, want, out.String())
		}
	}
}

func TestResolve_FlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDSAVED_DB_PATH", "/env/saved.db")
	t.Setenv("REDSAVED_UTC", "false")

	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--db", "/flag/saved.db", "--utc"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	cfg, err := (&rootOptions{dbPath: "/flag/saved.db", utc: true}).resolve(cmd)
	if err != nil {
		t.Fatalf("resolve returned error: %v", err)
	}
	if cfg.DBPath != "/flag/saved.db" || !cfg.UTC {
		t.Fatalf("expected flags to win, got %+v", cfg)
	}

	cmd = newRootCmd()
	cfg, err = (&rootOptions{}).resolve(cmd)
	if err != nil {
		t.Fatalf("resolve returned error: %v", err)
	}
	if cfg.DBPath != "/env/saved.db" || cfg.UTC {
		t.Fatalf("expected environment values, got %+v", cfg)
	}
}

func TestResolve_RejectsBadKeybindingPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDSAVED_CONFIG", "keys.ini")
	if _, err := (&rootOptions{}).resolve(newRootCmd()); err == nil {
		t.Fatal("expected config error")
	}
}
