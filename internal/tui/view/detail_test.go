package view

import (
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/glabrego/redsaved/internal/saved"
	tuitheme "github.com/glabrego/redsaved/internal/tui/theme"
)

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)
	if got := FormatTimestamp(ts, true); got != "2023-11-14 22:13" {
		t.Fatalf("unexpected UTC timestamp: %q", got)
	}
	if got := FormatTimestamp(ts, false); got != ts.Local().Format("2006-01-02 15:04") {
		t.Fatalf("unexpected local timestamp: %q", got)
	}
	if got := FormatTimestamp(time.Time{}, true); got != "(unknown)" {
		t.Fatalf("expected placeholder for zero time, got %q", got)
	}
}

func TestBylineAndLink(t *testing.T) {
	comment := saved.NewEntry(map[string]any{
		"author":    "gopher",
		"body":      "hi",
		"permalink": "/r/golang/comments/1/x/",
	})
	if got := Byline(comment); got != "Comment by /u/gopher" {
		t.Fatalf("unexpected byline: %q", got)
	}
	if got := LinkLine(comment, 80); got != "<https://www.reddit.com/r/golang/comments/1/x/>" {
		t.Fatalf("unexpected link line: %q", got)
	}
	if got := LinkLine(comment, 20); runewidth.StringWidth(got) != 20 || !strings.Contains(got, "...") {
		t.Fatalf("expected middle truncation, got %q", got)
	}

	bare := saved.NewEntry(map[string]any{})
	if got := Byline(bare); got != "Link by /u/[unknown]" {
		t.Fatalf("unexpected placeholder byline: %q", got)
	}
	if got := LinkLine(bare, 80); got != "(no link)" {
		t.Fatalf("unexpected placeholder link: %q", got)
	}
}

func TestDetailHeader_Layout(t *testing.T) {
	th := tuitheme.Default()
	e := saved.NewEntry(map[string]any{
		"title":       "Short title",
		"author":      "gopher",
		"selftext":    "body",
		"url":         "https://go.dev",
		"created_utc": float64(1700000000),
	})
	lines := DetailHeader(e, 40, true, th)
	if len(lines) != 4 {
		t.Fatalf("expected 4 header lines, got %d: %q", len(lines), lines)
	}
	plain := make([]string, len(lines))
	for i, line := range lines {
		plain[i] = stripANSI(line)
	}
	if plain[0] != strings.Repeat(" ", 14)+"Short title" {
		t.Fatalf("expected centered title, got %q", plain[0])
	}
	if strings.TrimSpace(plain[1]) != "<https://go.dev>" {
		t.Fatalf("unexpected link row: %q", plain[1])
	}
	wantByline := "Self-post by /u/gopher"
	if plain[2] != strings.Repeat(" ", 40-len(wantByline))+wantByline {
		t.Fatalf("expected right-aligned byline, got %q", plain[2])
	}
	if !strings.HasSuffix(plain[3], "2023-11-14 22:13") || runewidth.StringWidth(plain[3]) != 40 {
		t.Fatalf("expected right-aligned timestamp, got %q", plain[3])
	}
}

func TestDetailHeader_WrapsLongTitleAndSurvivesTinyWidth(t *testing.T) {
	th := tuitheme.Default()
	e := saved.NewEntry(map[string]any{"title": "a title long enough to wrap twice"})
	if lines := DetailHeader(e, 16, true, th); len(lines) < 5 {
		t.Fatalf("expected wrapped title, got %q", lines)
	}
	for _, width := range []int{0, 1, 2} {
		for _, line := range DetailHeader(e, width, true, th) {
			if w := runewidth.StringWidth(stripANSI(line)); w > 1 && w > width {
				t.Fatalf("width %d: line %q overflows", width, stripANSI(line))
			}
		}
	}
}

func TestDetailBody_WindowIndentAndClip(t *testing.T) {
	th := tuitheme.Default()
	lines := []string{"zero", "one", "> quoted", "three\tcol", "a line that is much too long"}

	got := DetailBody(lines, 1, 5, 12, th)
	if len(got) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(got))
	}
	want := []string{" one", " > quoted", " three    co", " a line that"}
	for i := range want {
		if p := stripANSI(got[i]); p != want[i] {
			t.Fatalf("row %d = %q, want %q", i, p, want[i])
		}
	}

	if got := DetailBody(lines, -3, 50, 80, th); len(got) != len(lines) {
		t.Fatalf("expected bounds to clamp, got %d rows", len(got))
	}
	if got := DetailBody(nil, 0, 5, 80, th); len(got) != 0 {
		t.Fatalf("expected no rows, got %q", got)
	}
}
