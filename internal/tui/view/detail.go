package view

import (
	"strings"
	"time"

	"github.com/glabrego/redsaved/internal/render/markdown"
	"github.com/glabrego/redsaved/internal/saved"
	tuitheme "github.com/glabrego/redsaved/internal/tui/theme"
)

const (
	timestampLayout = "2006-01-02 15:04"
	unknownAuthor   = "[unknown]"
	noLink          = "(no link)"
)

func FormatTimestamp(t time.Time, utc bool) string {
	if t.IsZero() {
		return unknown
	}
	if utc {
		return t.UTC().Format(timestampLayout)
	}
	return t.Local().Format(timestampLayout)
}

func Byline(entry saved.Entry) string {
	return entry.Kind().String() + " by /u/" + orPlaceholder(entry.Author, unknownAuthor)
}

// LinkLine is the entry's resolved address in angle brackets, middle
// truncated to width.
func LinkLine(entry saved.Entry, width int) string {
	url := entry.ResolvedURL()
	if url == "" {
		return Clip(noLink, width)
	}
	return TruncateMiddle("<"+url+">", width)
}

// DetailHeader renders the centered title and link and the right-aligned
// byline and timestamp.
func DetailHeader(entry saved.Entry, width int, utc bool, th tuitheme.Theme) []string {
	if width < 1 {
		width = 1
	}
	title := orPlaceholder(singleLine(entry.DisplayTitle()), untitled)

	lines := make([]string, 0, 6)
	for _, line := range markdown.WrapText(title, width) {
		lines = append(lines, centerPad(line, width)+th.Title.Render(line))
	}

	link := LinkLine(entry, width)
	lines = append(lines, centerPad(link, width)+th.Link.Render(link))

	byline := Clip(Byline(entry), width)
	lines = append(lines, padLeft(byline, width)+th.MetaValue.Render(byline))

	stamp := Clip(FormatTimestamp(entry.CreatedAt(), utc), width)
	lines = append(lines, padLeft(stamp, width)+th.MetaValue.Render(stamp))
	return lines
}

// DetailBody renders wrapped lines [start, end) indented by one column and
// clipped to width.
func DetailBody(lines []string, start, end, width int, th tuitheme.Theme) []string {
	if start < 0 {
		start = 0
	}
	if end > len(lines) {
		end = len(lines)
	}
	out := make([]string, 0, max(0, end-start))
	for i := start; i < end; i++ {
		line := Clip(" "+strings.ReplaceAll(lines[i], "\t", "    "), width)
		if strings.HasPrefix(lines[i], ">") {
			line = th.Quote.Render(line)
		}
		out = append(out, line)
	}
	return out
}
