package view

import (
	"github.com/mattn/go-runewidth"

	"github.com/glabrego/redsaved/internal/saved"
	tuitheme "github.com/glabrego/redsaved/internal/tui/theme"
)

const (
	maxTitleColumn  = 58
	subredditColumn = 20
	subredditName   = subredditColumn - len("/r/")
	untitled        = "(untitled)"
	unknown         = "(unknown)"
)

// TitleColumnWidth leaves room for the leading space, the gap and the
// subreddit column.
func TitleColumnWidth(width int) int {
	w := width - subredditColumn - 2
	if w > maxTitleColumn {
		w = maxTitleColumn
	}
	if w < 1 {
		w = 1
	}
	return w
}

func ListHeader(width int, th tuitheme.Theme) string {
	tw := TitleColumnWidth(width)
	line := " " + runewidth.FillRight("Title", tw) + " " + runewidth.FillRight("Subreddit", subredditColumn)
	return th.Header.Render(Clip(line, width))
}

func ListRow(entry saved.Entry, width int, active bool, th tuitheme.Theme) string {
	tw := TitleColumnWidth(width)
	title := orPlaceholder(singleLine(entry.DisplayTitle()), untitled)
	subreddit := orPlaceholder(entry.Subreddit, unknown)

	titleCell := " " + runewidth.FillRight(Truncate(title, tw), tw) + " "
	subCell := "/r/" + runewidth.FillRight(Truncate(subreddit, subredditName), subredditName)

	if runewidth.StringWidth(titleCell+subCell) > width {
		return th.RenderActiveLine(active, Clip(titleCell+subCell, width))
	}
	if active {
		return th.ActiveLine.Render(titleCell + subCell)
	}
	return titleCell + th.Subreddit.Render(subCell)
}

// ListPane renders the header followed by rows [start, end) of entries.
func ListPane(entries []saved.Entry, start, end, cursor, width int, th tuitheme.Theme) []string {
	lines := []string{ListHeader(width, th)}
	if start < 0 {
		start = 0
	}
	if end > len(entries) {
		end = len(entries)
	}
	for i := start; i < end; i++ {
		lines = append(lines, ListRow(entries[i], width, i == cursor, th))
	}
	return lines
}
