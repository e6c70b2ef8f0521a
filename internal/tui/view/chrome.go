package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	tuitheme "github.com/glabrego/redsaved/internal/tui/theme"
)

const appName = "redsaved"

// TitleBarRows is the height of the title bar including its rule.
const TitleBarRows = 2

func ListHints() string {
	return appName + " | q:quit /:filter enter:open ?:help"
}

func DetailHints() string {
	return appName + " | q:back h/l:prev/next o:browse y:copy ?:help"
}

func FilterPrompt(filter string) string {
	return "filter: /" + filter
}

// Position renders "{[filter] }cursor+1/total"; an empty view is 0/0.
func Position(filter string, cursor, total int) string {
	pos := "0/0"
	if total > 0 {
		pos = fmt.Sprintf("%d/%d", cursor+1, total)
	}
	if filter == "" {
		return pos
	}
	return "[" + filter + "] " + pos
}

// TitleBar lays out left and right on one row of width columns followed by a
// horizontal rule. The right side wins when both do not fit.
func TitleBar(left, right string, leftStyle lipgloss.Style, width int, th tuitheme.Theme) []string {
	if width < 1 {
		width = 1
	}
	right = Clip(right, width)
	rightWidth := runewidth.StringWidth(right)
	left = Truncate(left, width-rightWidth-1)
	gap := width - runewidth.StringWidth(left) - rightWidth
	if gap < 0 {
		gap = 0
	}
	return []string{
		leftStyle.Render(left) + strings.Repeat(" ", gap) + th.Position.Render(right),
		th.Rule.Render(strings.Repeat("─", width)),
	}
}
