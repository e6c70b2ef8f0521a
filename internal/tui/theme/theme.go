package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/redsaved/internal/saved"
)

type Theme struct {
	AppName    lipgloss.Style
	Hint       lipgloss.Style
	Position   lipgloss.Style
	Filter     lipgloss.Style
	Rule       lipgloss.Style
	Header     lipgloss.Style
	ActiveLine lipgloss.Style
	Subreddit  lipgloss.Style
	Title      lipgloss.Style
	Link       lipgloss.Style
	MetaValue  lipgloss.Style
	Quote      lipgloss.Style
	StatusInfo lipgloss.Style
	StatusWarn lipgloss.Style

	KindComment  lipgloss.Style
	KindSelfPost lipgloss.Style
	KindLink     lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpYellow := lipgloss.Color("#f9e2af")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpBlue := lipgloss.Color("#89b4fa")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")
	cpSurface1 := lipgloss.Color("#45475a")

	return Theme{
		AppName:    lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		Hint:       lipgloss.NewStyle().Foreground(cpOverlay1),
		Position:   lipgloss.NewStyle().Foreground(cpSubtext1),
		Filter:     lipgloss.NewStyle().Foreground(cpYellow).Bold(true),
		Rule:       lipgloss.NewStyle().Foreground(cpSurface1),
		Header:     lipgloss.NewStyle().Bold(true).Foreground(cpLavender).Background(cpSurface0),
		ActiveLine: lipgloss.NewStyle().Background(cpSurface0).Foreground(cpText),
		Subreddit:  lipgloss.NewStyle().Foreground(cpTeal),
		Title:      lipgloss.NewStyle().Bold(true).Foreground(cpText),
		Link:       lipgloss.NewStyle().Foreground(cpBlue).Underline(true),
		MetaValue:  lipgloss.NewStyle().Foreground(cpSubtext1),
		Quote:      lipgloss.NewStyle().Foreground(cpOverlay1),
		StatusInfo: lipgloss.NewStyle().Foreground(cpGreen),
		StatusWarn: lipgloss.NewStyle().Foreground(cpRed),

		KindComment:  lipgloss.NewStyle().Foreground(cpPeach),
		KindSelfPost: lipgloss.NewStyle().Foreground(cpGreen),
		KindLink:     lipgloss.NewStyle().Foreground(cpBlue),
	}
}

func (t Theme) StyleKind(kind saved.Kind) string {
	switch kind {
	case saved.KindComment:
		return t.KindComment.Render(kind.String())
	case saved.KindSelfPost:
		return t.KindSelfPost.Render(kind.String())
	default:
		return t.KindLink.Render(kind.String())
	}
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}

func (t Theme) RenderStatus(status string, warn bool) string {
	if status == "" {
		return ""
	}
	if warn {
		return t.StatusWarn.Render(status)
	}
	return t.StatusInfo.Render(status)
}
