package view

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// Truncate clips s to width display columns, ending in an ellipsis when
// something was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= len(ellipsis) {
		return strings.Repeat(".", width)
	}
	return clipHead(s, width-len(ellipsis)) + ellipsis
}

// TruncateMiddle keeps both ends of s and replaces the middle with an
// ellipsis.
func TruncateMiddle(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= len(ellipsis) {
		return strings.Repeat(".", width)
	}
	avail := width - len(ellipsis)
	return clipHead(s, (avail+1)/2) + ellipsis + clipTail(s, avail/2)
}

// Clip cuts s to width columns without a marker.
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return clipHead(s, width)
}

func clipHead(s string, width int) string {
	used := 0
	for i, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > width {
			return s[:i]
		}
		used += w
	}
	return s
}

func clipTail(s string, width int) string {
	runes := []rune(s)
	used := 0
	i := len(runes)
	for i > 0 {
		w := runewidth.RuneWidth(runes[i-1])
		if used+w > width {
			break
		}
		used += w
		i--
	}
	return string(runes[i:])
}

func padLeft(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return ""
	}
	return strings.Repeat(" ", gap)
}

func centerPad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 1 {
		return ""
	}
	return strings.Repeat(" ", gap/2)
}

// singleLine collapses any run of whitespace, newlines included, to one
// space.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}
