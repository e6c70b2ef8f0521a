package markdown

import (
	"strings"
	"unicode"
)

var entityReplacer = strings.NewReplacer("&gt;", ">", "&lt;", "<", "&amp;", "&")

// Wrap reflows comment markup into display lines of at most width columns.
// Paragraphs are separated by blank lines and each one is followed by an
// empty line in the output. Code blocks (four leading spaces) are kept
// verbatim, blockquotes and "- " lists keep their markers in front of the
// wrapped text, everything else is wrapped greedily.
func Wrap(text string, width int) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = entityReplacer.Replace(text)

	lines := make([]string, 0, 32)
	for _, paragraph := range strings.Split(text, "\n\n") {
		switch {
		case strings.HasPrefix(paragraph, "    "):
			lines = append(lines, strings.Split(paragraph, "\n")...)
		case strings.HasPrefix(paragraph, ">"):
			lines = append(lines, wrapQuote(paragraph, width)...)
		case strings.HasPrefix(paragraph, "- "), strings.HasPrefix(paragraph, "-\t"):
			lines = append(lines, wrapList(paragraph, width)...)
		default:
			lines = append(lines, WrapText(paragraph, width)...)
		}
		lines = append(lines, "")
	}
	return lines
}

func wrapQuote(paragraph string, width int) []string {
	out := make([]string, 0, 4)
	for _, line := range strings.Split(paragraph, "\n") {
		level, offset := countMarkers(line, '>')
		if offset < 0 {
			if level > 0 {
				out = append(out, strings.Repeat(">", level))
			}
			continue
		}
		prefix := strings.Repeat(">", level) + " "
		for _, wrapped := range WrapText(line[offset:], width-level-1) {
			out = append(out, prefix+wrapped)
		}
	}
	return out
}

func wrapList(paragraph string, width int) []string {
	out := make([]string, 0, 4)
	prevLevel := 1
	for _, line := range strings.Split(paragraph, "\n") {
		level, offset := countMarkers(line, '-')
		if offset < 0 {
			continue
		}
		newItem := level > 0
		if !newItem {
			level = prevLevel
		}
		prevLevel = level
		indent := strings.Repeat("  ", level-1)
		for i, wrapped := range WrapText(line[offset:], width-2*level-1) {
			if i == 0 && newItem {
				out = append(out, indent+"- "+wrapped)
				continue
			}
			out = append(out, indent+"  "+wrapped)
		}
	}
	return out
}

// countMarkers counts leading marker runes, skipping any whitespace between
// them. offset is the byte index of the first other character, or -1 when
// the line holds nothing else.
func countMarkers(line string, marker rune) (level, offset int) {
	for i, r := range line {
		if unicode.IsSpace(r) {
			continue
		}
		if r != marker {
			return level, i
		}
		level++
	}
	return level, -1
}
