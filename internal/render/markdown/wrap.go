package markdown

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const tabSize = 8

// isWrapSpace matches the characters the greedy wrapper splits on.
func isWrapSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// WrapText greedily fills lines of at most width display columns.
//
// Whitespace between words is kept (every whitespace character counts as
// one space), leading whitespace of the text is kept, whitespace at the end
// of a line or the start of a wrapped line is dropped, and words wider than
// the line are split.
func WrapText(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	chunks := splitChunks(expandTabs(text))
	lines := make([]string, 0, 4)

	for len(chunks) > 0 {
		if len(lines) > 0 && isBlankChunk(chunks[0]) {
			chunks = chunks[1:]
			if len(chunks) == 0 {
				break
			}
		}

		var cur []string
		curLen := 0
		for len(chunks) > 0 {
			w := runewidth.StringWidth(chunks[0])
			if curLen+w > width {
				break
			}
			cur = append(cur, chunks[0])
			curLen += w
			chunks = chunks[1:]
		}

		if len(chunks) > 0 && runewidth.StringWidth(chunks[0]) > width {
			head, tail := cutWidth(chunks[0], width-curLen)
			if head == "" && len(cur) == 0 {
				// a single rune wider than the line still has to go somewhere
				_, size := utf8.DecodeRuneInString(tail)
				head, tail = tail[:size], tail[size:]
			}
			if head != "" {
				cur = append(cur, head)
			}
			if tail == "" {
				chunks = chunks[1:]
			} else {
				chunks[0] = tail
			}
		}

		if n := len(cur); n > 0 && isBlankChunk(cur[n-1]) {
			cur = cur[:n-1]
		}
		if len(cur) > 0 {
			lines = append(lines, strings.Join(cur, ""))
		}
	}
	return lines
}

// splitChunks cuts text into alternating runs of whitespace and
// non-whitespace. Whitespace runs are normalised to spaces.
func splitChunks(text string) []string {
	chunks := make([]string, 0, 16)
	var b strings.Builder
	inSpace := false
	flush := func() {
		if b.Len() > 0 {
			chunks = append(chunks, b.String())
			b.Reset()
		}
	}
	for _, r := range text {
		space := isWrapSpace(r)
		if space != inSpace {
			flush()
			inSpace = space
		}
		if space {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}
	flush()
	return chunks
}

func isBlankChunk(s string) bool {
	return strings.TrimFunc(s, isWrapSpace) == ""
}

// cutWidth splits s so that the head is at most n display columns wide.
func cutWidth(s string, n int) (string, string) {
	if n <= 0 {
		return "", s
	}
	used := 0
	for i, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > n {
			return s[:i], s[i:]
		}
		used += w
	}
	return s, ""
}

func expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			pad := tabSize - col%tabSize
			b.WriteString(strings.Repeat(" ", pad))
			col += pad
		case '\n', '\r':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			if unicode.IsPrint(r) {
				col++
			}
		}
	}
	return b.String()
}
