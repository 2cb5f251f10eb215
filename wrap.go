package fumosay

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Wrap performs greedy word wrapping of text to the given display width.
// Words are separated by runs of ASCII whitespace (space, \t, \n, \v, \f,
// \r) and are never split, so a
// word wider than width occupies a line of its own. A width of zero or less
// puts each word on its own line. Text with no words yields a single empty
// line.
func Wrap(text string, width int) []string {
	words := strings.FieldsFunc(text, isBreakSpace)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines     []string
		line      strings.Builder
		lineWidth int
	)
	for _, word := range words {
		w := uniseg.StringWidth(word)
		if line.Len() > 0 && lineWidth+1+w <= width {
			line.WriteByte(' ')
			line.WriteString(word)
			lineWidth += 1 + w
			continue
		}
		if line.Len() > 0 {
			lines = append(lines, line.String())
			line.Reset()
		}
		line.WriteString(word)
		lineWidth = w
	}
	return append(lines, line.String())
}

// isBreakSpace reports whether r separates words. Other Unicode spaces,
// such as U+00A0 NO-BREAK SPACE, stay part of the word.
func isBreakSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
