package fumosay

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Kind selects the bubble framing.
type Kind int

const (
	Speech Kind = iota
	Thought
)

// String returns the kind name.
func (k Kind) String() string {
	if k == Thought {
		return "thought"
	}
	return "speech"
}

// Frame draws a bubble around lines. Every content line is padded to the
// widest line, so all framed lines share the same display width.
//
// Speech bubbles with a single line use < >. With more lines the first is
// framed / \, the last \ / and the ones between | |. Thought bubbles use
// ( ) on every line.
func Frame(lines []string, kind Kind) string {
	width := 0
	for _, l := range lines {
		width = max(width, uniseg.StringWidth(l))
	}

	var b strings.Builder
	b.WriteString(" " + strings.Repeat("_", width+2) + "\n")
	for i, l := range lines {
		left, right := delimiters(kind, i, len(lines))
		b.WriteString(left + " " + pad(l, width) + " " + right + "\n")
	}
	b.WriteString(" " + strings.Repeat("-", width+2))
	return b.String()
}

func delimiters(kind Kind, i, n int) (left, right string) {
	switch {
	case kind == Thought:
		return "(", ")"
	case n == 1:
		return "<", ">"
	case i == 0:
		return "/", "\\"
	case i == n-1:
		return "\\", "/"
	default:
		return "|", "|"
	}
}

func pad(s string, width int) string {
	if n := width - uniseg.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// Tail returns the two-line connector drawn between the bubble and the art.
func Tail(kind Kind) string {
	if kind == Thought {
		return "  o\n   o"
	}
	return "  \\\n   \\"
}
