package fumosay

// Theme defines color mappings for the parts of a rendered picture using
// ANSI color indices (0-255). A negative index leaves the part uncolored.
type Theme struct {
	Bubble int // Bubble border and text
	Tail   int // Connector between bubble and art
	Art    int // Braille art
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Bubble: -1,
		Tail:   8,
		Art:    4,
	}
}

// Painter decorates the parts of a rendered picture, typically with
// terminal colors. Implementations must not change the visible text.
type Painter interface {
	PaintBubble(s string) string
	PaintTail(s string) string
	PaintArt(s string) string
}
