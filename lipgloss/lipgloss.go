// Package lipgloss colors rendered pictures for the terminal using lipgloss.
package lipgloss

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/fumosay"
	"github.com/muesli/termenv"
)

var _ fumosay.Painter = (*Painter)(nil)

// NewRenderer returns a lipgloss renderer writing to w. ColorAlways and
// ColorNever force the color profile; ColorAuto detects it from w and the
// environment.
func NewRenderer(w io.Writer, mode fumosay.ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case fumosay.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case fumosay.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// Painter applies a Theme to the parts of a picture. Lines are styled one
// at a time so no padding is added, and uncolored parts are returned as is.
type Painter struct {
	bubble part
	tail   part
	art    part
}

type part struct {
	style lipgloss.Style
	on    bool
}

// New creates a Painter for theme. When the renderer has no color support
// the painter leaves text untouched.
func New(r *lipgloss.Renderer, theme fumosay.Theme) *Painter {
	color := r.ColorProfile() != termenv.Ascii
	newPart := func(index int) part {
		return part{
			style: r.NewStyle().Foreground(ansiColor(index)).TabWidth(lipgloss.NoTabConversion),
			on:    color && index >= 0,
		}
	}
	return &Painter{
		bubble: newPart(theme.Bubble),
		tail:   newPart(theme.Tail),
		art:    newPart(theme.Art),
	}
}

// PaintBubble styles the bubble, or the raw message in raw mode.
func (p *Painter) PaintBubble(s string) string { return p.bubble.paint(s) }

// PaintTail styles the connector.
func (p *Painter) PaintTail(s string) string { return p.tail.paint(s) }

// PaintArt styles the art block.
func (p *Painter) PaintArt(s string) string { return p.art.paint(s) }

func (pt part) paint(s string) string {
	if !pt.on {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pt.style.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
