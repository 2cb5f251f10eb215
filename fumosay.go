// Package fumosay renders a message in a speech or thought bubble above a
// piece of Braille art, cowsay style.
//
// The root package holds the renderer and the domain types. Subpackages
// provide the I/O around it: fs reads message files, yaml loads the config
// file and lipgloss colors the output.
package fumosay

import "strings"

// DefaultWidth is the maximum bubble line width when none is configured.
const DefaultWidth = 40

// DefaultMessage is said when no message is supplied. The renderer never
// substitutes it; callers do.
const DefaultMessage = "I'm the Strongest! ⑨"

// Options controls rendering.
type Options struct {
	Width    int
	Kind     Kind
	Style    Style
	NoBubble bool // print the message unframed; Width and Kind are ignored
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{Width: DefaultWidth, Kind: Speech, Style: Style1}
}

// Parts are the pieces of a rendered picture, top to bottom. In raw mode
// Bubble holds the unframed message and Tail is empty.
type Parts struct {
	Bubble string
	Tail   string
	Art    string
}

// Layout renders message into its parts.
func Layout(message string, opts Options) Parts {
	if opts.NoBubble {
		return Parts{Bubble: message, Art: opts.Style.Art()}
	}
	return Parts{
		Bubble: Frame(Wrap(message, opts.Width), opts.Kind),
		Tail:   Tail(opts.Kind),
		Art:    opts.Style.Art(),
	}
}

// Say renders message and returns the complete picture.
func Say(message string, opts Options) string {
	return Layout(message, opts).String()
}

// String joins the parts with newlines, skipping the tail when empty.
func (p Parts) String() string {
	return p.join(p.Bubble, p.Tail, p.Art)
}

// Paint is like String but passes each part through painter first.
func (p Parts) Paint(painter Painter) string {
	tail := p.Tail
	if tail != "" {
		tail = painter.PaintTail(tail)
	}
	return p.join(painter.PaintBubble(p.Bubble), tail, painter.PaintArt(p.Art))
}

func (p Parts) join(bubble, tail, art string) string {
	parts := []string{bubble}
	if p.Tail != "" {
		parts = append(parts, tail)
	}
	return strings.Join(append(parts, art), "\n")
}
