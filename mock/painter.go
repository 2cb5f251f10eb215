// Package mock provides test doubles for fumosay interfaces using function
// fields.
package mock

import "github.com/fwojciec/fumosay"

// Interface compliance check.
var _ fumosay.Painter = (*Painter)(nil)

// Painter is a test double for fumosay.Painter.
// Set the function fields for the methods you need.
type Painter struct {
	PaintBubbleFn func(s string) string
	PaintTailFn   func(s string) string
	PaintArtFn    func(s string) string
}

// PaintBubble delegates to PaintBubbleFn.
func (p *Painter) PaintBubble(s string) string {
	return p.PaintBubbleFn(s)
}

// PaintTail delegates to PaintTailFn.
func (p *Painter) PaintTail(s string) string {
	return p.PaintTailFn(s)
}

// PaintArt delegates to PaintArtFn.
func (p *Painter) PaintArt(s string) string {
	return p.PaintArtFn(s)
}
