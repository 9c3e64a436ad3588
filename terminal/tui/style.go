package tui

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/scrollkit/terminal"
)

// Style bundles foreground, background, and attributes for text rendering
// Zero colors mean "keep what is there" when a style is patched onto a cell
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// DefaultStyle returns style with zero values (transparent bg)
func DefaultStyle(fg terminal.RGB) Style {
	return Style{Fg: fg}
}

// IsZero returns true if style has no colors or attributes set
func (s Style) IsZero() bool {
	return s.Fg == (terminal.RGB{}) && s.Bg == (terminal.RGB{}) && s.Attr == terminal.AttrNone
}

// Patch applies the set fields of s onto c, attributes are added
func (s Style) Patch(c terminal.Cell) terminal.Cell {
	if !s.Fg.IsZero() {
		c.Fg = s.Fg
	}
	if !s.Bg.IsZero() {
		c.Bg = s.Bg
	}
	c.Attrs |= s.Attr
	return c
}

// Or returns s, or fallback when s is zero
func (s Style) Or(fallback Style) Style {
	if s.IsZero() {
		return fallback
	}
	return s
}

// BlendRGB mixes a toward b in Lab space, t in [0,1]
func BlendRGB(a, b terminal.RGB, t float64) terminal.RGB {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return terminal.RGB{R: r, G: g, B: bl}
}

// ParseRGB parses a #rrggbb or #rgb color
func ParseRGB(s string) (terminal.RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return terminal.RGB{}, err
	}
	r, g, b := c.RGB255()
	return terminal.RGB{R: r, G: g, B: b}, nil
}
