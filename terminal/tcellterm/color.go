package tcellterm

import (
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"

	"github.com/lixenwraith/scrollkit/terminal"
)

// Color converts an RGB color for a terminal with the given color profile
// The zero RGB maps to the terminal default color
func Color(c terminal.RGB, profile termenv.Profile) tcell.Color {
	if c.IsZero() {
		return tcell.ColorDefault
	}
	switch tc := profile.Color(c.Hex()).(type) {
	case termenv.RGBColor:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	case termenv.ANSI256Color:
		return tcell.PaletteColor(int(tc))
	case termenv.ANSIColor:
		return tcell.PaletteColor(int(tc))
	default:
		return tcell.ColorDefault
	}
}

// FromTcell converts a tcell color back to RGB, the default color maps to the zero RGB
func FromTcell(c tcell.Color) terminal.RGB {
	if c == tcell.ColorDefault || !c.Valid() {
		return terminal.RGB{}
	}
	r, g, b := c.RGB()
	if r < 0 {
		return terminal.RGB{}
	}
	return terminal.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Style converts cell colors and attributes to a tcell style
func Style(c terminal.Cell, profile termenv.Profile) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(Color(c.Fg, profile)).
		Background(Color(c.Bg, profile))

	a := c.Attrs
	if a&terminal.AttrBold != 0 {
		st = st.Bold(true)
	}
	if a&terminal.AttrDim != 0 {
		st = st.Dim(true)
	}
	if a&terminal.AttrItalic != 0 {
		st = st.Italic(true)
	}
	if a&terminal.AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if a&terminal.AttrBlink != 0 {
		st = st.Blink(true)
	}
	if a&terminal.AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}
