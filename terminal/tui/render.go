package tui

import "github.com/lixenwraith/scrollkit/terminal"

// Text renders text at position, truncates at region edge
// Wide runes occupy two cells, the second cell is blanked
func (r Region) Text(x, y int, s string, fg, bg terminal.RGB, attr terminal.Attr) int {
	if y < 0 || y >= r.H {
		return 0
	}
	col := 0
	for _, ch := range s {
		w := RuneWidth(ch)
		if x+col+w > r.W {
			break
		}
		if x+col >= 0 {
			r.Cell(x+col, y, ch, fg, bg, attr)
			for i := 1; i < w; i++ {
				r.Cell(x+col+i, y, 0, fg, bg, attr)
			}
		}
		col += w
	}
	return col
}

// TextStyled renders text using Style struct
func (r Region) TextStyled(x, y int, s string, style Style) int {
	return r.Text(x, y, s, style.Fg, style.Bg, style.Attr)
}

// TextRight renders text right-aligned on row
func (r Region) TextRight(y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	x := r.W - RuneLen(s)
	r.Text(x, y, s, fg, bg, attr)
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	x := (r.W - RuneLen(s)) / 2
	r.Text(x, y, s, fg, bg, attr)
}
