package tui

import (
	"github.com/lixenwraith/scrollkit/terminal"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Box draws border around region edge
func (r Region) Box(line LineType, fg terminal.RGB) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}

	chars := boxChars[line]
	bg := terminal.RGB{} // Transparent (use existing bg)

	// Corners
	r.Cell(0, 0, chars[boxTL], fg, bg, terminal.AttrNone)
	r.Cell(r.W-1, 0, chars[boxTR], fg, bg, terminal.AttrNone)
	r.Cell(0, r.H-1, chars[boxBL], fg, bg, terminal.AttrNone)
	r.Cell(r.W-1, r.H-1, chars[boxBR], fg, bg, terminal.AttrNone)

	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, chars[boxH], fg, bg, terminal.AttrNone)
		r.Cell(x, r.H-1, chars[boxH], fg, bg, terminal.AttrNone)
	}

	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, chars[boxV], fg, bg, terminal.AttrNone)
		r.Cell(r.W-1, y, chars[boxV], fg, bg, terminal.AttrNone)
	}
}

// Block is a decorative border drawn around scrolled content
// A block always reserves one cell on every side; scrollbars of a Scrolled
// wrapper are drawn on top of the right/bottom (or left/top) border line
type Block struct {
	Line    LineType
	Fg      terminal.RGB
	Bg      terminal.RGB
	Title   string
	TitleFg terminal.RGB
}

// Inner returns the area left inside the border
func (b *Block) Inner(area Rect) Rect {
	if b == nil {
		return area
	}
	return area.Inset(1)
}

// Render draws the border and optional title over r's outer edge
// A nil block renders nothing
func (b *Block) Render(r Region) {
	if b == nil {
		return
	}
	r.Box(b.Line, b.Fg)
	if b.Title != "" && r.W > 6 {
		title := " " + Truncate(b.Title, r.W-6) + " "
		fg := b.TitleFg
		if fg.IsZero() {
			fg = b.Fg
		}
		r.Text(2, 0, title, fg, b.Bg, terminal.AttrBold)
	}
}
