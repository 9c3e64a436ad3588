package tui

import "github.com/lixenwraith/scrollkit/terminal"

// Region represents a rectangular area within a cell buffer
// X/Y are absolute screen coordinates; OriginX/OriginY is the screen position of Cells[0],
// which is non-zero for off-screen buffers anchored away from the screen origin
// Drawing methods take coordinates relative to the region's top-left corner
type Region struct {
	Cells            []terminal.Cell
	TotalW           int // Total width of the underlying cell buffer
	OriginX, OriginY int // Screen position of the buffer's first cell
	X, Y             int // Absolute position
	W, H             int // Region dimensions
}

// NewRegion creates a region referencing a screen-sized cell slice with bounds
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{
		Cells:  cells,
		TotalW: totalW,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
	}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	// Clip to parent bounds
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Cells:   r.Cells,
		TotalW:  r.TotalW,
		OriginX: r.OriginX,
		OriginY: r.OriginY,
		X:       r.X + x,
		Y:       r.Y + y,
		W:       w,
		H:       h,
	}
}

// Area returns the part of the region covered by an absolute rect
func (r Region) Area(rect Rect) Region {
	return r.Sub(rect.X-r.X, rect.Y-r.Y, rect.W, rect.H)
}

// Rect returns absolute position and dimensions
func (r Region) Rect() Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// index maps region-relative coordinates to a slice index, -1 when clipped
func (r Region) index(x, y int) int {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return -1
	}
	bx := r.X + x - r.OriginX
	by := r.Y + y - r.OriginY

	// Bounds check against the physical buffer dimensions
	if uint(bx) >= uint(r.TotalW) || by < 0 {
		return -1
	}

	idx := by*r.TotalW + bx
	if uint(idx) >= uint(len(r.Cells)) {
		return -1
	}
	return idx
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, fg, bg terminal.RGB, attr terminal.Attr) {
	if idx := r.index(x, y); idx >= 0 {
		r.Cells[idx] = terminal.Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr}
	}
}

// Put replaces a cell
func (r Region) Put(x, y int, c terminal.Cell) {
	if idx := r.index(x, y); idx >= 0 {
		r.Cells[idx] = c
	}
}

// At returns the cell at relative position, ok=false when outside the region
func (r Region) At(x, y int) (terminal.Cell, bool) {
	idx := r.index(x, y)
	if idx < 0 {
		return terminal.Cell{}, false
	}
	return r.Cells[idx], true
}

// SetSymbol replaces the glyph and keeps the cell's style
func (r Region) SetSymbol(x, y int, ch rune) {
	if idx := r.index(x, y); idx >= 0 {
		r.Cells[idx].Rune = ch
	}
}

// SetStyle patches the cell's style, zero style fields leave the cell unchanged
func (r Region) SetStyle(x, y int, s Style) {
	if idx := r.index(x, y); idx >= 0 {
		r.Cells[idx] = s.Patch(r.Cells[idx])
	}
}

// StyleArea patches the style of every cell in the region
func (r Region) StyleArea(s Style) {
	if s.IsZero() {
		return
	}
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.SetStyle(x, y, s)
		}
	}
}

// Fill fills entire region with background color
func (r Region) Fill(bg terminal.RGB) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', terminal.RGB{}, bg, terminal.AttrNone)
		}
	}
}

// FillStyle fills entire region with blanks in the given style
func (r Region) FillStyle(s Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', s.Fg, s.Bg, s.Attr)
		}
	}
}

// Clear fills region with spaces and zero colors
func (r Region) Clear() {
	r.Fill(terminal.RGB{})
}

// Width returns region width
func (r Region) Width() int {
	return r.W
}

// Height returns region height
func (r Region) Height() int {
	return r.H
}

// Bounds returns absolute position and dimensions
func (r Region) Bounds() (x, y, w, h int) {
	return r.X, r.Y, r.W, r.H
}
