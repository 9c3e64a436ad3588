package tui

import "github.com/lixenwraith/scrollkit/terminal"

// Buffer is an owned cell grid covering an absolute screen rect
// Used as the off-screen surface for View and Viewport, and as a test target
type Buffer struct {
	Area  Rect
	Cells []terminal.Cell
}

// NewBuffer allocates a blank buffer for area
func NewBuffer(area Rect) *Buffer {
	area = NewRect(area.X, area.Y, area.W, area.H)
	cells := make([]terminal.Cell, area.W*area.H)
	for i := range cells {
		cells[i].Rune = ' '
	}
	return &Buffer{Area: area, Cells: cells}
}

// Region returns a drawing region covering the whole buffer
func (b *Buffer) Region() Region {
	return Region{
		Cells:   b.Cells,
		TotalW:  b.Area.W,
		OriginX: b.Area.X,
		OriginY: b.Area.Y,
		X:       b.Area.X,
		Y:       b.Area.Y,
		W:       b.Area.W,
		H:       b.Area.H,
	}
}

// Get returns the cell at absolute screen position
func (b *Buffer) Get(x, y int) terminal.Cell {
	c, _ := b.Region().At(x-b.Area.X, y-b.Area.Y)
	return c
}

// Row returns the glyphs of an absolute screen row as a string
func (b *Buffer) Row(y int) string {
	runes := make([]rune, 0, b.Area.W)
	for x := b.Area.X; x < b.Area.Right(); x++ {
		ch := b.Get(x, y).Rune
		if ch == 0 {
			ch = ' '
		}
		runes = append(runes, ch)
	}
	return string(runes)
}
