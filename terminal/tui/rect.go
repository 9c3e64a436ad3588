package tui

// Rect is an absolute screen rectangle
type Rect struct {
	X, Y int
	W, H int
}

// Size is a width/height pair
type Size struct {
	W, H int
}

// NewRect creates a rect, negative dimensions collapse to 0
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

// IsEmpty returns true if the rect covers no cells
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right returns the first column past the rect
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rect
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Area returns the number of cells
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.W * r.H
}

// Contains returns true if (x, y) lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlap of two rects, empty if disjoint
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Overlaps returns true if the rects share at least one cell
func (r Rect) Overlaps(o Rect) bool {
	return !r.Intersect(o).IsEmpty()
}

// Inset shrinks the rect by n cells on all sides
func (r Rect) Inset(n int) Rect {
	return NewRect(r.X+n, r.Y+n, r.W-2*n, r.H-2*n)
}

// Size returns the rect dimensions
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}
