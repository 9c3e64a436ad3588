package tui

import "github.com/lixenwraith/scrollkit/terminal"

// View shows a window into content that is rendered at its full natural size
//
// The content draws into an off-screen buffer of Size anchored at the drawing
// position and never learns that it is scrolled. The visible part is copied to
// the screen at the state's offsets. Cells past the buffer use Style.
type View struct {
	Widget Widget
	Size   Size  // Natural size of the content
	Style  Style // Fill for the area the content does not cover
}

// ViewState is the window position of a View
// Offsets are in cells and bounded by the content size, not by a stored max offset
type ViewState struct {
	Area     Rect // Visible area of the last render
	ViewArea Rect // Full content area, anchored at Area's origin
	HOffset  int
	VOffset  int
}

// NeedScroll reports which axes the visible area cuts off
func (v *View) NeedScroll(area Rect, _ *ViewState) (horizontal, vertical bool) {
	return needWindow(area, v.Size)
}

// Render draws the visible window of the content into r
func (v *View) Render(r Region, state *ViewState) {
	renderWindow(r, v.Size, v.Style, state, v.Widget.Render)
}

// needWindow compares the visible area against the content size
func needWindow(area Rect, size Size) (horizontal, vertical bool) {
	return area.W < size.W, area.H < size.H
}

// renderWindow renders content into a buffer of size and copies the window at the state offsets
func renderWindow(r Region, size Size, fallback Style, state *ViewState, render func(Region)) {
	state.Area = r.Rect()
	state.ViewArea = NewRect(r.X, r.Y, size.W, size.H)

	buf := NewBuffer(state.ViewArea)
	render(buf.Region())

	copyBuffer(buf.Region(), state.VOffset, state.HOffset, fallback, r)
}

// copyBuffer copies src shifted by the offsets into dst
// Destination cells without a source cell are blanked with fallback
func copyBuffer(src Region, vOffset, hOffset int, fallback Style, dst Region) {
	blank := terminal.Cell{Rune: ' ', Fg: fallback.Fg, Bg: fallback.Bg, Attrs: fallback.Attr}
	for y := 0; y < dst.H; y++ {
		for x := 0; x < dst.W; x++ {
			if c, ok := src.At(x+hOffset, y+vOffset); ok {
				dst.Put(x, y, c)
			} else {
				dst.Put(x, y, blank)
			}
		}
	}
}

// --- ScrollingState ---

// VerticalMaxOffset is the content height beyond the visible area
func (s *ViewState) VerticalMaxOffset() int {
	return satSub(s.ViewArea.H, s.Area.H)
}

// VerticalOffset returns the first visible content row
func (s *ViewState) VerticalOffset() int {
	return s.VOffset
}

// VerticalPage returns the visible height
func (s *ViewState) VerticalPage() int {
	return s.Area.H
}

// VerticalScroll returns a tenth of the visible height
func (s *ViewState) VerticalScroll() int {
	return max(s.Area.H/10, 1)
}

// SetVerticalOffset moves the window, bounded by the content height
func (s *ViewState) SetVerticalOffset(offset int) bool {
	old := s.VOffset
	s.VOffset = windowOffset(offset, s.ViewArea.H)
	return old != s.VOffset
}

// HorizontalMaxOffset is the content width beyond the visible area
func (s *ViewState) HorizontalMaxOffset() int {
	return satSub(s.ViewArea.W, s.Area.W)
}

// HorizontalOffset returns the first visible content column
func (s *ViewState) HorizontalOffset() int {
	return s.HOffset
}

// HorizontalPage returns the visible width
func (s *ViewState) HorizontalPage() int {
	return s.Area.W
}

// HorizontalScroll returns a tenth of the visible width
func (s *ViewState) HorizontalScroll() int {
	return max(s.Area.W/10, 1)
}

// SetHorizontalOffset moves the window, bounded by the content width
func (s *ViewState) SetHorizontalOffset(offset int) bool {
	old := s.HOffset
	s.HOffset = windowOffset(offset, s.ViewArea.W)
	return old != s.HOffset
}

// windowOffset clamps offset to [0, extent-1]
func windowOffset(offset, extent int) int {
	if offset >= extent {
		return max(extent-1, 0)
	}
	return max(offset, 0)
}

// HandleEvent never consumes, the View has no input of its own
// Wrap it in Scrolled for wheel and scrollbar handling
func (s *ViewState) HandleEvent(terminal.Event, Qualifier) Outcome {
	return Continue
}
