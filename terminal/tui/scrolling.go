package tui

// Widget is stateless content rendered into a region
type Widget interface {
	Render(r Region)
}

// StatefulWidget is content rendered with exclusive access to its state
type StatefulWidget[S any] interface {
	Render(r Region, state S)
}

// ScrollingWidget is content that can be wrapped by Scrolled
type ScrollingWidget[S any] interface {
	StatefulWidget[S]

	// NeedScroll reports per axis whether the content exceeds area
	NeedScroll(area Rect, state S) (horizontal, vertical bool)
}

// ScrollingState exposes the scroll position of content state per axis
//
// Offsets and page lengths are in units chosen by the widget. Set* return true
// if the stored offset changed; implementations may clamp the value further.
type ScrollingState interface {
	VerticalMaxOffset() int
	VerticalOffset() int
	VerticalPage() int
	VerticalScroll() int // Wheel step, never 0
	SetVerticalOffset(offset int) bool

	HorizontalMaxOffset() int
	HorizontalOffset() int
	HorizontalPage() int
	HorizontalScroll() int // Wheel step, never 0
	SetHorizontalOffset(offset int) bool
}

// --- Generic scrolling on top of ScrollingState ---

// ScrollUpBy scrolls s up by n
func ScrollUpBy(s ScrollingState, n int) bool {
	return s.SetVerticalOffset(satSub(s.VerticalOffset(), max(n, 0)))
}

// ScrollDownBy scrolls s down by n, capped at the vertical max offset
func ScrollDownBy(s ScrollingState, n int) bool {
	return s.SetVerticalOffset(capForward(s.VerticalOffset(), n, s.VerticalMaxOffset()))
}

// ScrollLeftBy scrolls s left by n
func ScrollLeftBy(s ScrollingState, n int) bool {
	return s.SetHorizontalOffset(satSub(s.HorizontalOffset(), max(n, 0)))
}

// ScrollRightBy scrolls s right by n, capped at the horizontal max offset
func ScrollRightBy(s ScrollingState, n int) bool {
	return s.SetHorizontalOffset(capForward(s.HorizontalOffset(), n, s.HorizontalMaxOffset()))
}

// capForward advances offset by n up to limit, never moving an offset that is already past limit backwards
func capForward(offset, n, limit int) int {
	target := satAdd(offset, max(n, 0))
	if target > limit {
		return max(limit, offset)
	}
	return target
}
