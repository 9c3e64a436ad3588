// Package tui provides immediate-mode drawing primitives and scrolling widgets.
//
// Core abstraction is Region, a clipped rectangular view into a cell slice.
// Drawing operations take region-relative coordinates; layout (Rect) and event
// positions use absolute screen coordinates.
//
// Scrolling is split into small parts:
//   - ScrollState: offset, max offset and page length of one axis
//   - Scroll and LayoutScroll: scrollbar configuration, drawing and geometry
//   - ScrollingWidget and ScrollingState: what content implements to be scrolled
//   - Scrolled: wraps such content with scrollbars, a border and input routing
//   - View and Viewport: scroll content that has no notion of scrolling by
//     rendering it off-screen at its natural size
//
// Usage pattern:
//
//	list := &tui.List{CursorBg: theme.CursorBg}
//	scrolled := &tui.Scrolled[*tui.ListState]{Widget: list, VPolicy: tui.Always}
//	state := tui.NewScrolledState(tui.NewListState(items))
//
//	// each frame
//	scrolled.Render(root, state)
//
//	// each event
//	r := tui.HandleScrolled[tui.Outcome](state, ev, tui.FocusKeys)
//	if r.IsConsumed() {
//	    redraw()
//	}
package tui
