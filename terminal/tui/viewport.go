package tui

// Viewport is View for content with state
// The content state lives in ViewportState and is passed to every render
type Viewport[S any] struct {
	Widget StatefulWidget[S]
	Size   Size
	Style  Style
}

// ViewportState is the window position plus the content state
type ViewportState[S any] struct {
	ViewState
	Widget S
}

// NewViewportState wraps the content state w
func NewViewportState[S any](w S) *ViewportState[S] {
	return &ViewportState[S]{Widget: w}
}

// NeedScroll reports which axes the visible area cuts off
func (v *Viewport[S]) NeedScroll(area Rect, _ *ViewportState[S]) (horizontal, vertical bool) {
	return needWindow(area, v.Size)
}

// Render draws the visible window of the content into r
func (v *Viewport[S]) Render(r Region, state *ViewportState[S]) {
	renderWindow(r, v.Size, v.Style, &state.ViewState, func(buf Region) {
		v.Widget.Render(buf, state.Widget)
	})
}
