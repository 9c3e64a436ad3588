package tui

import "log/slog"

// ScrollbarPolicy decides per axis whether Scrolled shows a scrollbar
type ScrollbarPolicy uint8

const (
	AsNeeded ScrollbarPolicy = iota // Show when the content reports it needs scrolling
	Always                          // Always show
	Never                           // Never show, the content may still scroll by wheel/keys
)

// Apply combines the policy with the content's need-scroll flag
func (p ScrollbarPolicy) Apply(need bool) bool {
	switch p {
	case Always:
		return true
	case Never:
		return false
	default:
		return need
	}
}

// String returns policy name
func (p ScrollbarPolicy) String() string {
	switch p {
	case Always:
		return "always"
	case Never:
		return "never"
	default:
		return "as-needed"
	}
}

// HPosition places the horizontal scrollbar
type HPosition uint8

const (
	Bottom HPosition = iota
	Top
)

// Orientation returns the matching scrollbar orientation
func (p HPosition) Orientation() Orientation {
	if p == Top {
		return HorizontalTop
	}
	return HorizontalBottom
}

// VPosition places the vertical scrollbar
type VPosition uint8

const (
	Right VPosition = iota
	Left
)

// Orientation returns the matching scrollbar orientation
func (p VPosition) Orientation() Orientation {
	if p == Left {
		return VerticalLeft
	}
	return VerticalRight
}

// Scrolled wraps content that scrolls by itself with scrollbars and an optional border
//
// The content reports its extent through NeedScroll and its offsets through the
// ScrollingState methods of S; Scrolled only draws chrome and routes input.
type Scrolled[S ScrollingState] struct {
	Widget ScrollingWidget[S]

	HPolicy     ScrollbarPolicy
	VPolicy     ScrollbarPolicy
	HPosition   HPosition
	VPosition   VPosition
	HOverscroll int
	VOverscroll int

	StepSize    int // Wheel step on both axes, 0 = the content's own step
	StartMargin int // Cells left free before each track
	EndMargin   int // Cells left free after each track

	Type    ScrollbarType // Drawing of a shown scrollbar with nothing to scroll
	Block   *Block
	Symbols ScrollSymbols
	Styles  ScrollStyles
}

// ScrolledState is the state of Scrolled, it owns the content's state
type ScrolledState[S ScrollingState] struct {
	Widget S

	Area           Rect // Outer area, border and chrome included
	ViewArea       Rect // Area given to the content
	HScrollbarArea Rect // Horizontal track, valid while HScrollbar
	VScrollbarArea Rect // Vertical track, valid while VScrollbar
	HScrollbar     bool // Horizontal scrollbar shown in the last frame
	VScrollbar     bool // Vertical scrollbar shown in the last frame

	HOverscroll int
	VOverscroll int
	StepSize    int // Wheel step, 0 = the content's own step

	HDrag bool
	VDrag bool
}

// NewScrolledState wraps the content state w
func NewScrolledState[S ScrollingState](w S) *ScrolledState[S] {
	return &ScrolledState[S]{Widget: w}
}

// tentativeArea reserves one column/row per axis that may show a scrollbar
// A block already reserves a cell on every side, its inner area is used as is
func (s *Scrolled[S]) tentativeArea(area Rect) Rect {
	if s.Block != nil {
		return s.Block.Inner(area)
	}
	w, h := area.W, area.H
	if s.VPolicy != Never {
		w = max(w-1, 0)
	}
	if s.HPolicy != Never {
		h = max(h-1, 0)
	}
	return NewRect(area.X, area.Y, w, h)
}

// scroll builds the chrome configuration of one axis
func (s *Scrolled[S]) scroll(o Orientation, overscroll int) *Scroll {
	return &Scroll{
		Type:        s.Type,
		Orientation: o,
		StartMargin: s.StartMargin,
		EndMargin:   s.EndMargin,
		Overscroll:  overscroll,
		StepSize:    s.StepSize,
		Symbols:     s.Symbols,
		Styles:      s.Styles,
	}
}

// Render draws content, border and scrollbars into r and records the layout in state
func (s *Scrolled[S]) Render(r Region, state *ScrolledState[S]) {
	area := r.Rect()

	needH, needV := s.Widget.NeedScroll(s.tentativeArea(area), state.Widget)
	hasH := s.HPolicy.Apply(needH)
	hasV := s.VPolicy.Apply(needV)

	state.Area = area
	state.HOverscroll = s.HOverscroll
	state.VOverscroll = s.VOverscroll
	state.StepSize = s.StepSize

	var h, v *Scroll
	if hasH {
		h = s.scroll(s.HPosition.Orientation(), s.HOverscroll)
	}
	if hasV {
		v = s.scroll(s.VPosition.Orientation(), s.VOverscroll)
	}

	hArea, vArea, inner := LayoutScroll(area, s.Block, h, v)
	state.ViewArea = inner
	state.HScrollbar, state.VScrollbar = hasH, hasV
	state.HScrollbarArea, state.VScrollbarArea = Rect{}, Rect{}
	if hasH {
		state.HScrollbarArea = hArea
	}
	if hasV {
		state.VScrollbarArea = vArea
	}

	logger.Debug("scrolled layout",
		slog.Bool("need_h", needH), slog.Bool("need_v", needV),
		slog.Bool("show_h", hasH), slog.Bool("show_v", hasV),
		slog.Any("view", inner))

	s.Widget.Render(r.Area(inner), state.Widget)

	s.Block.Render(r)

	if hasV {
		w := state.Widget
		s.renderChrome(r.Area(vArea), v, w.VerticalMaxOffset(), w.VerticalOffset(), w.VerticalPage())
	}
	if hasH {
		w := state.Widget
		s.renderChrome(r.Area(hArea), h, w.HorizontalMaxOffset(), w.HorizontalOffset(), w.HorizontalPage())
	}
}

// renderChrome paints the track base style, then the scrollbar per policy
// With nothing to scroll no thumb is drawn: Minimal still fills its no-scroll symbol,
// Show and NoRender leave the styled track blank
func (s *Scrolled[S]) renderChrome(r Region, sc *Scroll, maxOffset, offset, page int) {
	r.StyleArea(s.Styles.Track)
	if maxOffset <= 0 && sc.Type != Minimal {
		return
	}
	tmp := ScrollState{MaxOffset: maxOffset, Offset: offset, PageLen: page}
	sc.Render(r, &tmp)
}

// --- Offsets ---

// VerticalOffset returns the content's vertical offset
func (s *ScrolledState[S]) VerticalOffset() int {
	return s.Widget.VerticalOffset()
}

// HorizontalOffset returns the content's horizontal offset
func (s *ScrolledState[S]) HorizontalOffset() int {
	return s.Widget.HorizontalOffset()
}

// vLimit is the vertical max offset plus allowed overscroll
func (s *ScrolledState[S]) vLimit() int {
	return satAdd(max(s.Widget.VerticalMaxOffset(), 0), max(s.VOverscroll, 0))
}

// hLimit is the horizontal max offset plus allowed overscroll
func (s *ScrolledState[S]) hLimit() int {
	return satAdd(max(s.Widget.HorizontalMaxOffset(), 0), max(s.HOverscroll, 0))
}

// SetVerticalOffset changes the content offset, limited to max offset plus overscroll
// An overscrolled offset may be invalid for the content, which must tolerate it
func (s *ScrolledState[S]) SetVerticalOffset(offset int) bool {
	return s.Widget.SetVerticalOffset(min(max(offset, 0), s.vLimit()))
}

// SetHorizontalOffset changes the content offset, limited to max offset plus overscroll
func (s *ScrolledState[S]) SetHorizontalOffset(offset int) bool {
	return s.Widget.SetHorizontalOffset(min(max(offset, 0), s.hLimit()))
}

// ScrollUp scrolls up by n
func (s *ScrolledState[S]) ScrollUp(n int) bool {
	return s.SetVerticalOffset(satSub(s.VerticalOffset(), max(n, 0)))
}

// ScrollDown scrolls down by n, limited by max offset plus overscroll
func (s *ScrolledState[S]) ScrollDown(n int) bool {
	return s.SetVerticalOffset(capForward(s.VerticalOffset(), n, s.vLimit()))
}

// ScrollLeft scrolls left by n
func (s *ScrolledState[S]) ScrollLeft(n int) bool {
	return s.SetHorizontalOffset(satSub(s.HorizontalOffset(), max(n, 0)))
}

// ScrollRight scrolls right by n, limited by max offset plus overscroll
func (s *ScrolledState[S]) ScrollRight(n int) bool {
	return s.SetHorizontalOffset(capForward(s.HorizontalOffset(), n, s.hLimit()))
}

// Apply executes a request outcome, returns true if an offset changed
func (s *ScrolledState[S]) Apply(o ScrollOutcome[Outcome]) bool {
	switch o.Kind {
	case ScrollUp:
		return s.ScrollUp(o.N)
	case ScrollDown:
		return s.ScrollDown(o.N)
	case ScrollLeft:
		return s.ScrollLeft(o.N)
	case ScrollRight:
		return s.ScrollRight(o.N)
	case ScrollVPos:
		return s.SetVerticalOffset(o.N)
	case ScrollHPos:
		return s.SetHorizontalOffset(o.N)
	}
	return false
}

// --- ScrollingState, so a scrolled widget can be nested ---

// VerticalMaxOffset delegates to the content
func (s *ScrolledState[S]) VerticalMaxOffset() int { return s.Widget.VerticalMaxOffset() }

// VerticalPage delegates to the content
func (s *ScrolledState[S]) VerticalPage() int { return s.Widget.VerticalPage() }

// VerticalScroll returns the configured step, else the content's step
func (s *ScrolledState[S]) VerticalScroll() int {
	if s.StepSize > 0 {
		return s.StepSize
	}
	return max(s.Widget.VerticalScroll(), 1)
}

// HorizontalMaxOffset delegates to the content
func (s *ScrolledState[S]) HorizontalMaxOffset() int { return s.Widget.HorizontalMaxOffset() }

// HorizontalPage delegates to the content
func (s *ScrolledState[S]) HorizontalPage() int { return s.Widget.HorizontalPage() }

// HorizontalScroll returns the configured step, else the content's step
func (s *ScrolledState[S]) HorizontalScroll() int {
	if s.StepSize > 0 {
		return s.StepSize
	}
	return max(s.Widget.HorizontalScroll(), 1)
}
