package tui

// Orientation places a scrollbar on one side of its area
type Orientation uint8

const (
	VerticalRight Orientation = iota
	VerticalLeft
	HorizontalBottom
	HorizontalTop
)

// IsVertical returns true for left/right scrollbars
func (o Orientation) IsVertical() bool {
	return o == VerticalRight || o == VerticalLeft
}

// IsHorizontal returns true for top/bottom scrollbars
func (o Orientation) IsHorizontal() bool {
	return o == HorizontalBottom || o == HorizontalTop
}

// String returns orientation name
func (o Orientation) String() string {
	switch o {
	case VerticalRight:
		return "VerticalRight"
	case VerticalLeft:
		return "VerticalLeft"
	case HorizontalBottom:
		return "HorizontalBottom"
	case HorizontalTop:
		return "HorizontalTop"
	default:
		return "Orientation(?)"
	}
}

// ScrollbarType selects what a Scroll draws when there is nothing to scroll
// Space for the scrollbar is always reserved by LayoutScroll; widgets that want
// to drop the scrollbar entirely use a nil *Scroll
type ScrollbarType uint8

const (
	// Minimal fills the track with the no-scroll symbol
	Minimal ScrollbarType = iota
	// Show always renders a recognizable scrollbar
	Show
	// NoRender leaves the area untouched, the widget draws there
	NoRender
)

// Default no-scroll symbols when ScrollSymbols.No is unset
const (
	NoScrollVertical   = '┊'
	NoScrollHorizontal = '┈'
)

// Scroll configures one scrollbar of a widget that scrolls natively
//
// It is not a widget by itself: a scrolling widget accepts one or two of these,
// lays them out with LayoutScroll and renders them with its ScrollState.
type Scroll struct {
	Type        ScrollbarType
	Orientation Orientation
	StartMargin int // Cells left free before the track
	EndMargin   int // Cells left free after the track
	Overscroll  int // Copied into the state on render when > 0
	StepSize    int // Copied into the state on render when > 0
	Symbols     ScrollSymbols
	Styles      ScrollStyles
}

// NewScroll creates a Minimal scrollbar with the given orientation
func NewScroll(o Orientation) *Scroll {
	return &Scroll{Orientation: o}
}

// OverrideVertical ensures a vertical orientation, keeping the side if already vertical
func (s *Scroll) OverrideVertical() *Scroll {
	if !s.Orientation.IsVertical() {
		s.Orientation = VerticalRight
	}
	return s
}

// OverrideHorizontal ensures a horizontal orientation, keeping the side if already horizontal
func (s *Scroll) OverrideHorizontal() *Scroll {
	if !s.Orientation.IsHorizontal() {
		s.Orientation = HorizontalBottom
	}
	return s
}

// IsVertical returns true for vertical scrollbars
func (s *Scroll) IsVertical() bool {
	return s.Orientation.IsVertical()
}

// IsHorizontal returns true for horizontal scrollbars
func (s *Scroll) IsHorizontal() bool {
	return s.Orientation.IsHorizontal()
}

// noSymbol returns the fill glyph for the Minimal policy
func (s *Scroll) noSymbol() rune {
	if s.Symbols.No != 0 {
		return s.Symbols.No
	}
	if s.IsVertical() {
		return NoScrollVertical
	}
	return NoScrollHorizontal
}

// Render draws the scrollbar into r and records r as the state's track area
// The state's orientation follows the configuration; Overscroll and StepSize
// are only copied when configured
func (s *Scroll) Render(r Region, state *ScrollState) {
	state.Orientation = s.Orientation
	if s.Overscroll > 0 {
		state.Overscroll = s.Overscroll
	}
	if s.StepSize > 0 {
		state.StepSize = s.StepSize
	}
	state.Area = r.Rect()

	if state.MaxOffset > 0 || s.Type == Show {
		RenderScrollbar(r, s.Orientation, state.MaxOffset, state.Offset, state.PageLen, s.Symbols, s.Styles)
		return
	}

	switch s.Type {
	case Minimal:
		sym := s.noSymbol()
		for y := 0; y < r.H; y++ {
			for x := 0; x < r.W; x++ {
				r.SetStyle(x, y, s.Styles.No)
				r.SetSymbol(x, y, sym)
			}
		}
	case NoRender:
		// widget renders
	}
}
