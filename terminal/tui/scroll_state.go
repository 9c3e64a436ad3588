package tui

import "math"

// ScrollState tracks the scroll position of one scrollbar axis
//
// The visible page is (Offset, PageLen). MaxOffset is the largest offset at which
// a full page can still be shown; it is not content length minus PageLen, because
// PageLen may differ at every offset (variable height rows). Only after a render at
// Offset == MaxOffset does MaxOffset+PageLen equal the content length.
//
// Mutators keep 0 <= Offset <= MaxOffset+Overscroll. Offsets written directly to the
// field, or left behind when MaxOffset shrinks, may be outside that range; widgets
// must tolerate them when rendering.
type ScrollState struct {
	Area        Rect        // Scrollbar track, rewritten each render
	Orientation Orientation // Axis and side of the scrollbar
	Offset      int         // First visible unit
	MaxOffset   int         // Largest offset that still shows a full page
	PageLen     int         // Units visible at Offset, recomputed by the widget each render
	StepSize    int         // Explicit wheel/key step, 0 = PageLen/10
	Overscroll  int         // Allowed offset past MaxOffset
	Dragging    bool        // Pointer drag on the track in progress
}

// NewScrollState creates state for the given orientation
func NewScrollState(o Orientation) *ScrollState {
	return &ScrollState{Orientation: o}
}

// --- Limits ---

// satAdd adds two non-negative ints, saturating at MaxInt
func satAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// satSub subtracts, saturating at 0
func satSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

// limitMax returns MaxOffset+Overscroll, saturating
func (s *ScrollState) limitMax() int {
	return satAdd(s.MaxOffset, max(s.Overscroll, 0))
}

// Limit returns offset capped at MaxOffset+Overscroll
func (s *ScrollState) Limit(offset int) int {
	return min(offset, s.limitMax())
}

// Clamp returns offset within [0, MaxOffset+Overscroll]
func (s *ScrollState) Clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	return s.Limit(offset)
}

// --- Offset mutation ---

// SetOffset stores the clamped offset, returns true if it changed
func (s *ScrollState) SetOffset(offset int) bool {
	old := s.Offset
	s.Offset = s.Clamp(offset)
	return old != s.Offset
}

// ScrollToPos adjusts the offset just enough to make pos visible
// Does nothing if pos is already on the current page
func (s *ScrollState) ScrollToPos(pos int) bool {
	old := s.Offset
	// An unrendered state has no page yet, treat it as one unit
	page := max(s.PageLen, 1)
	if pos >= satAdd(s.Offset, page) {
		s.Offset = s.Clamp(satSub(pos+1, page))
	} else if pos < s.Offset {
		s.Offset = s.Clamp(pos)
	}
	return old != s.Offset
}

// ScrollUp scrolls toward offset 0 by n
func (s *ScrollState) ScrollUp(n int) bool {
	old := s.Offset
	s.Offset = s.Clamp(satSub(s.Offset, max(n, 0)))
	return old != s.Offset
}

// ScrollDown scrolls toward MaxOffset by n
func (s *ScrollState) ScrollDown(n int) bool {
	old := s.Offset
	s.Offset = s.Clamp(satAdd(s.Offset, max(n, 0)))
	return old != s.Offset
}

// ScrollLeft is ScrollUp for horizontal state
func (s *ScrollState) ScrollLeft(n int) bool {
	return s.ScrollUp(n)
}

// ScrollRight is ScrollDown for horizontal state
func (s *ScrollState) ScrollRight(n int) bool {
	return s.ScrollDown(n)
}

// Step returns the suggested scroll per wheel event, never 0
// Defaults to a tenth of the page
func (s *ScrollState) Step() int {
	if s.StepSize > 0 {
		return s.StepSize
	}
	return max(s.PageLen/10, 1)
}

// --- Content changes ---

// ItemsInserted updates the state for n units inserted at pos
// Content at or below the viewport top keeps its screen position
func (s *ScrollState) ItemsInserted(pos, n int) {
	if n <= 0 {
		return
	}
	if s.Offset >= pos {
		s.Offset = satAdd(s.Offset, n)
	}
	s.MaxOffset = satAdd(s.MaxOffset, n)
}

// ItemsRemoved updates the state for n units removed at pos
func (s *ScrollState) ItemsRemoved(pos, n int) {
	if n <= 0 {
		return
	}
	if s.Offset >= pos {
		s.Offset = satSub(s.Offset, n)
	}
	s.MaxOffset = satSub(s.MaxOffset, n)
}

// --- Queries ---

// IsVertical returns true for vertical scrollbars
func (s *ScrollState) IsVertical() bool {
	return s.Orientation.IsVertical()
}

// IsHorizontal returns true for horizontal scrollbars
func (s *ScrollState) IsHorizontal() bool {
	return s.Orientation.IsHorizontal()
}

// AtStart returns true if scrolled to the first unit
func (s *ScrollState) AtStart() bool {
	return s.Offset <= 0
}

// AtEnd returns true if the last full page is reached
func (s *ScrollState) AtEnd() bool {
	return s.Offset >= s.MaxOffset
}

// MapPosition maps a track coordinate to an offset
// pos is the clicked row/column, base and length the track's start and extent
func (s *ScrollState) MapPosition(pos, base, length int) int {
	return MapPositionIndex(pos, base, length, s.MaxOffset)
}

// Apply executes a request outcome against this state, returns true if the offset changed
// Kinds that carry no request are ignored
func (s *ScrollState) Apply(o ScrollOutcome[Outcome]) bool {
	switch o.Kind {
	case ScrollUp, ScrollLeft:
		return s.ScrollUp(o.N)
	case ScrollDown, ScrollRight:
		return s.ScrollDown(o.N)
	case ScrollVPos, ScrollHPos:
		return s.SetOffset(o.N)
	}
	return false
}
