package tui

import "github.com/lixenwraith/scrollkit/terminal"

// wheelKind classifies a wheel event as a scroll request
// Many terminals have no horizontal wheel: Alt turns the vertical wheel sideways
func wheelKind(ev terminal.Event) (ScrollOutcomeKind, bool) {
	if !ev.IsWheel() {
		return ScrollContinue, false
	}
	alt := ev.Modifiers.Has(terminal.ModAlt)
	switch ev.MouseBtn {
	case terminal.MouseBtnWheelDown:
		if alt {
			return ScrollRight, true
		}
		return ScrollDown, true
	case terminal.MouseBtnWheelUp:
		if alt {
			return ScrollLeft, true
		}
		return ScrollUp, true
	case terminal.MouseBtnWheelRight:
		return ScrollRight, true
	case terminal.MouseBtnWheelLeft:
		return ScrollLeft, true
	}
	return ScrollContinue, false
}

// isVerticalKind returns true for up/down requests
func isVerticalKind(k ScrollOutcomeKind) bool {
	return k == ScrollUp || k == ScrollDown
}

// HandleEvent handles mouse input on this scrollbar's track
// The result is a request (VPos/HPos/Up/Down/Left/Right) for the owner to apply,
// see Apply. A drag ends with the next motion event that has no button held,
// or with a release. HandleScrolled ends its drags on motion only.
func (s *ScrollState) HandleEvent(ev terminal.Event) ScrollOutcome[Outcome] {
	if !ev.IsMouse() {
		return ScrollOutcome[Outcome]{}
	}
	x, y := ev.Position()

	switch {
	case ev.IsMoved(), ev.MouseAction == terminal.MouseActionRelease:
		s.Dragging = false

	case ev.IsLeftDrag() && s.Dragging:
		if s.IsVertical() {
			if y >= s.Area.Y {
				return scrollRequest[Outcome](ScrollVPos, s.MapPosition(y, s.Area.Y, s.Area.H))
			}
			return scrollRequest[Outcome](ScrollVPos, 0)
		}
		if x >= s.Area.X {
			return scrollRequest[Outcome](ScrollHPos, s.MapPosition(x, s.Area.X, s.Area.W))
		}
		return scrollRequest[Outcome](ScrollHPos, 0)

	case ev.IsLeftDown() && s.Area.Contains(x, y):
		s.Dragging = true
		if s.IsVertical() {
			return scrollRequest[Outcome](ScrollVPos, s.MapPosition(y, s.Area.Y, s.Area.H))
		}
		return scrollRequest[Outcome](ScrollHPos, s.MapPosition(x, s.Area.X, s.Area.W))

	case ev.IsWheel() && s.Area.Contains(x, y):
		kind, _ := wheelKind(ev)
		if isVerticalKind(kind) == s.IsVertical() {
			return scrollRequest[Outcome](kind, s.Step())
		}
	}
	return ScrollOutcome[Outcome]{}
}

// ScrollArea handles wheel scrolling for a whole widget area plus its scrollbars
// H and V may be nil when the widget does not scroll on that axis
type ScrollArea struct {
	Area Rect
	H    *ScrollState
	V    *ScrollState
}

// HandleEvent returns a request for the first matching scrollbar
func (a ScrollArea) HandleEvent(ev terminal.Event) ScrollOutcome[Outcome] {
	x, y := ev.Position()
	kind, wheel := wheelKind(ev)

	if a.H != nil {
		if wheel && !isVerticalKind(kind) && a.Area.Contains(x, y) {
			return scrollRequest[Outcome](kind, a.H.Step())
		}
		if r := a.H.HandleEvent(ev); r.IsConsumed() {
			return r
		}
	}
	if a.V != nil {
		if wheel && isVerticalKind(kind) && a.Area.Contains(x, y) {
			return scrollRequest[Outcome](kind, a.V.Step())
		}
		if r := a.V.HandleEvent(ev); r.IsConsumed() {
			return r
		}
	}
	return ScrollOutcome[Outcome]{}
}

// HandleAndApply handles ev and applies the resulting request to the matching state
func (a ScrollArea) HandleAndApply(ev terminal.Event) Outcome {
	r := a.HandleEvent(ev)
	switch r.Kind {
	case ScrollUp, ScrollDown, ScrollVPos:
		if a.V != nil {
			return changedOr(a.V.Apply(r), Unchanged)
		}
	case ScrollLeft, ScrollRight, ScrollHPos:
		if a.H != nil {
			return changedOr(a.H.Apply(r), Unchanged)
		}
	}
	return Continue
}
