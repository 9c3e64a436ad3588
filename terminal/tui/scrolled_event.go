package tui

import "github.com/lixenwraith/scrollkit/terminal"

// ScrollingHandler is content state that scrolls and handles its own input
type ScrollingHandler[R Consumer] interface {
	ScrollingState
	EventHandler[R]
}

// HandleScrolled routes one event through a scrolled widget
//
// Precedence: an active scrollbar drag, then fresh clicks and wheel on the
// scrollbars, then the content (clicks and wheel only inside ViewArea, any other
// event always), then wheel scrolling anywhere in the outer area.
// A drag ends with the next motion event that has no button held; a release
// is not required and does not end it by itself. ScrollState.HandleEvent also
// ends a drag on release.
func HandleScrolled[R Consumer, S ScrollingHandler[R]](state *ScrolledState[S], ev terminal.Event, q Qualifier) ScrollOutcome[R] {
	r := fromChrome[R](state.handleDrag(ev))
	return r.Or(func() ScrollOutcome[R] {
		return fromChrome[R](state.handleTracks(ev))
	}).Or(func() ScrollOutcome[R] {
		return forward(state, ev, q)
	}).Or(func() ScrollOutcome[R] {
		return fromChrome[R](state.handleWheel(ev))
	})
}

// HandleChrome handles scrollbar and wheel input without forwarding to the content
func (s *ScrolledState[S]) HandleChrome(ev terminal.Event) ScrollOutcome[Outcome] {
	return s.handleDrag(ev).Or(func() ScrollOutcome[Outcome] {
		return s.handleTracks(ev)
	}).Or(func() ScrollOutcome[Outcome] {
		return s.handleWheel(ev)
	})
}

// fromChrome converts a chrome result, which never carries an inner value
func fromChrome[R Consumer](o ScrollOutcome[Outcome]) ScrollOutcome[R] {
	return ScrollOutcome[R]{Kind: o.Kind, N: o.N}
}

// forward passes ev to the content
// Clicks and wheel compete with the chrome and are only forwarded inside ViewArea
func forward[R Consumer, S ScrollingHandler[R]](state *ScrolledState[S], ev terminal.Event, q Qualifier) ScrollOutcome[R] {
	if ev.IsMouse() && ev.MouseAction == terminal.MouseActionPress {
		x, y := ev.Position()
		if !state.ViewArea.Contains(x, y) {
			return ScrollOutcome[R]{}
		}
	}
	return innerOutcome(state.Widget.HandleEvent(ev, q))
}

// handleDrag continues an active track drag and ends drags on plain motion
// A drag on a scrollbar that is no longer shown is dropped and the event passes on
func (s *ScrolledState[S]) handleDrag(ev terminal.Event) ScrollOutcome[Outcome] {
	if ev.IsMoved() {
		s.HDrag, s.VDrag = false, false
		return ScrollOutcome[Outcome]{}
	}
	if !ev.IsLeftDrag() {
		return ScrollOutcome[Outcome]{}
	}
	s.VDrag = s.VDrag && s.VScrollbar
	s.HDrag = s.HDrag && s.HScrollbar

	x, y := ev.Position()
	switch {
	case s.VDrag:
		a := s.VScrollbarArea
		pos := MapPositionIndex(y, a.Y, a.H, s.Widget.VerticalMaxOffset())
		return scrollResult[Outcome](s.SetVerticalOffset(pos))
	case s.HDrag:
		a := s.HScrollbarArea
		pos := MapPositionIndex(x, a.X, a.W, s.Widget.HorizontalMaxOffset())
		return scrollResult[Outcome](s.SetHorizontalOffset(pos))
	}
	return ScrollOutcome[Outcome]{}
}

// handleTracks handles a fresh click or wheel on one of the shown scrollbars
func (s *ScrolledState[S]) handleTracks(ev terminal.Event) ScrollOutcome[Outcome] {
	if !ev.IsMouse() {
		return ScrollOutcome[Outcome]{}
	}
	x, y := ev.Position()
	onV := s.VScrollbar && s.VScrollbarArea.Contains(x, y)
	onH := s.HScrollbar && s.HScrollbarArea.Contains(x, y)
	if !onV && !onH {
		return ScrollOutcome[Outcome]{}
	}

	switch {
	case ev.IsLeftDown() && onV:
		a := s.VScrollbarArea
		s.VDrag = true
		pos := MapPositionIndex(y, a.Y, a.H, s.Widget.VerticalMaxOffset())
		return scrollResult[Outcome](s.SetVerticalOffset(pos))
	case ev.IsLeftDown() && onH:
		a := s.HScrollbarArea
		s.HDrag = true
		pos := MapPositionIndex(x, a.X, a.W, s.Widget.HorizontalMaxOffset())
		return scrollResult[Outcome](s.SetHorizontalOffset(pos))
	case ev.IsWheel():
		return s.wheel(ev)
	}
	return ScrollOutcome[Outcome]{}
}

// handleWheel scrolls by the content's step for wheel events inside the outer area
func (s *ScrolledState[S]) handleWheel(ev terminal.Event) ScrollOutcome[Outcome] {
	if !ev.IsWheel() {
		return ScrollOutcome[Outcome]{}
	}
	if x, y := ev.Position(); !s.Area.Contains(x, y) {
		return ScrollOutcome[Outcome]{}
	}
	return s.wheel(ev)
}

// wheel applies a wheel event, a wheel at the limit is left unused
func (s *ScrolledState[S]) wheel(ev terminal.Event) ScrollOutcome[Outcome] {
	kind, ok := wheelKind(ev)
	if !ok {
		return ScrollOutcome[Outcome]{}
	}
	var changed bool
	switch kind {
	case ScrollUp:
		changed = s.ScrollUp(s.VerticalScroll())
	case ScrollDown:
		changed = s.ScrollDown(s.VerticalScroll())
	case ScrollLeft:
		changed = s.ScrollLeft(s.HorizontalScroll())
	case ScrollRight:
		changed = s.ScrollRight(s.HorizontalScroll())
	}
	if !changed {
		return ScrollOutcome[Outcome]{}
	}
	return ScrollOutcome[Outcome]{Kind: ScrollChanged}
}
