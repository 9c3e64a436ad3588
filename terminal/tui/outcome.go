package tui

import "github.com/lixenwraith/scrollkit/terminal"

// Qualifier selects which handling path an event handler runs
type Qualifier uint8

const (
	MouseOnly Qualifier = iota // Mouse events only, the widget does not have focus
	FocusKeys                  // Mouse events plus keyboard, the widget has focus
)

// Consumer is implemented by event results that can report consumption
type Consumer interface {
	IsConsumed() bool
}

// EventHandler is implemented by widget state that reacts to input
type EventHandler[R Consumer] interface {
	HandleEvent(ev terminal.Event, q Qualifier) R
}

// Outcome is the plain result of a content widget's event handling
type Outcome uint8

const (
	Continue  Outcome = iota // Event not used, pass it on
	Unchanged                // Event used, nothing visible changed
	Changed                  // Event used, redraw needed
)

// IsConsumed returns true for Unchanged and Changed
func (o Outcome) IsConsumed() bool {
	return o != Continue
}

// String returns outcome name
func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "Unchanged"
	case Changed:
		return "Changed"
	default:
		return "Continue"
	}
}

// changedOr returns Changed when changed is true, else other
func changedOr(changed bool, other Outcome) Outcome {
	if changed {
		return Changed
	}
	return other
}

// ScrollOutcomeKind tags a ScrollOutcome
type ScrollOutcomeKind uint8

const (
	ScrollContinue  ScrollOutcomeKind = iota // Not used
	ScrollUnchanged                          // Consumed by chrome, no offset change
	ScrollChanged                            // Consumed by chrome, offset already changed
	ScrollUp                                 // Request: scroll up by N
	ScrollDown                               // Request: scroll down by N
	ScrollLeft                               // Request: scroll left by N
	ScrollRight                              // Request: scroll right by N
	ScrollVPos                               // Request: set vertical offset to N
	ScrollHPos                               // Request: set horizontal offset to N
	ScrollInner                              // Consumed by forwarded content, see Inner
)

// ScrollOutcome is the result of scroll event handling
// Request kinds carry a payload in N and are applied by the owner of the scroll state;
// ScrollInner wraps the forwarded content's own result
type ScrollOutcome[R Consumer] struct {
	Kind  ScrollOutcomeKind
	N     int
	Inner R
}

// IsConsumed reports whether some stage used the event
func (o ScrollOutcome[R]) IsConsumed() bool {
	switch o.Kind {
	case ScrollContinue:
		return false
	case ScrollInner:
		return o.Inner.IsConsumed()
	default:
		return true
	}
}

// Or returns o when consumed, otherwise evaluates next
func (o ScrollOutcome[R]) Or(next func() ScrollOutcome[R]) ScrollOutcome[R] {
	if o.IsConsumed() {
		return o
	}
	return next()
}

// scrollResult maps a change flag to Changed/Unchanged
func scrollResult[R Consumer](changed bool) ScrollOutcome[R] {
	if changed {
		return ScrollOutcome[R]{Kind: ScrollChanged}
	}
	return ScrollOutcome[R]{Kind: ScrollUnchanged}
}

// scrollRequest builds a payload outcome
func scrollRequest[R Consumer](kind ScrollOutcomeKind, n int) ScrollOutcome[R] {
	return ScrollOutcome[R]{Kind: kind, N: n}
}

// innerOutcome wraps a forwarded result
func innerOutcome[R Consumer](r R) ScrollOutcome[R] {
	return ScrollOutcome[R]{Kind: ScrollInner, Inner: r}
}
