package terminal

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventPaste
	EventMouse
	EventError  // Read error
	EventClosed // Input closed
)

// Event represents a decoded terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int   // For EventResize
	Height    int   // For EventResize
	Err       error // For EventError

	// Mouse event fields, screen coordinates
	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction
}

// --- Constructors ---

// KeyEvent creates a key event
func KeyEvent(key Key, mod Modifier) Event {
	return Event{Type: EventKey, Key: key, Modifiers: mod}
}

// RuneEvent creates a printable character event
func RuneEvent(ch rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: ch}
}

// MouseEvent creates a mouse event
func MouseEvent(action MouseAction, btn MouseButton, x, y int, mod Modifier) Event {
	return Event{
		Type:        EventMouse,
		Modifiers:   mod,
		MouseX:      x,
		MouseY:      y,
		MouseBtn:    btn,
		MouseAction: action,
	}
}

// MouseDown creates a left button press
func MouseDown(x, y int) Event {
	return MouseEvent(MouseActionPress, MouseBtnLeft, x, y, ModNone)
}

// MouseDrag creates a left button drag
func MouseDrag(x, y int) Event {
	return MouseEvent(MouseActionDrag, MouseBtnLeft, x, y, ModNone)
}

// MouseMove creates a motion event with no buttons held
func MouseMove(x, y int) Event {
	return MouseEvent(MouseActionMove, MouseBtnNone, x, y, ModNone)
}

// Wheel creates a wheel event, wheel events are delivered as presses
func Wheel(btn MouseButton, x, y int, mod Modifier) Event {
	return MouseEvent(MouseActionPress, btn, x, y, mod)
}

// --- Predicates ---

// IsMouse reports whether the event carries mouse data
func (e Event) IsMouse() bool {
	return e.Type == EventMouse
}

// IsLeftDown reports a left button press
func (e Event) IsLeftDown() bool {
	return e.Type == EventMouse && e.MouseAction == MouseActionPress && e.MouseBtn == MouseBtnLeft
}

// IsLeftDrag reports motion with the left button held
func (e Event) IsLeftDrag() bool {
	return e.Type == EventMouse && e.MouseAction == MouseActionDrag && e.MouseBtn == MouseBtnLeft
}

// IsMoved reports motion without any button held
func (e Event) IsMoved() bool {
	return e.Type == EventMouse && e.MouseAction == MouseActionMove
}

// IsWheel reports any wheel event
func (e Event) IsWheel() bool {
	return e.Type == EventMouse && e.MouseBtn.IsWheel()
}

// Position returns the mouse coordinates
func (e Event) Position() (x, y int) {
	return e.MouseX, e.MouseY
}
