package terminal

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
	MouseBtnWheelLeft  // Horizontal wheel (if supported)
	MouseBtnWheelRight // Horizontal wheel (if supported)
)

// MouseAction represents the type of mouse event
// There is no guarantee a Release is ever delivered for a Press
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	case MouseBtnWheelUp:
		return "WheelUp"
	case MouseBtnWheelDown:
		return "WheelDown"
	case MouseBtnWheelLeft:
		return "WheelLeft"
	case MouseBtnWheelRight:
		return "WheelRight"
	default:
		return "None"
	}
}

// IsWheel reports whether the button is one of the wheel directions
func (b MouseButton) IsWheel() bool {
	return b >= MouseBtnWheelUp && b <= MouseBtnWheelRight
}

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionRelease:
		return "Release"
	case MouseActionMove:
		return "Move"
	case MouseActionDrag:
		return "Drag"
	default:
		return "None"
	}
}
