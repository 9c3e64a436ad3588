package terminal

import "testing"

func TestEventPredicates(t *testing.T) {
	tests := []struct {
		name                         string
		ev                           Event
		mouse, down, drag, moved, wh bool
	}{
		{"key", KeyEvent(KeyDown, ModNone), false, false, false, false, false},
		{"press", MouseDown(1, 2), true, true, false, false, false},
		{"right press", MouseEvent(MouseActionPress, MouseBtnRight, 1, 2, ModNone), true, false, false, false, false},
		{"drag", MouseDrag(1, 2), true, false, true, false, false},
		{"move", MouseMove(1, 2), true, false, false, true, false},
		{"wheel", Wheel(MouseBtnWheelUp, 1, 2, ModAlt), true, false, false, false, true},
		{"h wheel", Wheel(MouseBtnWheelRight, 1, 2, ModNone), true, false, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := tt.ev
			if ev.IsMouse() != tt.mouse || ev.IsLeftDown() != tt.down || ev.IsLeftDrag() != tt.drag ||
				ev.IsMoved() != tt.moved || ev.IsWheel() != tt.wh {
				t.Errorf("predicates = %v %v %v %v %v", ev.IsMouse(), ev.IsLeftDown(), ev.IsLeftDrag(), ev.IsMoved(), ev.IsWheel())
			}
		})
	}
}

func TestEventPosition(t *testing.T) {
	x, y := Wheel(MouseBtnWheelDown, 7, 3, ModNone).Position()
	if x != 7 || y != 3 {
		t.Errorf("position = %d,%d", x, y)
	}
	if !Wheel(MouseBtnWheelDown, 0, 0, ModAlt|ModCtrl).Modifiers.Has(ModAlt) {
		t.Error("wheel lost its modifier")
	}
}
