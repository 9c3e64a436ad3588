package tui

import (
	"testing"

	"github.com/lixenwraith/scrollkit/terminal"
)

func TestWheelKind(t *testing.T) {
	tests := []struct {
		btn  terminal.MouseButton
		mod  terminal.Modifier
		want ScrollOutcomeKind
	}{
		{terminal.MouseBtnWheelDown, terminal.ModNone, ScrollDown},
		{terminal.MouseBtnWheelUp, terminal.ModNone, ScrollUp},
		{terminal.MouseBtnWheelDown, terminal.ModAlt, ScrollRight},
		{terminal.MouseBtnWheelUp, terminal.ModAlt, ScrollLeft},
		{terminal.MouseBtnWheelRight, terminal.ModNone, ScrollRight},
		{terminal.MouseBtnWheelLeft, terminal.ModNone, ScrollLeft},
	}
	for _, tt := range tests {
		got, ok := wheelKind(terminal.Wheel(tt.btn, 0, 0, tt.mod))
		if !ok || got != tt.want {
			t.Errorf("%v mod %v = %v, want %v", tt.btn, tt.mod, got, tt.want)
		}
	}
	if _, ok := wheelKind(terminal.MouseDown(0, 0)); ok {
		t.Error("left click classified as wheel")
	}
}

func TestScrollStateHandleEvent(t *testing.T) {
	s := &ScrollState{
		Orientation: VerticalRight,
		Area:        Rect{X: 9, Y: 0, W: 1, H: 12},
		MaxOffset:   100,
		PageLen:     20,
	}

	r := s.HandleEvent(terminal.MouseDown(9, 6))
	if r.Kind != ScrollVPos || r.N != 50 || !s.Dragging {
		t.Fatalf("click = %+v dragging %v, want VPos 50", r, s.Dragging)
	}
	if r := s.HandleEvent(terminal.MouseDrag(3, 11)); r.Kind != ScrollVPos || r.N != 100 {
		t.Errorf("drag off track = %+v, want VPos 100", r)
	}

	s.Area.Y = 2
	if r := s.HandleEvent(terminal.MouseDrag(9, 0)); r.Kind != ScrollVPos || r.N != 0 {
		t.Errorf("drag above track = %+v, want VPos 0", r)
	}

	release := terminal.MouseEvent(terminal.MouseActionRelease, terminal.MouseBtnLeft, 9, 5, terminal.ModNone)
	if r := s.HandleEvent(release); r.IsConsumed() || s.Dragging {
		t.Errorf("release = %+v dragging %v", r, s.Dragging)
	}
	if r := s.HandleEvent(terminal.MouseDrag(9, 5)); r.IsConsumed() {
		t.Errorf("drag without click = %+v", r)
	}

	r = s.HandleEvent(terminal.Wheel(terminal.MouseBtnWheelDown, 9, 5, terminal.ModNone))
	if r.Kind != ScrollDown || r.N != 2 {
		t.Errorf("wheel = %+v, want Down 2", r)
	}
	r = s.HandleEvent(terminal.Wheel(terminal.MouseBtnWheelLeft, 9, 5, terminal.ModNone))
	if r.IsConsumed() {
		t.Errorf("horizontal wheel on vertical bar = %+v", r)
	}
	if r := s.HandleEvent(terminal.KeyEvent(terminal.KeyDown, terminal.ModNone)); r.IsConsumed() {
		t.Errorf("key = %+v", r)
	}
}

func TestScrollAreaRoutesByAxis(t *testing.T) {
	h := &ScrollState{Orientation: HorizontalBottom, Area: Rect{X: 0, Y: 9, W: 19, H: 1}, MaxOffset: 40, PageLen: 19}
	v := &ScrollState{Orientation: VerticalRight, Area: Rect{X: 19, Y: 0, W: 1, H: 9}, MaxOffset: 90, PageLen: 9}
	area := ScrollArea{Area: Rect{W: 20, H: 10}, H: h, V: v}

	if r := area.HandleAndApply(terminal.Wheel(terminal.MouseBtnWheelDown, 4, 4, terminal.ModNone)); r != Changed || v.Offset != 1 {
		t.Errorf("wheel: %v v=%d, want Changed 1", r, v.Offset)
	}
	if r := area.HandleAndApply(terminal.Wheel(terminal.MouseBtnWheelDown, 4, 4, terminal.ModAlt)); r != Changed || h.Offset != 1 {
		t.Errorf("alt wheel: %v h=%d, want Changed 1", r, h.Offset)
	}
	if r := area.HandleAndApply(terminal.MouseDown(18, 9)); r != Changed || h.Offset != 40 || !h.Dragging {
		t.Errorf("h track click: %v h=%d", r, h.Offset)
	}
	if r := area.HandleAndApply(terminal.MouseDown(18, 9)); r != Unchanged {
		t.Errorf("repeated click = %v, want Unchanged", r)
	}
	if r := area.HandleAndApply(terminal.Wheel(terminal.MouseBtnWheelDown, 40, 40, terminal.ModNone)); r != Continue {
		t.Errorf("wheel outside = %v, want Continue", r)
	}

	vOnly := ScrollArea{Area: Rect{W: 20, H: 10}, V: v}
	if r := vOnly.HandleAndApply(terminal.Wheel(terminal.MouseBtnWheelRight, 4, 4, terminal.ModNone)); r != Continue {
		t.Errorf("horizontal wheel without H = %v, want Continue", r)
	}
}
