package tui

import (
	"strings"
	"testing"

	"github.com/lixenwraith/scrollkit/terminal"
)

func TestRenderScrollbarVertical(t *testing.T) {
	b := newTestBuffer(1, 10)
	RenderScrollbar(b.Region(), VerticalRight, 10, 0, 10, ScrollSymbols{}, ScrollStyles{})

	assertRune(t, b, 0, 0, '▲')
	assertRune(t, b, 0, 9, '▼')
	// Track of 8 cells, page is half the content: thumb covers rows 1-4
	for y := 1; y <= 4; y++ {
		assertRune(t, b, 0, y, '█')
	}
	for y := 5; y <= 8; y++ {
		assertRune(t, b, 0, y, '║')
	}
}

func TestRenderScrollbarThumbAtEnd(t *testing.T) {
	b := newTestBuffer(12, 1)
	RenderScrollbar(b.Region(), HorizontalBottom, 90, 90, 10, ScrollSymbols{}, ScrollStyles{})

	if got := b.Row(0); got != "◄═════════█►" {
		t.Errorf("row = %q", got)
	}
}

func TestRenderScrollbarNoArrows(t *testing.T) {
	b := newTestBuffer(4, 1)
	sym := ScrollSymbols{Thumb: '#', Track: '-', NoArrows: true}
	RenderScrollbar(b.Region(), HorizontalTop, 0, 0, 4, sym, ScrollStyles{})

	if got := b.Row(0); got != "####" {
		t.Errorf("row = %q, want full thumb", got)
	}
}

func TestScrollRenderTypes(t *testing.T) {
	tests := []struct {
		name string
		typ  ScrollbarType
		o    Orientation
		want string
	}{
		{"minimal vertical", Minimal, VerticalRight, "┊┊┊┊┊"},
		{"minimal horizontal", Minimal, HorizontalBottom, "┈┈┈┈┈"},
		{"no render", NoRender, VerticalLeft, "     "},
		{"show", Show, HorizontalBottom, "◄███►"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := 5, 1
			if tt.o.IsVertical() {
				w, h = 1, 5
			}
			b := newTestBuffer(w, h)
			state := ScrollState{PageLen: 5}
			s := &Scroll{Type: tt.typ, Orientation: tt.o}
			s.Render(b.Region(), &state)

			var got strings.Builder
			for y := 0; y < h; y++ {
				got.WriteString(b.Row(y))
			}
			if got.String() != tt.want {
				t.Errorf("got %q, want %q", got.String(), tt.want)
			}
			if state.Area != b.Area {
				t.Errorf("state area = %+v, want %+v", state.Area, b.Area)
			}
		})
	}
}

func TestScrollRenderConfiguredNoSymbol(t *testing.T) {
	b := newTestBuffer(1, 3)
	red := terminal.RGB{R: 200}
	s := &Scroll{Symbols: ScrollSymbols{No: '.'}, Styles: ScrollStyles{No: Style{Fg: red}}}
	s.Render(b.Region(), &ScrollState{})

	for y := 0; y < 3; y++ {
		assertRune(t, b, 0, y, '.')
		if b.Get(0, y).Fg != red {
			t.Errorf("row %d: fg not styled", y)
		}
	}
}

func TestScrollRenderCopiesConfig(t *testing.T) {
	b := newTestBuffer(1, 5)
	state := ScrollState{Orientation: HorizontalTop, Overscroll: 4, StepSize: 3}

	(&Scroll{Orientation: VerticalLeft}).Render(b.Region(), &state)
	if state.Orientation != VerticalLeft || state.Overscroll != 4 || state.StepSize != 3 {
		t.Errorf("unset values must keep state: %+v", state)
	}

	(&Scroll{Orientation: VerticalLeft, Overscroll: 1, StepSize: 2}).Render(b.Region(), &state)
	if state.Overscroll != 1 || state.StepSize != 2 {
		t.Errorf("configured values not copied: %+v", state)
	}
}

func TestScrollOverride(t *testing.T) {
	s := NewScroll(HorizontalTop).OverrideVertical()
	if s.Orientation != VerticalRight {
		t.Errorf("OverrideVertical = %v", s.Orientation)
	}
	s = NewScroll(VerticalLeft).OverrideVertical()
	if s.Orientation != VerticalLeft {
		t.Errorf("OverrideVertical must keep side, got %v", s.Orientation)
	}
	s = NewScroll(VerticalLeft).OverrideHorizontal()
	if s.Orientation != HorizontalBottom {
		t.Errorf("OverrideHorizontal = %v", s.Orientation)
	}
}

func TestScrollIndicator(t *testing.T) {
	tests := []struct {
		offset, maxOffset int
		want              string
	}{
		{0, 0, "All"},
		{0, 100, "Top"},
		{100, 100, "Bot"},
		{120, 100, "Bot"},
		{50, 100, "50%"},
		{5, 100, " 5%"},
	}
	for _, tt := range tests {
		b := newTestBuffer(6, 1)
		s := ScrollState{Offset: tt.offset, MaxOffset: tt.maxOffset}
		got := ScrollIndicator(b.Region(), 0, &s, terminal.RGB{R: 1})
		if got != tt.want {
			t.Errorf("offset %d/%d = %q, want %q", tt.offset, tt.maxOffset, got, tt.want)
		}
		if row := b.Row(0); !strings.HasSuffix(row, tt.want) {
			t.Errorf("row %q does not end with %q", row, tt.want)
		}
	}
}
