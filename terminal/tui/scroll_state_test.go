package tui

import (
	"math"
	"testing"
)

func TestLimitIdempotent(t *testing.T) {
	tests := []struct {
		name       string
		maxOffset  int
		overscroll int
	}{
		{"no overscroll", 50, 0},
		{"with overscroll", 50, 5},
		{"empty", 0, 0},
		{"saturating", math.MaxInt - 1, 10},
	}

	offsets := []int{-3, 0, 1, 49, 50, 54, 55, 56, 1000, math.MaxInt}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScrollState{MaxOffset: tt.maxOffset, Overscroll: tt.overscroll}
			for _, o := range offsets {
				l := s.Limit(o)
				if l > s.limitMax() {
					t.Errorf("Limit(%d) = %d exceeds %d", o, l, s.limitMax())
				}
				if s.Limit(l) != l {
					t.Errorf("Limit not idempotent for %d", o)
				}
				if c := s.Clamp(o); c < 0 {
					t.Errorf("Clamp(%d) = %d, want >= 0", o, c)
				}
			}
		})
	}
}

func TestScrollToPosIdempotent(t *testing.T) {
	for _, pageLen := range []int{0, 1, 10} {
		for _, pos := range []int{0, 5, 25, 49, 80} {
			s := ScrollState{Offset: 20, MaxOffset: 50, PageLen: pageLen}
			s.ScrollToPos(pos)
			if s.ScrollToPos(pos) {
				t.Errorf("page %d: second ScrollToPos(%d) changed offset to %d", pageLen, pos, s.Offset)
			}
		}
	}

	s := ScrollState{Offset: 20, MaxOffset: 50, PageLen: 10}
	if s.ScrollToPos(25) {
		t.Error("visible position must not scroll")
	}
	if !s.ScrollToPos(35) || s.Offset != 26 {
		t.Errorf("ScrollToPos(35): offset = %d, want 26", s.Offset)
	}
	if !s.ScrollToPos(3) || s.Offset != 3 {
		t.Errorf("ScrollToPos(3): offset = %d, want 3", s.Offset)
	}
}

func TestScrollToPosUnrendered(t *testing.T) {
	s := ScrollState{MaxOffset: 50}
	if !s.ScrollToPos(30) || s.Offset != 30 {
		t.Errorf("ScrollToPos(30) without a page: offset = %d, want 30", s.Offset)
	}
	if !s.ScrollToPos(12) || s.Offset != 12 {
		t.Errorf("ScrollToPos(12) without a page: offset = %d, want 12", s.Offset)
	}
}

func TestStepNeverZero(t *testing.T) {
	tests := []struct {
		pageLen, stepSize, want int
	}{
		{0, 0, 1},
		{5, 0, 1},
		{20, 0, 2},
		{100, 0, 10},
		{20, 7, 7},
		{0, -1, 1},
	}
	for _, tt := range tests {
		s := ScrollState{PageLen: tt.pageLen, StepSize: tt.stepSize}
		if got := s.Step(); got != tt.want {
			t.Errorf("Step(page=%d, step=%d) = %d, want %d", tt.pageLen, tt.stepSize, got, tt.want)
		}
	}
}

func TestItemsInserted(t *testing.T) {
	tests := []struct {
		name          string
		pos           int
		wantOffset    int
		wantMaxOffset int
	}{
		{"above viewport", 3, 15, 55},
		{"at viewport top", 10, 15, 55},
		{"below viewport", 20, 10, 55},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScrollState{Offset: 10, MaxOffset: 50}
			s.ItemsInserted(tt.pos, 5)
			if s.Offset != tt.wantOffset || s.MaxOffset != tt.wantMaxOffset {
				t.Errorf("got offset %d max %d, want %d %d", s.Offset, s.MaxOffset, tt.wantOffset, tt.wantMaxOffset)
			}
		})
	}
}

func TestItemsRoundTrip(t *testing.T) {
	for _, pos := range []int{0, 3, 10, 11, 40} {
		for _, n := range []int{1, 5, 30} {
			s := ScrollState{Offset: 10, MaxOffset: 50}
			s.ItemsInserted(pos, n)
			s.ItemsRemoved(pos, n)
			if s.Offset != 10 || s.MaxOffset != 50 {
				t.Errorf("insert/remove(%d, %d): offset %d max %d, want 10 50", pos, n, s.Offset, s.MaxOffset)
			}
		}
	}

	// Saturates instead of going negative
	s := ScrollState{Offset: 2, MaxOffset: 3}
	s.ItemsRemoved(0, 10)
	if s.Offset != 0 || s.MaxOffset != 0 {
		t.Errorf("over-removal: offset %d max %d, want 0 0", s.Offset, s.MaxOffset)
	}
}

func TestScrollUpDown(t *testing.T) {
	s := ScrollState{MaxOffset: 10, Overscroll: 2}
	if s.ScrollUp(5) {
		t.Error("ScrollUp at 0 must not change")
	}
	s.ScrollDown(100)
	if s.Offset != 12 {
		t.Errorf("ScrollDown past end: offset = %d, want 12", s.Offset)
	}
	s.ScrollDown(math.MaxInt)
	if s.Offset != 12 {
		t.Errorf("ScrollDown(MaxInt): offset = %d, want 12", s.Offset)
	}
	s.ScrollUp(math.MaxInt)
	if s.Offset != 0 {
		t.Errorf("ScrollUp(MaxInt): offset = %d, want 0", s.Offset)
	}
}

func TestApply(t *testing.T) {
	s := ScrollState{MaxOffset: 100, PageLen: 10}
	tests := []struct {
		o    ScrollOutcome[Outcome]
		want int
	}{
		{scrollRequest[Outcome](ScrollDown, 5), 5},
		{scrollRequest[Outcome](ScrollUp, 2), 3},
		{scrollRequest[Outcome](ScrollVPos, 70), 70},
		{scrollRequest[Outcome](ScrollHPos, 500), 100},
		{ScrollOutcome[Outcome]{Kind: ScrollChanged}, 100},
	}
	for i, tt := range tests {
		s.Apply(tt.o)
		if s.Offset != tt.want {
			t.Errorf("step %d: offset = %d, want %d", i, s.Offset, tt.want)
		}
	}
}
