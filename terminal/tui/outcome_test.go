package tui

import "testing"

func TestScrollOutcomeConsumed(t *testing.T) {
	tests := []struct {
		o    ScrollOutcome[Outcome]
		want bool
	}{
		{ScrollOutcome[Outcome]{}, false},
		{ScrollOutcome[Outcome]{Kind: ScrollUnchanged}, true},
		{ScrollOutcome[Outcome]{Kind: ScrollVPos, N: 0}, true},
		{innerOutcome(Continue), false},
		{innerOutcome(Unchanged), true},
		{innerOutcome(Changed), true},
	}
	for _, tt := range tests {
		if got := tt.o.IsConsumed(); got != tt.want {
			t.Errorf("%+v.IsConsumed() = %v, want %v", tt.o, got, tt.want)
		}
	}
}

func TestScrollOutcomeOrShortCircuits(t *testing.T) {
	calls := 0
	next := func() ScrollOutcome[Outcome] {
		calls++
		return ScrollOutcome[Outcome]{Kind: ScrollChanged}
	}

	r := scrollResult[Outcome](false).Or(next)
	if r.Kind != ScrollUnchanged || calls != 0 {
		t.Errorf("consumed stage: %+v calls %d", r, calls)
	}
	r = innerOutcome(Continue).Or(next)
	if r.Kind != ScrollChanged || calls != 1 {
		t.Errorf("unused inner: %+v calls %d", r, calls)
	}
}

func TestCapForward(t *testing.T) {
	tests := []struct {
		offset, n, limit, want int
	}{
		{0, 5, 10, 5},
		{8, 5, 10, 10},
		{12, 5, 10, 12},
		{3, -2, 10, 3},
	}
	for _, tt := range tests {
		if got := capForward(tt.offset, tt.n, tt.limit); got != tt.want {
			t.Errorf("capForward(%d,%d,%d) = %d, want %d", tt.offset, tt.n, tt.limit, got, tt.want)
		}
	}
}

func TestGenericScrollingKeepsOverscroll(t *testing.T) {
	s := NewListState(testItems(30))
	s.V.MaxOffset = 10
	s.V.Offset = 13

	if ScrollDownBy(s, 1) {
		t.Error("scrolling down past the max must not move")
	}
	if s.V.Offset != 13 {
		t.Errorf("offset = %d, want 13", s.V.Offset)
	}
	if !ScrollUpBy(s, 5) || s.V.Offset != 8 {
		t.Errorf("offset = %d, want 8", s.V.Offset)
	}
	if ScrollRightBy(s, 2) || s.H.Offset != 0 {
		t.Errorf("h offset = %d, nothing to scroll", s.H.Offset)
	}
}
