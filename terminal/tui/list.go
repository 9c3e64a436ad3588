package tui

import (
	"slices"

	"github.com/lixenwraith/scrollkit/terminal"
)

// ListItem represents a single row in a scrollable list
type ListItem struct {
	Indent    int  // Left padding in cells
	Icon      rune // Bullet, 0 = none
	IconFg    terminal.RGB
	Text      string
	TextStyle Style
}

// List renders items one per row with a cursor row
//
// Used inside Scrolled it leaves the chrome to the wrapper. With HScroll/VScroll
// set it draws its own scrollbars, laid out by LayoutScroll around Block.
type List struct {
	CursorBg  terminal.RGB
	DefaultBg terminal.RGB
	IconWidth int // Width reserved for icon, default 2

	Block   *Block
	HScroll *Scroll
	VScroll *Scroll
}

// ListState holds items, cursor and both scroll axes of a List
// Vertical units are rows, horizontal units are cells
type ListState struct {
	Items  []ListItem
	Cursor int

	Area  Rect // Outer area of the last render
	Inner Rect // Row area of the last render
	V     ScrollState
	H     ScrollState

	ownH, ownV bool // Own scrollbars drawn in the last render
}

// NewListState creates state over items
func NewListState(items []ListItem) *ListState {
	return &ListState{
		Items: items,
		V:     ScrollState{Orientation: VerticalRight},
		H:     ScrollState{Orientation: HorizontalBottom},
	}
}

func (l *List) iconWidth() int {
	if l.IconWidth == 0 {
		return 2
	}
	return l.IconWidth
}

// rowWidth returns the cells a row needs without truncation
func (l *List) rowWidth(item ListItem) int {
	return item.Indent + l.iconWidth() + RuneLen(item.Text)
}

// widest returns the widest row
func (l *List) widest(items []ListItem) int {
	w := 0
	for _, item := range items {
		w = max(w, l.rowWidth(item))
	}
	return w
}

// NeedScroll reports whether the rows exceed area after the list's own chrome
func (l *List) NeedScroll(area Rect, state *ListState) (horizontal, vertical bool) {
	_, _, inner := LayoutScroll(area, l.Block, l.HScroll, l.VScroll)
	return l.widest(state.Items) > inner.W, len(state.Items) > inner.H
}

// Render draws rows starting at the vertical offset, shifted by the horizontal offset
// Offsets past the last row (overscroll) leave the remaining rows blank
func (l *List) Render(r Region, state *ListState) {
	hArea, vArea, inner := LayoutScroll(r.Rect(), l.Block, l.HScroll, l.VScroll)
	state.Area = r.Rect()
	state.Inner = inner
	state.ownH, state.ownV = l.HScroll != nil, l.VScroll != nil

	state.V.PageLen = inner.H
	state.V.MaxOffset = satSub(len(state.Items), inner.H)
	state.H.PageLen = inner.W
	state.H.MaxOffset = satSub(l.widest(state.Items), inner.W)

	l.Block.Render(r)
	l.renderRows(r.Area(inner), state)

	if l.VScroll != nil {
		l.VScroll.Render(r.Area(vArea), &state.V)
	}
	if l.HScroll != nil {
		l.HScroll.Render(r.Area(hArea), &state.H)
	}
}

func (l *List) renderRows(r Region, state *ListState) {
	shift := state.H.Offset
	for y := 0; y < r.H; y++ {
		idx := satAdd(state.V.Offset, y)

		bg := l.DefaultBg
		if idx == state.Cursor && idx < len(state.Items) {
			bg = l.CursorBg
		}

		// Clear row
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', terminal.RGB{}, bg, terminal.AttrNone)
		}
		if idx >= len(state.Items) {
			continue
		}

		item := state.Items[idx]
		x := item.Indent - shift

		if item.Icon != 0 && x >= 0 && x < r.W {
			r.Cell(x, y, item.Icon, item.IconFg, bg, terminal.AttrNone)
		}
		x += l.iconWidth()

		textStyle := item.TextStyle
		if textStyle.Bg.IsZero() {
			textStyle.Bg = bg
		}
		r.TextStyled(x, y, item.Text, textStyle)
	}
}

// --- Cursor ---

// Select moves the cursor to idx and scrolls it into view, returns true if anything changed
func (s *ListState) Select(idx int) bool {
	if len(s.Items) == 0 {
		return false
	}
	idx = min(max(idx, 0), len(s.Items)-1)
	old := s.Cursor
	s.Cursor = idx
	scrolled := s.V.ScrollToPos(idx)
	return scrolled || old != s.Cursor
}

// Move moves the cursor by delta rows
func (s *ListState) Move(delta int) bool {
	return s.Select(s.Cursor + delta)
}

// --- Content changes ---

// Insert inserts items at pos, rows on screen keep their position
func (s *ListState) Insert(pos int, items ...ListItem) {
	pos = min(max(pos, 0), len(s.Items))
	s.Items = slices.Insert(s.Items, pos, items...)
	s.V.ItemsInserted(pos, len(items))
	if len(s.Items) > len(items) && s.Cursor >= pos {
		s.Cursor += len(items)
	}
}

// Remove removes n items starting at pos
func (s *ListState) Remove(pos, n int) {
	if pos < 0 || pos >= len(s.Items) || n <= 0 {
		return
	}
	n = min(n, len(s.Items)-pos)
	s.Items = slices.Delete(s.Items, pos, pos+n)
	s.V.ItemsRemoved(pos, n)
	switch {
	case s.Cursor >= pos+n:
		s.Cursor -= n
	case s.Cursor >= pos:
		s.Cursor = pos
	}
	s.Cursor = min(s.Cursor, max(len(s.Items)-1, 0))
}

// --- ScrollingState ---

func (s *ListState) VerticalMaxOffset() int { return s.V.MaxOffset }
func (s *ListState) VerticalOffset() int    { return s.V.Offset }
func (s *ListState) VerticalPage() int      { return s.V.PageLen }
func (s *ListState) VerticalScroll() int    { return s.V.Step() }

// SetVerticalOffset stores the offset as is, a wrapper applies its own limit
func (s *ListState) SetVerticalOffset(offset int) bool {
	old := s.V.Offset
	s.V.Offset = max(offset, 0)
	return old != s.V.Offset
}

func (s *ListState) HorizontalMaxOffset() int { return s.H.MaxOffset }
func (s *ListState) HorizontalOffset() int    { return s.H.Offset }
func (s *ListState) HorizontalPage() int      { return s.H.PageLen }
func (s *ListState) HorizontalScroll() int    { return s.H.Step() }

// SetHorizontalOffset stores the offset as is, a wrapper applies its own limit
func (s *ListState) SetHorizontalOffset(offset int) bool {
	old := s.H.Offset
	s.H.Offset = max(offset, 0)
	return old != s.H.Offset
}

// --- Events ---

// HandleEvent moves the cursor by keys (FocusKeys only) and by click
// Wheel and scrollbar input is handled here only when the list draws its own scrollbars
func (s *ListState) HandleEvent(ev terminal.Event, q Qualifier) Outcome {
	if q == FocusKeys && ev.Type == terminal.EventKey {
		if r := s.handleKey(ev); r.IsConsumed() {
			return r
		}
	}
	if !ev.IsMouse() {
		return Continue
	}

	if s.ownH || s.ownV {
		area := ScrollArea{Area: s.Area}
		if s.ownH {
			area.H = &s.H
		}
		if s.ownV {
			area.V = &s.V
		}
		if r := area.HandleAndApply(ev); r.IsConsumed() {
			return r
		}
	}

	x, y := ev.Position()
	if ev.IsLeftDown() && s.Inner.Contains(x, y) {
		idx := s.V.Offset + (y - s.Inner.Y)
		if idx >= len(s.Items) {
			return Unchanged
		}
		return changedOr(s.Select(idx), Unchanged)
	}
	return Continue
}

func (s *ListState) handleKey(ev terminal.Event) Outcome {
	page := max(s.V.PageLen, 1)
	switch ev.Key {
	case terminal.KeyUp:
		return changedOr(s.Move(-1), Unchanged)
	case terminal.KeyDown:
		return changedOr(s.Move(1), Unchanged)
	case terminal.KeyPageUp:
		return changedOr(s.Move(-page), Unchanged)
	case terminal.KeyPageDown:
		return changedOr(s.Move(page), Unchanged)
	case terminal.KeyHome:
		return changedOr(s.Select(0), Unchanged)
	case terminal.KeyEnd:
		return changedOr(s.Select(len(s.Items)-1), Unchanged)
	case terminal.KeyLeft:
		return changedOr(s.H.ScrollLeft(s.H.Step()), Unchanged)
	case terminal.KeyRight:
		return changedOr(s.H.ScrollRight(s.H.Step()), Unchanged)
	}
	return Continue
}
