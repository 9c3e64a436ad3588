package tui

import (
	"strconv"
	"testing"
)

// newTestBuffer returns a blank w×h buffer at the screen origin
func newTestBuffer(w, h int) *Buffer {
	return NewBuffer(Rect{W: w, H: h})
}

// testItems returns n short list rows
func testItems(n int) []ListItem {
	items := make([]ListItem, n)
	for i := range items {
		items[i] = ListItem{Text: "row " + strconv.Itoa(i)}
	}
	return items
}

func assertRune(t *testing.T, b *Buffer, x, y int, want rune) {
	t.Helper()
	if got := b.Get(x, y).Rune; got != want {
		t.Errorf("cell (%d,%d) = %q, want %q", x, y, got, want)
	}
}
