package tui

import (
	"fmt"
	"math"
	"math/bits"
)

// LayoutScroll calculates the areas of up to two scrollbars and the remaining inner area
//
// One cell is reserved on every side covered by the block or by a scrollbar, so the
// scrollbars never overlap each other in the corner and fit onto a block's border line.
// Each scrollbar's StartMargin/EndMargin shortens its track further.
// A nil h or v yields an empty rect at the area origin for that scrollbar.
//
// Panics if h has a vertical orientation or v a horizontal one.
func LayoutScroll(area Rect, block *Block, h, v *Scroll) (hArea, vArea, inner Rect) {
	var marginLeft, marginRight, marginTop, marginBottom int

	if block != nil {
		marginLeft, marginRight, marginTop, marginBottom = 1, 1, 1, 1
	}
	if v != nil {
		switch v.Orientation {
		case VerticalLeft:
			marginLeft = 1
		case VerticalRight:
			marginRight = 1
		}
	}
	if h != nil {
		switch h.Orientation {
		case HorizontalTop:
			marginTop = 1
		case HorizontalBottom:
			marginBottom = 1
		}
	}

	hArea = Rect{X: area.X, Y: area.Y}
	if h != nil {
		if h.Orientation.IsVertical() {
			panic(fmt.Sprintf("tui: %s not supported for horizontal scrolling", h.Orientation))
		}
		y := area.Y
		if h.Orientation == HorizontalBottom {
			y = area.Y + max(area.H-1, 0)
		}
		hArea = NewRect(
			area.X+marginLeft+h.StartMargin,
			y,
			area.W-(marginLeft+marginRight+h.StartMargin+h.EndMargin),
			min(area.H, 1),
		)
	}

	vArea = Rect{X: area.X, Y: area.Y}
	if v != nil {
		if v.Orientation.IsHorizontal() {
			panic(fmt.Sprintf("tui: %s not supported for vertical scrolling", v.Orientation))
		}
		x := area.X
		if v.Orientation == VerticalRight {
			x = area.X + max(area.W-1, 0)
		}
		vArea = NewRect(
			x,
			area.Y+marginTop+v.StartMargin,
			min(area.W, 1),
			area.H-(marginTop+marginBottom+v.StartMargin+v.EndMargin),
		)
	}

	inner = NewRect(
		area.X+marginLeft,
		area.Y+marginTop,
		area.W-(marginLeft+marginRight),
		area.H-(marginTop+marginBottom),
	)

	return hArea, vArea, inner
}

// MapPositionIndex maps a clicked/dragged track coordinate to a content offset
//
// The first and last track cells hold the arrow glyphs: pos is corrected by base+1
// and the usable span is length-2. A zero span maps everything to 0.
// The product is computed in 128 bits, results past MaxInt saturate.
func MapPositionIndex(pos, base, length, maxOffset int) int {
	p := satSub(satSub(pos, base), 1)
	span := satSub(length, 2)
	if span == 0 || maxOffset <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(maxOffset), uint64(p))
	if hi >= uint64(span) {
		return math.MaxInt
	}
	q, _ := bits.Div64(hi, lo, uint64(span))
	if q > math.MaxInt {
		return math.MaxInt
	}
	return int(q)
}
