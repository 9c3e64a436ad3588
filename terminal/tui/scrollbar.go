package tui

import (
	"math"
	"strconv"

	"github.com/lixenwraith/scrollkit/terminal"
)

// ScrollSymbols are the glyphs of a scrollbar, zero fields use the orientation default
type ScrollSymbols struct {
	Thumb    rune
	Track    rune
	Begin    rune // Up/left arrow
	End      rune // Down/right arrow
	No       rune // Fill when there is nothing to scroll (Minimal)
	NoArrows bool // Track spans the whole area, clicks still assume arrow cells
}

// ScrollStyles are the styles of a scrollbar, zero styles leave cells unstyled
type ScrollStyles struct {
	Thumb Style
	Track Style
	Begin Style
	End   Style
	No    Style
}

// Default glyph sets
var (
	VerticalSymbols   = ScrollSymbols{Thumb: '█', Track: '║', Begin: '▲', End: '▼', No: NoScrollVertical}
	HorizontalSymbols = ScrollSymbols{Thumb: '█', Track: '═', Begin: '◄', End: '►', No: NoScrollHorizontal}
)

// resolve fills unset glyphs from the default set for o
func (s ScrollSymbols) resolve(o Orientation) ScrollSymbols {
	def := HorizontalSymbols
	if o.IsVertical() {
		def = VerticalSymbols
	}
	if s.Thumb == 0 {
		s.Thumb = def.Thumb
	}
	if s.Track == 0 {
		s.Track = def.Track
	}
	if s.Begin == 0 {
		s.Begin = def.Begin
	}
	if s.End == 0 {
		s.End = def.End
	}
	if s.No == 0 {
		s.No = def.No
	}
	return s
}

// ScrollStylesFrom derives a track/thumb style pair from theme colors
// The track is drawn dimmed halfway between fg and bg
func ScrollStylesFrom(fg, bg terminal.RGB) ScrollStyles {
	track := Style{Fg: BlendRGB(fg, bg, 0.5), Bg: bg}
	thumb := Style{Fg: fg, Bg: bg}
	return ScrollStyles{
		Thumb: thumb,
		Track: track,
		Begin: thumb,
		End:   thumb,
		No:    Style{Fg: track.Fg, Bg: bg, Attr: terminal.AttrDim},
	}
}

// thumbSpan returns thumb start and length within a track of trackLen cells
func thumbSpan(trackLen, maxOffset, offset, pageLen int) (start, length int) {
	if trackLen <= 0 {
		return 0, 0
	}
	total := float64(maxOffset) + float64(max(pageLen, 0))
	if total <= 0 {
		return 0, trackLen
	}
	pos := float64(min(max(offset, 0), max(maxOffset, 0)))
	l := float64(trackLen)

	s := int(math.Round(pos * l / total))
	e := int(math.Round((pos + float64(max(pageLen, 0))) * l / total))
	s = min(max(s, 0), trackLen-1)
	e = min(max(e, 0), trackLen)
	return s, max(e-s, 1)
}

// RenderScrollbar draws a scrollbar track into r
// Vertical scrollbars use the first column, horizontal ones the first row
func RenderScrollbar(r Region, o Orientation, maxOffset, offset, pageLen int, sym ScrollSymbols, st ScrollStyles) {
	sym = sym.resolve(o)

	n := r.W
	if o.IsVertical() {
		n = r.H
	}
	if n <= 0 || r.W <= 0 || r.H <= 0 {
		return
	}

	put := func(i int, ch rune, s Style) {
		x, y := i, 0
		if o.IsVertical() {
			x, y = 0, i
		}
		r.SetStyle(x, y, s)
		r.SetSymbol(x, y, ch)
	}

	first, last := 0, n
	if !sym.NoArrows && n >= 2 {
		put(0, sym.Begin, st.Begin)
		put(n-1, sym.End, st.End)
		first, last = 1, n-1
	}

	trackLen := last - first
	thumbStart, thumbLen := thumbSpan(trackLen, maxOffset, offset, pageLen)
	for i := 0; i < trackLen; i++ {
		if i >= thumbStart && i < thumbStart+thumbLen {
			put(first+i, sym.Thumb, st.Thumb)
		} else {
			put(first+i, sym.Track, st.Track)
		}
	}
}

// ScrollIndicator draws compact position text right-aligned on row y
// Returns one of: "All", "Top", "Bot", or "XX%"
func ScrollIndicator(r Region, y int, state *ScrollState, fg terminal.RGB) string {
	var text string
	switch {
	case state.MaxOffset <= 0:
		text = "All"
	case state.Offset <= 0:
		text = "Top"
	case state.Offset >= state.MaxOffset:
		text = "Bot"
	default:
		pct := min(state.Offset*100/state.MaxOffset, 99)
		text = strconv.Itoa(pct) + "%"
		if pct < 10 {
			text = " " + text
		}
	}

	if y >= 0 && y < r.H {
		r.TextRight(y, text, fg, terminal.RGB{}, terminal.AttrDim)
	}
	return text
}
