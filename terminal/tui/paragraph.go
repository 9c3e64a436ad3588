package tui

import "strings"

// Paragraph is plain text rendered one line per row
// It has no scroll state of its own; put it in a View to scroll it
type Paragraph struct {
	Lines []string
	Style Style
}

// NewParagraph splits text into lines, wrapping at width when width > 0
func NewParagraph(text string, width int, style Style) *Paragraph {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if width > 0 {
			lines = append(lines, WrapText(line, width)...)
		} else {
			lines = append(lines, line)
		}
	}
	return &Paragraph{Lines: lines, Style: style}
}

// NaturalSize returns the cells needed to show every line untruncated
func (p *Paragraph) NaturalSize() Size {
	w := 0
	for _, line := range p.Lines {
		w = max(w, RuneLen(line))
	}
	return Size{W: w, H: len(p.Lines)}
}

// Render draws the lines from the top-left corner of r
func (p *Paragraph) Render(r Region) {
	if !p.Style.Bg.IsZero() {
		r.FillStyle(p.Style)
	}
	for y, line := range p.Lines {
		if y >= r.H {
			break
		}
		r.TextStyled(0, y, line, p.Style)
	}
}
