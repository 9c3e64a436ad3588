package tui

import "github.com/mattn/go-runewidth"

// Truncate truncates string with … suffix if it exceeds maxLen display cells
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxLen, "…")
}

// RuneLen returns display width in cells, wide runes count as 2
func RuneLen(s string) int {
	return runewidth.StringWidth(s)
}

// RuneWidth returns the display width of a single rune, at least 1 for printable glyphs
func RuneWidth(ch rune) int {
	w := runewidth.RuneWidth(ch)
	if w < 1 {
		return 1
	}
	return w
}

// WrapText wraps text at spaces so no line exceeds width display cells
// Words wider than width are broken; an empty string yields one empty line
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	var line []rune
	lineW := 0
	lastSpace := -1 // index in line of the last space

	for _, ch := range s {
		w := RuneWidth(ch)
		if lineW+w > width && len(line) > 0 {
			if ch == ' ' {
				lines = append(lines, string(line))
				line, lineW, lastSpace = nil, 0, -1
				continue
			}
			if lastSpace >= 0 {
				lines = append(lines, string(line[:lastSpace]))
				line = append([]rune(nil), line[lastSpace+1:]...)
			} else {
				lines = append(lines, string(line))
				line = nil
			}
			lineW = 0
			for _, r := range line {
				lineW += RuneWidth(r)
			}
			lastSpace = -1
		}
		if ch == ' ' {
			lastSpace = len(line)
		}
		line = append(line, ch)
		lineW += w
	}
	return append(lines, string(line))
}
