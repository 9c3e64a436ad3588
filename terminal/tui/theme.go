package tui

import "github.com/lixenwraith/scrollkit/terminal"

// Theme defines semantic colors for scrolling widgets and their chrome
type Theme struct {
	Bg       terminal.RGB
	Fg       terminal.RGB
	CursorBg terminal.RGB
	Border   terminal.RGB
	Title    terminal.RGB
	HintFg   terminal.RGB
	Thumb    terminal.RGB
}

// DefaultTheme provides reasonable defaults
var DefaultTheme = Theme{
	Bg:       terminal.RGB{R: 20, G: 20, B: 30},
	Fg:       terminal.RGB{R: 200, G: 200, B: 200},
	CursorBg: terminal.RGB{R: 50, G: 50, B: 70},
	Border:   terminal.RGB{R: 60, G: 80, B: 100},
	Title:    terminal.RGB{R: 255, G: 255, B: 255},
	HintFg:   terminal.RGB{R: 100, G: 180, B: 200},
	Thumb:    terminal.RGB{R: 130, G: 170, B: 220},
}

// ScrollStyles derives scrollbar styles from the theme
func (t Theme) ScrollStyles() ScrollStyles {
	return ScrollStylesFrom(t.Thumb, t.Bg)
}

// Block returns a bordered block in theme colors
func (t Theme) Block(line LineType, title string) *Block {
	return &Block{Line: line, Fg: t.Border, Bg: t.Bg, Title: title, TitleFg: t.Title}
}
