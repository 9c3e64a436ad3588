package tcellterm

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/lixenwraith/scrollkit/terminal"
)

// Screen draws terminal cells to a tcell screen and decodes its input
type Screen struct {
	screen  tcell.Screen
	profile termenv.Profile
	mouse   mouseTracker
}

// New initializes the real terminal with mouse reporting enabled
// The color profile is detected from the environment
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.EnableMouse()
	return Wrap(s, termenv.EnvColorProfile()), nil
}

// Wrap uses an initialized tcell screen, e.g. a simulation screen in tests
func Wrap(s tcell.Screen, profile termenv.Profile) *Screen {
	return &Screen{screen: s, profile: profile}
}

// Fini restores the terminal
func (s *Screen) Fini() {
	s.screen.Fini()
}

// Size returns the screen size in cells
func (s *Screen) Size() (w, h int) {
	return s.screen.Size()
}

// Profile returns the color profile used for output
func (s *Screen) Profile() termenv.Profile {
	return s.profile
}

// SetProfile overrides the detected color profile
func (s *Screen) SetProfile(p termenv.Profile) {
	s.profile = p
}

// Flush writes a w×h cell grid to the screen and shows it
// A zero rune after a wide glyph is its continuation cell and is skipped
func (s *Screen) Flush(cells []terminal.Cell, w, h int) {
	sw, sh := s.screen.Size()
	for y := 0; y < min(h, sh); y++ {
		wide := false
		for x := 0; x < min(w, sw); x++ {
			i := y*w + x
			if i >= len(cells) {
				break
			}
			c := cells[i]
			if c.Rune == 0 && wide {
				wide = false
				continue
			}
			ch := c.Rune
			if ch == 0 {
				ch = ' '
			}
			wide = runewidth.RuneWidth(ch) == 2
			s.screen.SetContent(x, y, ch, nil, Style(c, s.profile))
		}
	}
	s.screen.Show()
}

// Sync redraws the whole screen on the next Show, used after resize
func (s *Screen) Sync() {
	s.screen.Sync()
}

// PollEvent blocks for the next event that has a terminal equivalent
// Returns false once the screen is finalized
func (s *Screen) PollEvent() (terminal.Event, bool) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return terminal.Event{Type: terminal.EventClosed}, false
		}
		if tev, ok := s.Translate(ev); ok {
			return tev, true
		}
	}
}

// Translate converts a tcell event, ok=false for events without an equivalent
func (s *Screen) Translate(ev tcell.Event) (terminal.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			tev := terminal.RuneEvent(ev.Rune())
			tev.Modifiers = modifiers(ev.Modifiers())
			if ev.Rune() == ' ' {
				tev.Key = terminal.KeySpace
			}
			return tev, true
		}
		key, ok := keyMap[ev.Key()]
		if !ok {
			return terminal.Event{}, false
		}
		return terminal.KeyEvent(key, modifiers(ev.Modifiers())), true
	case *tcell.EventMouse:
		return s.mouse.translate(ev), true
	case *tcell.EventResize:
		w, h := ev.Size()
		return terminal.Event{Type: terminal.EventResize, Width: w, Height: h}, true
	case *tcell.EventError:
		return terminal.Event{Type: terminal.EventError, Err: ev}, true
	}
	return terminal.Event{}, false
}
