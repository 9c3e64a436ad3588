package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/lixenwraith/scrollkit/terminal"
	"github.com/lixenwraith/scrollkit/terminal/tcellterm"
	"github.com/lixenwraith/scrollkit/terminal/tui"
)

var (
	configFlag = flag.String("config", "", "Scroll config TOML file")
	logFlag    = flag.String("log", "", "Debug log file, empty disables logging")
	colorFlag  = flag.String("color", "auto", "Color mode: auto, truecolor, 256, 16")
)

const paneCount = 3

// demo holds the three panes and which one has keyboard focus
type demo struct {
	theme tui.Theme
	focus int

	scrolledList *tui.Scrolled[*tui.ListState]
	listState    *tui.ScrolledState[*tui.ListState]

	scrolledView *tui.Scrolled[*tui.ViewState]
	viewState    *tui.ScrolledState[*tui.ViewState]

	ownList      *tui.List
	ownListState *tui.ListState
}

func main() {
	flag.Parse()

	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		tui.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var settings *tui.ScrollSettings
	if *configFlag != "" {
		s, err := tui.LoadScrollConfig(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		settings = s
	}

	screen, err := tcellterm.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	if p, ok := colorProfile(*colorFlag); ok {
		screen.SetProfile(p)
	}

	d := newDemo(settings)
	run(screen, d)
}

// colorProfile resolves the -color flag, ok=false keeps the detected profile
func colorProfile(mode string) (termenv.Profile, bool) {
	switch mode {
	case "truecolor", "true", "24bit":
		return termenv.TrueColor, true
	case "256":
		return termenv.ANSI256, true
	case "16":
		return termenv.ANSI, true
	}
	return termenv.Ascii, false
}

func newDemo(settings *tui.ScrollSettings) *demo {
	theme := tui.DefaultTheme

	items := make([]tui.ListItem, 200)
	for i := range items {
		items[i] = tui.ListItem{
			Icon:      '•',
			IconFg:    theme.HintFg,
			Text:      "Item " + strconv.Itoa(i+1) + strings.Repeat(" ·", i%40),
			TextStyle: tui.Style{Fg: theme.Fg},
		}
	}

	list := &tui.List{CursorBg: theme.CursorBg, DefaultBg: theme.Bg}
	scrolledList := tui.NewScrolled[*tui.ListState](settings, list)
	if settings == nil {
		scrolledList.VPolicy = tui.Always
		scrolledList.Block = theme.Block(tui.LineRounded, "Scrolled list")
		scrolledList.Styles = theme.ScrollStyles()
	}

	para := tui.NewParagraph(sampleText, 0, tui.Style{Fg: theme.Fg, Bg: theme.Bg})
	view := &tui.View{Widget: para, Size: para.NaturalSize(), Style: tui.Style{Bg: theme.Bg}}
	scrolledView := tui.NewScrolled[*tui.ViewState](settings, view)
	if settings == nil {
		scrolledView.Block = theme.Block(tui.LineDouble, "View")
		scrolledView.Styles = theme.ScrollStyles()
		scrolledView.VOverscroll = 3
	}

	ownScroll := tui.NewScroll(tui.VerticalRight)
	if settings != nil {
		ownScroll = settings.Scroll(true)
	}
	ownScroll.Styles = theme.ScrollStyles()
	ownList := &tui.List{
		CursorBg:  theme.CursorBg,
		DefaultBg: theme.Bg,
		Block:     theme.Block(tui.LineSingle, "Own scrollbar"),
		VScroll:   ownScroll,
	}

	return &demo{
		theme:        theme,
		scrolledList: scrolledList,
		listState:    tui.NewScrolledState(tui.NewListState(items)),
		scrolledView: scrolledView,
		viewState:    tui.NewScrolledState(&tui.ViewState{}),
		ownList:      ownList,
		ownListState: tui.NewListState(slices.Clone(items[:60])),
	}
}

func run(screen *tcellterm.Screen, d *demo) {
	eventCh := make(chan terminal.Event, 16)
	go func() {
		for {
			ev, ok := screen.PollEvent()
			eventCh <- ev
			if !ok {
				return
			}
		}
	}()

	for {
		w, h := screen.Size()
		cells := make([]terminal.Cell, w*h)
		root := tui.NewRegion(cells, w, 0, 0, w, h)
		root.Fill(d.theme.Bg)
		d.render(root)
		screen.Flush(cells, w, h)

		ev := <-eventCh
		switch ev.Type {
		case terminal.EventClosed, terminal.EventError:
			return
		case terminal.EventResize:
			screen.Sync()
			continue
		case terminal.EventKey:
			if ev.Key == terminal.KeyCtrlC || ev.Key == terminal.KeyEscape ||
				(ev.Key == terminal.KeyRune && ev.Rune == 'q') {
				return
			}
		}
		d.handle(ev)
	}
}

func (d *demo) render(root tui.Region) {
	header, body := tui.SplitVFixed(root, 1)
	header.Text(1, 0, "SCROLL DEMO", d.theme.HintFg, d.theme.Bg, terminal.AttrBold)
	header.TextRight(0, "Tab: focus | Insert/Delete: edit | q: quit ", d.theme.Fg, d.theme.Bg, terminal.AttrDim)

	content, footer := tui.SplitVFixed(body, body.H-1)
	footer.Text(1, 0, "wheel: scroll | Alt+wheel: sideways | drag: thumb", d.theme.Fg, d.theme.Bg, terminal.AttrDim)
	tui.ScrollIndicator(footer, 0, &d.ownListState.V, d.theme.HintFg)

	d.highlight(d.scrolledList.Block, 0)
	d.highlight(d.scrolledView.Block, 1)
	d.highlight(d.ownList.Block, 2)

	cols := tui.SplitH(content, 0.34, 0.33, 0.33)
	d.scrolledList.Render(cols[0], d.listState)
	d.scrolledView.Render(cols[1], d.viewState)
	d.ownList.Render(cols[2], d.ownListState)
}

// highlight colors the border of the focused pane
func (d *demo) highlight(b *tui.Block, pane int) {
	if b == nil {
		return
	}
	b.Fg = d.theme.Border
	if pane == d.focus {
		b.Fg = d.theme.HintFg
	}
}

// handle routes mouse input to every pane and keys to the focused pane
func (d *demo) handle(ev terminal.Event) {
	if ev.Type == terminal.EventKey {
		switch ev.Key {
		case terminal.KeyTab:
			d.focus = (d.focus + 1) % paneCount
			return
		case terminal.KeyBacktab:
			d.focus = (d.focus + paneCount - 1) % paneCount
			return
		case terminal.KeyInsert:
			if d.focus == 2 {
				s := d.ownListState
				s.Insert(s.Cursor, tui.ListItem{Icon: '+', IconFg: d.theme.HintFg, Text: "inserted", TextStyle: tui.Style{Fg: d.theme.Fg}})
				return
			}
		case terminal.KeyDelete:
			if d.focus == 2 {
				d.ownListState.Remove(d.ownListState.Cursor, 1)
				return
			}
		}
	}

	if r := tui.HandleScrolled[tui.Outcome](d.listState, ev, d.qualifier(0)); r.IsConsumed() {
		return
	}
	if r := tui.HandleScrolled[tui.Outcome](d.viewState, ev, d.qualifier(1)); r.IsConsumed() {
		return
	}
	d.ownListState.HandleEvent(ev, d.qualifier(2))
}

func (d *demo) qualifier(pane int) tui.Qualifier {
	if pane == d.focus {
		return tui.FocusKeys
	}
	return tui.MouseOnly
}

const sampleText = `A View renders its content into an off-screen buffer of the content's natural size.
The visible window is copied to the screen at the current offsets.

Content never learns that it is being scrolled, so any widget can be put into a View.
Lines that are wider than the pane can be scrolled horizontally with Alt+wheel or the bottom scrollbar.

    func (v *View) Render(r Region, state *ViewState) {
        renderWindow(r, v.Size, v.Style, state, v.Widget.Render)
    }

Drag the thumb of a scrollbar to jump, click the track to move there.
A drag ends with the next mouse motion that has no button held.

The vertical scrollbar of this pane allows three rows of overscroll past the end.
` + loremTail

const loremTail = `
Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.
Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat.
Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur.
Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum.
`
