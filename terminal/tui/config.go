package tui

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/scrollkit/terminal"
)

// ScrollConfig is the TOML form of scrollbar and border settings
//
//	[scrolled]
//	h_policy = "as-needed"   # always | as-needed | never
//	v_policy = "always"
//	v_position = "left"      # left | right
//	h_position = "bottom"    # top | bottom
//	type = "minimal"         # show | minimal | none
//	border = "rounded"       # none | single | double | rounded | heavy
//
//	[symbols]
//	thumb = "█"
//
//	[colors]
//	fg = "#c8c8c8"
type ScrollConfig struct {
	Scrolled ScrolledConfig `toml:"scrolled"`
	Symbols  SymbolConfig   `toml:"symbols"`
	Colors   ColorConfig    `toml:"colors"`
}

// ScrolledConfig holds layout and policy settings
type ScrolledConfig struct {
	HPolicy     string `toml:"h_policy"`
	VPolicy     string `toml:"v_policy"`
	HPosition   string `toml:"h_position"`
	VPosition   string `toml:"v_position"`
	HOverscroll int    `toml:"h_overscroll"`
	VOverscroll int    `toml:"v_overscroll"`
	Type        string `toml:"type"`
	StepSize    int    `toml:"step"`
	StartMargin int    `toml:"start_margin"`
	EndMargin   int    `toml:"end_margin"`
	Border      string `toml:"border"`
	Title       string `toml:"title"`
}

// SymbolConfig overrides scrollbar glyphs, each a single character
type SymbolConfig struct {
	Thumb    string `toml:"thumb"`
	Track    string `toml:"track"`
	Begin    string `toml:"begin"`
	End      string `toml:"end"`
	No       string `toml:"no"`
	NoArrows bool   `toml:"no_arrows"`
}

// ColorConfig holds hex colors, empty values keep terminal defaults
type ColorConfig struct {
	Fg     string `toml:"fg"`
	Bg     string `toml:"bg"`
	Border string `toml:"border"`
	Title  string `toml:"title"`
}

// ScrollSettings is a validated ScrollConfig
type ScrollSettings struct {
	HPolicy     ScrollbarPolicy
	VPolicy     ScrollbarPolicy
	HPosition   HPosition
	VPosition   VPosition
	HOverscroll int
	VOverscroll int
	Type        ScrollbarType
	StepSize    int
	StartMargin int
	EndMargin   int
	Block       *Block
	Symbols     ScrollSymbols
	Styles      ScrollStyles
}

// ErrInvalidConfig is wrapped by all validation errors
var ErrInvalidConfig = errors.New("invalid scroll config")

// LoadScrollConfig reads and validates a TOML file
func LoadScrollConfig(path string) (*ScrollSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scroll config: %w", err)
	}
	s, err := ParseScrollConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScrollConfig decodes and validates TOML data
// Unknown keys are rejected
func ParseScrollConfig(data []byte) (*ScrollSettings, error) {
	var cfg ScrollConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode scroll config: %w", err)
	}
	return cfg.Settings()
}

// Settings validates the config
func (c *ScrollConfig) Settings() (*ScrollSettings, error) {
	var s ScrollSettings
	var err error

	sc := c.Scrolled
	if s.HPolicy, err = parsePolicy(sc.HPolicy); err != nil {
		return nil, fmt.Errorf("h_policy: %w", err)
	}
	if s.VPolicy, err = parsePolicy(sc.VPolicy); err != nil {
		return nil, fmt.Errorf("v_policy: %w", err)
	}
	switch sc.HPosition {
	case "", "bottom":
		s.HPosition = Bottom
	case "top":
		s.HPosition = Top
	default:
		return nil, fmt.Errorf("h_position %q: %w", sc.HPosition, ErrInvalidConfig)
	}
	switch sc.VPosition {
	case "", "right":
		s.VPosition = Right
	case "left":
		s.VPosition = Left
	default:
		return nil, fmt.Errorf("v_position %q: %w", sc.VPosition, ErrInvalidConfig)
	}
	switch sc.Type {
	case "", "minimal":
		s.Type = Minimal
	case "show":
		s.Type = Show
	case "none":
		s.Type = NoRender
	default:
		return nil, fmt.Errorf("type %q: %w", sc.Type, ErrInvalidConfig)
	}
	if sc.HOverscroll < 0 || sc.VOverscroll < 0 || sc.StepSize < 0 || sc.StartMargin < 0 || sc.EndMargin < 0 {
		return nil, fmt.Errorf("negative size: %w", ErrInvalidConfig)
	}
	s.HOverscroll, s.VOverscroll = sc.HOverscroll, sc.VOverscroll
	s.StepSize, s.StartMargin, s.EndMargin = sc.StepSize, sc.StartMargin, sc.EndMargin

	colors, err := c.Colors.parse()
	if err != nil {
		return nil, err
	}
	if !colors.fg.IsZero() || !colors.bg.IsZero() {
		s.Styles = ScrollStylesFrom(colors.fg, colors.bg)
	}

	if sc.Border != "" && sc.Border != "none" {
		line, ok := lineTypes[sc.Border]
		if !ok {
			return nil, fmt.Errorf("border %q: %w", sc.Border, ErrInvalidConfig)
		}
		s.Block = &Block{Line: line, Fg: colors.border, Bg: colors.bg, Title: sc.Title, TitleFg: colors.title}
	}

	if s.Symbols, err = c.Symbols.parse(); err != nil {
		return nil, err
	}
	return &s, nil
}

var lineTypes = map[string]LineType{
	"single":  LineSingle,
	"double":  LineDouble,
	"rounded": LineRounded,
	"heavy":   LineHeavy,
	"blank":   LineNone,
}

func parsePolicy(s string) (ScrollbarPolicy, error) {
	switch s {
	case "", "as-needed":
		return AsNeeded, nil
	case "always":
		return Always, nil
	case "never":
		return Never, nil
	}
	return AsNeeded, fmt.Errorf("%q: %w", s, ErrInvalidConfig)
}

type parsedColors struct {
	fg, bg, border, title terminal.RGB
}

func (c ColorConfig) parse() (parsedColors, error) {
	var p parsedColors
	for _, f := range []struct {
		name string
		src  string
		dst  *terminal.RGB
	}{
		{"fg", c.Fg, &p.fg},
		{"bg", c.Bg, &p.bg},
		{"border", c.Border, &p.border},
		{"title", c.Title, &p.title},
	} {
		if f.src == "" {
			continue
		}
		rgb, err := ParseRGB(f.src)
		if err != nil {
			return p, fmt.Errorf("colors.%s %q: %w: %w", f.name, f.src, ErrInvalidConfig, err)
		}
		*f.dst = rgb
	}
	return p, nil
}

func (c SymbolConfig) parse() (ScrollSymbols, error) {
	sym := ScrollSymbols{NoArrows: c.NoArrows}
	for _, f := range []struct {
		name string
		src  string
		dst  *rune
	}{
		{"thumb", c.Thumb, &sym.Thumb},
		{"track", c.Track, &sym.Track},
		{"begin", c.Begin, &sym.Begin},
		{"end", c.End, &sym.End},
		{"no", c.No, &sym.No},
	} {
		if f.src == "" {
			continue
		}
		runes := []rune(f.src)
		if len(runes) != 1 || RuneWidth(runes[0]) != 1 {
			return sym, fmt.Errorf("symbols.%s %q: single narrow character expected: %w", f.name, f.src, ErrInvalidConfig)
		}
		*f.dst = runes[0]
	}
	return sym, nil
}

// Scroll returns a configured scrollbar for widgets that draw their own
func (s *ScrollSettings) Scroll(vertical bool) *Scroll {
	sc := &Scroll{
		Type:        s.Type,
		Orientation: s.HPosition.Orientation(),
		StartMargin: s.StartMargin,
		EndMargin:   s.EndMargin,
		Overscroll:  s.HOverscroll,
		StepSize:    s.StepSize,
		Symbols:     s.Symbols,
		Styles:      s.Styles,
	}
	if vertical {
		sc.Orientation = s.VPosition.Orientation()
		sc.Overscroll = s.VOverscroll
	}
	return sc
}

// NewScrolled returns a wrapper around w configured by s, nil s gives the defaults
func NewScrolled[S ScrollingState](s *ScrollSettings, w ScrollingWidget[S]) *Scrolled[S] {
	if s == nil {
		return &Scrolled[S]{Widget: w}
	}
	var block *Block
	if s.Block != nil {
		b := *s.Block
		block = &b
	}
	return &Scrolled[S]{
		Widget:      w,
		HPolicy:     s.HPolicy,
		VPolicy:     s.VPolicy,
		HPosition:   s.HPosition,
		VPosition:   s.VPosition,
		HOverscroll: s.HOverscroll,
		VOverscroll: s.VOverscroll,
		StepSize:    s.StepSize,
		StartMargin: s.StartMargin,
		EndMargin:   s.EndMargin,
		Type:        s.Type,
		Block:       block,
		Symbols:     s.Symbols,
		Styles:      s.Styles,
	}
}
