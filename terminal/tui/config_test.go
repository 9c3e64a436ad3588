package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/scrollkit/terminal"
)

const fullConfig = `
[scrolled]
h_policy = "never"
v_policy = "always"
h_position = "top"
v_position = "left"
v_overscroll = 3
type = "show"
step = 4
start_margin = 1
border = "rounded"
title = "Log"

[symbols]
thumb = "#"
no = "."
no_arrows = true

[colors]
fg = "#ffffff"
bg = "#000000"
border = "#336699"
`

func TestParseScrollConfig(t *testing.T) {
	s, err := ParseScrollConfig([]byte(fullConfig))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if s.HPolicy != Never || s.VPolicy != Always {
		t.Errorf("policies = %v %v", s.HPolicy, s.VPolicy)
	}
	if s.HPosition != Top || s.VPosition != Left {
		t.Errorf("positions = %v %v", s.HPosition, s.VPosition)
	}
	if s.Type != Show || s.VOverscroll != 3 || s.StepSize != 4 || s.StartMargin != 1 {
		t.Errorf("settings = %+v", s)
	}
	if s.Symbols.Thumb != '#' || s.Symbols.No != '.' || !s.Symbols.NoArrows || s.Symbols.Track != 0 {
		t.Errorf("symbols = %+v", s.Symbols)
	}
	if s.Block == nil || s.Block.Line != LineRounded || s.Block.Title != "Log" {
		t.Fatalf("block = %+v", s.Block)
	}
	if want := (terminal.RGB{R: 0x33, G: 0x66, B: 0x99}); s.Block.Fg != want {
		t.Errorf("border fg = %v, want %v", s.Block.Fg, want)
	}
	if s.Styles.Thumb.IsZero() {
		t.Error("colors did not produce scrollbar styles")
	}
}

func TestParseScrollConfigDefaults(t *testing.T) {
	s, err := ParseScrollConfig(nil)
	if err != nil {
		t.Fatalf("parse empty: %v", err)
	}
	if s.HPolicy != AsNeeded || s.VPolicy != AsNeeded || s.Type != Minimal {
		t.Errorf("defaults = %+v", s)
	}
	if s.Block != nil || !s.Styles.Thumb.IsZero() {
		t.Error("empty config must not set block or styles")
	}
}

func TestParseScrollConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool // wraps ErrInvalidConfig
	}{
		{"unknown key", "[scrolled]\nspeed = 3\n", false},
		{"syntax", "[scrolled\n", false},
		{"policy", "[scrolled]\nv_policy = \"sometimes\"\n", true},
		{"position", "[scrolled]\nv_position = \"middle\"\n", true},
		{"type", "[scrolled]\ntype = \"fancy\"\n", true},
		{"border", "[scrolled]\nborder = \"dotted\"\n", true},
		{"negative", "[scrolled]\nv_overscroll = -1\n", true},
		{"color", "[colors]\nfg = \"red\"\n", true},
		{"long symbol", "[symbols]\nthumb = \"##\"\n", true},
		{"wide symbol", "[symbols]\nthumb = \"世\"\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScrollConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v for %v", got, err)
			}
		})
	}
}

func TestLoadScrollConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scroll.toml")
	if err := os.WriteFile(path, []byte("[scrolled]\nv_policy = \"never\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScrollConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.VPolicy != Never {
		t.Errorf("v_policy = %v", s.VPolicy)
	}

	if _, err := LoadScrollConfig(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[scrolled]\ntype = \"x\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScrollConfig(bad); err == nil || !strings.Contains(err.Error(), bad) {
		t.Errorf("error %v should name the file", err)
	}
}

func TestNewScrolledFromSettings(t *testing.T) {
	s, err := ParseScrollConfig([]byte(fullConfig))
	if err != nil {
		t.Fatal(err)
	}

	a := NewScrolled[*ListState](s, &List{})
	b := NewScrolled[*ListState](s, &List{})
	if a.Block == s.Block || a.Block == b.Block {
		t.Fatal("each wrapper needs its own block")
	}
	a.Block.Fg = terminal.RGB{R: 1}
	if s.Block.Fg == a.Block.Fg {
		t.Error("changing a wrapper's block changed the settings")
	}
	if a.VPolicy != Always || a.VOverscroll != 3 || a.VPosition != Left || a.Type != Show {
		t.Errorf("wrapper = %+v", a)
	}
	if a.StepSize != 4 || a.StartMargin != 1 || a.EndMargin != 0 {
		t.Errorf("step %d margins %d/%d, want 4 1/0", a.StepSize, a.StartMargin, a.EndMargin)
	}

	def := NewScrolled[*ListState](nil, &List{})
	if def.Block != nil || def.VPolicy != AsNeeded {
		t.Errorf("nil settings = %+v", def)
	}
}

func TestSettingsScroll(t *testing.T) {
	s := &ScrollSettings{HPosition: Top, VPosition: Left, HOverscroll: 1, VOverscroll: 2, StepSize: 5}

	v := s.Scroll(true)
	if v.Orientation != VerticalLeft || v.Overscroll != 2 || v.StepSize != 5 {
		t.Errorf("vertical = %+v", v)
	}
	h := s.Scroll(false)
	if h.Orientation != HorizontalTop || h.Overscroll != 1 {
		t.Errorf("horizontal = %+v", h)
	}
}
