// Package terminal defines the cell, colour, and decoded input event types shared by the tui packages.
//
// Contents:
//   - Cell: one glyph with 24-bit foreground/background and an attribute bitmask
//   - Event: an already-decoded key, mouse, wheel, or resize event
//   - Mouse helpers: button/action identity and constructors for synthetic events
//
// Raw escape-sequence decoding and screen I/O live outside this package; see terminal/tcellterm
// for the tcell-backed implementation.
package terminal
