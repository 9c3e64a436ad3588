package tui

import "log/slog"

// logger receives debug output of layout decisions
// Discarded until SetLogger is called; the terminal usually owns stdout/stderr
var logger = slog.New(slog.DiscardHandler)

// SetLogger routes package logging to l, nil restores the discarding logger
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}
