package soccertrack

import (
	"log"
	"os"
	"sync"

	"golang.org/x/term"
)

// GetTerminalSize returns the terminal dimensions (columns, lines),
// probing stdin/stdout/stderr in turn and falling back to the given
// defaults when none are a terminal.
func GetTerminalSize(defaultCols, defaultLines int) (cols, lines int) {
	if width, height, err := term.GetSize(int(os.Stdin.Fd())); err == nil {
		return width, height
	}
	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return width, height
	}
	if width, height, err := term.GetSize(int(os.Stderr.Fd())); err == nil {
		return width, height
	}
	return defaultCols, defaultLines
}

var warnedMessages sync.Map

// WarnOnce prints a warning message only once (thread-safe). Used by
// the driver for recoverable per-run conditions (missing cache files,
// a rejected terrain polygon) that would otherwise spam every frame.
func WarnOnce(message string) {
	if _, loaded := warnedMessages.LoadOrStore(message, true); !loaded {
		log.Printf("WARNING: %s", message)
	}
}
