// Package logging provides debug logging for srgfx. The terminal belongs to
// the UI, so debug output goes to a file and is discarded otherwise.
package logging

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// DebugEnabled controls whether Debug() produces output.
// Set via -debug flag or DEBUG=1 environment variable.
var DebugEnabled bool

// Debug logs a message only when DebugEnabled is true.
func Debug(format string, args ...any) {
	if DebugEnabled {
		log.Printf("DEBUG: "+format, args...)
	}
}

// EnvEnabled reports whether DEBUG is set to a non-empty value other than
// "0".
func EnvEnabled() bool {
	v := os.Getenv("DEBUG")
	return v != "" && v != "0"
}

// Enable turns on debug output and routes the standard logger to path.
// The caller closes the returned file on exit.
func Enable(path string) (io.Closer, error) {
	f, err := tea.LogToFile(path, "srgfx")
	if err != nil {
		return nil, err
	}
	DebugEnabled = true
	return f, nil
}

// Disable discards standard logger output and turns off Debug.
func Disable() {
	DebugEnabled = false
	log.SetOutput(io.Discard)
}
