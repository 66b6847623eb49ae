package gfxeditor

import (
	"github.com/charmbracelet/lipgloss"
)

// ANSI 16-color indices used by the editor.
const (
	colorGreen    = "2"
	colorYellow   = "3"
	colorCyan     = "6"
	colorDarkGray = "8"
	colorWhite    = "15"
	colorMagenta  = "5"
	colorBlack    = "0"
)

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// --- Boxes ---
var borderStyle = fg(colorWhite)

// --- Header title and picker heading ---
var titleStyle = fg(colorCyan).Bold(true)

// --- List rows ---
var rowStyle = fg(colorWhite)
var rowSelectedStyle = fg(colorYellow).Bold(true)
var valueStyle = fg(colorDarkGray)
var valueSelectedStyle = fg(colorGreen).Bold(true)

// --- Scrollbar ---
var scrollTrackStyle = fg(colorDarkGray)
var scrollThumbStyle = fg(colorWhite)

// --- Status line ---
var statusSavedStyle = fg(colorGreen)
var statusWarnStyle = fg(colorYellow)
var statusFailedStyle = fg(colorYellow)
var statusIdleStyle = fg(colorDarkGray)

// --- Picker footer ---
var hintStyle = fg(colorDarkGray)

// --- Confirm dialog ---
var dialogBorderStyle = fg(colorMagenta)
var dialogTextStyle = fg(colorWhite)
var buttonActiveStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color(colorBlack)).
	Background(lipgloss.Color(colorYellow)).
	Bold(true)
var buttonInactiveStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color(colorWhite)).
	Background(lipgloss.Color(colorDarkGray))

// Markers drawn around the selected row and value.
const (
	pointerMark = "▸ "
	valueLeft   = "◂"
	valueRight  = "▸"
	thumbChar   = "█"
	trackChar   = "│"
)
