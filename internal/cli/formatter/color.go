package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jornada-hq/jornada/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// KindColor returns the style for a clock-event kind: green entrance, red
// exit, yellow pause, blue resume.
func KindColor(kind domain.EventKind) lipgloss.Style {
	switch kind {
	case domain.KindClockIn:
		return StyleGreen
	case domain.KindClockOut:
		return StyleRed
	case domain.KindPauseStart:
		return StyleYellow
	case domain.KindPauseEnd:
		return StyleBlue
	default:
		return StyleDim
	}
}

// KindLabel returns the human label used in tables for an event kind.
func KindLabel(kind domain.EventKind) string {
	switch kind {
	case domain.KindClockIn:
		return "Entrada"
	case domain.KindClockOut:
		return "Salida"
	case domain.KindPauseStart:
		return "Pausa"
	case domain.KindPauseEnd:
		return "Regreso"
	default:
		return string(kind)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
