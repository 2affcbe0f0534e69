// Package style provides shared colors and icons for terminal output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
	Caret   = "^"
)

// Header renders bold text in the given color using the profile of out.
func Header(out *termenv.Output, text string, color lipgloss.Color) string {
	return out.String(text).Bold().Foreground(termenv.RGBColor(string(color))).String()
}
