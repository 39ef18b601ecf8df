// Package style provides shared styling primitives for the installer's
// console output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Green  = lipgloss.Color("#22A06B")
	Yellow = lipgloss.Color("#F59E0B")
	Red    = lipgloss.Color("#D93025")
)

// Prefixes printed before console lines.
const (
	Arrow    = "==>"
	WarnTag  = "warn:"
	ErrorTag = "error:"
)

// Styles for the console prefixes.
var (
	ArrowStyle = lipgloss.NewStyle().Foreground(Green)
	WarnStyle  = lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	ErrorStyle = lipgloss.NewStyle().Foreground(Red)
)
