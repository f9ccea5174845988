// Package style provides shared UI styling primitives for consistent
// visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Teal   = lipgloss.Color("#0D9488")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// Path renders a resolved icon path.
var Path = lipgloss.NewStyle().Foreground(Green)

// ThemeName renders a theme name in listings.
var ThemeName = lipgloss.NewStyle().Foreground(Teal)

// Muted renders secondary information.
var Muted = lipgloss.NewStyle().Foreground(Slate)
