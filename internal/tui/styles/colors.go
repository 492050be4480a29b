// Package styles provides the centralized color palette and style
// definitions for the porkpy TUI. All visual constants live here so
// the rest of the TUI code can reference a single source of truth.
package styles

import "github.com/charmbracelet/lipgloss"

// --- Color palette ---

var (
	// Core text
	White   = lipgloss.Color("#E8E3E3")
	Gray    = lipgloss.Color("#8A8A8A")
	Muted   = lipgloss.Color("#5A5A5A")
	DimGray = lipgloss.Color("#434343")

	// Accent
	Pink     = lipgloss.Color("#EF8FA9")
	DimPink  = lipgloss.Color("#9E5F72")
	DarkPink = lipgloss.Color("#3D2029")

	// Status
	Green  = lipgloss.Color("#63D48A")
	Yellow = lipgloss.Color("#F5D76E")
	Red    = lipgloss.Color("#F28B8B")
	Blue   = lipgloss.Color("#6FA8DC")
)
