package picker

import "github.com/charmbracelet/lipgloss"

// Styles contains all lipgloss styles for the picker
type Styles struct {
	Title lipgloss.Style

	// List rows
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Item     lipgloss.Style
	Detail   lipgloss.Style

	// Footer styling
	Footer    lipgloss.Style
	FooterKey lipgloss.Style
}

// DefaultStyles returns the default picker styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),

		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Item:     lipgloss.NewStyle(),
		Detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),

		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1),
		FooterKey: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	}
}

// IconCursor marks the highlighted row
const IconCursor = "›"
