package render

import "github.com/charmbracelet/lipgloss"

// ------- minimal styling helpers (Lip Gloss) -------
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// SetPlain swaps every style for an unstyled one, for -plain mode and
// dumb terminals.
func SetPlain() {
	plain := lipgloss.NewStyle()
	titleStyle = plain
	successStyle = plain
	accentStyle = plain
	mutedStyle = plain
	errorStyle = plain
	warnStyle = plain
}
