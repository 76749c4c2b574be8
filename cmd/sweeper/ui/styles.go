package ui

import "github.com/charmbracelet/lipgloss"

// Styles collects the lipgloss styles used by the play view.
type Styles struct {
	// Layout
	App    lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style

	// Board cells
	Hidden   lipgloss.Style
	Empty    lipgloss.Style
	Number   lipgloss.Style
	Flag     lipgloss.Style
	Mine     lipgloss.Style
	LastMove lipgloss.Style

	// Status
	StatusWon  lipgloss.Style
	StatusLost lipgloss.Style
	StatusInfo lipgloss.Style
	Help       lipgloss.Style
}

// DefaultStyles returns the default color scheme.
func DefaultStyles() Styles {
	return Styles{
		App:    lipgloss.NewStyle().Padding(1, 2),
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Footer: lipgloss.NewStyle().MarginTop(1),

		Hidden:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
		Number:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Flag:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Mine:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		LastMove: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		StatusWon:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		StatusLost: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		StatusInfo: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
