package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style

	Cursor   lipgloss.Style
	Category lipgloss.Style
	Valid    lipgloss.Style
	Invalid  lipgloss.Style
	Toast    lipgloss.Style
	Total    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),

		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Category: lipgloss.NewStyle().Bold(true).Underline(true),
		Valid:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Invalid:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Toast: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("161")),
		Total: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
	}
}
