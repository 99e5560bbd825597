package menu

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	frame     lipgloss.Style
	choice    lipgloss.Style
	label     lipgloss.Style
	section   lipgloss.Style
	done      lipgloss.Style
	pending   lipgloss.Style
	taskTitle lipgloss.Style
	detail    lipgloss.Style
	empty     lipgloss.Style
	statKey   lipgloss.Style
	statValue lipgloss.Style
	warning   lipgloss.Style
	errorMsg  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		frame:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		choice:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		done:      lipgloss.NewStyle().Foreground(lipgloss.Color("77")),
		pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		taskTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:     lipgloss.NewStyle().Faint(true),
		statKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		statValue: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		errorMsg:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
