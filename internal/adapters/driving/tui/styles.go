package tui

import "github.com/charmbracelet/lipgloss"

// styles holds the lipgloss styles shared by the browser panes.
type styles struct {
	pane          lipgloss.Style
	focusedPane   lipgloss.Style
	selectedTitle lipgloss.Style
	selectedDesc  lipgloss.Style
}

func newStyles() *styles {
	border := lipgloss.RoundedBorder()
	return &styles{
		pane: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		focusedPane: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1),
		selectedTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true),
		selectedDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
	}
}
