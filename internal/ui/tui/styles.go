package tui

import "github.com/charmbracelet/lipgloss"

const cardWidth = 24

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("236"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).MarginBottom(1)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true)
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)
	amountStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("254")).Foreground(lipgloss.Color("28"))
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1).MarginTop(1)
)

func cardStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Foreground(lipgloss.Color(color)).
		Padding(0, 1).
		Width(cardWidth)
}

var (
	totalCard   = cardStyle("34")  // green
	countCard   = cardStyle("33")  // blue
	averageCard = cardStyle("129") // purple
)
