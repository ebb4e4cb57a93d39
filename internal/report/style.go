package report

import "github.com/charmbracelet/lipgloss"

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	styleHeading = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	styleValue = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	styleMuted = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

const rule = "--------------------------------------------------------------------------------"
