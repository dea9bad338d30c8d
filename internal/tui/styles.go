package tui

import "github.com/charmbracelet/lipgloss"

var (
	inkColor   = lipgloss.AdaptiveColor{Light: "#3b2f2f", Dark: "#f4ecd8"}
	brassColor = lipgloss.Color("#c9a227")
	mutedColor = lipgloss.Color("#8a7f72")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(brassColor).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(brassColor)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(inkColor).MarginTop(1)

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6a994e"))
	runningStyle = lipgloss.NewStyle().Foreground(brassColor)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#bc4749")).Bold(true)
	skippedStyle = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
	pendingStyle = lipgloss.NewStyle().Foreground(mutedColor)
	summaryStyle = lipgloss.NewStyle().MarginTop(1).PaddingLeft(1).BorderStyle(lipgloss.ThickBorder()).BorderLeft(true).BorderForeground(mutedColor)
)
