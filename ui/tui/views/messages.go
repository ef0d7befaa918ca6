package views

import (
	"foodcourt/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

func renderMessage(icon string, iconColor lipgloss.TerminalColor, title, message string) string {
	return styles.MessageBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(iconColor).Render(icon),
		lipgloss.NewStyle().Bold(true).Render(title),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#888")).Width(50).Align(lipgloss.Center).Render(message),
	))
}

// RenderNoData is the neutral "nothing to show" view.
func RenderNoData(title, message string) string {
	return renderMessage("🍴", styles.BrandColor, title, message)
}

// RenderError is the fixed error layout for fetch failures and empty menus.
func RenderError(title, message string) string {
	return renderMessage("⚠", styles.ErrorColor, title, message)
}
