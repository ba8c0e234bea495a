package notifications

import (
	"charm.land/lipgloss/v2"

	"github.com/rvannatta/kanva/internal/config"
	"github.com/rvannatta/kanva/internal/tui/state"
)

// Render renders a notification banner for the given category and message.
func Render(n state.Notification, theme config.Theme) string {
	s := styleFor(n.Category, theme)

	headerText := s.icon + " " + s.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(n.Message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Bold(true).
		Width(maxWidth).
		Render(headerText)

	message := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Width(maxWidth).
		Render(n.Message)

	content := lipgloss.JoinVertical(lipgloss.Left, header, message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(s.background)).
		Padding(0, 1).
		Render(content)
}

// RenderInline renders a compact single-line notification for the tab bar.
func RenderInline(n state.Notification, theme config.Theme) string {
	s := styleFor(n.Category, theme)

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Background(lipgloss.Color(s.background)).
		Padding(0, 1).
		Render(s.icon + " " + n.Message)
}
