package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width    int
	Username string
	Role     string
	// Hint is the context-sensitive help line; it changes while a gesture
	// is active ("release to link, esc to cancel")
	Hint string
}

// RenderStatusBar renders a status bar with the user identity on the left
// and the current hint on the right.
func RenderStatusBar(props StatusBarProps) string {
	leftText := fmt.Sprintf("kanva · %s (%s)", props.Username, props.Role)
	rightText := props.Hint
	if rightText == "" {
		rightText = "press ? for help"
	}

	left := StatusBarStyle.Render(" " + leftText)
	right := StatusBarStyle.Render(rightText + " ")

	gapWidth := props.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gapWidth < 1 {
		gapWidth = 1
	}
	gap := StatusBarStyle.Render(strings.Repeat(" ", gapWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
}
