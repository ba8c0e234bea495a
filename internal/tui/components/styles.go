// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/rvannatta/kanva/internal/config"
)

// These are cached to avoid recomputing on every redraw.
var (
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	// TabStyle defines inactive tabs
	TabStyle lipgloss.Style

	// ActiveTabStyle defines the selected tab
	ActiveTabStyle lipgloss.Style

	// HoverTabStyle defines a tab a dragged card is hovering over
	HoverTabStyle lipgloss.Style

	// ReadyTabStyle defines a tab that has been hovered long enough to
	// accept a drop
	ReadyTabStyle lipgloss.Style

	// TabGapStyle fills the remaining space after tabs
	TabGapStyle lipgloss.Style

	// ColumnStyle defines the appearance of kanban board columns
	ColumnStyle lipgloss.Style

	// TaskStyle defines the appearance of individual tasks as cards
	TaskStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, app header)
	TitleStyle lipgloss.Style

	// SubtleStyle defines muted text (empty states, hints)
	SubtleStyle lipgloss.Style

	// HandleStyle defines the card's link handle glyph
	HandleStyle lipgloss.Style

	// ConnectorStyle defines the linking connector line cells
	ConnectorStyle lipgloss.Style

	// GhostStyle defines the floating card label that follows a drag
	GhostStyle lipgloss.Style

	// FormBoxStyle defines the base style for the add-task form
	FormBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for the help screen
	HelpBoxStyle lipgloss.Style

	// DetailBoxStyle defines the base style for the task detail overlay
	DetailBoxStyle lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

// InitStyles initializes all styles with the given theme
func InitStyles(theme config.Theme) {
	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.Border(activeTabBorder, true)

	HoverTabStyle = TabStyle.
		BorderForeground(lipgloss.Color(theme.HoverBorder)).
		Bold(true)

	ReadyTabStyle = TabStyle.
		BorderForeground(lipgloss.Color(theme.ReadyBorder)).
		Bold(true)

	TabGapStyle = TabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	// Width and Height span the whole frame, border cells included. The
	// mouse hit-testing assumes columns render exactly ColumnWidth+2 cells
	// wide and cards exactly TaskCardWidth+2 by TaskCardHeight.
	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Subtle)).
		PaddingLeft(1).
		PaddingRight(1).
		Width(ColumnWidth + 2)

	TaskStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(theme.Subtle)).
		BorderBackground(lipgloss.Color(theme.TaskBackground)).
		Background(lipgloss.Color(theme.TaskBackground)).
		Padding(0).
		Width(TaskCardWidth + 2).
		Height(TaskCardHeight)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true)

	HandleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Connector)).
		Background(lipgloss.Color(theme.TaskBackground)).
		Bold(true)

	ConnectorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Connector)).
		Bold(true)

	GhostStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.HoverBorder)).
		Padding(0, 1)

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2)

	DetailBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.SelectedBorder)).
		Padding(1, 2)

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Align(lipgloss.Center)

	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.SelectedBg)).
		Foreground(lipgloss.Color(theme.Normal))
}
