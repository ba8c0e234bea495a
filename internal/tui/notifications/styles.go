package notifications

import (
	"github.com/rvannatta/kanva/internal/config"
	"github.com/rvannatta/kanva/internal/tui/state"
)

type style struct {
	icon       string
	title      string
	foreground string
	background string
}

// styleFor maps a feedback category to its visual treatment. The mapping is
// keyed on the category tag alone; the message text plays no part in it.
func styleFor(category state.FeedbackCategory, theme config.Theme) style {
	switch category {
	case state.CategorySuccess:
		return style{
			icon:       "✓",
			title:      "Linked",
			foreground: theme.SuccessFg,
			background: theme.SuccessBg,
		}
	case state.CategoryCancelled:
		return style{
			icon:       "⊘",
			title:      "Cancelled",
			foreground: theme.NeutralFg,
			background: theme.NeutralBg,
		}
	case state.CategoryAlreadyExists:
		return style{
			icon:       "⚠",
			title:      "Already linked",
			foreground: theme.WarnFg,
			background: theme.WarnBg,
		}
	case state.CategoryCircular:
		return style{
			icon:       "↺",
			title:      "Circular",
			foreground: theme.ErrorFg,
			background: theme.WarnBg,
		}
	case state.CategoryError:
		return style{
			icon:       "✕",
			title:      "Error",
			foreground: theme.ErrorFg,
			background: theme.ErrorBg,
		}
	default:
		return style{
			icon:       "!",
			title:      "Notice",
			foreground: theme.NeutralFg,
			background: theme.NeutralBg,
		}
	}
}
