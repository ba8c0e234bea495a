package config

// Theme holds the configurable colors, as hex codes or ANSI color numbers.
type Theme struct {
	Accent         string `yaml:"accent"`
	Subtle         string `yaml:"subtle"`
	Normal         string `yaml:"normal"`
	TaskBackground string `yaml:"task_background"`
	SelectedBg     string `yaml:"selected_bg"`
	SelectedBorder string `yaml:"selected_border"`

	// Feedback banner colors by category
	SuccessFg string `yaml:"success_fg"`
	SuccessBg string `yaml:"success_bg"`
	NeutralFg string `yaml:"neutral_fg"`
	NeutralBg string `yaml:"neutral_bg"`
	WarnFg    string `yaml:"warn_fg"`
	WarnBg    string `yaml:"warn_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Drag interaction colors
	HoverBorder string `yaml:"hover_border"` // tab hovered by a dragged task
	ReadyBorder string `yaml:"ready_border"` // tab promoted to drop-ready
	Connector   string `yaml:"connector"`    // linking connector line
}

// DefaultTheme returns the default color theme.
func DefaultTheme() Theme {
	return Theme{
		Accent:         "#7D56F4",
		Subtle:         "#6B7280",
		Normal:         "#D1D5DB",
		TaskBackground: "#1F2335",
		SelectedBg:     "#2D3149",
		SelectedBorder: "#7D56F4",

		SuccessFg: "#14532D",
		SuccessBg: "#86EFAC",
		NeutralFg: "#1E3A5F",
		NeutralBg: "#93C5FD",
		WarnFg:    "#713F12",
		WarnBg:    "#FDE68A",
		ErrorFg:   "#7F1D1D",
		ErrorBg:   "#FCA5A5",

		HoverBorder: "#EAB308",
		ReadyBorder: "#22C55E",
		Connector:   "#7D56F4",
	}
}

// applyDefaults fills in any unset colors with the default theme
func (t *Theme) applyDefaults() {
	defaults := DefaultTheme()
	if t.Accent == "" {
		t.Accent = defaults.Accent
	}
	if t.Subtle == "" {
		t.Subtle = defaults.Subtle
	}
	if t.Normal == "" {
		t.Normal = defaults.Normal
	}
	if t.TaskBackground == "" {
		t.TaskBackground = defaults.TaskBackground
	}
	if t.SelectedBg == "" {
		t.SelectedBg = defaults.SelectedBg
	}
	if t.SelectedBorder == "" {
		t.SelectedBorder = defaults.SelectedBorder
	}
	if t.SuccessFg == "" {
		t.SuccessFg = defaults.SuccessFg
	}
	if t.SuccessBg == "" {
		t.SuccessBg = defaults.SuccessBg
	}
	if t.NeutralFg == "" {
		t.NeutralFg = defaults.NeutralFg
	}
	if t.NeutralBg == "" {
		t.NeutralBg = defaults.NeutralBg
	}
	if t.WarnFg == "" {
		t.WarnFg = defaults.WarnFg
	}
	if t.WarnBg == "" {
		t.WarnBg = defaults.WarnBg
	}
	if t.ErrorFg == "" {
		t.ErrorFg = defaults.ErrorFg
	}
	if t.ErrorBg == "" {
		t.ErrorBg = defaults.ErrorBg
	}
	if t.HoverBorder == "" {
		t.HoverBorder = defaults.HoverBorder
	}
	if t.ReadyBorder == "" {
		t.ReadyBorder = defaults.ReadyBorder
	}
	if t.Connector == "" {
		t.Connector = defaults.Connector
	}
}
