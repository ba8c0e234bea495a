package config

import "time"

// Timings holds the interaction tuning constants for drag gestures and
// feedback display. These are tuning values, not protocol constants; they
// are configurable so nothing hard-codes them at the use site.
type Timings struct {
	// DropDwellMs is how long a dragged task must continuously hover a
	// board tab before the tab becomes a confirmed drop target.
	DropDwellMs int `yaml:"drop_dwell_ms"`

	// HoverDebounceMs is the grace period before hover state is cleared
	// after the pointer leaves a tab, absorbing brief excursions across
	// the boundary between adjacent tabs.
	HoverDebounceMs int `yaml:"hover_debounce_ms"`

	// FeedbackMs is how long a status message stays visible before it
	// clears itself.
	FeedbackMs int `yaml:"feedback_duration_ms"`
}

// DefaultTimings returns the default interaction timings.
func DefaultTimings() Timings {
	return Timings{
		DropDwellMs:     800,
		HoverDebounceMs: 300,
		FeedbackMs:      3000,
	}
}

// DropDwell returns the dwell threshold as a duration.
func (t Timings) DropDwell() time.Duration {
	return time.Duration(t.DropDwellMs) * time.Millisecond
}

// HoverDebounce returns the debounce delay as a duration.
func (t Timings) HoverDebounce() time.Duration {
	return time.Duration(t.HoverDebounceMs) * time.Millisecond
}

// FeedbackDuration returns the feedback display duration as a duration.
func (t Timings) FeedbackDuration() time.Duration {
	return time.Duration(t.FeedbackMs) * time.Millisecond
}

// applyDefaults fills in missing or invalid timing values
func (t *Timings) applyDefaults() {
	defaults := DefaultTimings()
	if t.DropDwellMs <= 0 {
		t.DropDwellMs = defaults.DropDwellMs
	}
	if t.HoverDebounceMs <= 0 {
		t.HoverDebounceMs = defaults.HoverDebounceMs
	}
	if t.FeedbackMs <= 0 {
		t.FeedbackMs = defaults.FeedbackMs
	}
}
