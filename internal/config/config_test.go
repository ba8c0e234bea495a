package config

import (
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefaultTimings(t *testing.T) {
	timings := DefaultTimings()

	if timings.DropDwell() != 800*time.Millisecond {
		t.Errorf("DropDwell() = %v, want 800ms", timings.DropDwell())
	}
	if timings.HoverDebounce() != 300*time.Millisecond {
		t.Errorf("HoverDebounce() = %v, want 300ms", timings.HoverDebounce())
	}
	if timings.FeedbackDuration() != 3*time.Second {
		t.Errorf("FeedbackDuration() = %v, want 3s", timings.FeedbackDuration())
	}
}

func TestTimingsApplyDefaults_ZeroValues(t *testing.T) {
	var timings Timings
	timings.applyDefaults()

	if timings.DropDwellMs != 800 {
		t.Errorf("DropDwellMs = %d, want 800", timings.DropDwellMs)
	}
	if timings.HoverDebounceMs != 300 {
		t.Errorf("HoverDebounceMs = %d, want 300", timings.HoverDebounceMs)
	}
	if timings.FeedbackMs != 3000 {
		t.Errorf("FeedbackMs = %d, want 3000", timings.FeedbackMs)
	}
}

func TestTimingsApplyDefaults_KeepsExplicitValues(t *testing.T) {
	timings := Timings{DropDwellMs: 1500, HoverDebounceMs: 250, FeedbackMs: 5000}
	timings.applyDefaults()

	if timings.DropDwellMs != 1500 || timings.HoverDebounceMs != 250 || timings.FeedbackMs != 5000 {
		t.Errorf("applyDefaults overwrote explicit values: %+v", timings)
	}
}

func TestPartialConfigGetsDefaults(t *testing.T) {
	// A config file that only sets one value should still get defaults for
	// the rest after unmarshalling.
	raw := `
timings:
  drop_dwell_ms: 1200
key_mappings:
  quit: "Q"
`
	var cfg Config
	if err := yaml.Unmarshal([]byte(raw), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	cfg.applyDefaults()

	if cfg.Timings.DropDwellMs != 1200 {
		t.Errorf("DropDwellMs = %d, want 1200 (explicit)", cfg.Timings.DropDwellMs)
	}
	if cfg.Timings.HoverDebounceMs != 300 {
		t.Errorf("HoverDebounceMs = %d, want default 300", cfg.Timings.HoverDebounceMs)
	}
	if cfg.KeyMappings.Quit != "Q" {
		t.Errorf("Quit = %q, want explicit Q", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddTask != "a" {
		t.Errorf("AddTask = %q, want default a", cfg.KeyMappings.AddTask)
	}
	if cfg.Theme.Accent == "" {
		t.Error("Theme.Accent should get a default")
	}
}
