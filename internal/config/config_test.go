package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultStackConfigValid(t *testing.T) {
	if err := DefaultStackConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := ParseStack(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseStack(embedded) failed: %v", err)
	}
	def := DefaultStackConfig()

	if cfg.Physics != def.Physics {
		t.Errorf("physics = %+v, expected %+v", cfg.Physics, def.Physics)
	}
	if cfg.Blocks != def.Blocks {
		t.Errorf("blocks = %+v, expected %+v", cfg.Blocks, def.Blocks)
	}
	if cfg.Scoring != def.Scoring {
		t.Errorf("scoring = %+v, expected %+v", cfg.Scoring, def.Scoring)
	}
	if cfg.Particles != def.Particles {
		t.Errorf("particles = %+v, expected %+v", cfg.Particles, def.Particles)
	}
	if len(cfg.Colors) != len(def.Colors) {
		t.Fatalf("colors = %d entries, expected %d", len(cfg.Colors), len(def.Colors))
	}
	for i := range def.Colors {
		if cfg.Colors[i] != def.Colors[i] {
			t.Errorf("colors[%d] = %q, expected %q", i, cfg.Colors[i], def.Colors[i])
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *StackConfig)
	}{
		{"empty palette", func(c *StackConfig) { c.Colors = nil }},
		{"bad palette entry", func(c *StackConfig) { c.Colors = []string{"#FF6B6B", "tomato"} }},
		{"bad base color", func(c *StackConfig) { c.Blocks.BaseColor = "#12" }},
		{"zero block height", func(c *StackConfig) { c.Blocks.Height = 0 }},
		{"negative block height", func(c *StackConfig) { c.Blocks.Height = -0.5 }},
		{"zero base width", func(c *StackConfig) { c.Blocks.BaseWidth = 0 }},
		{"zero travel bound", func(c *StackConfig) { c.Blocks.TravelBound = 0 }},
		{"negative threshold", func(c *StackConfig) { c.Blocks.PerfectThreshold = -0.1 }},
		{"max below base speed", func(c *StackConfig) { c.Physics.MaxSpeed = 1 }},
		{"negative speed increase", func(c *StackConfig) { c.Physics.SpeedIncrease = -1 }},
		{"negative points", func(c *StackConfig) { c.Scoring.BasePoints = -10 }},
		{"zero particle duration", func(c *StackConfig) { c.Particles.PlaceMS = 0 }},
		{"zero particle cap", func(c *StackConfig) { c.Particles.Max = 0 }},
		{"NaN travel bound", func(c *StackConfig) { c.Blocks.TravelBound = math.NaN() }},
		{"NaN block height", func(c *StackConfig) { c.Blocks.Height = math.NaN() }},
		{"NaN threshold", func(c *StackConfig) { c.Blocks.PerfectThreshold = math.NaN() }},
		{"NaN base depth", func(c *StackConfig) { c.Blocks.BaseDepth = math.NaN() }},
		{"infinite max speed", func(c *StackConfig) { c.Physics.MaxSpeed = math.Inf(1) }},
		{"NaN speed increase", func(c *StackConfig) { c.Physics.SpeedIncrease = math.NaN() }},
		{"NaN base speed", func(c *StackConfig) { c.Physics.BaseSpeed = math.NaN() }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultStackConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("error should wrap ErrInvalidSettings, got %v", err)
			}
		})
	}
}

func TestParseStackRejectsNonFiniteValues(t *testing.T) {
	cfg, err := ParseStack([]byte("blocks:\n  travel_bound: .nan\n  height: .nan\n"))
	if err != nil {
		t.Fatalf("ParseStack() failed: %v", err)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("Validate() = %v, want ErrInvalidSettings", err)
	}
}

func TestLoadStackCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stack.yaml")
	data := []byte("physics:\n  base_speed: 3\n  max_speed: 9\nblocks:\n  perfect_threshold: 0.2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadStack(path)
	if err != nil {
		t.Fatalf("LoadStack() failed: %v", err)
	}
	if cfg.Physics.BaseSpeed != 3 || cfg.Physics.MaxSpeed != 9 {
		t.Errorf("physics not overridden: %+v", cfg.Physics)
	}
	if cfg.Blocks.PerfectThreshold != 0.2 {
		t.Errorf("perfect_threshold = %v, expected 0.2", cfg.Blocks.PerfectThreshold)
	}
	// Unset keys keep their defaults
	if cfg.Physics.SpeedIncrease != 0.2 {
		t.Errorf("speed_increase = %v, expected default 0.2", cfg.Physics.SpeedIncrease)
	}
	if cfg.Blocks.Height != 0.5 {
		t.Errorf("height = %v, expected default 0.5", cfg.Blocks.Height)
	}
	if len(cfg.Colors) != len(DefaultColors) {
		t.Errorf("colors should keep the default palette, got %d entries", len(cfg.Colors))
	}
}

func TestLoadStackMissingCustomPath(t *testing.T) {
	_, err := LoadStack(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadStack() should fail for a missing custom file")
	}
}

func TestLoadStackMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadStack(path); err == nil {
		t.Fatal("LoadStack() should fail for malformed YAML")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyStackPreset(t *testing.T) {
	fixed := DefaultStackConfig()
	ApplyStackPreset(&fixed, DifficultyFixed)
	if fixed.Physics.SpeedIncrease != 0 {
		t.Errorf("fixed preset should disable progression, speed_increase = %v", fixed.Physics.SpeedIncrease)
	}

	hard := DefaultStackConfig()
	ApplyStackPreset(&hard, DifficultyHard)
	if hard.Physics.BaseSpeed <= DefaultStackConfig().Physics.BaseSpeed {
		t.Error("hard preset should raise base speed")
	}
	if hard.Blocks.PerfectThreshold >= DefaultStackConfig().Blocks.PerfectThreshold {
		t.Error("hard preset should tighten the perfect threshold")
	}

	normal := DefaultStackConfig()
	ApplyStackPreset(&normal, DifficultyNormal)
	if normal.Physics != DefaultStackConfig().Physics {
		t.Error("normal preset should not change physics")
	}

	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		cfg := DefaultStackConfig()
		ApplyStackPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q produced invalid config: %v", p, err)
		}
	}
}
