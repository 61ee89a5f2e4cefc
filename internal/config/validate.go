package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidSettings is wrapped by every validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Validate checks the invariants the engine relies on.
// A config that fails here must not be used to build a game.
func (c StackConfig) Validate() error {
	if len(c.Colors) == 0 {
		return invalid("colors: palette is empty")
	}
	for i, hex := range c.Colors {
		if _, err := colorful.Hex(hex); err != nil {
			return invalid("colors[%d]: %q is not a hex color", i, hex)
		}
	}
	if c.Blocks.BaseColor != "" {
		if _, err := colorful.Hex(c.Blocks.BaseColor); err != nil {
			return invalid("blocks.base_color: %q is not a hex color", c.Blocks.BaseColor)
		}
	}

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"blocks.height", c.Blocks.Height},
		{"blocks.base_width", c.Blocks.BaseWidth},
		{"blocks.base_depth", c.Blocks.BaseDepth},
		{"blocks.travel_bound", c.Blocks.TravelBound},
		{"blocks.perfect_threshold", c.Blocks.PerfectThreshold},
		{"physics.base_speed", c.Physics.BaseSpeed},
		{"physics.speed_increase", c.Physics.SpeedIncrease},
		{"physics.max_speed", c.Physics.MaxSpeed},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return invalid("%s must be a finite number, got %v", f.name, f.v)
		}
	}

	if c.Blocks.Height <= 0 {
		return invalid("blocks.height must be positive, got %v", c.Blocks.Height)
	}
	if c.Blocks.BaseWidth <= 0 || c.Blocks.BaseDepth <= 0 {
		return invalid("blocks: base footprint must be positive, got %vx%v", c.Blocks.BaseWidth, c.Blocks.BaseDepth)
	}
	if c.Blocks.TravelBound <= 0 {
		return invalid("blocks.travel_bound must be positive, got %v", c.Blocks.TravelBound)
	}
	if c.Blocks.PerfectThreshold < 0 {
		return invalid("blocks.perfect_threshold must not be negative, got %v", c.Blocks.PerfectThreshold)
	}

	if c.Physics.BaseSpeed < 0 || c.Physics.SpeedIncrease < 0 {
		return invalid("physics: speeds must not be negative")
	}
	if c.Physics.MaxSpeed < c.Physics.BaseSpeed {
		return invalid("physics.max_speed (%v) is below base_speed (%v)", c.Physics.MaxSpeed, c.Physics.BaseSpeed)
	}

	if c.Scoring.BasePoints < 0 || c.Scoring.PerfectPoints < 0 || c.Scoring.StreakBonus < 0 {
		return invalid("scoring: points must not be negative")
	}

	if c.Particles.PerfectMS <= 0 || c.Particles.PlaceMS <= 0 || c.Particles.FallMS <= 0 {
		return invalid("particles: durations must be positive")
	}
	if c.Particles.Max <= 0 {
		return invalid("particles.max must be positive, got %d", c.Particles.Max)
	}

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalidSettings, fmt.Sprintf(format, args...))
}
