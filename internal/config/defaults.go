package config

import (
	_ "embed"
)

//go:embed defaults/stack.yaml
var defaultStackYAML []byte

// DefaultColors is the stock block palette.
var DefaultColors = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7",
	"#DDA0DD", "#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E9",
}

// DefaultStackConfig returns the default stack configuration.
func DefaultStackConfig() StackConfig {
	return StackConfig{
		Physics: StackPhysics{
			BaseSpeed:     2,
			SpeedIncrease: 0.2,
			MaxSpeed:      8,
		},
		Blocks: StackBlocks{
			Height:           0.5,
			BaseWidth:        2,
			BaseDepth:        2,
			TravelBound:      4,
			PerfectThreshold: 0.1,
			BaseColor:        "#34495e",
		},
		Scoring: StackScoring{
			BasePoints:    10,
			PerfectPoints: 50,
			StreakBonus:   10,
		},
		Particles: StackParticles{
			PerfectMS: 2000,
			PlaceMS:   1000,
			FallMS:    1000,
			Max:       100,
		},
		Colors: append([]string(nil), DefaultColors...),
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultStackYAML
}
