package config

import "fmt"

// ParsePreset converts a flag value into a DifficultyPreset.
// The empty string maps to DifficultyNormal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyStackPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded settings untouched.
func ApplyStackPreset(cfg *StackConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.BaseSpeed *= 0.75
		cfg.Physics.SpeedIncrease *= 0.5
		cfg.Blocks.PerfectThreshold *= 1.5
	case DifficultyHard:
		cfg.Physics.BaseSpeed *= 1.5
		cfg.Physics.SpeedIncrease *= 1.5
		cfg.Blocks.PerfectThreshold *= 0.5
	case DifficultyFixed:
		// No progression: every block moves at the base speed
		cfg.Physics.SpeedIncrease = 0
	}

	if cfg.Physics.MaxSpeed < cfg.Physics.BaseSpeed {
		cfg.Physics.MaxSpeed = cfg.Physics.BaseSpeed
	}
}
