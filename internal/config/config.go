// Package config provides YAML-based settings loading, validation and
// difficulty presets for the stack game.
package config

// StackConfig contains all tunable settings for the stack game.
// It is constructed once and never mutated while a session runs.
type StackConfig struct {
	Physics   StackPhysics   `yaml:"physics"`
	Blocks    StackBlocks    `yaml:"blocks"`
	Scoring   StackScoring   `yaml:"scoring"`
	Particles StackParticles `yaml:"particles"`
	Colors    []string       `yaml:"colors"` // Block palette, picked by level mod len
}

// StackPhysics defines the lateral speed curve.
type StackPhysics struct {
	BaseSpeed     float64 `yaml:"base_speed"`     // Units per second at level 0
	SpeedIncrease float64 `yaml:"speed_increase"` // Added per level
	MaxSpeed      float64 `yaml:"max_speed"`      // Hard cap
}

// StackBlocks defines block geometry and the alignment tolerance.
type StackBlocks struct {
	Height           float64 `yaml:"height"`
	BaseWidth        float64 `yaml:"base_width"`
	BaseDepth        float64 `yaml:"base_depth"`
	TravelBound      float64 `yaml:"travel_bound"`      // Half the arena width
	PerfectThreshold float64 `yaml:"perfect_threshold"` // Alignment error below this is perfect
	BaseColor        string  `yaml:"base_color"`
}

// StackScoring defines the points table.
type StackScoring struct {
	BasePoints    int `yaml:"base_points"`
	PerfectPoints int `yaml:"perfect_points"`
	StreakBonus   int `yaml:"streak_bonus"`
}

// StackParticles defines effect lifetimes in milliseconds.
type StackParticles struct {
	PerfectMS int `yaml:"perfect_ms"`
	PlaceMS   int `yaml:"place_ms"`
	FallMS    int `yaml:"fall_ms"`
	Max       int `yaml:"max"` // Upper bound on live particles
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
