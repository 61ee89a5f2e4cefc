package stack

import (
	"math"

	"github.com/vovakirdan/tui-stack/internal/config"
)

// Scoring maps placement outcomes to points and levels to block speed.
// It holds only constants and keeps no state between calls.
type Scoring struct {
	basePoints    int
	perfectPoints int
	streakBonus   int

	baseSpeed     float64
	speedIncrease float64
	maxSpeed      float64
}

// NewScoring builds the scoring rules from settings.
func NewScoring(cfg config.StackConfig) Scoring {
	return Scoring{
		basePoints:    cfg.Scoring.BasePoints,
		perfectPoints: cfg.Scoring.PerfectPoints,
		streakBonus:   cfg.Scoring.StreakBonus,
		baseSpeed:     cfg.Physics.BaseSpeed,
		speedIncrease: cfg.Physics.SpeedIncrease,
		maxSpeed:      cfg.Physics.MaxSpeed,
	}
}

// PointsFor returns the points for one placement.
// streakBefore is the perfect streak as it stood before this placement.
func (s Scoring) PointsFor(isPerfect bool, streakBefore int) int {
	if isPerfect {
		return s.perfectPoints + streakBefore*s.streakBonus
	}
	return s.basePoints
}

// SpeedFor returns the lateral speed of blocks spawned at the given level.
// Non-decreasing in level and capped at the configured maximum.
func (s Scoring) SpeedFor(level int) float64 {
	return math.Min(s.baseSpeed+float64(level)*s.speedIncrease, s.maxSpeed)
}

// NextStreak returns the streak after a placement.
// Any non-perfect placement resets it to zero.
func NextStreak(isPerfect bool, streak int) int {
	if isPerfect {
		return streak + 1
	}
	return 0
}
