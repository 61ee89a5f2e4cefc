package stack

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-stack/internal/core"
)

// Simulator moves the active block and spawns its successors.
type Simulator struct {
	bound   float64 // Blocks reflect when they would pass +/- bound
	height  float64
	colors  []string
	scoring Scoring
	rng     *rand.Rand
	ids     idSource
}

// NewSimulator creates a simulator. rng drives spawn sides and ids.
func NewSimulator(bound, blockHeight float64, colors []string, scoring Scoring, rng *rand.Rand) *Simulator {
	return &Simulator{
		bound:   bound,
		height:  blockHeight,
		colors:  append([]string(nil), colors...),
		scoring: scoring,
		rng:     rng,
		ids:     idSource{r: rng},
	}
}

// Advance moves a block along X by direction*speed*dt.
// If the move would cross the travel bound the direction flips and the
// position stays put for this tick.
func (s *Simulator) Advance(b Block, dt float64) Block {
	if !b.IsMoving {
		return b
	}

	x := b.Position.X + float64(b.Direction)*b.Speed*dt
	if math.Abs(x) > s.bound {
		b.Direction = -b.Direction
		return b
	}

	b.Position.X = x
	return b
}

// Spawn creates the moving block for level on top of last.
// It starts at one edge of the arena, picked at random, heading toward the center.
func (s *Simulator) Spawn(level int, last Block) Block {
	startX, direction := -s.bound, 1
	if s.rng.Float64() > 0.5 {
		startX, direction = s.bound, -1
	}

	return Block{
		ID:        s.ids.next("block"),
		Position:  core.V3(startX, last.Position.Y+s.height, last.Position.Z),
		Size:      last.Size,
		Color:     s.colors[level%len(s.colors)],
		IsMoving:  true,
		Direction: direction,
		Speed:     s.scoring.SpeedFor(level),
	}
}
