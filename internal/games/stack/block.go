// Package stack implements the tower-stacking game engine.
//
// A block slides back and forth above the top of the tower. Placing it keeps
// only the part that overlaps the block below; missing entirely ends the run,
// and landing almost exactly on top keeps the full footprint and pays a bonus.
// The engine is pure simulation: rendering, audio and input live in the
// platform layer and talk to it through Snapshot, events and intents.
package stack

import (
	"io"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-stack/internal/core"
)

// BaseBlockID identifies the immovable block at the bottom of every tower.
const BaseBlockID = "base-block"

// Block is a placed or in-flight rectangular prism.
// Position is the center of the prism; Size holds width, height and depth.
type Block struct {
	ID               string
	Position         core.Vec3
	Size             core.Vec3
	Color            string
	IsMoving         bool
	Direction        int     // -1 or +1 while moving, 0 once stationary
	Speed            float64 // Lateral units per second, fixed at spawn
	IsPlaced         bool
	PerfectAlignment bool
}

// SpanX returns the block's footprint on the X axis.
func (b Block) SpanX() core.Span {
	return core.SpanAround(b.Position.X, b.Size.X)
}

// SpanZ returns the block's footprint on the Z axis.
func (b Block) SpanZ() core.Span {
	return core.SpanAround(b.Position.Z, b.Size.Z)
}

// Top returns the Y coordinate of the block's upper face.
func (b Block) Top() float64 {
	return b.Position.Y + b.Size.Y/2
}

// idSource draws ids from the game's seeded RNG so replays with the same
// seed produce identical ids.
type idSource struct {
	r io.Reader
}

func (s idSource) next(prefix string) string {
	id, err := uuid.NewRandomFromReader(s.r)
	if err != nil {
		id = uuid.New()
	}
	return prefix + "-" + id.String()
}
