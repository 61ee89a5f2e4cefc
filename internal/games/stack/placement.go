package stack

import (
	"math"

	"github.com/vovakirdan/tui-stack/internal/core"
)

// Placement is the outcome of dropping the moving block onto the tower.
type Placement struct {
	OK             bool    // False when the blocks do not overlap on X or Z
	Perfect        bool    // Alignment error below the threshold
	Block          Block   // Committed block, valid only when OK
	OverlapX       float64 // Intersection extent on X
	OverlapZ       float64 // Intersection extent on Z
	AlignmentError float64 // |dx| + |dz| between block centers
}

// Resolve computes how cur lands on last. It never mutates either block.
//
// A perfect landing keeps cur's full size and position. A normal landing
// trims the block to the intersection rectangle, centered on it.
func Resolve(last, cur Block, perfectThreshold, blockHeight float64) Placement {
	lastX, curX := last.SpanX(), cur.SpanX()
	lastZ, curZ := last.SpanZ(), cur.SpanZ()

	p := Placement{
		OverlapX: lastX.Overlap(curX),
		OverlapZ: lastZ.Overlap(curZ),
	}
	if p.OverlapX <= 0 || p.OverlapZ <= 0 {
		return p
	}

	p.OK = true
	p.AlignmentError = math.Abs(cur.Position.X-last.Position.X) + math.Abs(cur.Position.Z-last.Position.Z)
	p.Perfect = p.AlignmentError < perfectThreshold

	placed := cur
	placed.IsMoving = false
	placed.IsPlaced = true
	placed.Direction = 0
	placed.PerfectAlignment = p.Perfect

	if !p.Perfect {
		placed.Size = core.V3(p.OverlapX, blockHeight, p.OverlapZ)
		placed.Position = core.V3(
			lastX.Intersection(curX).Mid(),
			cur.Position.Y,
			lastZ.Intersection(curZ).Mid(),
		)
	}

	p.Block = placed
	return p
}
