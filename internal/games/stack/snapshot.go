package stack

import "time"

// Snapshot is a read-only copy of the session for renderers.
// Mutating it has no effect on the game.
type Snapshot struct {
	Phase         Phase
	Score         int
	Level         int
	PerfectStreak int
	BestScore     int
	Blocks        []Block
	CurrentBlock  *Block // nil unless a block is in flight
	Particles     []Particle
	Now           time.Time // Clock reading used to age particles
}

// Snapshot returns a deep copy of the current session state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:         g.phase,
		Score:         g.score,
		Level:         g.level,
		PerfectStreak: g.streak,
		BestScore:     g.best,
		Blocks:        append([]Block(nil), g.blocks...),
		Particles:     append([]Particle(nil), g.live...),
		Now:           g.clock.Now(),
	}
	if g.current != nil {
		cur := *g.current
		s.CurrentBlock = &cur
	}
	return s
}

// Top returns the highest placed block, or false for an empty tower.
func (s Snapshot) Top() (Block, bool) {
	if len(s.Blocks) == 0 {
		return Block{}, false
	}
	return s.Blocks[len(s.Blocks)-1], true
}
