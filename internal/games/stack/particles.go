package stack

import (
	"time"

	"github.com/vovakirdan/tui-stack/internal/config"
	"github.com/vovakirdan/tui-stack/internal/core"
)

// ParticleKind selects the look and lifetime of an effect marker.
type ParticleKind string

const (
	ParticlePerfect ParticleKind = "perfect"
	ParticlePlace   ParticleKind = "place"
	ParticleFall    ParticleKind = "fall"
)

// Particle is a short-lived cosmetic marker. It has no physics: renderers
// derive motion and fade from Age.
type Particle struct {
	ID        string
	Position  core.Vec3 // Copied at spawn, never updated
	Kind      ParticleKind
	StartTime time.Time
	Duration  time.Duration
}

// Alive reports whether the particle is still within its time window.
func (p Particle) Alive(now time.Time) bool {
	return now.Sub(p.StartTime) < p.Duration
}

// Age returns the elapsed fraction of the particle's lifetime in [0, 1].
func (p Particle) Age(now time.Time) float64 {
	if p.Duration <= 0 {
		return 1
	}
	return core.ClampF(float64(now.Sub(p.StartTime))/float64(p.Duration), 0, 1)
}

// ParticleManager spawns and expires particles.
// It does not hold the particle set; the game owns it.
type ParticleManager struct {
	durations map[ParticleKind]time.Duration
	max       int
	ids       idSource
}

// NewParticleManager builds a manager from the particle settings.
func NewParticleManager(cfg config.StackParticles, ids idSource) *ParticleManager {
	return &ParticleManager{
		durations: map[ParticleKind]time.Duration{
			ParticlePerfect: time.Duration(cfg.PerfectMS) * time.Millisecond,
			ParticlePlace:   time.Duration(cfg.PlaceMS) * time.Millisecond,
			ParticleFall:    time.Duration(cfg.FallMS) * time.Millisecond,
		},
		max: cfg.Max,
		ids: ids,
	}
}

// Spawn creates a particle of the given kind starting at now.
func (m *ParticleManager) Spawn(kind ParticleKind, pos core.Vec3, now time.Time) Particle {
	return Particle{
		ID:        m.ids.next("particle"),
		Position:  pos,
		Kind:      kind,
		StartTime: now,
		Duration:  m.durations[kind],
	}
}

// Add appends p to the set, dropping the oldest entries beyond the cap.
func (m *ParticleManager) Add(set []Particle, p Particle) []Particle {
	set = append(set, p)
	if m.max > 0 && len(set) > m.max {
		set = append([]Particle(nil), set[len(set)-m.max:]...)
	}
	return set
}

// Expire returns the particles still alive at now, in a new slice.
func (m *ParticleManager) Expire(set []Particle, now time.Time) []Particle {
	var alive []Particle
	for _, p := range set {
		if p.Alive(now) {
			alive = append(alive, p)
		}
	}
	return alive
}
