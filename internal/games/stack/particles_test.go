package stack

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-stack/internal/config"
	"github.com/vovakirdan/tui-stack/internal/core"
)

func newTestParticles() *ParticleManager {
	return NewParticleManager(config.DefaultStackConfig().Particles, idSource{r: rand.New(rand.NewSource(1))})
}

func TestParticleDurations(t *testing.T) {
	m := newTestParticles()
	now := time.Unix(100, 0)

	assert.Equal(t, 2*time.Second, m.Spawn(ParticlePerfect, core.Vec3{}, now).Duration)
	assert.Equal(t, time.Second, m.Spawn(ParticlePlace, core.Vec3{}, now).Duration)
	assert.Equal(t, time.Second, m.Spawn(ParticleFall, core.Vec3{}, now).Duration)

	p := m.Spawn(ParticlePlace, core.V3(1, 2, 3), now)
	assert.Equal(t, now, p.StartTime)
	assert.Equal(t, core.V3(1, 2, 3), p.Position)
	assert.NotEmpty(t, p.ID)
}

func TestParticleExpiryBoundary(t *testing.T) {
	m := newTestParticles()
	t0 := time.Unix(100, 0)

	for _, kind := range []ParticleKind{ParticlePerfect, ParticlePlace, ParticleFall} {
		p := m.Spawn(kind, core.Vec3{}, t0)
		set := []Particle{p}

		alive := m.Expire(set, t0.Add(p.Duration-time.Millisecond))
		require.Len(t, alive, 1, "%s should be alive just before its duration", kind)

		assert.Empty(t, m.Expire(set, t0.Add(p.Duration)), "%s should expire at its duration", kind)
	}
}

func TestParticleExpireFilters(t *testing.T) {
	m := newTestParticles()
	t0 := time.Unix(100, 0)

	set := []Particle{
		m.Spawn(ParticlePlace, core.Vec3{}, t0),
		m.Spawn(ParticlePerfect, core.Vec3{}, t0),
		m.Spawn(ParticlePlace, core.Vec3{}, t0.Add(800*time.Millisecond)),
	}

	alive := m.Expire(set, t0.Add(1500*time.Millisecond))
	require.Len(t, alive, 2)
	assert.Equal(t, set[1].ID, alive[0].ID)
	assert.Equal(t, set[2].ID, alive[1].ID)
	assert.Len(t, set, 3, "input set is left untouched")
}

func TestParticleAge(t *testing.T) {
	m := newTestParticles()
	t0 := time.Unix(100, 0)
	p := m.Spawn(ParticlePerfect, core.Vec3{}, t0)

	assert.Equal(t, 0.0, p.Age(t0))
	assert.InDelta(t, 0.5, p.Age(t0.Add(time.Second)), 1e-9)
	assert.Equal(t, 1.0, p.Age(t0.Add(5*time.Second)))
	assert.Equal(t, 0.0, p.Age(t0.Add(-time.Second)))
}

func TestParticleCapDropsOldest(t *testing.T) {
	cfg := config.DefaultStackConfig().Particles
	cfg.Max = 3
	m := NewParticleManager(cfg, idSource{r: rand.New(rand.NewSource(1))})
	t0 := time.Unix(100, 0)

	var set []Particle
	var ids []string
	for i := 0; i < 5; i++ {
		p := m.Spawn(ParticlePlace, core.Vec3{}, t0.Add(time.Duration(i)*time.Millisecond))
		ids = append(ids, p.ID)
		set = m.Add(set, p)
	}

	require.Len(t, set, 3)
	assert.Equal(t, ids[2:], []string{set[0].ID, set[1].ID, set[2].ID})
}
