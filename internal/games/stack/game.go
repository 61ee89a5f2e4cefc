package stack

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stack/internal/config"
	"github.com/vovakirdan/tui-stack/internal/core"
)

// Phase is the coarse lifecycle state of a session.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Game is the session state machine. It owns the tower, the moving block,
// the score and the particle set, and is the only thing that mutates them.
//
// Game is not safe for concurrent use: the driver calls Tick and the intent
// methods one at a time.
type Game struct {
	cfg       config.StackConfig
	scoring   Scoring
	sim       *Simulator
	particles *ParticleManager
	clock     core.Clock
	store     Persistence
	listeners []Listener
	logger    *log.Logger
	seed      int64

	phase   Phase
	score   int
	level   int
	streak  int
	best    int
	blocks  []Block
	current *Block
	live    []Particle
}

// Option configures a Game at construction.
type Option func(*Game)

// WithSeed fixes the RNG seed so spawn sides and ids are reproducible.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

// WithClock replaces the wall clock used for particle lifetimes.
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithPersistence sets the best-score store.
func WithPersistence(p Persistence) Option {
	return func(g *Game) { g.store = p }
}

// WithListener subscribes l to engine events.
func WithListener(l Listener) Option {
	return func(g *Game) { g.Subscribe(l) }
}

// WithLogger sets the logger used for phase changes and persistence failures.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// New creates a game in the menu phase.
// It refuses settings that would produce undefined geometry.
func New(cfg config.StackConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("stack: %w", err)
	}
	cfg.Colors = append([]string(nil), cfg.Colors...)

	g := &Game{
		cfg:   cfg,
		clock: core.SystemClock{},
		seed:  time.Now().UnixNano(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	rng := rand.New(rand.NewSource(g.seed))
	g.scoring = NewScoring(cfg)
	g.sim = NewSimulator(cfg.Blocks.TravelBound, cfg.Blocks.Height, cfg.Colors, g.scoring, rng)
	g.particles = NewParticleManager(cfg.Particles, idSource{r: rng})
	g.best = loadBest(g.store)

	return g, nil
}

// Subscribe adds an event listener.
func (g *Game) Subscribe(l Listener) {
	if l != nil {
		g.listeners = append(g.listeners, l)
	}
}

// Start begins a new run. Valid from the menu or after game over.
func (g *Game) Start() {
	if g.phase != PhaseMenu && g.phase != PhaseGameOver {
		return
	}

	h := g.cfg.Blocks.Height
	base := Block{
		ID:               BaseBlockID,
		Position:         core.V3(0, -h/2, 0),
		Size:             core.V3(g.cfg.Blocks.BaseWidth, h, g.cfg.Blocks.BaseDepth),
		Color:            g.cfg.Blocks.BaseColor,
		IsPlaced:         true,
		PerfectAlignment: true,
	}
	next := g.sim.Spawn(0, base)

	g.score = 0
	g.level = 0
	g.streak = 0
	g.blocks = []Block{base}
	g.current = &next
	g.live = nil
	g.setPhase(PhasePlaying)
}

// Pause freezes the simulation. Only valid while playing.
func (g *Game) Pause() {
	if g.phase != PhasePlaying {
		return
	}
	g.setPhase(PhasePaused)
}

// Resume continues a paused run from where it froze.
func (g *Game) Resume() {
	if g.phase != PhasePaused {
		return
	}
	g.setPhase(PhasePlaying)
}

// Reset discards the run and returns to the menu. Valid from any phase.
func (g *Game) Reset() {
	g.score = 0
	g.level = 0
	g.streak = 0
	g.blocks = nil
	g.current = nil
	g.live = nil
	g.setPhase(PhaseMenu)
}

// Tick advances the moving block by dt seconds and expires particles.
// Does nothing unless playing.
func (g *Game) Tick(dt float64) {
	if g.phase != PhasePlaying {
		return
	}
	if g.current != nil {
		*g.current = g.sim.Advance(*g.current, dt)
	}
	g.live = g.particles.Expire(g.live, g.clock.Now())
}

// Place drops the moving block onto the tower.
// A miss ends the run; a hit commits the block and spawns the next one.
func (g *Game) Place() {
	if g.phase != PhasePlaying || g.current == nil || !g.current.IsMoving || len(g.blocks) == 0 {
		return
	}

	last := g.blocks[len(g.blocks)-1]
	p := Resolve(last, *g.current, g.cfg.Blocks.PerfectThreshold, g.cfg.Blocks.Height)
	if !p.OK {
		g.gameOver()
		return
	}

	now := g.clock.Now()
	points := g.scoring.PointsFor(p.Perfect, g.streak)
	g.streak = NextStreak(p.Perfect, g.streak)
	g.score += points
	g.level++
	g.blocks = append(g.blocks, p.Block)

	kind := ParticlePlace
	if p.Perfect {
		kind = ParticlePerfect
	}
	g.live = g.particles.Add(g.live, g.particles.Spawn(kind, p.Block.Position, now))

	next := g.sim.Spawn(g.level, p.Block)
	g.current = &next

	if p.Perfect {
		g.emit(PerfectPlacedEvent{Block: p.Block, Points: points, Score: g.score, Level: g.level, Streak: g.streak})
	} else {
		g.emit(BlockPlacedEvent{Block: p.Block, Points: points, Score: g.score, Level: g.level})
	}
}

// Apply routes an abstract input action to the matching intent.
func (g *Game) Apply(a core.Action) {
	switch a {
	case core.ActionStart:
		g.Start()
	case core.ActionPlace:
		g.Place()
	case core.ActionPause:
		g.Pause()
	case core.ActionResume:
		g.Resume()
	case core.ActionReset:
		g.Reset()
	}
}

// gameOver ends the run, recording an improved best score.
func (g *Game) gameOver() {
	missed := *g.current
	g.live = g.particles.Add(g.live, g.particles.Spawn(ParticleFall, missed.Position, g.clock.Now()))
	g.current = nil

	newBest := g.score > g.best
	if newBest {
		g.best = g.score
		if g.store != nil {
			if err := g.store.Save(BestScoreKey, g.best); err != nil {
				g.logger.Warn("could not save best score", "score", g.best, "error", err)
				g.emit(PersistenceFailedEvent{Err: err})
			}
		}
	}

	g.setPhase(PhaseGameOver)
	g.emit(GameOverEvent{Score: g.score, BestScore: g.best, NewBest: newBest})
}

// setPhase switches phase and emits music events on entering or leaving play.
func (g *Game) setPhase(p Phase) {
	old := g.phase
	if old == p {
		return
	}
	g.phase = p
	g.logger.Debug("phase changed", "from", old, "to", p, "score", g.score, "level", g.level)

	switch {
	case p == PhasePlaying:
		g.emit(MusicShouldPlayEvent{})
	case old == PhasePlaying:
		g.emit(MusicShouldStopEvent{})
	}
}

func (g *Game) emit(e Event) {
	for _, l := range g.listeners {
		l(e)
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Score returns the score of the current run.
func (g *Game) Score() int { return g.score }

// Level returns the number of blocks placed in the current run.
func (g *Game) Level() int { return g.level }

// BestScore returns the best score seen across sessions.
func (g *Game) BestScore() int { return g.best }

// Settings returns a copy of the settings the game was built with.
func (g *Game) Settings() config.StackConfig {
	cfg := g.cfg
	cfg.Colors = append([]string(nil), g.cfg.Colors...)
	return cfg
}
