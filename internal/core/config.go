package core

import "time"

// RuntimeConfig contains configuration passed to the game driver at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Clock supplies wall-clock time to the engine.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves when told to. Used by tests and replays.
type ManualClock struct {
	T time.Time
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	return c.T
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}
