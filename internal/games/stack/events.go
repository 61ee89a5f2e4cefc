package stack

// Event is something the engine reports to its collaborators (audio, UI).
// Events are delivered synchronously, in order, at the moment they happen.
type Event interface {
	stackEvent()
}

// Listener receives engine events. It must not call back into the game.
type Listener func(Event)

// BlockPlacedEvent is emitted after a normal (trimmed) placement.
type BlockPlacedEvent struct {
	Block  Block
	Points int
	Score  int
	Level  int
}

func (BlockPlacedEvent) stackEvent() {}

// PerfectPlacedEvent is emitted after a perfect placement instead of BlockPlacedEvent.
type PerfectPlacedEvent struct {
	Block  Block
	Points int
	Score  int
	Level  int
	Streak int // Streak including this placement
}

func (PerfectPlacedEvent) stackEvent() {}

// GameOverEvent is emitted when a block misses the tower.
type GameOverEvent struct {
	Score     int
	BestScore int
	NewBest   bool
}

func (GameOverEvent) stackEvent() {}

// MusicShouldPlayEvent is emitted when the game enters the playing phase.
type MusicShouldPlayEvent struct{}

func (MusicShouldPlayEvent) stackEvent() {}

// MusicShouldStopEvent is emitted when the game leaves the playing phase.
type MusicShouldStopEvent struct{}

func (MusicShouldStopEvent) stackEvent() {}

// PersistenceFailedEvent reports that the best score could not be stored.
// The engine does not retry.
type PersistenceFailedEvent struct {
	Err error
}

func (PersistenceFailedEvent) stackEvent() {}
