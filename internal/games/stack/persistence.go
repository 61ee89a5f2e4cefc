package stack

import "sync"

// BestScoreKey names the best-score record in the persistence store.
const BestScoreKey = "stackGameBestScore"

// GameID identifies this game in run history.
const GameID = "stack"

// Persistence stores scalar records across sessions.
//
// Save stores the value unconditionally. Keeping the best score monotonic is
// the caller's job: the game only saves when a run beats the stored value.
type Persistence interface {
	Load(key string) (int, error)
	Save(key string, score int) error
}

// loadBest reads the best score, treating any failure as 0.
func loadBest(p Persistence) int {
	if p == nil {
		return 0
	}
	v, err := p.Load(BestScoreKey)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// MemoryPersistence keeps records in process memory.
// The zero value is ready to use. Safe for concurrent use.
type MemoryPersistence struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMemoryPersistence creates an empty in-memory store.
func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{values: make(map[string]int)}
}

// Load returns the stored value or 0 if absent.
func (m *MemoryPersistence) Load(key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

// Save stores the value.
func (m *MemoryPersistence) Save(key string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]int)
	}
	m.values[key] = score
	return nil
}

// Ensure MemoryPersistence implements Persistence
var _ Persistence = (*MemoryPersistence)(nil)
