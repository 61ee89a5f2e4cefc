package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-stack/internal/games/stack"
)

// Load returns the integer record stored under key.
// A missing or unparseable record reads as 0 without error; only database
// failures are reported.
func (s *Store) Load(key string) (int, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load record %q: %w", key, err)
	}

	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, nil
	}
	return v, nil
}

// Save stores value under key, replacing any previous record.
// It does not compare against the old value.
func (s *Store) Save(key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO records (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, strconv.Itoa(value),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save record %q: %w", key, err)
	}
	return nil
}

// Ensure Store implements the engine's persistence gateway
var _ stack.Persistence = (*Store)(nil)
