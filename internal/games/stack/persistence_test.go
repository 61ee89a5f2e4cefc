package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPersistence(t *testing.T) {
	m := NewMemoryPersistence()

	v, err := m.Load(BestScoreKey)
	require.NoError(t, err)
	assert.Equal(t, 0, v, "absent key reads as 0")

	require.NoError(t, m.Save(BestScoreKey, 320))
	v, err = m.Load(BestScoreKey)
	require.NoError(t, err)
	assert.Equal(t, 320, v)

	// Lower values are stored as given.
	require.NoError(t, m.Save(BestScoreKey, 5))
	v, _ = m.Load(BestScoreKey)
	assert.Equal(t, 5, v)
}

func TestMemoryPersistenceZeroValue(t *testing.T) {
	var m MemoryPersistence

	v, err := m.Load(BestScoreKey)
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	require.NoError(t, m.Save(BestScoreKey, 90))
	v, _ = m.Load(BestScoreKey)
	assert.Equal(t, 90, v)
}

func TestLoadBestFailsSoft(t *testing.T) {
	assert.Equal(t, 0, loadBest(nil))

	m := NewMemoryPersistence()
	m.Save(BestScoreKey, -12)
	assert.Equal(t, 0, loadBest(m), "negative records read as 0")

	m.Save(BestScoreKey, 40)
	assert.Equal(t, 40, loadBest(m))
}
