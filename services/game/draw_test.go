package game

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawNumberNeverRepeatsWithinACycle(t *testing.T) {
	c, _, _ := newTestCoordinator(t)
	st := c.room(1)
	total := c.cfg.MaxNumber - c.cfg.MinNumber + 1

	seen := make(map[int]bool)
	for i := 0; i < total; i++ {
		n := c.drawNumber(st)
		require.GreaterOrEqual(t, n, c.cfg.MinNumber)
		require.LessOrEqual(t, n, c.cfg.MaxNumber)
		require.False(t, seen[n], "number %d drawn twice in one cycle", n)
		seen[n] = true
	}
	assert.Len(t, st.sequence, total)
}

func TestDrawNumberCoversTheWholeRange(t *testing.T) {
	c, _, _ := newTestCoordinator(t)
	st := c.room(1)
	total := c.cfg.MaxNumber - c.cfg.MinNumber + 1

	for i := 0; i < total; i++ {
		c.drawNumber(st)
	}

	drawn := append([]int{}, st.sequence...)
	sort.Ints(drawn)
	for i, n := range drawn {
		assert.Equal(t, c.cfg.MinNumber+i, n)
	}
}

func TestDrawNumberWrapsAroundOnExhaustion(t *testing.T) {
	c, _, _ := newTestCoordinator(t)
	st := c.room(1)
	total := c.cfg.MaxNumber - c.cfg.MinNumber + 1

	for i := 0; i < total; i++ {
		c.drawNumber(st)
	}
	require.Len(t, st.drawn, total)

	// The cycle resets and drawing continues
	n := c.drawNumber(st)
	assert.GreaterOrEqual(t, n, c.cfg.MinNumber)
	assert.LessOrEqual(t, n, c.cfg.MaxNumber)
	assert.Len(t, st.drawn, 1)
	assert.Equal(t, []int{n}, st.sequence)
}

func TestDrawNumberLowRemainingEnumerationStaysUnique(t *testing.T) {
	c, _, _ := newTestCoordinator(t)
	st := c.room(1)
	total := c.cfg.MaxNumber - c.cfg.MinNumber + 1

	// Burn down to well inside the enumeration threshold
	for i := 0; i < total-3; i++ {
		c.drawNumber(st)
	}
	for i := 0; i < 3; i++ {
		n := c.drawNumber(st)
		assert.GreaterOrEqual(t, n, c.cfg.MinNumber)
		assert.LessOrEqual(t, n, c.cfg.MaxNumber)
	}
	assert.Len(t, st.drawn, total)
	assert.Len(t, st.sequence, total)
}

func TestDrawSequenceMatchesDrawnSet(t *testing.T) {
	c, _, _ := newTestCoordinator(t)
	st := c.room(1)

	for i := 0; i < 40; i++ {
		c.drawNumber(st)
	}

	require.Equal(t, len(st.sequence), len(st.drawn))
	for _, n := range st.sequence {
		_, ok := st.drawn[n]
		assert.True(t, ok, "sequence number %d missing from drawn set", n)
	}
}
