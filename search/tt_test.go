package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carocore/board"
)

func TestTranspositionTableSizeIsPowerOfTwo(t *testing.T) {
	tt := NewTranspositionTable(1)
	size := tt.Size()
	require.Greater(t, size, uint64(0))
	assert.Equal(t, size&(size-1), uint64(0), "size must be a power of two")
}

func TestTranspositionTableStoreProbeRoundTrip(t *testing.T) {
	tt := NewTranspositionTable(1)
	move := board.Move{X: 3, Y: 4, Side: board.Red}

	_, found := tt.Probe(0xdeadbeef)
	assert.False(t, found)

	tt.Store(0xdeadbeef, 123, 5, TTFlagExact, move)

	entry, found := tt.Probe(0xdeadbeef)
	require.True(t, found)
	assert.Equal(t, int16(123), entry.Score)
	assert.Equal(t, int8(5), entry.Depth)
	assert.Equal(t, TTFlagExact, entry.Flag)
	assert.Equal(t, move, entry.BestMove)
}

func TestTranspositionTableVerifiesStoredHashTag(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Store(0x0000000100000001, 1, 1, TTFlagExact, board.Move{})

	// A different hash that collides on the index but not the stored tag
	// must report a miss rather than returning the wrong entry.
	collidingHash := uint64(0x0000000200000001)
	if tt.index(collidingHash) == tt.index(0x0000000100000001) {
		_, found := tt.Probe(collidingHash)
		assert.False(t, found)
	}
}

func TestTranspositionTableClear(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Store(42, 1, 1, TTFlagExact, board.Move{})
	tt.Clear()
	_, found := tt.Probe(42)
	assert.False(t, found)
	assert.Equal(t, 0, tt.Hashfull())
}
