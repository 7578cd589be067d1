package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carocore/board"
	"carocore/difficulty"
)

func TestBookMoveEmptyBoardReturnsCentreRegardlessOfDifficulty(t *testing.T) {
	// S1: empty board, Braindead difficulty -> (8, 8).
	pos := board.New()
	f := &Facade{}
	move, ok := f.BookMove(pos, board.Red, difficulty.Braindead, board.Move{})
	require.True(t, ok)
	assert.Equal(t, Centre, move)
}

func TestBookMoveUngatedDifficultyReturnsNone(t *testing.T) {
	pos := board.New()
	pos.MakeMove(8, 8, board.Red)

	f := &Facade{Store: &stubStore{move: board.Move{X: 1, Y: 1}, found: true}}
	_, ok := f.BookMove(pos, board.Blue, difficulty.Medium, board.Move{})
	assert.False(t, ok)
}

func TestBookMoveGatedDifficultyDelegatesToStore(t *testing.T) {
	pos := board.New()
	pos.MakeMove(8, 8, board.Red)

	wanted := board.Move{X: 9, Y: 9, Side: board.Blue}
	f := &Facade{Store: &stubStore{move: wanted, found: true}}
	move, ok := f.BookMove(pos, board.Blue, difficulty.Hard, board.Move{})
	require.True(t, ok)
	assert.Equal(t, wanted, move)
}

func TestBookMovePastOpeningPhaseReturnsNone(t *testing.T) {
	pos := board.New()
	side := board.Red
	for i := 0; i < openingPhaseStones; i++ {
		x, y := i%16, i/16
		pos.MakeMove(x, y, side)
		side = side.Opponent()
	}

	f := &Facade{Store: &stubStore{move: board.Move{X: 1, Y: 1}, found: true}}
	_, ok := f.BookMove(pos, board.Red, difficulty.Grandmaster, board.Move{})
	assert.False(t, ok)
}

func TestBookMoveNoStoreConfiguredReturnsNone(t *testing.T) {
	pos := board.New()
	pos.MakeMove(8, 8, board.Red)

	f := &Facade{}
	_, ok := f.BookMove(pos, board.Blue, difficulty.Hard, board.Move{})
	assert.False(t, ok)
}

type stubStore struct {
	move  board.Move
	found bool
}

func (s *stubStore) GetMove(canonicalPosition uint64, side board.Side, difficulty Difficulty) (board.Move, bool) {
	return s.move, s.found
}

func (s *stubStore) GetStatistics() Statistics {
	return Statistics{}
}
