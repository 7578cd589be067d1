package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carocore/board"
	"carocore/candidates"
)

func TestParallelDriverReturnsAMoveFromSharedTT(t *testing.T) {
	pos := board.New()
	pos.MakeMove(8, 8, board.Red)
	pos.MakeMove(7, 7, board.Blue)

	tt := NewTranspositionTable(1)
	pd := &ParallelDriver{
		NewWorkerFn: func(tt *TranspositionTable) SearchFn {
			return (&AlphaBeta{Eval: stoneCountEval, Radius: 2, TT: tt}).Fn()
		},
		TT:         tt,
		NumThreads: 3,
	}

	cands := candidates.Candidates(pos, 2)
	result, err := pd.Search(pos, board.Red, cands, Params{MinDepth: 1, MaxDepth: 2, SoftBoundSeconds: 5, HardBoundSeconds: 10})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.DepthAchieved, 1)
}

func TestParallelDriverDefaultsThreadCountWhenUnset(t *testing.T) {
	pos := board.New()
	tt := NewTranspositionTable(1)
	pd := &ParallelDriver{
		NewWorkerFn: func(tt *TranspositionTable) SearchFn {
			return (&AlphaBeta{Eval: stoneCountEval, Radius: 2, TT: tt}).Fn()
		},
		TT: tt,
	}

	cands := candidates.Candidates(pos, 2)
	result, err := pd.Search(pos, board.Red, cands, Params{MinDepth: 1, MaxDepth: 1, SoftBoundSeconds: 5, HardBoundSeconds: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, result.DepthAchieved)
}

func TestParallelDriverWorkersDoNotMutateOriginalPosition(t *testing.T) {
	pos := board.New()
	pos.MakeMove(8, 8, board.Red)
	before := pos.GetHash()

	tt := NewTranspositionTable(1)
	pd := &ParallelDriver{
		NewWorkerFn: func(tt *TranspositionTable) SearchFn {
			return (&AlphaBeta{Eval: stoneCountEval, Radius: 2, TT: tt}).Fn()
		},
		TT:         tt,
		NumThreads: 2,
	}
	cands := candidates.Candidates(pos, 2)
	_, err := pd.Search(pos, board.Blue, cands, Params{MinDepth: 1, MaxDepth: 2, SoftBoundSeconds: 5, HardBoundSeconds: 10})
	require.NoError(t, err)

	assert.Equal(t, before, pos.GetHash())
}
