package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carocore/board"
	"carocore/candidates"
)

func TestDriverPanicsOnInvalidDepthBounds(t *testing.T) {
	d := &Driver{SearchFn: func(*board.SearchBoard, board.Side, int, int, int, bool, board.Side, int) (int, int64) { return 0, 1 }}
	pos := board.New()
	assert.Panics(t, func() {
		d.Search(pos, board.Red, []board.Move{{X: 8, Y: 8}}, Params{MinDepth: 3, MaxDepth: 1, SoftBoundSeconds: 1, HardBoundSeconds: 2})
	})
}

func TestDriverPanicsOnInvalidTimeBounds(t *testing.T) {
	d := &Driver{SearchFn: func(*board.SearchBoard, board.Side, int, int, int, bool, board.Side, int) (int, int64) { return 0, 1 }}
	pos := board.New()
	assert.Panics(t, func() {
		d.Search(pos, board.Red, []board.Move{{X: 8, Y: 8}}, Params{MinDepth: 1, MaxDepth: 1, SoftBoundSeconds: 2, HardBoundSeconds: 1})
	})
}

func TestDriverReturnsErrNoCandidates(t *testing.T) {
	d := &Driver{SearchFn: func(*board.SearchBoard, board.Side, int, int, int, bool, board.Side, int) (int, int64) { return 0, 1 }}
	pos := board.New()
	_, err := d.Search(pos, board.Red, nil, Params{MinDepth: 1, MaxDepth: 1, SoftBoundSeconds: 1, HardBoundSeconds: 1})
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestDriverAlwaysAMoveGuaranteeUnderImmediateHardBound(t *testing.T) {
	// A search_fn slow enough to blow through the hard bound on the very
	// first root candidate; the driver must still return candidates[0]
	// rather than a partial, un-committed iteration result.
	d := &Driver{SearchFn: func(pos *board.SearchBoard, side board.Side, depth, alpha, beta int, allowNull bool, rootSide board.Side, currentDepth int) (int, int64) {
		time.Sleep(20 * time.Millisecond)
		return 0, 1
	}}
	pos := board.New()
	cands := []board.Move{{X: 2, Y: 2}, {X: 9, Y: 9}}
	result, err := d.Search(pos, board.Red, cands, Params{MinDepth: 1, MaxDepth: 20, SoftBoundSeconds: 0.001, HardBoundSeconds: 0.002})
	require.NoError(t, err)
	assert.Equal(t, cands[0].X, result.X)
	assert.Equal(t, cands[0].Y, result.Y)
	assert.Equal(t, 1, result.DepthAchieved)
}

// TestDriverPartialIterationIsDiscardedNotCommitted pins spec.md §9 Open
// Question 1's fix: a completed depth-1 iteration must stay committed even
// though depth-2 is entered and then truncated mid-root-loop by the hard
// bound. A regressed driver that assigns best = iterBest before checking
// completed would instead surface depth 2's zero-value partial result
// (X=0, Y=0) here, since neither seeded candidate sits at the origin.
func TestDriverPartialIterationIsDiscardedNotCommitted(t *testing.T) {
	searchFn := func(pos *board.SearchBoard, side board.Side, depth, alpha, beta int, allowNull bool, rootSide board.Side, currentDepth int) (int, int64) {
		if depth == 0 {
			time.Sleep(5 * time.Millisecond) // cheap: lets depth 1 complete
		} else {
			time.Sleep(40 * time.Millisecond) // expensive: trips the hard bound mid depth-2
		}
		return 0, 1
	}
	d := &Driver{SearchFn: searchFn}
	pos := board.New()
	cands := []board.Move{{X: 2, Y: 2}, {X: 9, Y: 9}}

	result, err := d.Search(pos, board.Red, cands, Params{
		MinDepth: 1, MaxDepth: 5, SoftBoundSeconds: 0.020, HardBoundSeconds: 0.085,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.DepthAchieved)
	assert.Equal(t, cands[0].X, result.X)
	assert.Equal(t, cands[0].Y, result.Y)
}

func TestDriverWithAlphaBetaReachesMinDepth(t *testing.T) {
	pos := board.New()
	pos.MakeMove(8, 8, board.Red)
	pos.MakeMove(7, 7, board.Blue)

	ab := &AlphaBeta{Eval: stoneCountEval, Radius: 2, TT: NewTranspositionTable(1)}
	d := &Driver{SearchFn: ab.Fn()}

	cands := candidates.Candidates(pos, 2)
	result, err := d.Search(pos, board.Red, cands, Params{MinDepth: 1, MaxDepth: 3, SoftBoundSeconds: 5, HardBoundSeconds: 10})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.DepthAchieved, 1)
	assert.True(t, result.X >= 0 && result.X < 16 && result.Y >= 0 && result.Y < 16)
}

func TestDriverDepthAchievedIsMonotonicNonDecreasingAcrossCalls(t *testing.T) {
	pos := board.New()
	pos.MakeMove(8, 8, board.Red)

	ab := &AlphaBeta{Eval: stoneCountEval, Radius: 2}
	d := &Driver{SearchFn: ab.Fn()}
	cands := candidates.Candidates(pos, 2)

	shallow, err := d.Search(pos, board.Blue, cands, Params{MinDepth: 1, MaxDepth: 1, SoftBoundSeconds: 5, HardBoundSeconds: 10})
	require.NoError(t, err)
	deep, err := d.Search(pos, board.Blue, cands, Params{MinDepth: 1, MaxDepth: 2, SoftBoundSeconds: 5, HardBoundSeconds: 10})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, deep.DepthAchieved, shallow.DepthAchieved)
}
