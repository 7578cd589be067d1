// Package search implements the iterative-deepening driver (spec.md §4.5),
// the collaborator type contracts it is built on (search_fn, eval_fn), the
// shared transposition table, and the time-control and logging machinery
// the driver is wired to. It is the direct generalization of
// blunext-chess/engine's session/search_time/tt/logger quartet from a
// chess alpha-beta search to the Caro search core.
package search

import (
	"time"

	"carocore/board"
)

// SearchResult is the sole output of the driver (spec.md §6).
type SearchResult struct {
	X, Y           int
	DepthAchieved  int
	NodesSearched  int64
	ElapsedSeconds float64
	Score          int
}

// Move returns the result's move as a board.Move for the given side.
func (r SearchResult) Move(side board.Side) board.Move {
	return board.Move{X: r.X, Y: r.Y, Side: side}
}

// PV is an immutable ordered sequence of moves with an associated depth and
// score (spec.md §3). Index 0 is the root side's best reply; index 1 is
// the predicted opponent reply, used for pondering.
type PV struct {
	Moves []board.Move
	Depth int
	Score int
}

// ThreatKind tags the shape of a threat line (spec.md §3).
type ThreatKind uint8

const (
	StraightFour ThreatKind = iota
	BrokenFour
	StraightThree
	BrokenThree
)

// ThreatPriority is the static priority map spec.md §3 defines, used by the
// (external) VCF solver to order which threats to resolve first.
var ThreatPriority = map[ThreatKind]int{
	StraightFour:  100,
	BrokenFour:    80,
	StraightThree: 60,
	BrokenThree:   40,
}

// Threat is a tagged variant describing one unresolved threat line.
type Threat struct {
	Kind      ThreatKind
	Owner     board.Side
	Direction [2]int
	Stones    [][2]int
	Gain      [][2]int // squares where Owner completes the threat
	Cost      [][2]int // squares the opponent must respond at
}

// EvalFn is the external static evaluator collaborator (spec.md §6):
// eval_fn(search_board, side_to_move) -> score. Pure.
type EvalFn func(pos *board.SearchBoard, side board.Side) int

// SearchFn is the injected recursive search collaborator (spec.md §6):
// search_fn(board, side, depth, alpha, beta, allow_null, root_side,
// current_depth) -> (score, nodes). The driver requires only that it is
// referentially transparent in (board, side, depth, alpha, beta) and
// returns nodes searched in its subtree; it does not manage its own
// cancellation against the driver's clock (spec.md §5) beyond what the
// driver calls it with.
type SearchFn func(pos *board.SearchBoard, side board.Side, depth, alpha, beta int, allowNull bool, rootSide board.Side, currentDepth int) (score int, nodes int64)

// IterationCompleteFn is the optional callback fired after each completed
// iteration (spec.md §4.5), used by telemetry and pondering.
type IterationCompleteFn func(depth int, nodes int64)

// nowFn is overridable in tests so clock-dependent behaviour (soft/hard
// bound trips) can be exercised deterministically without sleeping.
var nowFn = time.Now
