package search

import (
	"errors"

	"carocore/board"
)

// ErrNoCandidates is returned when Search is called with an empty
// candidate list (spec.md §7's NoCandidates, fatal and surfaced).
var ErrNoCandidates = errors.New("search: no candidates")

const infinity = 1 << 30

// Params bundles the depth and time bounds spec.md §4.5's contract takes.
// 0 < SoftBoundSeconds <= HardBoundSeconds and 1 <= MinDepth <= MaxDepth
// are preconditions the caller must uphold; violating them is a
// programming error (spec.md §7), not a recoverable condition, so Search
// panics rather than returning an error for it.
type Params struct {
	MinDepth, MaxDepth                int
	SoftBoundSeconds, HardBoundSeconds float64
}

func (p Params) validate() {
	if p.MinDepth < 1 || p.MinDepth > p.MaxDepth {
		panic("search: invalid depth bounds: need 1 <= MinDepth <= MaxDepth")
	}
	if p.SoftBoundSeconds <= 0 || p.SoftBoundSeconds > p.HardBoundSeconds {
		panic("search: invalid time bounds: need 0 < SoftBoundSeconds <= HardBoundSeconds")
	}
}

// Driver is the time-bounded iterative-deepening root search (spec.md
// §4.5, component C5). Grounded on blunext-chess/engine/session.go's
// SearchWithTime loop, generalized from a chess-specific minimax into the
// spec's abstract search_fn collaborator and from a single depth bound
// into the soft/hard two-bound model.
//
// SearchFn is called with scores from the perspective of the side to move
// at that node (negamax convention): Search negates the child score before
// comparing, so SearchFn's own internal recursion is responsible for
// negating across its own plies.
type Driver struct {
	SearchFn            SearchFn
	OnIterationComplete IterationCompleteFn
}

// Search performs the contract in spec.md §4.5: time-bounded iterative
// deepening that always returns a usable move.
func (d *Driver) Search(pos *board.SearchBoard, side board.Side, candidates []board.Move, params Params) (SearchResult, error) {
	if len(candidates) == 0 {
		return SearchResult{}, ErrNoCandidates
	}
	params.validate()

	clk := newClock()

	// Always-a-move guarantee (spec.md §4.5): the worst case is the first
	// seed-ordered candidate at min_depth, committed before any iteration
	// runs so a hard-bound trip on iteration 1 still returns this.
	best := SearchResult{
		X:             candidates[0].X,
		Y:             candidates[0].Y,
		DepthAchieved: params.MinDepth,
	}

	var totalNodes int64
	prevIterationNodes := int64(1)

	for depth := params.MinDepth; depth <= params.MaxDepth; depth++ {
		elapsed := clk.Elapsed().Seconds()
		if elapsed >= params.HardBoundSeconds {
			break
		}
		if elapsed > params.SoftBoundSeconds && elapsed*2.5 > params.HardBoundSeconds {
			break
		}

		iterBest, iterNodes, completed := d.runRootIteration(pos, side, candidates, depth, clk, params.HardBoundSeconds)
		if !completed {
			// Partial-iteration policy (spec.md §4.5, DESIGN.md Open
			// Question 1): discard; the previously committed best (from a
			// shallower iteration, or the min_depth fallback) stands.
			break
		}

		totalNodes += iterNodes
		best = SearchResult{
			X:             iterBest.X,
			Y:             iterBest.Y,
			DepthAchieved: depth,
			NodesSearched: totalNodes,
			Score:         iterBest.Score,
		}

		if d.OnIterationComplete != nil {
			d.OnIterationComplete(depth, iterNodes)
		}

		elapsed = clk.Elapsed().Seconds()
		if elapsed >= 0.9*params.SoftBoundSeconds {
			break
		}
		if prevIterationNodes > 0 {
			ratio := float64(iterNodes) / float64(prevIterationNodes)
			if elapsed*ratio > params.HardBoundSeconds {
				break
			}
		}
		prevIterationNodes = iterNodes
	}

	best.ElapsedSeconds = clk.ElapsedSeconds()
	return best, nil
}

type rootResult struct {
	X, Y, Score int
}

// runRootIteration runs one depth-limited root alpha-beta pass over the
// ordered candidates, returning completed=false if the hard bound trips
// before every candidate is examined.
func (d *Driver) runRootIteration(pos *board.SearchBoard, side board.Side, candidates []board.Move, depth int, clk *clock, hardBound float64) (rootResult, int64, bool) {
	alpha, beta := -infinity, infinity
	var best rootResult
	var nodes int64
	haveBest := false

	for _, cand := range candidates {
		if clk.Elapsed().Seconds() >= hardBound {
			return rootResult{}, nodes, false
		}

		undo := pos.MakeMove(cand.X, cand.Y, side)
		childScore, childNodes := d.SearchFn(pos, side.Opponent(), depth-1, -beta, -alpha, true, side, 1)
		pos.UnmakeMove(undo)
		score := -childScore
		nodes += childNodes

		if clk.Elapsed().Seconds() >= hardBound {
			return rootResult{}, nodes, false
		}

		if !haveBest || score > best.Score {
			best = rootResult{X: cand.X, Y: cand.Y, Score: score}
			haveBest = true
		}
		if score > alpha {
			alpha = score
		}
	}

	return best, nodes, true
}
