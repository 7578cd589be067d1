package search

import (
	"carocore/board"
	"carocore/candidates"
)

// mateScore mirrors blunext-chess/engine/search.go's mateScore constant:
// a magnitude well above any real evaluation, used to score a forced win
// and to prefer shorter mates by discounting it with currentDepth.
const mateScore = 1_000_000

// AlphaBeta is a reference implementation of the SearchFn collaborator
// (spec.md §6), grounded on blunext-chess/board/search.go's plain minimax
// and blunext-chess/engine/search.go's alpha-beta-with-TT shape, adapted
// from chess legal-move generation to Caro's WinDetector/CandidateGenerator
// pair. It is illustrative: spec.md §1 keeps the real evaluator and VCF
// solver external, so this type exists for tests, benchmarks, and
// cmd/carocli's demo game rather than as a specified component.
type AlphaBeta struct {
	Eval   EvalFn
	TT     *TranspositionTable
	Radius int
}

// Fn returns a SearchFn bound to this searcher's evaluator, table, and
// candidate radius.
func (a *AlphaBeta) Fn() SearchFn {
	return a.search
}

func (a *AlphaBeta) search(pos *board.SearchBoard, side board.Side, depth, alpha, beta int, allowNull bool, rootSide board.Side, currentDepth int) (int, int64) {
	var nodes int64 = 1

	if win := board.DetectWin(pos); win.HasWinner {
		// side-to-move never owns the just-completed line (it was the
		// opponent's move that produced it), so this is always a loss for
		// side; currentDepth discounts it so the search prefers the
		// longest delay of a loss / shortest path to a forced win, the
		// same mate-distance trick mateScore supports in the teacher.
		return -mateScore + currentDepth, nodes
	}

	if depth <= 0 {
		return a.Eval(pos, side), nodes
	}

	hash := pos.GetHash()
	alphaOrig := alpha
	var ttMove board.Move
	if a.TT != nil {
		if entry, found := a.TT.Probe(hash); found && int(entry.Depth) >= depth {
			switch entry.Flag {
			case TTFlagExact:
				return int(entry.Score), nodes
			case TTFlagLower:
				if int(entry.Score) > alpha {
					alpha = int(entry.Score)
				}
			case TTFlagUpper:
				if int(entry.Score) < beta {
					beta = int(entry.Score)
				}
			}
			if alpha >= beta {
				return int(entry.Score), nodes
			}
			ttMove = entry.BestMove
		}
	}

	cands := candidates.Candidates(pos, a.Radius)
	if len(cands) == 0 {
		return 0, nodes
	}
	orderCandidates(cands, ttMove)

	best := -infinity
	var bestMove board.Move
	for _, cand := range cands {
		undo := pos.MakeMove(cand.X, cand.Y, side)
		childScore, childNodes := a.search(pos, side.Opponent(), depth-1, -beta, -alpha, allowNull, rootSide, currentDepth+1)
		pos.UnmakeMove(undo)
		nodes += childNodes

		score := -childScore
		if score > best {
			best = score
			bestMove = cand
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	if a.TT != nil {
		flag := TTFlagExact
		switch {
		case best <= alphaOrig:
			flag = TTFlagUpper
		case best >= beta:
			flag = TTFlagLower
		}
		a.TT.Store(hash, int16(clampInt16(best)), int8(depth), flag, bestMove)
	}

	return best, nodes
}

// orderCandidates moves the transposition-table move to the front, the
// same "TT move first" ordering blunext-chess/engine/search.go applies
// before its MVV-LVA sort.
func orderCandidates(cands []board.Move, ttMove board.Move) {
	if ttMove == (board.Move{}) {
		return
	}
	for i, c := range cands {
		if c == ttMove {
			cands[0], cands[i] = cands[i], cands[0]
			return
		}
	}
}

func clampInt16(v int) int {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return v
}
