package bench

import (
	"testing"

	"carocore/board"
	"carocore/candidates"
)

// BenchmarkCandidatesEmptyBoard adapts blunext-chess/bench/moves_test.go's
// BenchmarkGenerateMoves to the candidate generator: the empty-board case
// short-circuits to the centre seed, the cheapest path.
func BenchmarkCandidatesEmptyBoard(b *testing.B) {
	pos := board.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = candidates.Candidates(pos, candidates.DefaultRadius)
	}
}

// BenchmarkCandidatesMidGame adapts BenchmarkGenerateMoves_MidGame: a
// scattering of stones near the centre, the common case during a search.
func BenchmarkCandidatesMidGame(b *testing.B) {
	pos := midGamePosition()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = candidates.Candidates(pos, candidates.DefaultRadius)
	}
}

// BenchmarkCandidatesComplex adapts BenchmarkGenerateMoves_Complex: a dense
// cluster of stones, the case with the most offset/dedup work per call.
func BenchmarkCandidatesComplex(b *testing.B) {
	pos := denseClusterPosition()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = candidates.Candidates(pos, candidates.DefaultRadius)
	}
}

func midGamePosition() *board.SearchBoard {
	pos := board.New()
	stones := [][3]int{
		{8, 8, 0}, {9, 8, 1}, {8, 9, 0}, {7, 8, 1},
		{9, 9, 0}, {6, 7, 1}, {10, 10, 0},
	}
	for _, s := range stones {
		side := board.Red
		if s[2] == 1 {
			side = board.Blue
		}
		pos.MakeMove(s[0], s[1], side)
	}
	return pos
}

func denseClusterPosition() *board.SearchBoard {
	pos := board.New()
	side := board.Red
	for x := 5; x <= 10; x++ {
		for y := 5; y <= 10; y++ {
			pos.MakeMove(x, y, side)
			side = side.Opponent()
		}
	}
	return pos
}
