// Package candidates implements the proximity-based candidate-move
// generator (spec.md §4.4): the empty cells within a Chebyshev radius of
// any occupied cell, seed-ordered for the search driver.
//
// The per-radius neighbor offset list is precomputed once, the same
// steps-table idiom blunext-chess/generator/generic.go uses for king/knight
// move offsets — generateGenericMoves there walks a static list of (file,
// rank) steps per square; here the steps are every (dx, dy) within the
// radius instead of a fixed knight/king pattern, because which absolute
// cells are candidates depends on which cells are occupied, not on a fixed
// board square.
package candidates

import (
	"sort"
	"sync"

	"carocore/board"
)

// DefaultRadius is the radius spec.md §4.4 names as the contract default.
const DefaultRadius = 2

// Centre is the fixed opening cell on the 16x16 grid (spec.md §4.4, §4.8).
const Centre = 8

const boardSize = 16

// offsetsByRadius caches the (dx, dy) neighbor offsets for each radius seen
// so far, since the set of offsets never depends on board state. Several
// Driver workers (search.ParallelDriver) call Candidates concurrently
// against a shared radius, so reads and the first-seen write are guarded by
// a mutex the same way blunext-chess/generator/generic.go sidesteps the
// problem entirely by building its per-square step tables once, up front.
var (
	offsetsMu       sync.RWMutex
	offsetsByRadius = map[int][][2]int{}
)

func offsets(radius int) [][2]int {
	offsetsMu.RLock()
	cached, ok := offsetsByRadius[radius]
	offsetsMu.RUnlock()
	if ok {
		return cached
	}

	offsetsMu.Lock()
	defer offsetsMu.Unlock()
	if cached, ok := offsetsByRadius[radius]; ok {
		return cached
	}

	var list [][2]int
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			list = append(list, [2]int{dx, dy})
		}
	}
	offsetsByRadius[radius] = list
	return list
}

// Candidates returns every empty cell within Chebyshev distance radius of
// some occupied cell, seed-ordered by
// 2*(Manhattan distance to centre) + (Manhattan distance to nearest stone),
// ascending, ties broken by (x, y) lexicographic order (spec.md §4.4).
//
// When the board has no stones, it returns only the centre cell — the
// opening contract the driver relies on.
func Candidates(pos *board.SearchBoard, radius int) []board.Move {
	if pos.TotalStones() == 0 {
		return []board.Move{{X: Centre, Y: Centre}}
	}

	stones := occupiedCells(pos)
	seen := make(map[[2]int]bool)
	var result []board.Move

	for _, s := range stones {
		for _, off := range offsets(radius) {
			x, y := s[0]+off[0], s[1]+off[1]
			if x < 0 || x >= boardSize || y < 0 || y >= boardSize {
				continue
			}
			if !pos.IsEmpty(x, y) {
				continue
			}
			key := [2]int{x, y}
			if seen[key] {
				continue
			}
			seen[key] = true
			result = append(result, board.Move{X: x, Y: y})
		}
	}

	seedOrder(result, stones)
	return result
}

func occupiedCells(pos *board.SearchBoard) [][2]int {
	var cells [][2]int
	for y := 0; y < boardSize; y++ {
		for x := 0; x < boardSize; x++ {
			if !pos.IsEmpty(x, y) {
				cells = append(cells, [2]int{x, y})
			}
		}
	}
	return cells
}

func manhattan(x1, y1, x2, y2 int) int {
	return abs(x1-x2) + abs(y1-y2)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

type scoredMove struct {
	move     board.Move
	priority int
}

// seedOrder sorts candidates in place by the seed-ordering formula spec.md
// §4.4 specifies, ascending, ties broken lexicographically.
func seedOrder(moves []board.Move, stones [][2]int) {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		toCentre := manhattan(m.X, m.Y, Centre, Centre)
		nearest := 1 << 30
		for _, s := range stones {
			if d := manhattan(m.X, m.Y, s[0], s[1]); d < nearest {
				nearest = d
			}
		}
		scored[i] = scoredMove{move: m, priority: 2*toCentre + nearest}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].priority != scored[j].priority {
			return scored[i].priority < scored[j].priority
		}
		if scored[i].move.X != scored[j].move.X {
			return scored[i].move.X < scored[j].move.X
		}
		return scored[i].move.Y < scored[j].move.Y
	})

	for i, s := range scored {
		moves[i] = s.move
	}
}
