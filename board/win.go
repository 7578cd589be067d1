package board

import "carocore/bitset"

// Position is the read-only coordinate the WinDetector scans: "does (x, y)
// hold a stone, and whose". SearchBoard satisfies it directly via PlayerAt.
type Position interface {
	PlayerAt(x, y int) Side
}

// direction is one of the four canonical scan directions spec.md §4.3
// names: (1,0) right, (0,1) down, (1,1) down-right and (1,-1) up-right, the
// last covering the down-left/up-right anti-diagonals. Each is one of the
// four line families; the opposite directions are not needed because every
// occupied cell is tried as a run start, which is why four directions, not
// eight, cover every line on the grid.
type direction struct{ dx, dy int }

var directions = [4]direction{
	{1, 0},
	{0, 1},
	{1, 1},
	{1, -1},
}

// WinResult reports whether a five-in-a-row exists and, if so, who owns it
// and which five cells form it (spec.md §6).
type WinResult struct {
	HasWinner   bool
	Winner      Side
	WinningLine [5][2]int
}

// DetectWin scans every occupied cell in each canonical direction for a
// run of exactly five same-side stones that is neither an overline nor
// blocked at both ends (the Caro rule, spec.md §4.3).
//
// Because the scan starts at every occupied cell, a true five-run is always
// examined starting from its first stone in the chosen direction, so the
// no-overline check only needs to look one cell before the start and one
// cell past the fifth stone.
func DetectWin(pos Position) WinResult {
	for y := 0; y < boardSize; y++ {
		for x := 0; x < boardSize; x++ {
			side := pos.PlayerAt(x, y)
			if side == None {
				continue
			}
			for _, d := range directions {
				if res, ok := checkRun(pos, x, y, d, side); ok {
					return res
				}
			}
		}
	}
	return WinResult{}
}

// checkRun tests the run starting at (x, y) in direction d for side.
func checkRun(pos Position, x, y int, d direction, side Side) (WinResult, bool) {
	count := 0
	for count < 6 {
		cx, cy := x+d.dx*count, y+d.dy*count
		if pos.PlayerAt(cx, cy) != side {
			break
		}
		count++
	}
	if count != 5 {
		return WinResult{}, false
	}

	// No overline: the cell just before the start and the sixth cell must
	// not also be side's stone.
	beforeX, beforeY := x-d.dx, y-d.dy
	afterX, afterY := x+d.dx*5, y+d.dy*5
	if pos.PlayerAt(beforeX, beforeY) == side || pos.PlayerAt(afterX, afterY) == side {
		return WinResult{}, false
	}

	// Not both ends blocked: an end is blocked if off-board or held by the
	// opponent.
	opponent := side.Opponent()
	startBlocked := !bitset.InBounds(beforeX, beforeY) || pos.PlayerAt(beforeX, beforeY) == opponent
	endBlocked := !bitset.InBounds(afterX, afterY) || pos.PlayerAt(afterX, afterY) == opponent
	if startBlocked && endBlocked {
		return WinResult{}, false
	}

	var line [5][2]int
	for i := 0; i < 5; i++ {
		line[i] = [2]int{x + d.dx*i, y + d.dy*i}
	}
	return WinResult{HasWinner: true, Winner: side, WinningLine: line}, true
}
