// Package board implements the Caro/Gomoku position representation:
// the mutable SearchBoard with incremental Zobrist hashing and
// allocation-free make/unmake, and the WinDetector. It is the direct
// generalization of blunext-chess/board's Position/MakeMove/UnmakeMove/
// zobrist trio from an 8x8 chess position to a 16x16 Caro position with a
// single stone type per side.
package board

import "carocore/bitset"

// Bitset is the per-side stone set type this package builds on.
type Bitset = bitset.Board

const boardSize = bitset.Size

// SearchBoard owns exactly two bitsets (Red, Blue) and one incrementally
// maintained hash. Invariant: Red and Blue never share a cell (spec.md §3,
// testable property 4).
type SearchBoard struct {
	Red, Blue Bitset
	hash      uint64
}

// New returns an empty SearchBoard with hash 0.
func New() *SearchBoard {
	return &SearchBoard{}
}

// From copies the two bitsets of an immutable snapshot and recomputes the
// hash, matching spec.md §4.2's `from(immutable_board)` constructor.
func From(red, blue Bitset) *SearchBoard {
	return &SearchBoard{Red: red, Blue: blue, hash: ComputeHash(red, blue)}
}

// Clone returns an independent copy; mutating the clone never affects the
// receiver.
func (b *SearchBoard) Clone() *SearchBoard {
	clone := *b
	return &clone
}

// Clear resets the board to empty, hash 0.
func (b *SearchBoard) Clear() {
	b.Red = Bitset{}
	b.Blue = Bitset{}
	b.hash = 0
}

// GetHash returns the current incrementally-maintained Zobrist hash.
func (b *SearchBoard) GetHash() uint64 {
	return b.hash
}

// GetBitboard returns the bitset owned by side. Querying None returns the
// empty set.
func (b *SearchBoard) GetBitboard(side Side) Bitset {
	switch side {
	case Red:
		return b.Red
	case Blue:
		return b.Blue
	default:
		return Bitset{}
	}
}

// Occupancy returns Red | Blue.
func (b *SearchBoard) Occupancy() Bitset {
	return b.Red.Union(b.Blue)
}

// IsEmpty reports whether (x, y) holds no stone. Out-of-bounds coordinates
// are a safe read that reports true (empty), per spec.md §4.2.
func (b *SearchBoard) IsEmpty(x, y int) bool {
	return !b.Red.Get(x, y) && !b.Blue.Get(x, y)
}

// PlayerAt returns the side occupying (x, y), or None if empty or
// out-of-bounds.
func (b *SearchBoard) PlayerAt(x, y int) Side {
	if b.Red.Get(x, y) {
		return Red
	}
	if b.Blue.Get(x, y) {
		return Blue
	}
	return None
}

// TotalStones returns the number of stones on the board.
func (b *SearchBoard) TotalStones() int {
	return b.Red.Count() + b.Blue.Count()
}

// MakeMove places side's stone at (x, y) and returns the MoveUndo needed to
// reverse it.
//
// Precondition (caller-checked, spec.md §4.2): the cell is empty and
// in-bounds. Violating it is an InvalidMove programming error: debug
// builds assert via assertInBoundsAndEmpty, release builds get undefined
// behaviour past this point, matching the teacher's bounds-checked-in-debug
// style rather than pulling in a validation framework.
func (b *SearchBoard) MakeMove(x, y int, side Side) MoveUndo {
	assertInBoundsAndEmpty(b, x, y)

	switch side {
	case Red:
		b.Red.Set(x, y)
	case Blue:
		b.Blue.Set(x, y)
	}
	b.hash ^= pieceKey(x, y, side)

	return MoveUndo{X: x, Y: y, Side: side}
}

// UnmakeMove is the exact inverse of MakeMove. Postcondition: the board and
// hash are bitwise-identical to their pre-make state (spec.md §4.2's
// central testable invariant).
func (b *SearchBoard) UnmakeMove(undo MoveUndo) {
	switch undo.Side {
	case Red:
		b.Red.Clear(undo.X, undo.Y)
	case Blue:
		b.Blue.Clear(undo.X, undo.Y)
	}
	b.hash ^= pieceKey(undo.X, undo.Y, undo.Side)
}
