package board

import "fmt"

// Move is a single placement: put side's stone at (x, y). Caro has no
// captures, promotions, or special flags, so unlike blunext-chess's chess
// Move this carries only what a placement needs.
type Move struct {
	X, Y int
	Side Side
}

// String gives a human-readable move, in the same "<what>: <where>" shape
// as blunext-chess/board/move.go's Move.String.
func (m Move) String() string {
	return fmt.Sprintf("%s: (%d,%d)", m.Side, m.X, m.Y)
}

// MoveUndo is the sole input make_move produces and unmake_move consumes.
// It carries no captured-stone field — Caro has no captures — but the slot
// is reserved in the struct (see spec.md §3) so future variants that do
// have captures can extend it without changing the make/unmake call shape.
type MoveUndo struct {
	X, Y     int
	Side     Side
	reserved [0]byte // placeholder for a future captured-stone field
}
