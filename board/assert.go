package board

import (
	"fmt"

	"carocore/bitset"
)

// DebugAssertions toggles the precondition checks in MakeMove. Off by
// default (zero allocation, zero branches beyond the toggle itself, for the
// hot search loop); flip it on in tests and debug builds. This mirrors the
// teacher's package-level behaviour toggles such as
// blunext-chess/engine/search.go's UseNullMovePruning rather than pulling in
// a build-tag-based debug/release split.
var DebugAssertions = false

// assertInBoundsAndEmpty panics with an InvalidMove-shaped message when
// DebugAssertions is on and the precondition spec.md §4.2 requires callers
// to uphold is violated. With DebugAssertions off this is a single branch.
func assertInBoundsAndEmpty(b *SearchBoard, x, y int) {
	if !DebugAssertions {
		return
	}
	if !bitset.InBounds(x, y) {
		panic(fmt.Sprintf("board: InvalidMove: (%d,%d) out of bounds", x, y))
	}
	if !b.IsEmpty(x, y) {
		panic(fmt.Sprintf("board: InvalidMove: (%d,%d) already occupied by %s", x, y, b.PlayerAt(x, y)))
	}
}
