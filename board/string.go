package board

import "strings"

// String renders the position as a 16x16 ASCII grid, '.' for empty, 'X' for
// Red, 'O' for Blue. Grounded on blunext-chess/board/bitboard.go's Pretty():
// chess's FEN-based serialization (board/fen.go) has no Caro equivalent, so
// this follows the bitboard package's row-major ASCII dump instead.
func (b *SearchBoard) String() string {
	var sb strings.Builder
	for y := 0; y < boardSize; y++ {
		for x := 0; x < boardSize; x++ {
			switch {
			case b.Red.Get(x, y):
				sb.WriteByte('X')
			case b.Blue.Get(x, y):
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
