package engine

import "strings"

// String renders the board as an 8x8 ASCII grid with file/rank labels,
// the side to move, and castling/en-passant state (spec §6: a
// console-friendly board dump used by the interactive front end).
func (b *Board) String() string {
	var sb strings.Builder
	for rank := Rank8; rank >= Rank1; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for file := FileA; file <= FileH; file++ {
			p := b.pieceAt[MakeSquare(file, rank)]
			if p == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteRune(p.Rune())
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")

	if b.sideToMove == White {
		sb.WriteString("side to move: white\n")
	} else {
		sb.WriteString("side to move: black\n")
	}
	sb.WriteString("FEN: " + b.FEN() + "\n")
	return sb.String()
}
