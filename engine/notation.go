package engine

// ParseMove resolves a long-algebraic move string such as "e2e4" or
// "e7e8q" against the current position's pseudo-legal move list (spec
// §6). It returns ok=false rather than an error: a malformed or illegal
// user/GUI move is an expected, recoverable outcome, not a program error
// (spec §7, "parse_move returns 'no move'; no panic").
func (b *Board) ParseMove(text string) (Move, bool) {
	if len(text) < 4 || len(text) > 5 {
		return NoMove, false
	}
	from, ok := ParseSquare(text[0:2])
	if !ok {
		return NoMove, false
	}
	to, ok := ParseSquare(text[2:4])
	if !ok {
		return NoMove, false
	}

	if len(text) == 5 {
		switch text[4] {
		case 'n', 'b', 'r', 'q':
		default:
			return NoMove, false
		}
	}

	for _, sm := range b.GenerateAllMoves() {
		mv := sm.Move
		if mv.From() != from || mv.To() != to {
			continue
		}
		if len(text) == 5 {
			// The suffix must be present and match (spec §6): compare
			// promotion kind irrespective of color via promotionLetter,
			// which maps either color's piece to the same lowercase letter.
			if !mv.IsPromotion() || promotionLetter(mv.Promoted()) != text[4] {
				continue
			}
		} else if mv.IsPromotion() {
			continue
		}
		return mv, true
	}
	return NoMove, false
}

func promotionLetter(p Piece) byte {
	switch {
	case p.IsKnight():
		return 'n'
	case p.IsBishop():
		return 'b'
	case p.IsRook():
		return 'r'
	case p.IsQueen():
		return 'q'
	}
	return 0
}
