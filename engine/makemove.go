package engine

// castlePerm[sq] is ANDed into castleRights whenever a move touches sq,
// clearing the rights tied to a king or rook home square that just moved
// or was captured, and leaving every other square a no-op (spec §4.4
// step 5).
var castlePerm [64]uint8

func init() {
	for sq := range castlePerm {
		castlePerm[sq] = CastleWK | CastleWQ | CastleBK | CastleBQ
	}
	castlePerm[4] &^= CastleWK | CastleWQ   // e1
	castlePerm[0] &^= CastleWQ              // a1
	castlePerm[7] &^= CastleWK              // h1
	castlePerm[60] &^= CastleBK | CastleBQ  // e8
	castlePerm[56] &^= CastleBQ             // a8
	castlePerm[63] &^= CastleBK             // h8
}

// castleRookSquares returns the rook's from/to squares for a castling
// move whose king destination is kingTo.
func castleRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case 6: // g1
		return 7, 5
	case 2: // c1
		return 0, 3
	case 62: // g8
		return 63, 61
	case 58: // c8
		return 56, 59
	}
	panic("engine: castle move with an impossible king destination")
}

// MakeMove applies mv to the board and reports whether it was legal (it
// did not leave the mover's own king in check). On failure the board is
// fully restored to its pre-call state before returning, so a caller
// enumerating pseudo-legal moves can simply skip moves that return false
// (spec §4.4, §7: "make_move returning false is a recoverable, expected
// outcome").
func (b *Board) MakeMove(mv Move) bool {
	preHash := b.hash

	from, to := mv.From(), mv.To()
	flag := mv.Flag()
	moving := b.pieceAt[from]
	us := b.sideToMove
	them := us.Other()

	capturedPiece := b.pieceAt[to]

	// 1. En passant: remove the pawn behind the destination.
	if flag == FlagEnPassant {
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		capturedPiece = b.pieceAt[capSq]
		b.hash ^= pieceKeys[capturedPiece][capSq]
		b.clearSquare(capSq)
	}

	// 2. Castle: move the rook.
	if flag == FlagCastle {
		rf, rt := castleRookSquares(to)
		b.movePieceQuiet(rf, rt)
	}

	// 3. Hash out current en passant and castle states.
	if b.epSquare != NoSquare {
		b.hash ^= pieceKeys[Empty][b.epSquare]
	}
	b.hash ^= castleKeys[b.castleRights]

	// 4. Push undo record. hashHistory gets a placeholder entry here too
	// (the real post-move hash isn't known until step 14), so it always
	// has exactly one entry per history entry: UndoMove pops both
	// unconditionally, regardless of whether this move turns out legal.
	b.history = append(b.history, undo{
		move:          mv,
		castleRights:  b.castleRights,
		epSquare:      b.epSquare,
		fiftyMove:     b.fiftyMove,
		hash:          preHash,
		capturedPiece: capturedPiece,
		priorKingSq:   b.kingSq,
	})
	b.hashHistory = append(b.hashHistory, preHash)

	// 5. Update castle permissions.
	b.castleRights &= castlePerm[from] & castlePerm[to]

	// 6. Clear en passant.
	b.epSquare = NoSquare

	// 7. Hash in new castle state.
	b.hash ^= castleKeys[b.castleRights]

	// 8. Fifty-move clock and capture removal.
	b.fiftyMove++
	if flag != FlagEnPassant && capturedPiece != Empty {
		b.fiftyMove = 0
		b.hash ^= pieceKeys[capturedPiece][to]
		b.clearSquare(to)
	}

	// 9. Ply counters.
	b.ply++
	b.histPly++

	// 10. Pawn-specific bookkeeping.
	if moving.IsPawn() {
		b.fiftyMove = 0
		if flag == FlagPawnDoublePush {
			epSq := to - 8
			if us == Black {
				epSq = to + 8
			}
			b.epSquare = epSq
			b.hash ^= pieceKeys[Empty][epSq]
		}
	}

	// 11. Move the piece.
	b.hash ^= pieceKeys[moving][from]
	b.clearSquare(from)
	b.setSquare(to, moving)
	b.hash ^= pieceKeys[moving][to]

	// 12. Promotion: replace the pawn on the destination square.
	if mv.IsPromotion() {
		b.hash ^= pieceKeys[moving][to]
		b.clearSquare(to)
		promoted := mv.Promoted()
		b.setSquare(to, promoted)
		b.hash ^= pieceKeys[promoted][to]
	}

	// 13. King-square bookkeeping happens inside setSquare.

	// 14. Flip side to move.
	b.sideToMove = them
	b.hash ^= sideKey

	// 15. Legality: the side that just moved must not be in check.
	if b.SquareAttacked(b.kingSq[us], them) {
		b.UndoMove()
		return false
	}

	b.hashHistory[len(b.hashHistory)-1] = b.hash
	if debugAssertions {
		b.assertConsistent()
	}
	return true
}

// UndoMove reverses the most recent MakeMove, restoring the board
// byte-for-byte (spec §4.4, §8 invariant 3).
func (b *Board) UndoMove() {
	n := len(b.history)
	u := b.history[n-1]
	b.history = b.history[:n-1]
	if n2 := len(b.hashHistory); n2 > 0 {
		b.hashHistory = b.hashHistory[:n2-1]
	}

	mv := u.move
	from, to := mv.From(), mv.To()
	flag := mv.Flag()

	b.sideToMove = b.sideToMove.Other()
	us := b.sideToMove
	b.ply--
	b.histPly--

	movedPiece := b.pieceAt[to]
	b.clearSquare(to)
	if mv.IsPromotion() {
		b.setSquare(from, MakePiece(WP, us))
	} else {
		b.setSquare(from, movedPiece)
	}

	switch flag {
	case FlagEnPassant:
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		b.setSquare(capSq, u.capturedPiece)
	default:
		if u.capturedPiece != Empty {
			b.setSquare(to, u.capturedPiece)
		}
	}

	if flag == FlagCastle {
		rf, rt := castleRookSquares(to)
		rook := b.pieceAt[rt]
		b.clearSquare(rt)
		b.setSquare(rf, rook)
	}

	b.castleRights = u.castleRights
	b.epSquare = u.epSquare
	b.fiftyMove = u.fiftyMove
	b.kingSq = u.priorKingSq
	b.hash = u.hash

	if debugAssertions {
		b.assertConsistent()
	}
}

// IsRepetition scans history for an earlier position with the same hash,
// bounded by the fifty-move clock (spec §4.6: positions separated by an
// irreversible move can never repeat).
func (b *Board) IsRepetition() bool {
	n := len(b.hashHistory)
	if n == 0 {
		return false
	}
	// hashHistory[i] is the hash after move i, so the position reached by
	// the last irreversible move sits one entry before the reversible run.
	start := n - b.fiftyMove - 1
	if start < 0 {
		start = 0
	}
	for i := start; i < n-1; i++ {
		if b.hashHistory[i] == b.hash {
			return true
		}
	}
	return false
}

// DrawByInsufficientMaterial reports the material-only draw condition
// from spec §4.6: neither side has a pawn, queen or rook; each side has
// at most one bishop and one knight; and no side has both a knight and a
// bishop.
func (b *Board) DrawByInsufficientMaterial() bool {
	for _, c := range [2]Color{White, Black} {
		if b.pieceBB[MakePiece(WP, c)] != 0 || b.pieceBB[MakePiece(WQ, c)] != 0 || b.pieceBB[MakePiece(WR, c)] != 0 {
			return false
		}
	}
	for _, c := range [2]Color{White, Black} {
		knights := b.pieceBB[MakePiece(WN, c)].Count()
		bishops := b.pieceBB[MakePiece(WB, c)].Count()
		if knights > 1 || bishops > 1 {
			return false
		}
		if knights >= 1 && bishops >= 1 {
			return false
		}
	}
	return true
}
