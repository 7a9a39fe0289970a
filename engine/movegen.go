package engine

// Move ordering score bands (spec §4.3).
const (
	scoreCapture    = 1_000_000
	scoreEnPassant  = scoreCapture + 105
	scoreKiller0    = 900_000
	scoreKiller1    = 800_000
	scorePVMove     = 2_000_000
)

// victimScore assigns the MVV-LVA victim/attacker weight table named in
// spec §4.3: P=100, N=200, B=300, R=400, Q=500, K=600.
func victimScore(p Piece) int {
	switch {
	case p.IsPawn():
		return 100
	case p.IsKnight():
		return 200
	case p.IsBishop():
		return 300
	case p.IsRook():
		return 400
	case p.IsQueen():
		return 500
	case p.IsKing():
		return 600
	}
	return 0
}

// mvvLva computes victim_score(victim) + 6 - victim_score(attacker)/100.
func mvvLva(victim, attacker Piece) int {
	return victimScore(victim) + 6 - victimScore(attacker)/100
}

// GenerateAllMoves produces the scored pseudo-legal move list for the
// side to move: pawn pushes/captures/promotions/en-passant, castling,
// knight and king jumps, and slider rays (spec §4.3). Legality (own king
// not left in check) is left to MakeMove.
func (b *Board) GenerateAllMoves() MoveList {
	var moves MoveList
	b.generate(&moves, false)
	return moves
}

// GenerateAllCaptures produces only the pseudo-legal captures (including
// en passant and capture-promotions), used by quiescence search.
func (b *Board) GenerateAllCaptures() MoveList {
	var moves MoveList
	b.generate(&moves, true)
	return moves
}

func (b *Board) generate(moves *MoveList, capturesOnly bool) {
	us := b.sideToMove
	them := us.Other()
	usBB := b.colorBB[us]
	themBB := b.colorBB[them]

	b.genPawnMoves(moves, us, them, usBB, themBB, capturesOnly)
	b.genJumperMoves(moves, MakePiece(WN, us), KnightAttacks, usBB, themBB, capturesOnly)
	b.genSliderMoves(moves, MakePiece(WB, us), BishopAttacks, usBB, themBB, capturesOnly)
	b.genSliderMoves(moves, MakePiece(WR, us), RookAttacks, usBB, themBB, capturesOnly)
	b.genSliderMoves(moves, MakePiece(WQ, us), QueenAttacks, usBB, themBB, capturesOnly)
	b.genJumperMoves(moves, MakePiece(WK, us), KingAttacks, usBB, themBB, capturesOnly)
	if !capturesOnly {
		b.genCastlingMoves(moves, us)
	}
}

func (b *Board) addQuietOrCapture(moves *MoveList, from, to Square, moving, captured Piece, capturesOnly bool) {
	if captured != Empty {
		mv := NewMove(from, to, captured, Empty, FlagNone)
		moves.Add(mv, scoreCapture+mvvLva(captured, moving))
		return
	}
	if capturesOnly {
		return
	}
	mv := NewMove(from, to, Empty, Empty, FlagNone)
	moves.Add(mv, b.quietScore(moving, from, to))
}

// quietScore assigns killer/history ordering to a non-capture (spec
// §4.3): killer slot 0/1 if it matches this ply's killer moves, else the
// history heuristic counter for [piece][to].
func (b *Board) quietScore(moving Piece, from, to Square) int {
	if b.ply < len(b.killers) {
		mv := NewMove(from, to, Empty, Empty, FlagNone)
		if b.killers[b.ply][0] == mv {
			return scoreKiller0
		}
		if b.killers[b.ply][1] == mv {
			return scoreKiller1
		}
	}
	return b.searchHistory[moving][to]
}

func (b *Board) genJumperMoves(moves *MoveList, piece Piece, attacks func(Square) Bitboard, usBB, themBB Bitboard, capturesOnly bool) {
	bb := b.pieceBB[piece]
	for bb != 0 {
		from := bb.PopLSB()
		targets := attacks(from) &^ usBB
		for targets != 0 {
			to := targets.PopLSB()
			b.addQuietOrCapture(moves, from, to, piece, b.pieceAt[to], capturesOnly)
		}
	}
}

func (b *Board) genSliderMoves(moves *MoveList, piece Piece, attacks func(Square, Bitboard) Bitboard, usBB, themBB Bitboard, capturesOnly bool) {
	bb := b.pieceBB[piece]
	occ := b.allBB
	for bb != 0 {
		from := bb.PopLSB()
		targets := attacks(from, occ) &^ usBB
		for targets != 0 {
			to := targets.PopLSB()
			b.addQuietOrCapture(moves, from, to, piece, b.pieceAt[to], capturesOnly)
		}
	}
}

func (b *Board) genPawnMoves(moves *MoveList, us, them Color, usBB, themBB Bitboard, capturesOnly bool) {
	pawn := MakePiece(WP, us)
	promoRank := Rank8
	startRank := Rank2
	if us == Black {
		promoRank = Rank1
		startRank = Rank7
	}

	pawns := b.pieceBB[pawn]
	empty := ^b.allBB

	for bb := pawns; bb != 0; {
		from := bb.PopLSB()

		if !capturesOnly {
			push := PawnPush(us, from) & empty
			if push != 0 {
				to := push.LSB()
				if to.Rank() == promoRank {
					b.addPromotions(moves, from, to, us, Empty, capturesOnly)
				} else {
					moves.Add(NewMove(from, to, Empty, Empty, FlagNone), b.quietScore(pawn, from, to))
					if from.Rank() == startRank {
						doublePush := PawnPush(us, to) & empty
						if doublePush != 0 {
							to2 := doublePush.LSB()
							moves.Add(NewMove(from, to2, Empty, Empty, FlagPawnDoublePush), b.quietScore(pawn, from, to2))
						}
					}
				}
			}
		}

		attacks := PawnAttacks(us, from)
		captures := attacks & themBB
		for t := captures; t != 0; {
			to := t.PopLSB()
			captured := b.pieceAt[to]
			if to.Rank() == promoRank {
				b.addPromotions(moves, from, to, us, captured, capturesOnly)
			} else {
				moves.Add(NewMove(from, to, captured, Empty, FlagNone), scoreCapture+mvvLva(captured, pawn))
			}
		}

		if b.epSquare != NoSquare && attacks.Test(b.epSquare) {
			capSq := b.epSquare - 8
			if us == Black {
				capSq = b.epSquare + 8
			}
			captured := b.pieceAt[capSq]
			moves.Add(NewMove(from, b.epSquare, captured, Empty, FlagEnPassant), scoreEnPassant)
		}
	}
}

// addPromotions emits the four promotion choices for a pawn reaching the
// back rank, whether by push or capture (spec §4.3).
func (b *Board) addPromotions(moves *MoveList, from, to Square, us Color, captured Piece, capturesOnly bool) {
	if captured == Empty && capturesOnly {
		return
	}
	promoPieces := [4]Piece{MakePiece(WN, us), MakePiece(WB, us), MakePiece(WR, us), MakePiece(WQ, us)}
	for _, promo := range promoPieces {
		score := scoreCapture + mvvLva(captured, MakePiece(WP, us))
		if captured == Empty {
			score = promo.Value()
		}
		moves.Add(NewMove(from, to, captured, promo, FlagNone), score)
	}
}

// Castle transit/occupancy masks: the squares that must be empty, and the
// two squares (king's origin and transit square, never the destination)
// that must not be attacked.
var (
	castleEmptyMask  = [4]Bitboard{}
	castleTransitSqs = [4][2]Square{}
)

func init() {
	// Index: 0=WK,1=WQ,2=BK,3=BQ, matching CastleWK..CastleBQ bit order.
	set := func(sqs ...Square) Bitboard {
		var bb Bitboard
		for _, s := range sqs {
			bb = bb.Set(s)
		}
		return bb
	}
	castleEmptyMask[0] = set(5, 6)     // f1, g1
	castleEmptyMask[1] = set(1, 2, 3)  // b1, c1, d1
	castleEmptyMask[2] = set(61, 62)   // f8, g8
	castleEmptyMask[3] = set(57, 58, 59) // b8, c8, d8

	castleTransitSqs[0] = [2]Square{4, 5}   // e1, f1
	castleTransitSqs[1] = [2]Square{4, 3}   // e1, d1
	castleTransitSqs[2] = [2]Square{60, 61} // e8, f8
	castleTransitSqs[3] = [2]Square{60, 59} // e8, d8
}

func (b *Board) genCastlingMoves(moves *MoveList, us Color) {
	them := us.Other()
	var rightsAndDest = []struct {
		right uint8
		idx   int
		to    Square
	}{}
	if us == White {
		rightsAndDest = []struct {
			right uint8
			idx   int
			to    Square
		}{{CastleWK, 0, 6}, {CastleWQ, 1, 2}}
	} else {
		rightsAndDest = []struct {
			right uint8
			idx   int
			to    Square
		}{{CastleBK, 2, 62}, {CastleBQ, 3, 58}}
	}

	from := b.kingSq[us]
	for _, rd := range rightsAndDest {
		if b.castleRights&rd.right == 0 {
			continue
		}
		if b.allBB&castleEmptyMask[rd.idx] != 0 {
			continue
		}
		transit := castleTransitSqs[rd.idx]
		if b.SquareAttacked(transit[0], them) || b.SquareAttacked(transit[1], them) {
			continue
		}
		moves.Add(NewMove(from, rd.to, Empty, Empty, FlagCastle), b.quietScore(MakePiece(WK, us), from, rd.to))
	}
}
