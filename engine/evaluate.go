package engine

// Endgame threshold: opponent material at or below R+2N+2P+K switches to
// the endgame king table (spec §4.5).
const EndgameThreshold = 550 + 2*325 + 2*100 + 50000

var pawnPassedBonus = [8]int{0, 5, 10, 20, 35, 60, 100, 200}

const isolatedPawnPenalty = -10

// Piece-square tables, white's perspective, rank 1 first (index 0 = a1).
// Grounded on the teacher's PieceSquareTables layout (core/evaluate.go)
// but re-indexed to this engine's LSB-first sq64 convention and split
// per-piece rather than per-bitboard-slot.
var pstPawn = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	-15, 2, 5, 5, 5, 5, 2, -15,
	-15, -2, 3, 15, 15, 3, -2, -15,
	-5, -5, -5, -5, -5, -5, -5, -5,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	25, 25, 25, 25, 25, 25, 25, 25,
}

var pstKnight = [64]int{
	-15, -15, -15, -15, -15, -15, -15, -15,
	-2, -2, -2, -2, -2, -2, -2, -2,
	-5, 0, 25, 25, 25, 25, 0, -5,
	-5, 0, 15, 25, 25, 15, 0, -5,
	-5, 0, 15, 25, 25, 15, 0, -5,
	-5, 0, 2, 2, 2, 2, 0, -5,
	-2, -2, -2, -2, -2, -2, -2, -2,
	-15, -15, -15, -15, -15, -15, -15, -15,
}

var pstBishop = [64]int{
	2, -5, -25, 0, 0, -25, -5, 2,
	2, 15, 5, 0, 0, 5, 15, 2,
	-5, 15, 0, 5, 5, 0, 15, -5,
	0, 0, 5, 25, 25, 5, 0, 0,
	0, 0, 5, 25, 25, 5, 0, 0,
	-5, 15, 0, 5, 5, 0, 15, -5,
	2, 15, 5, 0, 0, 5, 15, 2,
	2, -5, -25, 0, 0, -25, -5, 2,
}

var pstRook = [64]int{
	0, 0, 0, 5, 5, 0, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pstKingMiddlegame = [64]int{
	75, 50, 0, 0, 0, 0, 50, 75,
	25, 25, -10, -50, -50, -10, 25, 25,
	-75, -75, -75, -75, -75, -75, -75, -75,
	-75, -75, -75, -75, -75, -75, -75, -75,
	-75, -75, -75, -75, -75, -75, -75, -75,
	-75, -75, -75, -75, -75, -75, -75, -75,
	-75, -75, -75, -75, -75, -75, -75, -75,
	-75, -75, -75, -75, -75, -75, -75, -75,
}

var pstKingEndgame = [64]int{
	-10, -10, -10, -10, -10, -10, -10, -10,
	-10, -5, -5, -5, -5, -5, -5, -10,
	-10, 2, 5, 5, 5, 5, 2, -10,
	-10, 2, 5, 25, 25, 5, 2, -10,
	-10, 2, 5, 25, 25, 5, 2, -10,
	-10, 2, 5, 5, 5, 5, 2, -10,
	-10, -5, -5, -5, -5, -5, -5, -10,
	-10, -10, -10, -10, -10, -10, -10, -10,
}

// pstFor returns the piece-square value for piece p on sq, mirroring the
// table for black so the same white-perspective array serves both colors
// (spec §4.5: "mirror(sq) = sq XOR 56").
func pstFor(table *[64]int, p Piece, sq Square) int {
	if p.Color() == Black {
		sq = sq.Mirror()
	}
	return table[sq]
}

// Evaluate returns the static score of the position from the perspective
// of the side to move (spec §4.5). It is mirror-symmetric by
// construction: every per-square term is looked up through pstFor, which
// mirrors black's squares onto the same white-oriented tables, and every
// additive term is computed independently per color before taking the
// white-minus-black difference.
func (b *Board) Evaluate() int {
	score := b.evaluateWhitePOV()
	if b.sideToMove == Black {
		return -score
	}
	return score
}

func (b *Board) evaluateWhitePOV() int {
	score := b.material[White] - b.material[Black]
	score += b.evaluatePawns(White) - b.evaluatePawns(Black)
	score += b.evaluatePieceTable(pstKnight, WN) - b.evaluatePieceTable(pstKnight, BN)
	score += b.evaluatePieceTable(pstBishop, WB) - b.evaluatePieceTable(pstBishop, BB)
	score += b.evaluatePieceTable(pstRook, WR) - b.evaluatePieceTable(pstRook, BR)
	score += b.evaluateKings()
	return score
}

func (b *Board) evaluatePieceTable(table [64]int, p Piece) int {
	score := 0
	bb := b.pieceBB[p]
	for bb != 0 {
		sq := bb.PopLSB()
		score += pstFor(&table, p, sq)
	}
	return score
}

func (b *Board) evaluatePawns(c Color) int {
	pawn := MakePiece(WP, c)
	score := 0
	bb := b.pieceBB[pawn]
	enemyPawns := b.pieceBB[MakePiece(WP, c.Other())]
	for bb != 0 {
		sq := bb.PopLSB()
		score += pstFor(&pstPawn, pawn, sq)
		if IsolatedMask(sq)&b.pieceBB[pawn] == 0 {
			score += isolatedPawnPenalty
		}
		if PassedMask(c, sq)&enemyPawns == 0 {
			rank := sq.Rank()
			if c == Black {
				rank = 7 - rank
			}
			score += pawnPassedBonus[rank]
		}
	}
	return score
}

// evaluateKings scores each king's PST placement, switching a side's king
// from the middlegame to the endgame table once the opponent's material
// drops to or below EndgameThreshold.
func (b *Board) evaluateKings() int {
	whiteKing := pstFor(&pstKingMiddlegame, WK, b.kingSq[White])
	blackKing := pstFor(&pstKingMiddlegame, BK, b.kingSq[Black])
	if b.material[Black] <= EndgameThreshold {
		whiteKing = pstFor(&pstKingEndgame, WK, b.kingSq[White])
	}
	if b.material[White] <= EndgameThreshold {
		blackKing = pstFor(&pstKingEndgame, BK, b.kingSq[Black])
	}
	return whiteKing - blackKing
}
