package engine

// Castle rights bits (spec §3).
const (
	CastleWK uint8 = 1 << iota
	CastleWQ
	CastleBK
	CastleBQ
)

const maxKillerPly = 64

// undo is the record pushed by MakeMove and popped by UndoMove: the move
// itself plus every piece of state that isn't cheaply re-derivable from
// placement alone (spec §3 "Undo record").
type undo struct {
	move           Move
	castleRights   uint8
	epSquare       Square
	fiftyMove      int
	hash           uint64
	capturedPiece  Piece
	priorKingSq    [2]Square
}

// Board is the central aggregate described in spec §3: piece placement
// (mailbox + per-piece/per-color bitboards kept in sync), material and
// piece counters, king squares, side to move, castling/en-passant state,
// the fifty-move and ply counters, the Zobrist hash, the undo history
// stack, and the search-only bookkeeping (history heuristic table,
// killer slots, PV table) that search.go reads and writes.
type Board struct {
	pieceAt [64]Piece
	pieceBB [13]Bitboard // indexed by Piece; Empty's slot is unused
	colorBB [2]Bitboard
	allBB   Bitboard

	material  [2]int
	bigCount  [2]int
	majorCnt  [2]int
	minorCnt  [2]int
	kingSq    [2]Square

	sideToMove   Color
	epSquare     Square
	castleRights uint8
	fiftyMove    int
	ply          int
	histPly      int
	hash         uint64

	history     []undo
	hashHistory []uint64

	searchHistory [13][64]int
	killers       [][2]Move
	pvTable       map[uint64]Move
}

// NewBoard returns a Board initialized to the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	if err := b.SetFEN(FENStartPosition); err != nil {
		panic("engine: starting FEN is malformed: " + err.Error())
	}
	return b
}

// Reset clears all board and search state and reloads the starting
// position; used by protocol "ucinewgame"/"new" handlers.
func (b *Board) Reset() {
	*b = Board{}
	if err := b.SetFEN(FENStartPosition); err != nil {
		panic("engine: starting FEN is malformed: " + err.Error())
	}
}

// SideToMove returns the color to move.
func (b *Board) SideToMove() Color { return b.sideToMove }

// Hash returns the current Zobrist signature.
func (b *Board) Hash() uint64 { return b.hash }

// PieceAt returns the piece occupying sq (Empty if none).
func (b *Board) PieceAt(sq Square) Piece { return b.pieceAt[sq] }

// KingSquare returns the square of color c's king.
func (b *Board) KingSquare(c Color) Square { return b.kingSq[c] }

// Occupied returns the bitboard of all occupied squares.
func (b *Board) Occupied() Bitboard { return b.allBB }

// ColorBB returns the occupancy bitboard for color c.
func (b *Board) ColorBB(c Color) Bitboard { return b.colorBB[c] }

// PieceBB returns the bitboard for a specific piece kind.
func (b *Board) PieceBB(p Piece) Bitboard { return b.pieceBB[p] }

// EPSquare returns the current en passant target square, or NoSquare.
func (b *Board) EPSquare() Square { return b.epSquare }

// CastleRights returns the 4-bit castling permission mask.
func (b *Board) CastleRights() uint8 { return b.castleRights }

// FiftyMove returns the half-move clock since the last pawn push/capture.
func (b *Board) FiftyMove() int { return b.fiftyMove }

// Ply returns the search-depth counter (reset at the search root).
func (b *Board) Ply() int { return b.ply }

// MovesPlayed returns the number of MakeMove calls currently undoable,
// i.e. the depth of the undo stack. Callers that need to pop a fixed
// number of halfmoves (e.g. a protocol's "take back" command) must
// bound their UndoMove calls by this to avoid indexing an empty stack.
func (b *Board) MovesPlayed() int { return len(b.history) }

// resetPly zeroes the search-relative ply counter and killer table without
// disturbing game history; called once per search root.
func (b *Board) resetPly() {
	b.ply = 0
	b.killers = make([][2]Move, maxKillerPly)
	if b.pvTable == nil {
		b.pvTable = make(map[uint64]Move, 1<<14)
	}
}

// clearSquare empties sq, removing whatever piece is there (if any) from
// the mailbox, bitboards, material and counters. Callers are responsible
// for hashing.
func (b *Board) clearSquare(sq Square) {
	p := b.pieceAt[sq]
	if p == Empty {
		return
	}
	c := p.Color()
	b.pieceAt[sq] = Empty
	b.pieceBB[p] = b.pieceBB[p].Clear(sq)
	b.colorBB[c] = b.colorBB[c].Clear(sq)
	b.allBB = b.allBB.Clear(sq)
	b.material[c] -= p.Value()
	if p.IsBig() {
		b.bigCount[c]--
	}
	if p.IsMajor() {
		b.majorCnt[c]--
	}
	if p.IsMinor() {
		b.minorCnt[c]--
	}
}

// setSquare places piece p on sq, which must currently be empty.
func (b *Board) setSquare(sq Square, p Piece) {
	c := p.Color()
	b.pieceAt[sq] = p
	b.pieceBB[p] = b.pieceBB[p].Set(sq)
	b.colorBB[c] = b.colorBB[c].Set(sq)
	b.allBB = b.allBB.Set(sq)
	b.material[c] += p.Value()
	if p.IsBig() {
		b.bigCount[c]++
	}
	if p.IsMajor() {
		b.majorCnt[c]++
	}
	if p.IsMinor() {
		b.minorCnt[c]++
	}
	if p.IsKing() {
		b.kingSq[c] = sq
	}
}

// movePieceQuiet relocates the piece on "from" to "to", which must be
// empty, updating the hash for both the departure and arrival squares.
func (b *Board) movePieceQuiet(from, to Square) {
	p := b.pieceAt[from]
	b.hash ^= pieceKeys[p][from]
	b.clearSquare(from)
	b.setSquare(to, p)
	b.hash ^= pieceKeys[p][to]
}

// SquareAttacked reports whether sq is attacked by any piece of color by
// given the current occupancy (spec §4.4). It composes pawn, knight,
// king and slider reverse-attack queries rather than asking each piece in
// turn whether it attacks sq.
func (b *Board) SquareAttacked(sq Square, by Color) bool {
	if PawnAttacks(by.Other(), sq)&b.pieceBB[MakePiece(WP, by)] != 0 {
		return true
	}
	if KnightAttacks(sq)&b.pieceBB[MakePiece(WN, by)] != 0 {
		return true
	}
	if KingAttacks(sq)&b.pieceBB[MakePiece(WK, by)] != 0 {
		return true
	}
	bishopsQueens := b.pieceBB[MakePiece(WB, by)] | b.pieceBB[MakePiece(WQ, by)]
	if BishopAttacks(sq, b.allBB)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := b.pieceBB[MakePiece(WR, by)] | b.pieceBB[MakePiece(WQ, by)]
	if RookAttacks(sq, b.allBB)&rooksQueens != 0 {
		return true
	}
	return false
}

// InCheck reports whether the side to move's king is attacked.
func (b *Board) InCheck() bool {
	return b.SquareAttacked(b.kingSq[b.sideToMove], b.sideToMove.Other())
}

// assertConsistent panics if the per-piece bitboards disagree with the
// mailbox, the hash disagrees with a from-scratch recomputation, or a
// king square does not hold that color's king. Material and piece
// counters are not checked. It is only ever called from callers gated
// on debugAssertions (spec §7: debug-only, never affects release control
// flow).
func (b *Board) assertConsistent() {
	for sq := Square(0); sq < 64; sq++ {
		p := b.pieceAt[sq]
		for cand := WP; cand <= BK; cand++ {
			want := cand == p
			if b.pieceBB[cand].Test(sq) != want {
				panic("engine: bitboard/piece-at-square disagreement at " + sq.String())
			}
		}
	}
	if zobristHash(b) != b.hash {
		panic("engine: incremental hash diverged from from-scratch hash")
	}
	if b.pieceAt[b.kingSq[White]] != WK || b.pieceAt[b.kingSq[Black]] != BK {
		panic("engine: king_sq does not point at a king")
	}
}
