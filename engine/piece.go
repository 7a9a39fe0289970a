package engine

// Color identifies the side to move or the owner of a piece.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

// Piece is a tagged variant over the twelve piece kinds plus Empty.
// The zero value is Empty so a freshly zeroed mailbox array reads as
// an empty board without any initialization pass.
type Piece uint8

const (
	Empty Piece = iota
	WP
	WN
	WB
	WR
	WQ
	WK
	BP
	BN
	BB
	BR
	BQ
	BK
)

// pieceValues mirrors the material weights named in spec §3.
var pieceValues = [13]int{
	Empty: 0,
	WP:    100, BP: 100,
	WN:    325, BN: 325,
	WB:    325, BB: 325,
	WR:    550, BR: 550,
	WQ:    1000, BQ: 1000,
	WK:    50000, BK: 50000,
}

// Value returns the material weight of the piece (0 for Empty).
func (p Piece) Value() int {
	return pieceValues[p]
}

// Color reports the owning side. Calling Color on Empty is a programmer
// error and panics in debug builds only through the caller's own checks;
// it returns White for Empty so callers that forgot to guard don't corrupt
// bitboard indices silently.
func (p Piece) Color() Color {
	if p >= BP {
		return Black
	}
	return White
}

// IsEmpty reports whether the piece tag represents no piece.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// IsPawn, IsKnight, ... are role predicates used throughout move
// generation and evaluation.
func (p Piece) IsPawn() bool   { return p == WP || p == BP }
func (p Piece) IsKnight() bool { return p == WN || p == BN }
func (p Piece) IsBishop() bool { return p == WB || p == BB }
func (p Piece) IsRook() bool   { return p == WR || p == BR }
func (p Piece) IsQueen() bool  { return p == WQ || p == BQ }
func (p Piece) IsKing() bool   { return p == WK || p == BK }

// IsBig reports whether the piece is anything other than a pawn (and not
// empty).
func (p Piece) IsBig() bool {
	return p != Empty && !p.IsPawn()
}

// IsMajor reports rook, queen or king.
func (p Piece) IsMajor() bool {
	return p.IsRook() || p.IsQueen() || p.IsKing()
}

// IsMinor reports knight or bishop.
func (p Piece) IsMinor() bool {
	return p.IsKnight() || p.IsBishop()
}

// IsRookOrQueen and IsBishopOrQueen are used by the slider attack query in
// square_attacked (spec §4.4).
func (p Piece) IsRookOrQueen() bool   { return p.IsRook() || p.IsQueen() }
func (p Piece) IsBishopOrQueen() bool { return p.IsBishop() || p.IsQueen() }

// MakePiece composes a piece tag from a role-neutral kind (Pawn..King,
// using the WP..WK ordinal as the "white" anchor) and a color.
func MakePiece(whiteKind Piece, c Color) Piece {
	if c == White {
		return whiteKind
	}
	return whiteKind + (BP - WP)
}

var pieceRunes = [13]rune{
	Empty: '.',
	WP:    'P', WN: 'N', WB: 'B', WR: 'R', WQ: 'Q', WK: 'K',
	BP: 'p', BN: 'n', BB: 'b', BR: 'r', BQ: 'q', BK: 'k',
}

// Rune returns the FEN/console character for the piece.
func (p Piece) Rune() rune {
	return pieceRunes[p]
}

// PieceFromRune is the inverse of Rune; ok is false for any character that
// isn't one of the twelve piece letters.
func PieceFromRune(r rune) (Piece, bool) {
	for p := WP; p <= BK; p++ {
		if pieceRunes[p] == r {
			return p, true
		}
	}
	return Empty, false
}
