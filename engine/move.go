package engine

// MoveFlag distinguishes the handful of move shapes that need special
// handling in make/unmake beyond "piece goes from A to B" (spec §3).
type MoveFlag uint8

const (
	FlagNone MoveFlag = iota
	FlagEnPassant
	FlagPawnDoublePush
	FlagCastle
)

// Move is a packed, immutable value carrying from-square, to-square,
// captured piece, promotion piece and flag (spec §3). Packing into a
// single uint32 makes moves cheap to copy, compare by value (Go's == on
// a plain integer), and store in fixed-size killer/PV slots without
// pointer chasing.
type Move uint32

const NoMove Move = 0

const (
	moveFromShift    = 0
	moveToShift      = 6
	moveCapturedSft  = 12
	movePromotedSft  = 16
	moveFlagShift    = 20
	moveSquareMask   = 0x3F
	movePieceMask    = 0xF
	moveFlagMaskBits = 0x7
)

// NewMove packs a move. captured and promoted may be Empty.
func NewMove(from, to Square, captured, promoted Piece, flag MoveFlag) Move {
	return Move(uint32(from)&moveSquareMask) |
		Move(uint32(to)&moveSquareMask)<<moveToShift |
		Move(uint32(captured)&movePieceMask)<<moveCapturedSft |
		Move(uint32(promoted)&movePieceMask)<<movePromotedSft |
		Move(uint32(flag)&moveFlagMaskBits)<<moveFlagShift
}

func (m Move) From() Square     { return Square((uint32(m) >> moveFromShift) & moveSquareMask) }
func (m Move) To() Square       { return Square((uint32(m) >> moveToShift) & moveSquareMask) }
func (m Move) Captured() Piece  { return Piece((uint32(m) >> moveCapturedSft) & movePieceMask) }
func (m Move) Promoted() Piece  { return Piece((uint32(m) >> movePromotedSft) & movePieceMask) }
func (m Move) Flag() MoveFlag   { return MoveFlag((uint32(m) >> moveFlagShift) & moveFlagMaskBits) }
func (m Move) IsCapture() bool  { return m.Captured() != Empty || m.Flag() == FlagEnPassant }
func (m Move) IsPromotion() bool { return m.Promoted() != Empty }

// String renders the move in long-algebraic form, e.g. "e2e4" or "e7e8q"
// (spec §6).
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if p := m.Promoted(); p != Empty {
		switch {
		case p.IsKnight():
			s += "n"
		case p.IsBishop():
			s += "b"
		case p.IsRook():
			s += "r"
		case p.IsQueen():
			s += "q"
		}
	}
	return s
}

// ScoredMove pairs a move with the ordering score assigned at generation
// time (spec §3, §4.3).
type ScoredMove struct {
	Move  Move
	Score int
}

// MoveList is a scored, pseudo-legal move buffer produced by the
// generator. It is a plain slice wrapper so callers can range over it
// directly; the type exists to give generate_all_moves/generate_all_captures
// a named return type matching spec §4.3's public surface.
type MoveList []ScoredMove

// Add appends a move with the given ordering score.
func (l *MoveList) Add(mv Move, score int) {
	*l = append(*l, ScoredMove{Move: mv, Score: score})
}
