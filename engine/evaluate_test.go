package engine

import "testing"

// A mirrored position (every piece reflected to its opposite rank and
// recolored, side to move flipped) must evaluate to the same score:
// the evaluator has no side-dependent asymmetry (spec §4.5).
func TestEvaluateMirrorSymmetry(t *testing.T) {
	positions := []string{
		FENStartPosition,
		FENKiwipete,
		"r1b1k2r/ppppnppp/2n2q2/2b5/3NP3/2P1B3/PP3PPP/RN1QKB1R w KQkq - 0 1",
	}
	for _, fen := range positions {
		var b Board
		if err := b.SetFEN(fen); err != nil {
			t.Fatalf("SetFEN(%q): %v", fen, err)
		}
		score := b.Evaluate()

		mirrored := mirrorFEN(t, fen)
		var mb Board
		if err := mb.SetFEN(mirrored); err != nil {
			t.Fatalf("SetFEN(mirrored %q): %v", mirrored, err)
		}
		mscore := mb.Evaluate()

		if score != mscore {
			t.Errorf("Evaluate(%q) = %d, Evaluate(mirror) = %d, want equal", fen, score, mscore)
		}
	}
}

func TestEvaluateStartPositionIsZero(t *testing.T) {
	var b Board
	if err := b.SetFEN(FENStartPosition); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	if got := b.Evaluate(); got != 0 {
		t.Errorf("Evaluate(start position) = %d, want 0", got)
	}
}

// mirrorFEN builds the color-and-rank-mirrored FEN of a position: every
// piece is moved to its vertically-reflected square and swaps color,
// and the side to move and castling rights swap accordingly.
func mirrorFEN(t *testing.T, fen string) string {
	t.Helper()
	var b Board
	if err := b.SetFEN(fen); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	var mb Board
	mb.epSquare = NoSquare
	for sq := Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p == Empty {
			continue
		}
		mb.setSquare(sq.Mirror(), MakePiece(pieceKindOf(p), p.Color().Other()))
	}
	mb.sideToMove = b.SideToMove().Other()
	if b.CastleRights()&CastleWK != 0 {
		mb.castleRights |= CastleBK
	}
	if b.CastleRights()&CastleWQ != 0 {
		mb.castleRights |= CastleBQ
	}
	if b.CastleRights()&CastleBK != 0 {
		mb.castleRights |= CastleWK
	}
	if b.CastleRights()&CastleBQ != 0 {
		mb.castleRights |= CastleWQ
	}
	if b.EPSquare() != NoSquare {
		mb.epSquare = b.EPSquare().Mirror()
	}
	mb.hash = zobristHash(&mb)
	mb.pvTable = make(map[uint64]Move)
	mb.killers = make([][2]Move, maxKillerPly)
	return mb.FEN()
}

// pieceKindOf strips the color tag off a piece, returning the white
// variant MakePiece expects as its kind argument.
func pieceKindOf(p Piece) Piece {
	if p.Color() == White {
		return p
	}
	return p - BP + WP
}
