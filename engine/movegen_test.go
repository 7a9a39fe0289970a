package engine

import "testing"

func TestMoveGenerationCounts(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want int
	}{
		{"en passant position", "rnbqkb1r/pp1p1pPp/8/2p1pP2/1P1P4/3P3P/P1P1P3/RNBQKBNR w KQkq e6 0 1", 42},
		{"kiwipete", FENKiwipete, 48},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b Board
			if err := b.SetFEN(c.fen); err != nil {
				t.Fatalf("SetFEN: %v", err)
			}
			legal := 0
			for _, sm := range b.GenerateAllMoves() {
				if b.MakeMove(sm.Move) {
					legal++
					b.UndoMove()
				}
			}
			if legal != c.want {
				t.Errorf("legal moves = %d, want %d", legal, c.want)
			}
		})
	}
}

func TestGenerateAllCapturesOnlyReturnsCapturesOrEnPassant(t *testing.T) {
	var b Board
	if err := b.SetFEN(FENKiwipete); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	for _, sm := range b.GenerateAllCaptures() {
		if !sm.Move.IsCapture() && sm.Move.Flag() != FlagEnPassant {
			t.Errorf("GenerateAllCaptures returned a non-capture move %v", sm.Move)
		}
	}
}
