package engine

import "testing"

func TestParseMove(t *testing.T) {
	var b Board
	if err := b.SetFEN(FENStartPosition); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}

	mv, ok := b.ParseMove("e2e4")
	if !ok {
		t.Fatalf("ParseMove(e2e4): not found")
	}
	if mv.From().String() != "e2" || mv.To().String() != "e4" {
		t.Errorf("ParseMove(e2e4) = %v, want e2->e4", mv)
	}
	if mv.Flag() != FlagPawnDoublePush {
		t.Errorf("ParseMove(e2e4).Flag() = %v, want FlagPawnDoublePush", mv.Flag())
	}
}

func TestParseMovePromotion(t *testing.T) {
	var b Board
	if err := b.SetFEN("8/P7/8/8/8/8/8/k6K w - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	mv, ok := b.ParseMove("a7a8q")
	if !ok {
		t.Fatalf("ParseMove(a7a8q): not found")
	}
	if !mv.IsPromotion() || mv.Promoted() != WQ {
		t.Errorf("ParseMove(a7a8q) = %v, want a promotion to WQ", mv)
	}
}

func TestParseMoveRejectsIllegalAndMalformed(t *testing.T) {
	var b Board
	if err := b.SetFEN(FENStartPosition); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	cases := []string{"e2e5", "z9z9", "e2", "e2e4q"}
	for _, text := range cases {
		if _, ok := b.ParseMove(text); ok {
			t.Errorf("ParseMove(%q): expected ok=false", text)
		}
	}
}
