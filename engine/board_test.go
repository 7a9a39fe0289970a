package engine

import "testing"

func TestMakeUndoMoveRestoresPosition(t *testing.T) {
	var b Board
	if err := b.SetFEN(FENKiwipete); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	before := b.FEN()
	beforeHash := b.Hash()

	for _, sm := range b.GenerateAllMoves() {
		ok := b.MakeMove(sm.Move)
		if !ok {
			continue
		}
		b.UndoMove()
		if got := b.FEN(); got != before {
			t.Fatalf("UndoMove(%v) left FEN %q, want %q", sm.Move, got, before)
		}
		if b.Hash() != beforeHash {
			t.Fatalf("UndoMove(%v) left hash %x, want %x", sm.Move, b.Hash(), beforeHash)
		}
	}
}

func TestIsRepetitionDetectsThreefold(t *testing.T) {
	var b Board
	if err := b.SetFEN(FENStartPosition); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}

	shuffle := func() {
		mv1, _ := b.ParseMove("g1f3")
		b.MakeMove(mv1)
		mv2, _ := b.ParseMove("g8f6")
		b.MakeMove(mv2)
		mv3, _ := b.ParseMove("f3g1")
		b.MakeMove(mv3)
		mv4, _ := b.ParseMove("f6g8")
		b.MakeMove(mv4)
	}

	if b.IsRepetition() {
		t.Fatalf("IsRepetition true before any repeated position")
	}
	shuffle()
	if b.IsRepetition() {
		t.Fatalf("IsRepetition true after only one return to the start position")
	}
	shuffle()
	if !b.IsRepetition() {
		t.Fatalf("IsRepetition false after returning to the start position three times")
	}
}

func TestDrawByInsufficientMaterial(t *testing.T) {
	cases := []struct {
		fen  string
		want bool
	}{
		{"8/8/8/4k3/8/8/4K3/8 w - - 0 1", true},
		{"8/8/8/4k3/8/8/4KN2/8 w - - 0 1", true},
		{"8/8/8/4k3/8/8/4KB2/8 w - - 0 1", true},
		{FENStartPosition, false},
		{"8/8/8/4k3/8/8/4KR2/8 w - - 0 1", false},
	}
	for _, c := range cases {
		var b Board
		if err := b.SetFEN(c.fen); err != nil {
			t.Fatalf("SetFEN(%q): %v", c.fen, err)
		}
		if got := b.DrawByInsufficientMaterial(); got != c.want {
			t.Errorf("DrawByInsufficientMaterial(%q) = %v, want %v", c.fen, got, c.want)
		}
	}
}
