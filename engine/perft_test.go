package engine

import "testing"

// perft counts are reference values every legal engine must reproduce
// exactly; divergence almost always means a move generation or
// make/unmake bug, never a "close enough" rounding issue.
func TestPerftStartPosition(t *testing.T) {
	var b Board
	if err := b.SetFEN(FENStartPosition); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}

	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		if got := b.Perft(c.depth); got != c.want {
			t.Errorf("Perft(%d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	var b Board
	if err := b.SetFEN(FENKiwipete); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	if got := b.Perft(2); got != 2039 {
		t.Errorf("Perft(2) = %d, want 2039", got)
	}
}

// TestPerftRestoresBoard guards the invariant that Perft never leaves
// a side effect: the board after Perft must equal the board before,
// since UndoMove is relied on throughout search to avoid copying.
func TestPerftRestoresBoard(t *testing.T) {
	var b Board
	if err := b.SetFEN(FENKiwipete); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	before := b.FEN()
	b.Perft(3)
	after := b.FEN()
	if before != after {
		t.Errorf("Perft mutated the board: before %q, after %q", before, after)
	}
}
