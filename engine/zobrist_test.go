package engine

import "testing"

// The incrementally maintained hash (updated by MakeMove/UndoMove) must
// always agree with a from-scratch recomputation; any divergence means
// a missed XOR toggle somewhere in make/unmake (spec §3, §8).
func TestHashMatchesFromScratchRecompute(t *testing.T) {
	var b Board
	if err := b.SetFEN(FENKiwipete); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}

	var walk func(depth int)
	walk = func(depth int) {
		if zobristHash(&b) != b.Hash() {
			t.Fatalf("hash mismatch at ply %d: incremental %x, recomputed %x", b.Ply(), b.Hash(), zobristHash(&b))
		}
		if depth == 0 {
			return
		}
		for _, sm := range b.GenerateAllMoves() {
			if !b.MakeMove(sm.Move) {
				continue
			}
			walk(depth - 1)
			b.UndoMove()
		}
	}
	walk(3)
}

func TestUndoMoveRestoresHash(t *testing.T) {
	var b Board
	if err := b.SetFEN(FENStartPosition); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	before := b.Hash()
	for _, sm := range b.GenerateAllMoves() {
		if !b.MakeMove(sm.Move) {
			continue
		}
		b.UndoMove()
		if b.Hash() != before {
			t.Fatalf("UndoMove(%v) left hash %x, want %x", sm.Move, b.Hash(), before)
		}
	}
}
