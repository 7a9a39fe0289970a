package engine

import "testing"

func TestFENRoundTrip(t *testing.T) {
	cases := []string{
		FENStartPosition,
		FENKiwipete,
		"rnbqkb1r/pp1p1pPp/8/2p1pP2/1P1P4/3P3P/P1P1P3/RNBQKBNR w KQkq e6 0 1",
		"8/8/8/4k3/8/8/4K3/8 w - - 0 1",
	}
	for _, fen := range cases {
		var b Board
		if err := b.SetFEN(fen); err != nil {
			t.Fatalf("SetFEN(%q): %v", fen, err)
		}
		if got := b.FEN(); got != fen {
			t.Errorf("FEN round trip: got %q, want %q", got, fen)
		}
	}
}

func TestSetFENRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"not a fen",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
	}
	for _, fen := range cases {
		var b Board
		if err := b.SetFEN(fen); err == nil {
			t.Errorf("SetFEN(%q): expected an error, got nil", fen)
		}
	}
}

func TestSetFENLeavesBoardUnmodifiedOnError(t *testing.T) {
	var b Board
	if err := b.SetFEN(FENStartPosition); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	before := b.FEN()
	if err := b.SetFEN("garbage"); err == nil {
		t.Fatalf("expected an error for malformed FEN")
	}
	if after := b.FEN(); after != before {
		t.Errorf("board changed after a rejected SetFEN: before %q, after %q", before, after)
	}
}
