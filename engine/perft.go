package engine

// Perft returns the number of leaf nodes reachable by legal move
// sequences of exactly depth plies from the current position (spec
// §4.7). It is a direct move-generator/make-unmake correctness check:
// every pseudo-legal move is attempted and only those MakeMove accepts
// are counted.
func (b *Board) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, sm := range b.GenerateAllMoves() {
		if !b.MakeMove(sm.Move) {
			continue
		}
		nodes += b.Perft(depth - 1)
		b.UndoMove()
	}
	return nodes
}

// Divide runs Perft one ply deep per root move and returns the per-move
// breakdown, the classic perft debugging aid for isolating a move
// generator bug to a single root move.
func (b *Board) Divide(depth int) map[string]uint64 {
	result := make(map[string]uint64)
	for _, sm := range b.GenerateAllMoves() {
		if !b.MakeMove(sm.Move) {
			continue
		}
		var nodes uint64
		if depth <= 1 {
			nodes = 1
		} else {
			nodes = b.Perft(depth - 1)
		}
		result[sm.Move.String()] = nodes
		b.UndoMove()
	}
	return result
}
