package engine

import (
	"sort"
	"time"
)

// Mate and infinity bounds (spec §4.6). MaxEval is chosen so that
// -MaxEval never overflows an int, avoiding the classic "negating
// math.MinInt" trap in a negamax implementation.
const (
	MaxEval  = 1 << 20
	MinEval  = -MaxEval
	MateEval = 29000
)

// checkupInterval is the node granularity at which SearchInfo.Checkup is
// polled for a time/stop signal (spec §4.6, §5).
const checkupInterval = 2000

// StopSignal is the set of asynchronous requests a protocol loop can send
// mid-search over SearchInfo.Stop (spec §5: "single-consumer channel").
type StopSignal int

const (
	SignalNone StopSignal = iota
	SignalStop
	SignalQuit
)

// SearchInfo carries the depth/time/node limits and the channel used by a
// reader goroutine to asynchronously request a stop (spec §4.6, §5). The
// zero value searches to MaxSearchDepth with no time limit.
type SearchInfo struct {
	DepthLimit int
	Deadline   time.Time
	HasTime    bool

	Nodes   uint64
	Stopped bool
	Quit    bool

	Stop <-chan StopSignal

	// OnDepth, if set, is called after each completed iterative-deepening
	// depth with the info needed to print a progress line (spec §6); it
	// is the seam protocol loops hook into instead of search.go knowing
	// about UCI/XBoard wire formats.
	OnDepth func(depth int, score int, nodes uint64, elapsed time.Duration, pv []Move)
}

const MaxSearchDepth = 64

// checkup polls the stop channel and deadline every checkupInterval
// nodes (spec §4.6, §5: "non-blocking receive semantics are required").
func (info *SearchInfo) checkup() {
	if info.HasTime && time.Now().After(info.Deadline) {
		info.Stopped = true
	}
	select {
	case sig := <-info.Stop:
		switch sig {
		case SignalStop:
			info.Stopped = true
		case SignalQuit:
			info.Stopped = true
			info.Quit = true
		}
	default:
	}
}

// SetSearchTime computes an absolute deadline from UCI/XBoard-style time
// controls (spec §5). moveTime, when non-zero, is used directly; else
// timeLeft is divided by movesToGo (default 30) plus increment credit.
// A 50ms safety buffer is subtracted and the result clamped to a 50ms
// floor.
func (info *SearchInfo) SetSearchTime(timeLeft, moveTime time.Duration, movesToGo int, inc time.Duration) {
	const safetyBuffer = 50 * time.Millisecond
	const minBudget = 50 * time.Millisecond
	const defaultMovesToGo = 30

	var budget time.Duration
	switch {
	case moveTime > 0:
		budget = moveTime - safetyBuffer
	case timeLeft > 0:
		n := movesToGo
		if n <= 0 {
			n = defaultMovesToGo
		}
		budget = timeLeft/time.Duration(n) + time.Duration(n-1)*inc - safetyBuffer
	default:
		info.HasTime = false
		return
	}
	if budget < minBudget {
		budget = minBudget
	}
	info.HasTime = true
	info.Deadline = time.Now().Add(budget)
}

// Search runs iterative deepening negamax alpha-beta from depth 1 up to
// info.DepthLimit (or MaxSearchDepth), returning the best move found at
// the deepest completed iteration, or NoMove if the position has no
// legal moves (spec §4.6, §7: "Search never returns an error").
func (b *Board) Search(info *SearchInfo) Move {
	b.resetPly()
	info.Nodes = 0
	info.Stopped = false

	depthLimit := info.DepthLimit
	if depthLimit <= 0 || depthLimit > MaxSearchDepth {
		depthLimit = MaxSearchDepth
	}

	best := NoMove
	start := time.Now()

	for depth := 1; depth <= depthLimit; depth++ {
		score := b.alphaBeta(MinEval, MaxEval, depth, info, true)
		if info.Stopped {
			break
		}
		pv := b.extractPV(depth)
		if len(pv) > 0 {
			best = pv[0]
		}
		log.Debugf("depth %d score %d nodes %d pv %v", depth, score, info.Nodes, pv)
		if info.OnDepth != nil {
			info.OnDepth(depth, score, info.Nodes, time.Since(start), pv)
		}
	}
	return best
}

// alphaBeta is the negamax search core (spec §4.6).
func (b *Board) alphaBeta(alpha, beta, depth int, info *SearchInfo, allowNull bool) int {
	if b.InCheck() {
		depth++ // check extension
	}
	if depth <= 0 {
		return b.quiescence(alpha, beta, info)
	}

	info.Nodes++
	if info.Nodes%checkupInterval == 0 {
		info.checkup()
	}
	if info.Stopped {
		return 0
	}

	if b.ply > 0 {
		if b.IsRepetition() || b.fiftyMove >= 100 {
			return 0
		}
	}

	moves := b.GenerateAllMoves()
	if pv, ok := b.pvTable[b.hash]; ok {
		for i := range moves {
			if moves[i].Move == pv {
				moves[i].Score = scorePVMove
			}
		}
	}
	sortMovesDesc(moves)

	legalMoves := 0
	best := MinEval
	bestMove := NoMove
	origAlpha := alpha

	for _, sm := range moves {
		mv := sm.Move
		if !b.MakeMove(mv) {
			continue
		}
		legalMoves++
		score := -b.alphaBeta(-beta, -alpha, depth-1, info, true)
		b.UndoMove()

		if info.Stopped {
			return 0
		}

		if score > best {
			best = score
			bestMove = mv
		}
		if score >= beta {
			if !mv.IsCapture() && mv.Flag() != FlagEnPassant {
				b.recordKiller(mv)
			}
			b.storePV(origAlpha, alpha, beta, bestMove)
			return beta
		}
		if score > alpha {
			alpha = score
			if !mv.IsCapture() {
				b.searchHistory[b.pieceAt[mv.From()]][mv.To()] += depth
			}
		}
	}

	if legalMoves == 0 {
		if b.InCheck() {
			return -MateEval + b.ply
		}
		return 0
	}

	b.storePV(origAlpha, alpha, beta, bestMove)
	return alpha
}

func (b *Board) recordKiller(mv Move) {
	if b.ply >= len(b.killers) {
		return
	}
	if b.killers[b.ply][0] != mv {
		b.killers[b.ply][1] = b.killers[b.ply][0]
		b.killers[b.ply][0] = mv
	}
}

func (b *Board) storePV(origAlpha, alpha, beta int, bestMove Move) {
	if bestMove != NoMove && alpha > origAlpha {
		b.pvTable[b.hash] = bestMove
	}
}

// quiescence extends search along capturing lines only, bounded
// naturally by the absence of further captures (spec §4.6).
func (b *Board) quiescence(alpha, beta int, info *SearchInfo) int {
	info.Nodes++
	if info.Nodes%checkupInterval == 0 {
		info.checkup()
	}
	if info.Stopped {
		return 0
	}

	standPat := b.Evaluate()
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := b.GenerateAllCaptures()
	sortMovesDesc(moves)

	for _, sm := range moves {
		if !b.MakeMove(sm.Move) {
			continue
		}
		score := -b.quiescence(-beta, -alpha, info)
		b.UndoMove()

		if info.Stopped {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// sortMovesDesc orders moves by descending score with a stable sort
// (sort.SliceStable), so moves with equal scores keep their generation
// order; iterating the result visits moves highest score first.
func sortMovesDesc(moves MoveList) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Score > moves[j].Score
	})
}

// extractPV walks the PV table from the current position, making moves
// along the principal variation (bounded by depth), then undoes them all
// before returning (spec §4.6 "PV retrieval").
func (b *Board) extractPV(depth int) []Move {
	var pv []Move
	made := 0
	for made < depth {
		mv, ok := b.pvTable[b.hash]
		if !ok {
			break
		}
		found := false
		for _, sm := range b.GenerateAllMoves() {
			if sm.Move == mv {
				found = true
				break
			}
		}
		if !found {
			break
		}
		if !b.MakeMove(mv) {
			break
		}
		pv = append(pv, mv)
		made++
	}
	for i := 0; i < made; i++ {
		b.UndoMove()
	}
	return pv
}
