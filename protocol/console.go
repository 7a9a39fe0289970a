package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"shatranj/engine"
)

// RunConsole drives a simple interactive command-line session (spec
// §6), grounded in the teacher's RunCommandLineProtocol: prompt for a
// starting FEN and a side to play, then alternate between reading the
// human's move and running a fixed-depth search for the engine's.
func RunConsole(r io.Reader, w io.Writer) {
	reader := bufio.NewReader(r)
	var board engine.Board

	fmt.Fprint(w, "FEN for the starting position (or 'startpos'): ")
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" || line == "startpos" {
		line = engine.FENStartPosition
	}
	if err := board.SetFEN(line); err != nil {
		log.Warningf("console: %v, falling back to the starting position", err)
		board.SetFEN(engine.FENStartPosition)
	}

	fmt.Fprint(w, "Play as white or black? ")
	line, _ = reader.ReadString('\n')
	line = strings.TrimSpace(line)
	humanIsWhite := line != "black"
	humanToMove := humanIsWhite == (board.SideToMove() == engine.White)

	const engineDepth = 6

	for {
		fmt.Fprint(w, board.String())

		if humanToMove {
			fmt.Fprint(w, "your move (long algebraic, or 'quit')> ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			line = strings.TrimSpace(line)
			if line == "quit" {
				return
			}
			mv, ok := board.ParseMove(line)
			if !ok {
				fmt.Fprintf(w, "not a legal move: %q\n", line)
				continue
			}
			board.MakeMove(mv)
		} else {
			var info engine.SearchInfo
			info.DepthLimit = engineDepth
			info.OnDepth = func(depth, score int, nodes uint64, elapsed time.Duration, pv []engine.Move) {
				fmt.Fprintf(w, "depth %d score %d nodes %d pv %s\n", depth, score, nodes, formatPV(pv))
			}
			best := board.Search(&info)
			if best == engine.NoMove {
				fmt.Fprint(w, "no legal moves, game over\n")
				return
			}
			board.MakeMove(best)
			fmt.Fprintf(w, "engine plays %s\n", best.String())
		}
		humanToMove = !humanToMove
	}
}
