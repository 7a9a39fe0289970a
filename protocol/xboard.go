package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"shatranj/engine"
)

// sideBoth means neither color is under engine control (xboard's
// "force" mode); engineSide is plain int rather than engine.Color
// since it must hold a value outside Color's two-value range.
const sideBoth = -1

// RunXBoard drives the CECP ("xboard") protocol loop over r/w (spec
// §6), grounded in the teacher corpus's Rust xboard_loop: command
// words are read one at a time and dispatched, with "go" setting
// engineSide to the side on move and search running synchronously
// between polls of the input stream.
func RunXBoard(r io.Reader, w io.Writer) {
	var board engine.Board
	board.SetFEN(engine.FENStartPosition)

	engineSide := sideBoth
	depthLimit := 0
	moveTime := time.Duration(0)
	movesToGo := 30
	timeLeft := time.Duration(0)
	inc := time.Duration(0)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "quit":
			return
		case "force":
			engineSide = sideBoth
		case "protover":
			fmt.Fprint(w, "feature ping=1 setboard=1 colors=0 usermove=1 sigint=0 sigterm=0\n")
			fmt.Fprint(w, "feature done=1\n")
		case "sd":
			if len(fields) >= 2 {
				if n, err := strconv.Atoi(fields[1]); err == nil {
					depthLimit = n
				}
			}
		case "st":
			if len(fields) >= 2 {
				if n, err := strconv.Atoi(fields[1]); err == nil {
					moveTime = time.Duration(n) * time.Second
				}
			}
		case "time":
			if len(fields) >= 2 {
				if n, err := strconv.Atoi(fields[1]); err == nil {
					timeLeft = time.Duration(n) * 10 * time.Millisecond
				}
			}
		case "level":
			if len(fields) >= 4 {
				if n, err := strconv.Atoi(fields[1]); err == nil && n > 0 {
					movesToGo = n
				}
				if n, err := parseLevelTime(fields[2]); err == nil {
					timeLeft = n
				}
				if n, err := strconv.Atoi(fields[3]); err == nil {
					inc = time.Duration(n) * time.Second
				}
			}
		case "ping":
			if len(fields) >= 2 {
				fmt.Fprintf(w, "pong %s\n", fields[1])
			} else {
				fmt.Fprint(w, "pong\n")
			}
		case "new":
			engineSide = int(engine.Black)
			board.SetFEN(engine.FENStartPosition)
			depthLimit = 0
		case "setboard":
			if len(fields) >= 2 {
				fen := strings.TrimSpace(strings.TrimPrefix(line, "setboard"))
				if err := board.SetFEN(fen); err != nil {
					log.Warningf("xboard: %v", err)
				} else {
					engineSide = sideBoth
				}
			}
		case "remove":
			for i := 0; i < 2 && board.MovesPlayed() > 0; i++ {
				board.UndoMove()
			}
		case "go":
			engineSide = int(board.SideToMove())
			thinkAndMove(&board, depthLimit, moveTime, timeLeft, movesToGo, inc, w)
		case "usermove":
			if len(fields) < 2 {
				continue
			}
			mv, ok := board.ParseMove(fields[1])
			if !ok {
				fmt.Fprintf(w, "Illegal move: %s\n", fields[1])
				continue
			}
			board.MakeMove(mv)
			if int(board.SideToMove()) == engineSide {
				thinkAndMove(&board, depthLimit, moveTime, timeLeft, movesToGo, inc, w)
			}
		case "?":
			// force the engine to move now; search.go has no async
			// abort wired into this synchronous loop, so there is
			// nothing to interrupt (spec Non-goals: pondering).
		default:
			log.Debugf("xboard: ignoring command %q", line)
		}
	}
}

func parseLevelTime(field string) (time.Duration, error) {
	if idx := strings.IndexByte(field, ':'); idx >= 0 {
		mm, err := strconv.Atoi(field[:idx])
		if err != nil {
			return 0, err
		}
		ss, err := strconv.Atoi(field[idx+1:])
		if err != nil {
			return 0, err
		}
		return time.Duration(mm)*time.Minute + time.Duration(ss)*time.Second, nil
	}
	mm, err := strconv.Atoi(field)
	if err != nil {
		return 0, err
	}
	return time.Duration(mm) * time.Minute, nil
}

// thinkAndMove runs a synchronous search and prints the CECP progress
// and result lines (spec §6): "<depth> <score> <centiseconds> <nodes>
// pv..." per completed iteration, then "move <m>".
func thinkAndMove(board *engine.Board, depthLimit int, moveTime, timeLeft time.Duration, movesToGo int, inc time.Duration, w io.Writer) {
	var info engine.SearchInfo
	info.DepthLimit = depthLimit
	info.SetSearchTime(timeLeft, moveTime, movesToGo, inc)
	info.OnDepth = func(depth, score int, nodes uint64, elapsed time.Duration, pv []engine.Move) {
		fmt.Fprintf(w, "%d %d %d %d %s\n", depth, score, elapsed.Milliseconds()/10, nodes, formatPV(pv))
	}

	best := board.Search(&info)
	if best == engine.NoMove {
		return
	}
	board.MakeMove(best)
	fmt.Fprintf(w, "move %s\n", best.String())
}
