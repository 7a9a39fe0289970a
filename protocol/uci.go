package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"shatranj/engine"
)

const (
	EngineName   = "Shatranj 1.0"
	EngineAuthor = "the shatranj contributors"
)

// uciSession holds the state a UCI command stream mutates between
// "position" and "go" calls (spec §6): a single board plus the
// in-flight search's stop channel, mirroring the teacher's
// Searcher-centric RunUCIProtocol loop but built around engine.Board
// and engine.SearchInfo instead of a bespoke Searcher type.
type uciSession struct {
	board   engine.Board
	stopCh  chan engine.StopSignal
	done    chan struct{}
	p       *message.Printer
	running bool
}

// RunUCI drives the Universal Chess Interface protocol loop over r/w
// (spec §6). It never returns until the "quit" command or EOF.
func RunUCI(r io.Reader, w io.Writer) {
	sess := &uciSession{p: message.NewPrinter(language.English)}
	sess.board.SetFEN(engine.FENStartPosition)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch {
		case line == "uci":
			fmt.Fprintf(w, "id name %s\n", EngineName)
			fmt.Fprintf(w, "id author %s\n", EngineAuthor)
			fmt.Fprint(w, "uciok\n")
		case line == "isready":
			fmt.Fprint(w, "readyok\n")
		case strings.HasPrefix(line, "setoption"):
			// no configurable options (spec Non-goals: no UCI option tree)
		case line == "ucinewgame":
			sess.board.SetFEN(engine.FENStartPosition)
		case strings.HasPrefix(line, "position"):
			sess.handlePosition(line)
		case strings.HasPrefix(line, "go"):
			sess.handleGo(line, w)
		case line == "stop":
			sess.sendStop(engine.SignalStop)
		case line == "quit":
			sess.sendStop(engine.SignalQuit)
			sess.waitForSearch()
			return
		default:
			log.Warningf("uci: unrecognized command %q", line)
		}
	}
}

func (s *uciSession) handlePosition(line string) {
	args := strings.TrimPrefix(line, "position")
	args = strings.TrimSpace(args)

	var fen string
	switch {
	case strings.HasPrefix(args, "startpos"):
		fen = engine.FENStartPosition
		args = strings.TrimSpace(strings.TrimPrefix(args, "startpos"))
	case strings.HasPrefix(args, "fen"):
		args = strings.TrimSpace(strings.TrimPrefix(args, "fen"))
		fields := strings.Fields(args)
		if len(fields) < 6 {
			log.Warningf("uci: position fen: too few fields in %q", line)
			return
		}
		fen = strings.Join(fields[0:6], " ")
		args = strings.TrimSpace(strings.Join(fields[6:], " "))
	default:
		log.Warningf("uci: malformed position command %q", line)
		return
	}

	if err := s.board.SetFEN(fen); err != nil {
		log.Warningf("uci: %v", err)
		return
	}

	if strings.HasPrefix(args, "moves") {
		args = strings.TrimSpace(strings.TrimPrefix(args, "moves"))
		for _, moveText := range strings.Fields(args) {
			mv, ok := s.board.ParseMove(moveText)
			if !ok {
				log.Warningf("uci: illegal move %q in position command", moveText)
				return
			}
			s.board.MakeMove(mv)
		}
	}
}

func (s *uciSession) handleGo(line string, w io.Writer) {
	if s.running {
		return
	}
	s.running = true
	s.stopCh = make(chan engine.StopSignal, 1)
	s.done = make(chan struct{})

	var info engine.SearchInfo
	info.Stop = s.stopCh
	info.DepthLimit = parseIntField(line, "depth", 0)

	if movetime := parseIntField(line, "movetime", 0); movetime > 0 {
		info.SetSearchTime(0, time.Duration(movetime)*time.Millisecond, 0, 0)
	} else {
		wtime := parseIntField(line, "wtime", 0)
		btime := parseIntField(line, "btime", 0)
		winc := parseIntField(line, "winc", 0)
		binc := parseIntField(line, "binc", 0)
		movesToGo := parseIntField(line, "movestogo", 0)

		timeLeft := wtime
		inc := winc
		if s.board.SideToMove() == engine.Black {
			timeLeft = btime
			inc = binc
		}
		if timeLeft > 0 {
			info.SetSearchTime(time.Duration(timeLeft)*time.Millisecond, 0, movesToGo, time.Duration(inc)*time.Millisecond)
		}
	}

	info.OnDepth = func(depth, score int, nodes uint64, elapsed time.Duration, pv []engine.Move) {
		// The wire line is a hard external contract (spec §6): plain
		// fmt.Fprintf, no locale digit-grouping. s.p is reserved for
		// human-readable log output only (see the log.Debug call below).
		fmt.Fprintf(w, "info score cp %d depth %d nodes %d time %d pv %s\n",
			score, depth, nodes, elapsed.Milliseconds(), formatPV(pv))
		log.Debug(s.p.Sprintf("depth %d finished: score %d, %d nodes in %s", depth, score, nodes, elapsed))
	}

	board := s.board
	done := s.done
	go func() {
		defer close(done)
		best := board.Search(&info)
		s.running = false
		if best == engine.NoMove {
			fmt.Fprint(w, "bestmove 0000\n")
			return
		}
		fmt.Fprintf(w, "bestmove %s\n", best.String())
	}()
}

func (s *uciSession) sendStop(sig engine.StopSignal) {
	if !s.running || s.stopCh == nil {
		return
	}
	select {
	case s.stopCh <- sig:
	default:
	}
}

// waitForSearch blocks until an in-flight "go" has printed its
// bestmove, so "quit" never returns (and the caller never closes the
// output stream) while a search goroutine might still write to it.
func (s *uciSession) waitForSearch() {
	if s.done == nil {
		return
	}
	<-s.done
}

func formatPV(pv []engine.Move) string {
	parts := make([]string, len(pv))
	for i, mv := range pv {
		parts[i] = mv.String()
	}
	return strings.Join(parts, " ")
}

// parseIntField extracts the integer following a named token in a
// space-separated UCI command (e.g. "go wtime 5000 ..."), returning def
// if the token is absent or malformed (spec §7: a malformed field value
// degrades to the default rather than aborting the command).
func parseIntField(line, name string, def int) int {
	fields := strings.Fields(line)
	for i, f := range fields {
		if f == name && i+1 < len(fields) {
			n, err := strconv.Atoi(fields[i+1])
			if err != nil {
				return def
			}
			return n
		}
	}
	return def
}
