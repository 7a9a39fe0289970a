package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	"shatranj/engine"
	"shatranj/protocol"
)

var backendLog = logging.MustGetLogger("shatranj")

// configureLogging sets up the single op/go-logging backend shared by
// every package's module logger (engine, protocol): plain text to
// stderr so stdout stays reserved for the UCI/CECP wire protocol.
func configureLogging() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.WARNING, "")
	logging.SetBackend(leveled)
}

// benchSuite is the fixed set of stress positions named in spec §8
// (S1, S2, S6) plus the standard opening, run by the "b N" benchmark
// entry point (spec §6).
var benchSuite = []string{
	engine.FENStartPosition,
	engine.FENKiwipete,
	"rnbqkb1r/pp1p1pPp/8/2p1pP2/1P1P4/3P3P/P1P1P3/RNBQKBNR w KQkq e6 0 1",
	"r1b1k2r/ppppnppp/2n2q2/2b5/3NP3/2P1B3/PP3PPP/RN1QKB1R w KQkq - 0 1",
}

func runBenchmark(depth int) {
	var totalNodes uint64
	start := time.Now()

	for _, fen := range benchSuite {
		var board engine.Board
		if err := board.SetFEN(fen); err != nil {
			backendLog.Errorf("benchmark: %v", err)
			continue
		}

		var info engine.SearchInfo
		info.DepthLimit = depth
		best := board.Search(&info)
		totalNodes += info.Nodes
		fmt.Printf("fen %q depth %d nodes %d bestmove %s\n", fen, depth, info.Nodes, best.String())
	}

	elapsed := time.Since(start)
	nps := uint64(0)
	if elapsed > 0 {
		nps = uint64(float64(totalNodes) / elapsed.Seconds())
	}
	fmt.Printf("total nodes %d time %dms nps %d\n", totalNodes, elapsed.Milliseconds(), nps)
}

// selectProtocol reads a single line from r (spec §6: "reads one line on
// startup to select protocol") and returns the matching mode plus a reader
// that replays that line ahead of whatever of r is left unread, so the
// chosen protocol loop still sees its own selector command (e.g. RunUCI's
// "uci" case still fires and prints the id/uciok handshake).
func selectProtocol(r *bufio.Reader) (string, io.Reader, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", nil, err
	}
	rest := io.MultiReader(strings.NewReader(line), r)

	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, "xboard"):
		return "xboard", rest, nil
	case strings.HasPrefix(trimmed, "console"):
		return "console", rest, nil
	case strings.HasPrefix(trimmed, "uci"):
		return "uci", rest, nil
	default:
		// Unrecognized opening line: default to UCI (the common case
		// when a GUI's first line legitimately is "uci") and let the
		// protocol loop itself warn on anything it doesn't recognize.
		return "uci", rest, nil
	}
}

func main() {
	configureLogging()

	args := os.Args[1:]
	if len(args) == 2 && args[0] == "b" {
		depth, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "shatranj: invalid benchmark depth %q\n", args[1])
			os.Exit(1)
		}
		runBenchmark(depth)
		return
	}

	mode, in, err := selectProtocol(bufio.NewReader(os.Stdin))
	if err != nil {
		return
	}

	switch mode {
	case "uci":
		protocol.RunUCI(in, os.Stdout)
	case "xboard":
		protocol.RunXBoard(in, os.Stdout)
	case "console":
		protocol.RunConsole(in, os.Stdout)
	}
}
