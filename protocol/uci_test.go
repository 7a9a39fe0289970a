package protocol

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunUCIHandshake(t *testing.T) {
	in := strings.NewReader("uci\nisready\nquit\n")
	var out bytes.Buffer
	RunUCI(in, &out)

	got := out.String()
	if !strings.Contains(got, "id name") {
		t.Errorf("output missing id name line: %q", got)
	}
	if !strings.Contains(got, "uciok") {
		t.Errorf("output missing uciok: %q", got)
	}
	if !strings.Contains(got, "readyok") {
		t.Errorf("output missing readyok: %q", got)
	}
}

func TestRunUCISearchesToBestmove(t *testing.T) {
	in := strings.NewReader("position startpos\ngo depth 2\nquit\n")
	var out bytes.Buffer
	RunUCI(in, &out)

	if !strings.Contains(out.String(), "bestmove") {
		t.Errorf("output missing bestmove: %q", out.String())
	}
}

func TestParseIntField(t *testing.T) {
	cases := []struct {
		line string
		name string
		def  int
		want int
	}{
		{"go wtime 5000 btime 4000", "wtime", 0, 5000},
		{"go depth 6", "depth", 0, 6},
		{"go infinite", "depth", 3, 3},
		{"go depth notanumber", "depth", 7, 7},
	}
	for _, c := range cases {
		if got := parseIntField(c.line, c.name, c.def); got != c.want {
			t.Errorf("parseIntField(%q, %q, %d) = %d, want %d", c.line, c.name, c.def, got, c.want)
		}
	}
}
