package protocol

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunConsolePlaysHumanMoveThenEngineReplies(t *testing.T) {
	in := strings.NewReader("startpos\nwhite\ne2e4\nquit\n")
	var out bytes.Buffer
	RunConsole(in, &out)

	got := out.String()
	if !strings.Contains(got, "engine plays") {
		t.Errorf("expected the engine to reply after the human's move, got %q", got)
	}
}

func TestRunConsoleRejectsIllegalMove(t *testing.T) {
	in := strings.NewReader("startpos\nwhite\ne2e5\nquit\n")
	var out bytes.Buffer
	RunConsole(in, &out)

	if !strings.Contains(out.String(), "not a legal move") {
		t.Errorf("expected an illegal-move message, got %q", out.String())
	}
}
