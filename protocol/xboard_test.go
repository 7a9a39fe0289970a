package protocol

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunXBoardProtover(t *testing.T) {
	in := strings.NewReader("protover 2\nquit\n")
	var out bytes.Buffer
	RunXBoard(in, &out)

	got := out.String()
	if !strings.Contains(got, "feature") || !strings.Contains(got, "done=1") {
		t.Errorf("protover response missing expected features: %q", got)
	}
}

func TestRunXBoardPing(t *testing.T) {
	in := strings.NewReader("ping 7\nquit\n")
	var out bytes.Buffer
	RunXBoard(in, &out)

	if !strings.Contains(out.String(), "pong 7") {
		t.Errorf("expected pong 7, got %q", out.String())
	}
}

func TestRunXBoardUsermoveTriggersReply(t *testing.T) {
	// "sd 2" bounds the search: with no depth or time control set, the
	// engine searches to MaxSearchDepth with no deadline.
	in := strings.NewReader("new\nsd 2\ngo\nusermove e7e5\nquit\n")
	var out bytes.Buffer
	RunXBoard(in, &out)

	// One move line answers "go"; the second is the reply to the usermove.
	if got := strings.Count(out.String(), "move "); got < 2 {
		t.Errorf("expected engine move lines for go and for the usermove reply, got %d in %q", got, out.String())
	}
}

func TestParseLevelTime(t *testing.T) {
	cases := []struct {
		field string
		ok    bool
	}{
		{"5", true},
		{"5:30", true},
		{"garbage", false},
	}
	for _, c := range cases {
		_, err := parseLevelTime(c.field)
		if (err == nil) != c.ok {
			t.Errorf("parseLevelTime(%q): err=%v, want ok=%v", c.field, err, c.ok)
		}
	}
}
