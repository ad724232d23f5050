package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestParseBytes(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		bytes string
		want  Input
	}{
		{"nothing", "", Input{}},
		{"arrow up", "\x1b[A", Input{Up: true}},
		{"arrow left and right", "\x1b[D\x1b[C", Input{Left: true, Right: true}},
		{"down arrow ignored", "\x1b[B", Input{}},
		{"wasd", "wad", Input{Up: true, Left: true, Right: true}},
		{"fire and confirm", " \r", Input{Space: true, Enter: true}},
		{"quit", "q", Input{Quit: true}},
		{"ctrl-c", "\x03", Input{Quit: true}},
		{"lone escape is not quit", "\x1b", Input{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			ParseBytes(tr, []byte(tt.bytes), start)
			got := tr.Snapshot(start)
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestParseBytesSplitSequence(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		chunks []string
		want   Input
	}{
		{"up after bracket", []string{"\x1b[", "A"}, Input{Up: true}},
		{"left after escape", []string{"\x1b", "[D"}, Input{Left: true}},
		{"right in three reads", []string{"\x1b", "[", "C"}, Input{Right: true}},
		{"down after bracket", []string{"\x1b[", "B"}, Input{}},
		{"escape then plain key", []string{"\x1b", "d"}, Input{Right: true}},
		{"escape then quit", []string{"\x1b", "q"}, Input{Quit: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			for _, c := range tt.chunks {
				ParseBytes(tr, []byte(c), start)
			}
			got := tr.Snapshot(start)
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestTrackerHoldExpires(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := NewTracker()
	tr.Press(KeyFire, start)

	if !tr.Snapshot(start.Add(keyHoldDuration / 2)).Space {
		t.Errorf("Expected fire held within hold duration")
	}
	if tr.Snapshot(start.Add(keyHoldDuration)).Space {
		t.Errorf("Expected fire released after hold duration")
	}
}

func TestIsKeyDown(t *testing.T) {
	in := Input{Up: true, Enter: true}
	tests := []struct {
		key  Key
		want bool
	}{
		{KeyThrust, true},
		{KeyFire, false},
		{KeyRotateLeft, false},
		{KeyRotateRight, false},
		{KeyConfirm, true},
		{KeyQuit, false},
		{Key(99), false},
	}
	for _, tt := range tests {
		if got := in.IsKeyDown(tt.key); got != tt.want {
			t.Errorf("key %d: Expected %v, got %v", tt.key, tt.want, got)
		}
	}
}

func TestStreamClosedReadsAsQuit(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader(" ")))

	deadline := time.Now().Add(time.Second)
	sawFire := false
	for time.Now().Before(deadline) {
		in := s.Poll()
		if in.Space {
			sawFire = true
		}
		if in.Quit {
			if !sawFire {
				t.Errorf("Expected the fire byte before end of input")
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("Expected quit after input closed")
}

func TestScript(t *testing.T) {
	s := NewScript(false, Input{Up: true}, Input{Space: true})
	if !s.Poll().Up || !s.Poll().Space || !s.Poll().Space {
		t.Errorf("Expected scripted frames with the last one repeating")
	}

	loop := NewScript(true, Input{Up: true}, Input{})
	loop.Poll()
	loop.Poll()
	if !loop.Poll().Up {
		t.Errorf("Expected looping script to restart")
	}

	if (&Script{}).Poll().Up {
		t.Errorf("Expected empty script to read no keys")
	}
}
