// Package input turns raw terminal bytes and key events into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, never releases.
const keyHoldDuration = 50 * time.Millisecond

// Key identifies one of the keys the game queries.
type Key int

const (
	KeyThrust Key = iota
	KeyFire
	KeyRotateLeft
	KeyRotateRight
	KeyConfirm
	KeyQuit
)

// Input represents the current frame's input state.
type Input struct {
	Up    bool // Thrust
	Space bool // Fire
	Left  bool // Rotate left
	Right bool // Rotate right
	Enter bool // Confirm
	Quit  bool
}

// IsKeyDown reports whether k is held in this frame.
func (in Input) IsKeyDown(k Key) bool {
	switch k {
	case KeyThrust:
		return in.Up
	case KeyFire:
		return in.Space
	case KeyRotateLeft:
		return in.Left
	case KeyRotateRight:
		return in.Right
	case KeyConfirm:
		return in.Enter
	case KeyQuit:
		return in.Quit
	default:
		return false
	}
}

// Poller produces one Input snapshot per frame.
type Poller interface {
	Poll() Input
}

// Tracker records the last time each key was pressed so that key repeats can
// be read back as a held state.
type Tracker struct {
	last [KeyQuit + 1]time.Time
	hold time.Duration

	// Unfinished escape sequence from the previous read: ESC or ESC [.
	pending []byte
}

// NewTracker creates a tracker with the default hold duration.
func NewTracker() *Tracker {
	return &Tracker{hold: keyHoldDuration}
}

// Press records a press of k at now.
func (t *Tracker) Press(k Key, now time.Time) {
	if k < 0 || int(k) >= len(t.last) {
		return
	}
	t.last[k] = now
}

// Snapshot builds the input state at now: a key is held if it was pressed
// within the hold duration.
func (t *Tracker) Snapshot(now time.Time) Input {
	held := func(k Key) bool {
		return !t.last[k].IsZero() && now.Sub(t.last[k]) < t.hold
	}
	return Input{
		Up:    held(KeyThrust),
		Space: held(KeyFire),
		Left:  held(KeyRotateLeft),
		Right: held(KeyRotateRight),
		Enter: held(KeyConfirm),
		Quit:  held(KeyQuit),
	}
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	tracker *Tracker
	now     func() time.Time
}

var _ Poller = (*Stream)(nil)

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:      make(chan byte, 128),
		tracker: NewTracker(),
		now:     time.Now,
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains all available bytes from the stream (non-blocking) and returns
// the held key state. A closed input stream reads as a quit request.
func (s *Stream) Poll() Input {
	now := s.now()
	var buf []byte
	closed := false

	// Drain all available bytes
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	ParseBytes(s.tracker, buf, now)

	in := s.tracker.Snapshot(now)
	if closed {
		in.Quit = true
	}
	return in
}

// ParseBytes updates the tracker from raw terminal bytes, handling the CSI
// escape sequences sent by arrow keys. A sequence cut off at the end of buf
// is held back and completed by the next call.
func ParseBytes(t *Tracker, buf []byte, now time.Time) {
	if len(t.pending) > 0 {
		joined := make([]byte, 0, len(t.pending)+len(buf))
		joined = append(append(joined, t.pending...), buf...)
		buf = joined
		t.pending = t.pending[:0]
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			rest := buf[i+1:]
			if len(rest) == 0 || (len(rest) == 1 && rest[0] == '[') {
				t.pending = append(t.pending, buf[i:]...)
				return
			}

			// CSI sequence: ESC [ <code>
			if rest[0] == '[' {
				switch rest[1] {
				case 'A': // Up arrow
					t.Press(KeyThrust, now)
					i += 2
					continue
				case 'C': // Right arrow
					t.Press(KeyRotateRight, now)
					i += 2
					continue
				case 'D': // Left arrow
					t.Press(KeyRotateLeft, now)
					i += 2
					continue
				case 'B': // Down arrow, unused
					i += 2
					continue
				}
			}
		}

		applyByte(t, b, now)
	}
}

// applyByte maps a single byte to a key press.
func applyByte(t *Tracker, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		t.Press(KeyQuit, now)
	case 'a', 'A', 'j', 'J':
		t.Press(KeyRotateLeft, now)
	case 'd', 'D', 'l', 'L':
		t.Press(KeyRotateRight, now)
	case 'w', 'W', 'i', 'I':
		t.Press(KeyThrust, now)
	case ' ':
		t.Press(KeyFire, now)
	case '\n', '\r':
		t.Press(KeyConfirm, now)
	}
}
