package input

// Script replays a fixed sequence of frames. Frames past the end of the
// script repeat the last entry, or read as no keys when Loop is false and
// the script is empty.
type Script struct {
	Frames []Input
	Loop   bool
	frame  int
}

var _ Poller = (*Script)(nil)

// NewScript creates a script over the given frames.
func NewScript(loop bool, frames ...Input) *Script {
	return &Script{Frames: frames, Loop: loop}
}

// Poll returns the next scripted frame.
func (s *Script) Poll() Input {
	if len(s.Frames) == 0 {
		return Input{}
	}
	i := s.frame
	s.frame++
	if i >= len(s.Frames) {
		if s.Loop {
			i %= len(s.Frames)
		} else {
			i = len(s.Frames) - 1
		}
	}
	return s.Frames[i]
}
