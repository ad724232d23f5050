// Package clock provides the game's time source and frame pacing.
package clock

import (
	"context"
	"sync"
	"time"
)

// Clock reports monotonic elapsed time in seconds.
type Clock interface {
	Now() float64
}

// Monotonic measures seconds since it was created using the monotonic
// reading carried by time.Time.
type Monotonic struct {
	start time.Time
}

// NewMonotonic creates a clock starting at zero.
func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

// Now returns the seconds elapsed since creation.
func (m *Monotonic) Now() float64 {
	return time.Since(m.start).Seconds()
}

// Manual is a clock that only moves when told to. Used by tests and by
// headless runs that simulate a fixed frame rate.
type Manual struct {
	mu  sync.RWMutex
	now float64
}

// NewManual creates a manual clock at the given time.
func NewManual(start float64) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual time.
func (m *Manual) Now() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set moves the clock to t.
func (m *Manual) Set(t float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d seconds.
func (m *Manual) Advance(d float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now += d
}

// Pacer is the end-of-frame yield point.
type Pacer interface {
	// NextFrame blocks until the next frame is due or ctx is done.
	NextFrame(ctx context.Context) error
}

// FramePacer sleeps away whatever is left of a fixed frame budget.
type FramePacer struct {
	frame      time.Duration
	frameStart time.Time
}

// NewFramePacer creates a pacer targeting fps frames per second.
func NewFramePacer(fps int) *FramePacer {
	if fps <= 0 {
		fps = 60
	}
	return &FramePacer{
		frame:      time.Second / time.Duration(fps),
		frameStart: time.Now(),
	}
}

// NextFrame waits out the rest of the current frame.
func (p *FramePacer) NextFrame(ctx context.Context) error {
	elapsed := time.Since(p.frameStart)
	if elapsed < p.frame {
		timer := time.NewTimer(p.frame - elapsed)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}
	p.frameStart = time.Now()
	return nil
}

// StepPacer advances a manual clock by a fixed step on every frame without
// sleeping.
type StepPacer struct {
	Clock *Manual
	Step  float64
}

// NextFrame advances the clock by one step.
func (p StepPacer) NextFrame(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.Clock.Advance(p.Step)
	return nil
}
