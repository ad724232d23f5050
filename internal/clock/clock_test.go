package clock

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMonotonicClock(t *testing.T) {
	c := NewMonotonic()

	t1 := c.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := c.Now()

	if t2 <= t1 {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if t2-t1 < 0.01 {
		t.Errorf("Expected at least 10ms difference, got %v", t2-t1)
	}
}

func TestManualClock(t *testing.T) {
	c := NewManual(5)
	if c.Now() != 5 {
		t.Errorf("Expected initial time 5, got %v", c.Now())
	}

	c.Advance(0.25)
	c.Advance(0.25)
	if c.Now() != 5.5 {
		t.Errorf("Expected 5.5 after advances, got %v", c.Now())
	}

	c.Set(1)
	if c.Now() != 1 {
		t.Errorf("Expected 1 after Set, got %v", c.Now())
	}
}

func TestFramePacerWaits(t *testing.T) {
	p := NewFramePacer(50)

	start := time.Now()
	if err := p.NextFrame(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Errorf("Expected pacer to wait most of a 20ms frame, waited %v", elapsed)
	}
}

func TestFramePacerCancelled(t *testing.T) {
	p := NewFramePacer(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.NextFrame(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestStepPacer(t *testing.T) {
	c := NewManual(0)
	p := StepPacer{Clock: c, Step: 0.5}

	for i := 0; i < 3; i++ {
		if err := p.NextFrame(context.Background()); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}
	if c.Now() != 1.5 {
		t.Errorf("Expected 1.5 after three steps, got %v", c.Now())
	}
}
