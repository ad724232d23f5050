// Package loop provides the main game loop and state management.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/polyroids/internal/clock"
	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/input"
	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/physics"
)

// Host bundles the collaborators a game runs against.
type Host struct {
	Display draw.Display
	Input   input.Poller
	Clock   clock.Clock
	Pacer   clock.Pacer
	Rand    object.Rand
	Logger  *log.Logger

	// MaxFrames stops the loop after that many frames. Zero runs until quit.
	MaxFrames int
}

// Run starts the main game loop with the standard Input → Update → Draw cycle.
// It returns nil when the player quits, the input ends or ctx is cancelled,
// and the last game state alongside any display or pacing failure.
func Run(ctx context.Context, h Host) (*Game, error) {
	logger := h.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game := NewGame(h.Rand, logger, BoundsOf(h.Display), h.Clock.Now())
	logger.Info("game started", "width", game.Bounds.Width, "height", game.Bounds.Height)

	for frame := 0; h.MaxFrames == 0 || frame < h.MaxFrames; frame++ {
		if ctx.Err() != nil {
			logger.Debug("run cancelled", "frame", game.Frame)
			return game, nil
		}

		// ===== INPUT PHASE =====
		in := h.Input.Poll()
		if in.IsKeyDown(input.KeyQuit) {
			logger.Info("player quit", "frame", game.Frame)
			return game, nil
		}

		// ===== UPDATE PHASE =====
		visible := game.Step(in, h.Clock.Now(), BoundsOf(h.Display))

		// ===== DRAW PHASE =====
		if visible {
			h.Display.Clear()
			game.Render(h.Display)
			if err := h.Display.Present(); err != nil {
				return game, fmt.Errorf("present frame: %w", err)
			}
		}

		// ===== FRAME TIMING =====
		if err := h.Pacer.NextFrame(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				logger.Debug("run cancelled", "frame", game.Frame)
				return game, nil
			}
			return game, fmt.Errorf("wait for frame: %w", err)
		}
	}
	return game, nil
}

// BoundsOf reads the display's current playfield size.
func BoundsOf(d draw.Display) physics.Bounds {
	return physics.Bounds{Width: d.Width(), Height: d.Height()}
}
