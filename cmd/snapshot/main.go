// Command snapshot plays a scripted game headlessly and saves the last frame as PNG.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/polyroids/internal/clock"
	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/input"
	"github.com/tomz197/polyroids/internal/loop"
	"github.com/tomz197/polyroids/internal/raster"
)

type options struct {
	Frames int
	Out    string
	Width  int
	Height int
	Seed   int
}

func loadOptions() (options, error) {
	var o options
	var err error
	if o.Frames, err = config.GetEnvInt("SNAPSHOT_FRAMES", 240); err != nil {
		return o, err
	}
	if o.Width, err = config.GetEnvInt("SNAPSHOT_WIDTH", 800); err != nil {
		return o, err
	}
	if o.Height, err = config.GetEnvInt("SNAPSHOT_HEIGHT", 600); err != nil {
		return o, err
	}
	if o.Seed, err = config.GetEnvInt("SNAPSHOT_SEED", 1); err != nil {
		return o, err
	}
	o.Out = config.GetEnv("SNAPSHOT_OUT", "polyroids.png")
	if o.Frames <= 0 || o.Width <= 0 || o.Height <= 0 {
		return o, fmt.Errorf("frames and size must be positive, got %d frames at %dx%d", o.Frames, o.Width, o.Height)
	}
	return o, nil
}

// demoScript sweeps the ship around while firing, with a burst of thrust.
func demoScript() *input.Script {
	var frames []input.Input
	for i := 0; i < 30; i++ {
		frames = append(frames, input.Input{Space: true, Right: true})
	}
	for i := 0; i < 10; i++ {
		frames = append(frames, input.Input{Space: true, Up: true})
	}
	for i := 0; i < 30; i++ {
		frames = append(frames, input.Input{Space: true, Left: true})
	}
	// Confirm restarts a finished round so long runs keep playing.
	frames = append(frames, input.Input{Enter: true})
	return input.NewScript(true, frames...)
}

func main() {
	logger, err := config.NewLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	opts, err := loadOptions()
	if err != nil {
		logger.Fatal("invalid snapshot options", "err", err)
	}
	if err := run(context.Background(), opts, logger); err != nil {
		logger.Fatal("snapshot failed", "err", err)
	}
}

func run(ctx context.Context, opts options, logger *log.Logger) error {
	display, err := raster.New(opts.Width, opts.Height)
	if err != nil {
		return err
	}
	defer display.Close()

	clk := clock.NewManual(0)
	game, err := loop.Run(ctx, loop.Host{
		Display:   display,
		Input:     demoScript(),
		Clock:     clk,
		Pacer:     clock.StepPacer{Clock: clk, Step: 1.0 / loop.TargetFPS},
		Rand:      rand.New(rand.NewSource(int64(opts.Seed))),
		Logger:    logger,
		MaxFrames: opts.Frames,
	})
	if err != nil {
		return err
	}

	f, err := os.Create(opts.Out)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := display.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}

	logger.Info("snapshot written", "path", opts.Out, "frames", game.Frame,
		"asteroids", len(game.Asteroids), "bullets", len(game.Bullets), "state", game.GameState)
	return nil
}
