package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/polyroids/internal/clock"
	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/loop"
	"github.com/tomz197/polyroids/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logOut, closeLog, err := config.OpenLogFile()
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := config.NewLogger(logOut)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := tui.New(screen, draw.DefaultUnitsPerPixel)
	s.Start()

	_, err = loop.Run(ctx, loop.Host{
		Display: s,
		Input:   s,
		Clock:   clock.NewMonotonic(),
		Pacer:   clock.NewFramePacer(loop.TargetFPS),
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger:  logger,
	})
	if err != nil {
		logger.Error("game stopped", "err", err)
	}
	return err
}
