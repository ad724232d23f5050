package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/tomz197/polyroids/internal/clock"
	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/input"
	"github.com/tomz197/polyroids/internal/loop"
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

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	draw.HideCursor(os.Stdout)
	defer draw.ShowCursor(os.Stdout)
	draw.ClearScreen(os.Stdout)
	defer draw.ClearScreen(os.Stdout)

	_, err = loop.Run(ctx, loop.Host{
		Display: draw.NewTerminal(os.Stdout, draw.DefaultTermSizeFunc, draw.DefaultUnitsPerPixel),
		Input:   input.StartStream(bufio.NewReader(os.Stdin)),
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
