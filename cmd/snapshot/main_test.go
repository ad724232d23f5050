package main

import (
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoadOptions(t *testing.T) {
	t.Setenv("SNAPSHOT_FRAMES", "30")
	t.Setenv("SNAPSHOT_WIDTH", "320")
	t.Setenv("SNAPSHOT_HEIGHT", "200")
	t.Setenv("SNAPSHOT_SEED", "9")
	t.Setenv("SNAPSHOT_OUT", "frame.png")

	o, err := loadOptions()
	if err != nil {
		t.Fatalf("loadOptions: %v", err)
	}
	want := options{Frames: 30, Out: "frame.png", Width: 320, Height: 200, Seed: 9}
	if o != want {
		t.Errorf("Expected %+v, got %+v", want, o)
	}

	t.Setenv("SNAPSHOT_WIDTH", "0")
	if _, err := loadOptions(); err == nil {
		t.Errorf("Expected error for zero width")
	}
	t.Setenv("SNAPSHOT_WIDTH", "wide")
	if _, err := loadOptions(); err == nil {
		t.Errorf("Expected error for non-numeric width")
	}
}

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "snap.png")
	opts := options{Frames: 90, Out: out, Width: 320, Height: 240, Seed: 3}

	if err := run(context.Background(), opts, log.New(io.Discard)); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("Expected 320x240, got %v", b)
	}
}
