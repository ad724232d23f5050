package loop

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/input"
	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/physics"
)

// Game is one independent asteroids session: the simulation state plus the
// randomness source and logger it runs with.
type Game struct {
	State

	rng    object.Rand
	logger *log.Logger
	grid   *physics.SpatialGrid // Bullet broad phase, rebuilt every frame

	polygon []draw.Point // Scratch buffer for hull vertices
}

// NewGame creates a game in the playing state on a playfield of the given
// size. now starts the shot cooldown.
func NewGame(rng object.Rand, logger *log.Logger, bounds physics.Bounds, now float64) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		rng:    rng,
		logger: logger,
	}
	g.Bounds = bounds
	g.LastShot = now
	g.Reset()
	return g
}

// Reset starts a new round: a fresh ship at the centre, no bullets and a new
// asteroid field clear of the ship. The shot cooldown is left alone.
func (g *Game) Reset() {
	center := g.Bounds.Center()
	g.Ship = object.NewShip(center)
	g.Bullets = g.Bullets[:0]
	g.toSpawn = g.toSpawn[:0]

	field, relaxed := object.GenerateField(g.rng, g.Bounds, center, SpawnClearance, InitialAsteroids)
	if relaxed > 0 {
		g.logger.Warn("asteroid placement relaxed, playfield too small for clearance",
			"asteroids", relaxed, "width", g.Bounds.Width, "height", g.Bounds.Height)
	}
	g.Asteroids = field
	g.GameState = GameStatePlaying

	g.logger.Debug("round started", "asteroids", len(g.Asteroids), "width", g.Bounds.Width, "height", g.Bounds.Height)
}

// Step simulates one frame with the given input at time now on a playfield of
// the given size. It reports whether the frame should be drawn; the frame
// that clears the field and the frame that resets the game are not.
func (g *Game) Step(in input.Input, now float64, bounds physics.Bounds) bool {
	g.Bounds = bounds
	g.Frame++

	switch g.GameState {
	case GameStateOver:
		return g.updateGameOver(in)
	default:
		return g.updatePlaying(in, now)
	}
}

// Render issues the draw calls for the current state. The display must
// already be cleared.
func (g *Game) Render(d draw.Display) {
	g.drawWorld(d)
	if g.GameState == GameStateOver {
		g.drawPrompt(d)
	}
}
