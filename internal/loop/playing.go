package loop

import (
	"github.com/tomz197/polyroids/internal/input"
	"github.com/tomz197/polyroids/internal/object"
)

// updatePlaying runs one frame of gameplay.
func (g *Game) updatePlaying(in input.Input, now float64) bool {
	g.steer(in)
	g.fire(in, now)
	g.rotate(in)
	g.integrate()

	g.detectCollisions()
	g.prune(now)

	if len(g.Asteroids) == 0 {
		g.GameState = GameStateOver
		g.logger.Info("asteroid field cleared", "frame", g.Frame)
		return false
	}
	return true
}

// steer applies thrust, or lets the ship drift down toward the deadband.
func (g *Game) steer(in input.Input) {
	if in.IsKeyDown(input.KeyThrust) {
		g.Ship.Vel.AddAtAngle(Thrust, g.Ship.Rotation)
		return
	}
	g.Ship.Decelerate(DecayDeadband, DecayFactor)
}

// fire spawns a bullet when the fire key is held and the cooldown has passed.
func (g *Game) fire(in input.Input, now float64) {
	if !in.IsKeyDown(input.KeyFire) || now-g.LastShot <= TimeBetweenShots {
		return
	}
	g.Bullets = append(g.Bullets, object.NewBullet(g.Ship, MuzzleSpeed, MuzzlePreAdvance, now))
	g.LastShot = now
}

// rotate turns the ship. Right wins when both keys are held.
func (g *Game) rotate(in input.Input) {
	switch {
	case in.IsKeyDown(input.KeyRotateRight):
		g.Ship.Rotation += RotationStep
	case in.IsKeyDown(input.KeyRotateLeft):
		g.Ship.Rotation -= RotationStep
	}
}

// integrate advances every entity one step and wraps it onto the playfield.
func (g *Game) integrate() {
	g.Ship.Advance()
	g.Bounds.Wrap(&g.Ship.Pos)

	for i := range g.Bullets {
		b := &g.Bullets[i]
		b.Advance()
		g.Bounds.Wrap(&b.Pos)
	}
	for i := range g.Asteroids {
		a := &g.Asteroids[i]
		a.Advance()
		g.Bounds.Wrap(&a.Pos)
	}
}
