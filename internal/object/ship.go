package object

import (
	"math"

	"github.com/tomz197/polyroids/internal/physics"
)

// Ship is the player-controlled spaceship.
type Ship struct {
	Pos      physics.Point
	Vel      physics.Velocity
	Rotation float64 // Degrees, 0 = pointing up, clockwise positive
}

// NewShip creates a motionless ship pointing up at the given position.
func NewShip(pos physics.Point) Ship {
	return Ship{Pos: pos}
}

// Advance moves the ship by one frame of velocity.
func (s *Ship) Advance() {
	s.Pos = s.Pos.Add(s.Vel)
}

// Decelerate moves each velocity component toward zero by factor*|component|,
// but only while that component is outside the deadband. Residual drift below
// the deadband is never removed.
func (s *Ship) Decelerate(deadband, factor float64) {
	s.Vel.X = decay(s.Vel.X, deadband, factor)
	s.Vel.Y = decay(s.Vel.Y, deadband, factor)
}

func decay(v, deadband, factor float64) float64 {
	if math.Abs(v) > deadband {
		return v - math.Copysign(factor*math.Abs(v), v)
	}
	return v
}
