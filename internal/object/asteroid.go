package object

import "github.com/tomz197/polyroids/internal/physics"

// Fragmentation tuning.
const (
	// InitialSides is the vertex count of freshly generated asteroids.
	InitialSides = 6
	// MinFragmentSides is the vertex count at or below which a destroyed asteroid
	// leaves no children.
	MinFragmentSides = 4
	// FragmentScale shrinks the radius of each child generation.
	FragmentScale = 0.6
	// FragmentCount is the number of children left by a destroyed asteroid.
	FragmentCount = 2
	// bulletMomentumDivisor scales how much of the bullet velocity a child keeps.
	bulletMomentumDivisor = 5.0
)

// Asteroid is a destructible regular polygon.
type Asteroid struct {
	Pos      physics.Point
	Vel      physics.Velocity
	Rotation float64 // Degrees
	RotSpeed float64 // Degrees per frame
	Size     float64 // Circumradius, also the collision radius
	Sides    int     // Polygon vertex count
	Collided bool    // Marked for removal at the end of the frame
}

// Advance moves and spins the asteroid by one frame.
func (a *Asteroid) Advance() {
	a.Pos = a.Pos.Add(a.Vel)
	a.Rotation += a.RotSpeed
}

// CanFragment reports whether destroying the asteroid leaves children.
func (a *Asteroid) CanFragment() bool {
	return a.Sides > MinFragmentSides
}

// Fragment returns the children left by destroying the asteroid with a bullet
// travelling at bulletVel. Asteroids with MinFragmentSides sides or fewer
// leave none.
//
// Each child starts on the parent's position with one side less and a radius
// scaled by FragmentScale. Its velocity is bulletVel/5 + (parent.Vel + e) * k
// where k ~ U[0,2) is drawn per axis per child and e ~ U[0,1) is drawn once
// and shared by both children and both axes.
func (a *Asteroid) Fragment(bulletVel physics.Velocity, r Rand) []Asteroid {
	if !a.CanFragment() {
		return nil
	}

	explosiveness := r.Float64()
	children := make([]Asteroid, 0, FragmentCount)
	for i := 0; i < FragmentCount; i++ {
		children = append(children, Asteroid{
			Pos: a.Pos,
			Vel: physics.Velocity{
				X: bulletVel.X/bulletMomentumDivisor + (a.Vel.X+explosiveness)*Between(r, 0, 2),
				Y: bulletVel.Y/bulletMomentumDivisor + (a.Vel.Y+explosiveness)*Between(r, 0, 2),
			},
			Rotation: Between(r, 0, 360),
			RotSpeed: Between(r, -2, 2),
			Size:     a.Size * FragmentScale,
			Sides:    a.Sides - 1,
		})
	}
	return children
}

// MarkCollided marks the asteroid for removal.
func (a *Asteroid) MarkCollided() {
	a.Collided = true
}

// IsCollided returns true if the asteroid is marked for removal.
func (a *Asteroid) IsCollided() bool {
	return a.Collided
}
