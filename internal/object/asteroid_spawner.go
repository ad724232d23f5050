package object

import "github.com/tomz197/polyroids/internal/physics"

// MaxPlacementAttempts bounds the rejection sampling in GenerateAsteroid.
const MaxPlacementAttempts = 1000

// BaseAsteroidSize is the radius of a freshly generated asteroid on a
// playfield of the given bounds.
func BaseAsteroidSize(bounds physics.Bounds) float64 {
	return bounds.MinSide() / 10
}

// GenerateAsteroid creates a full-size asteroid at a random position that is
// farther than BaseAsteroidSize + avoidDistance from avoid.
//
// Placement gives up after MaxPlacementAttempts candidates and keeps the last
// one; relaxed is true in that case so the caller can report it.
func GenerateAsteroid(r Rand, bounds physics.Bounds, avoid physics.Point, avoidDistance float64) (a Asteroid, relaxed bool) {
	size := BaseAsteroidSize(bounds)
	clearance := size + avoidDistance

	var pos physics.Point
	placed := false
	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		pos = physics.Point{
			X: r.Float64() * bounds.Width,
			Y: r.Float64() * bounds.Height,
		}
		if physics.Distance(pos, avoid) > clearance {
			placed = true
			break
		}
	}

	return Asteroid{
		Pos:      pos,
		Vel:      physics.Velocity{X: Between(r, -1, 1), Y: Between(r, -1, 1)},
		Rotation: Between(r, -1, 1),
		RotSpeed: Between(r, -1, 1),
		Size:     size,
		Sides:    InitialSides,
	}, !placed
}

// GenerateField creates count asteroids clear of avoid. It returns how many of
// them had to fall back to relaxed placement.
func GenerateField(r Rand, bounds physics.Bounds, avoid physics.Point, avoidDistance float64, count int) ([]Asteroid, int) {
	field := make([]Asteroid, 0, count)
	relaxedCount := 0
	for i := 0; i < count; i++ {
		a, relaxed := GenerateAsteroid(r, bounds, avoid, avoidDistance)
		if relaxed {
			relaxedCount++
		}
		field = append(field, a)
	}
	return field, relaxedCount
}
