// Package physics provides the geometry primitives, distance helpers and
// screen-edge wrapping used by the simulation.
package physics

import "math"

// impulseScale divides every angle-decomposed impulse. It is a tuning
// constant for how strongly thrust and muzzle velocity act per frame.
const impulseScale = 3.0

// Point is a position on the playfield.
type Point struct {
	X, Y float64
}

// Velocity is a per-frame displacement.
type Velocity struct {
	X, Y float64
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns the point displaced by v.
func (p Point) Add(v Velocity) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// AddAtAngle adds an impulse of the given magnitude along a heading in degrees.
// 0 points up and angles grow clockwise (screen Y grows downwards).
func (v *Velocity) AddAtAngle(magnitude, angle float64) {
	rad := Radians(angle)
	v.X += math.Sin(rad) / impulseScale * magnitude
	v.Y += -math.Cos(rad) / impulseScale * magnitude
}

// AddVelocity adds other to v component-wise.
func (v *Velocity) AddVelocity(other Velocity) {
	v.X += other.X
	v.Y += other.Y
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
