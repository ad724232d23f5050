package physics

import "math"

// Bounds is the live extent of the playfield, [0, Width) x [0, Height).
type Bounds struct {
	Width  float64
	Height float64
}

// Center returns the middle of the playfield.
func (b Bounds) Center() Point {
	return Point{X: b.Width / 2, Y: b.Height / 2}
}

// MinSide returns the shorter of the two extents.
func (b Bounds) MinSide() float64 {
	return math.Min(b.Width, b.Height)
}

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Wrap moves a point that left the playfield to the opposite edge (Asteroids-style).
// Each axis is handled independently: reaching the far edge resets the
// coordinate to 0, and going below 0 resets it to the far edge.
func (b Bounds) Wrap(p *Point) {
	if p.X >= b.Width {
		p.X = 0
	}
	if p.X < 0 {
		p.X = b.Width
	}

	if p.Y >= b.Height {
		p.Y = 0
	}
	if p.Y < 0 {
		p.Y = b.Height
	}
}
