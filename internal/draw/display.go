// Package draw renders the game onto a display surface.
package draw

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Display is the surface a frame is drawn onto. Coordinates are logical
// playfield units with the origin at the top-left and y growing downward.
// Angles are in degrees.
type Display interface {
	// Width and Height report the current playfield size. They may change
	// between frames when the surface is resized.
	Width() float64
	Height() float64

	// Clear starts a new frame.
	Clear()
	DrawCircle(x, y, radius float64)
	// DrawPolyLines outlines a regular polygon centred on (x, y).
	DrawPolyLines(x, y float64, sides int, radius, rotation float64)
	DrawTriangleLines(a, b, c Point)
	// MeasureText returns the extent of text drawn at fontSize.
	MeasureText(text string, fontSize float64) (width, height float64)
	// DrawText draws text with its top-left corner at (x, y).
	DrawText(text string, x, y, fontSize float64)

	// Present shows the finished frame.
	Present() error
}

// RegularPolygon returns the vertices of a regular polygon centred on (x, y),
// with the first vertex rotated by rotation degrees from the +x axis.
// dst is reused when it has room.
func RegularPolygon(dst []Point, x, y float64, sides int, radius, rotation float64) []Point {
	if sides < 3 {
		return dst[:0]
	}
	if cap(dst) < sides {
		dst = make([]Point, sides)
	}
	dst = dst[:sides]

	step := 360 / float64(sides)
	r := mgl64.Vec2{radius, 0}
	for i := range dst {
		v := mgl64.Rotate2D(mgl64.DegToRad(rotation + step*float64(i))).Mul2x1(r)
		dst[i] = Point{X: x + v.X(), Y: y + v.Y()}
	}
	return dst
}
