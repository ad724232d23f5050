package physics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestDistanceSymmetric(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"same point", Point{3, 4}, Point{3, 4}, 0},
		{"3-4-5", Point{0, 0}, Point{3, 4}, 5},
		{"negative coords", Point{-1, -1}, Point{2, 3}, 5},
		{"horizontal", Point{10, 7}, Point{-2, 7}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := Distance(tt.a, tt.b)
			ba := Distance(tt.b, tt.a)
			if ab != ba {
				t.Errorf("Expected symmetric distance, got %v and %v", ab, ba)
			}
			if !almostEqual(ab, tt.want) {
				t.Errorf("Expected distance %v, got %v", tt.want, ab)
			}
		})
	}
}

func TestDistanceZeroOnlyForCoincidentPoints(t *testing.T) {
	if d := Distance(Point{1, 1}, Point{1, 1.0001}); d == 0 {
		t.Errorf("Expected non-zero distance for distinct points")
	}
}

func TestAddAtAngle(t *testing.T) {
	tests := []struct {
		name      string
		magnitude float64
		angle     float64
		want      Velocity
	}{
		{"up", 3, 0, Velocity{0, -1}},
		{"right", 3, 90, Velocity{1, 0}},
		{"down", 3, 180, Velocity{0, 1}},
		{"left", 3, 270, Velocity{-1, 0}},
		{"thrust", 0.5, 0, Velocity{0, -0.5 / 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Velocity
			v.AddAtAngle(tt.magnitude, tt.angle)
			if !almostEqual(v.X, tt.want.X) || !almostEqual(v.Y, tt.want.Y) {
				t.Errorf("Expected %+v, got %+v", tt.want, v)
			}
		})
	}
}

func TestAddAtAngleAccumulates(t *testing.T) {
	v := Velocity{X: 2, Y: 2}
	v.AddAtAngle(3, 90)
	if !almostEqual(v.X, 3) || !almostEqual(v.Y, 2) {
		t.Errorf("Expected {3 2}, got %+v", v)
	}
}

func TestAddVelocity(t *testing.T) {
	v := Velocity{X: 1, Y: -2}
	v.AddVelocity(Velocity{X: 0.5, Y: 4})
	if v != (Velocity{X: 1.5, Y: 2}) {
		t.Errorf("Expected {1.5 2}, got %+v", v)
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 1, Y: 1}.Add(Velocity{X: 4, Y: -6})
	if p != (Point{X: 5, Y: -5}) {
		t.Errorf("Expected {5 -5}, got %+v", p)
	}
}
