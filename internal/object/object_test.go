package object

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/polyroids/internal/physics"
)

// seqRand replays a fixed sequence of values, cycling when exhausted.
type seqRand struct {
	values []float64
	next   int
}

func (s *seqRand) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBetween(t *testing.T) {
	r := &seqRand{values: []float64{0, 0.5, 0.999}}
	if got := Between(r, -2, 2); got != -2 {
		t.Errorf("Expected -2, got %v", got)
	}
	if got := Between(r, 0, 360); got != 180 {
		t.Errorf("Expected 180, got %v", got)
	}
	if got := Between(r, -1, 1); got >= 1 {
		t.Errorf("Expected value below 1, got %v", got)
	}
}

func TestShipAdvance(t *testing.T) {
	s := NewShip(physics.Point{X: 10, Y: 10})
	s.Vel = physics.Velocity{X: 1.5, Y: -2}
	s.Advance()
	if s.Pos != (physics.Point{X: 11.5, Y: 8}) {
		t.Errorf("Expected {11.5 8}, got %+v", s.Pos)
	}
	if s.Rotation != 0 {
		t.Errorf("Expected rotation untouched, got %v", s.Rotation)
	}
}

func TestShipDecelerate(t *testing.T) {
	tests := []struct {
		name string
		in   physics.Velocity
		want physics.Velocity
	}{
		{"positive axes decay", physics.Velocity{X: 2, Y: 1}, physics.Velocity{X: 1.98, Y: 0.99}},
		{"negative axes decay", physics.Velocity{X: -2, Y: -1}, physics.Velocity{X: -1.98, Y: -0.99}},
		{"inside deadband untouched", physics.Velocity{X: 0.1, Y: -0.05}, physics.Velocity{X: 0.1, Y: -0.05}},
		{"mixed", physics.Velocity{X: 0.5, Y: 0.09}, physics.Velocity{X: 0.495, Y: 0.09}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Ship{Vel: tt.in}
			s.Decelerate(0.1, 0.01)
			if !almostEqual(s.Vel.X, tt.want.X) || !almostEqual(s.Vel.Y, tt.want.Y) {
				t.Errorf("Expected %+v, got %+v", tt.want, s.Vel)
			}
		})
	}
}

func TestShipDecelerateNeverReachesZero(t *testing.T) {
	s := Ship{Vel: physics.Velocity{X: 5, Y: -5}}
	for i := 0; i < 5000; i++ {
		s.Decelerate(0.1, 0.01)
	}
	if s.Vel.X == 0 || s.Vel.Y == 0 {
		t.Errorf("Expected residual drift, got %+v", s.Vel)
	}
	if math.Abs(s.Vel.X) > 0.1 || math.Abs(s.Vel.Y) > 0.1 {
		t.Errorf("Expected velocity inside deadband, got %+v", s.Vel)
	}
}

func TestNewBullet(t *testing.T) {
	ship := Ship{
		Pos:      physics.Point{X: 100, Y: 100},
		Vel:      physics.Velocity{X: 1, Y: 0},
		Rotation: 90,
	}
	b := NewBullet(ship, 6, 2, 3.5)

	// Muzzle velocity is 6/3 = 2 to the right; two pre-advance steps move it 4.
	if !almostEqual(b.Pos.X, 104) || !almostEqual(b.Pos.Y, 100) {
		t.Errorf("Expected position {104 100}, got %+v", b.Pos)
	}
	if !almostEqual(b.Vel.X, 3) || !almostEqual(b.Vel.Y, 0) {
		t.Errorf("Expected inherited velocity {3 0}, got %+v", b.Vel)
	}
	if b.SpawnTime != 3.5 {
		t.Errorf("Expected spawn time 3.5, got %v", b.SpawnTime)
	}
	if b.IsCollided() {
		t.Errorf("Expected fresh bullet not collided")
	}
}

func TestBulletExpired(t *testing.T) {
	b := Bullet{SpawnTime: 10}
	if b.Expired(11.49, 1.5) {
		t.Errorf("Expected bullet alive before lifetime")
	}
	if !b.Expired(11.5, 1.5) {
		t.Errorf("Expected bullet expired at exactly lifetime")
	}
}

func TestAsteroidAdvance(t *testing.T) {
	a := Asteroid{
		Pos:      physics.Point{X: 5, Y: 5},
		Vel:      physics.Velocity{X: -1, Y: 0.5},
		Rotation: 10,
		RotSpeed: -2,
	}
	a.Advance()
	if a.Pos != (physics.Point{X: 4, Y: 5.5}) || a.Rotation != 8 {
		t.Errorf("Expected pos {4 5.5} rotation 8, got %+v rotation %v", a.Pos, a.Rotation)
	}
}

func TestFragmentInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for sides := 3; sides <= InitialSides; sides++ {
		parent := Asteroid{
			Pos:   physics.Point{X: 50, Y: 60},
			Vel:   physics.Velocity{X: 0.3, Y: -0.2},
			Size:  60,
			Sides: sides,
		}
		children := parent.Fragment(physics.Velocity{X: 2, Y: 2}, r)

		if sides <= MinFragmentSides {
			if len(children) != 0 {
				t.Errorf("Expected no children for %d sides, got %d", sides, len(children))
			}
			continue
		}

		if len(children) != 2 {
			t.Fatalf("Expected 2 children for %d sides, got %d", sides, len(children))
		}
		for _, c := range children {
			if c.Sides != sides-1 {
				t.Errorf("Expected %d sides, got %d", sides-1, c.Sides)
			}
			if !almostEqual(c.Size, 36) {
				t.Errorf("Expected size 36, got %v", c.Size)
			}
			if c.Pos != parent.Pos {
				t.Errorf("Expected child at parent position, got %+v", c.Pos)
			}
			if c.Rotation < 0 || c.Rotation >= 360 {
				t.Errorf("Expected rotation in [0,360), got %v", c.Rotation)
			}
			if c.RotSpeed < -2 || c.RotSpeed >= 2 {
				t.Errorf("Expected rotation speed in [-2,2), got %v", c.RotSpeed)
			}
			if c.Collided {
				t.Errorf("Expected child not collided")
			}
		}
	}
}

func TestFragmentSharesExplosiveness(t *testing.T) {
	// Draw order: explosiveness, then per child kx, ky, rotation, rotSpeed.
	r := &seqRand{values: []float64{
		0.5,
		0.25, 0.75, 0.1, 0.5,
		0.5, 0.0, 0.2, 0.5,
	}}
	parent := Asteroid{
		Vel:   physics.Velocity{X: 1, Y: -1},
		Size:  10,
		Sides: 6,
	}
	children := parent.Fragment(physics.Velocity{X: 10, Y: -5}, r)

	// child 0: x = 10/5 + (1+0.5)*0.5 = 2.75, y = -1 + (-1+0.5)*1.5 = -1.75
	// child 1: x = 2 + 1.5*1 = 3.5, y = -1 + (-0.5)*0 = -1
	want := []physics.Velocity{{X: 2.75, Y: -1.75}, {X: 3.5, Y: -1}}
	for i, c := range children {
		if !almostEqual(c.Vel.X, want[i].X) || !almostEqual(c.Vel.Y, want[i].Y) {
			t.Errorf("child %d: Expected velocity %+v, got %+v", i, want[i], c.Vel)
		}
	}
	if r.next != 9 {
		t.Errorf("Expected 9 random draws, got %d", r.next)
	}
}

func TestGenerateAsteroidClearance(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	bounds := physics.Bounds{Width: 800, Height: 600}
	center := bounds.Center()

	for i := 0; i < 200; i++ {
		a, relaxed := GenerateAsteroid(r, bounds, center, 75)
		if relaxed {
			t.Fatalf("Expected placement to succeed on a roomy playfield")
		}
		if d := physics.Distance(a.Pos, center); d <= a.Size+75 {
			t.Fatalf("Expected clearance > %v, got %v", a.Size+75, d)
		}
		if !bounds.Contains(a.Pos) {
			t.Fatalf("Expected position inside bounds, got %+v", a.Pos)
		}
		if a.Size != 60 || a.Sides != InitialSides {
			t.Fatalf("Expected size 60 and %d sides, got %v and %d", InitialSides, a.Size, a.Sides)
		}
		if math.Abs(a.Vel.X) > 1 || math.Abs(a.Vel.Y) > 1 || math.Abs(a.Rotation) > 1 || math.Abs(a.RotSpeed) > 1 {
			t.Fatalf("Expected motion parameters in [-1,1], got %+v", a)
		}
	}
}

func TestGenerateAsteroidRelaxedFallback(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	bounds := physics.Bounds{Width: 40, Height: 30}

	a, relaxed := GenerateAsteroid(r, bounds, bounds.Center(), 1000)
	if !relaxed {
		t.Fatalf("Expected relaxed placement when clearance exceeds the playfield")
	}
	if !bounds.Contains(a.Pos) {
		t.Errorf("Expected fallback position on screen, got %+v", a.Pos)
	}
}

func TestGenerateField(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	bounds := physics.Bounds{Width: 800, Height: 600}

	field, relaxed := GenerateField(r, bounds, bounds.Center(), 75, 10)
	if len(field) != 10 {
		t.Errorf("Expected 10 asteroids, got %d", len(field))
	}
	if relaxed != 0 {
		t.Errorf("Expected no relaxed placements, got %d", relaxed)
	}
}
