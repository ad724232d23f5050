package object

import "github.com/tomz197/polyroids/internal/physics"

// Bullet is a projectile fired by the ship.
type Bullet struct {
	Pos       physics.Point
	Vel       physics.Velocity
	SpawnTime float64 // Clock seconds at which the bullet was fired
	Collided  bool    // Marked for removal at the end of the frame
}

// NewBullet fires a bullet from the ship. The muzzle velocity is applied along
// the ship heading, the bullet is pushed clear of the hull by preAdvance
// integration steps and then inherits the ship's own velocity.
func NewBullet(ship Ship, muzzleSpeed float64, preAdvance int, now float64) Bullet {
	var vel physics.Velocity
	vel.AddAtAngle(muzzleSpeed, ship.Rotation)

	b := Bullet{
		Pos:       ship.Pos,
		Vel:       vel,
		SpawnTime: now,
	}
	for i := 0; i < preAdvance; i++ {
		b.Advance()
	}
	b.Vel.AddVelocity(ship.Vel)
	return b
}

// Advance moves the bullet by one frame of velocity.
func (b *Bullet) Advance() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Expired reports whether the bullet outlived lifetime seconds at time now.
func (b *Bullet) Expired(now, lifetime float64) bool {
	return b.SpawnTime+lifetime <= now
}

// MarkCollided marks the bullet for removal.
func (b *Bullet) MarkCollided() {
	b.Collided = true
}

// IsCollided returns true if the bullet is marked for removal.
func (b *Bullet) IsCollided() bool {
	return b.Collided
}
