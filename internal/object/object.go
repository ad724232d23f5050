// Package object holds the simulation entities and the procedural world generation.
package object

// Rand is the randomness source used by world generation and fragmentation.
// *rand.Rand satisfies it; tests substitute deterministic sequences.
type Rand interface {
	// Float64 returns a number in [0, 1).
	Float64() float64
}

// Between returns a uniformly distributed value in [lo, hi).
func Between(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Advancer is implemented by every entity that integrates once per frame.
type Advancer interface {
	Advance()
}

// Destructible is implemented by entities that can be flagged for removal
// during collision detection and pruned afterwards.
type Destructible interface {
	// MarkCollided flags the entity for removal at the end of the frame.
	MarkCollided()
	// IsCollided reports whether the entity is flagged for removal.
	IsCollided() bool
}

var (
	_ Advancer     = (*Ship)(nil)
	_ Advancer     = (*Bullet)(nil)
	_ Advancer     = (*Asteroid)(nil)
	_ Destructible = (*Bullet)(nil)
	_ Destructible = (*Asteroid)(nil)
)
