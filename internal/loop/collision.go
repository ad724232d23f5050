package loop

import (
	"github.com/tomz197/polyroids/internal/physics"
)

// detectCollisions is the single collision pass of a frame. It only records
// intents: Collided flags and queued fragments. prune applies them.
//
// Asteroids are visited in collection order. A ship hit ends the game and the
// pass, so later asteroids are not checked that frame.
func (g *Game) detectCollisions() {
	g.indexBullets()

	for i := range g.Asteroids {
		a := &g.Asteroids[i]

		if physics.Distance(a.Pos, g.Ship.Pos) < a.Size+ShipHitDistance {
			g.GameState = GameStateOver
			g.logger.Info("ship destroyed", "frame", g.Frame, "asteroids", len(g.Asteroids))
			return
		}

		hit := g.firstBulletWithin(a.Pos, a.Size)
		if hit < 0 {
			continue
		}
		b := &g.Bullets[hit]
		a.MarkCollided()
		b.MarkCollided()
		g.Spawn(a.Fragment(b.Vel, g.rng)...)
	}
}

// indexBullets fills the broad-phase grid with the bullets still in play.
// The cell size is the largest asteroid radius, the widest hit distance.
func (g *Game) indexBullets() {
	if len(g.Bullets) == 0 {
		return
	}

	maxSize := 0.0
	for i := range g.Asteroids {
		if g.Asteroids[i].Size > maxSize {
			maxSize = g.Asteroids[i].Size
		}
	}

	if g.grid == nil {
		g.grid = physics.NewSpatialGrid(g.Bounds, maxSize)
	} else {
		g.grid.Reset(g.Bounds, maxSize)
	}
	for i := range g.Bullets {
		if !g.Bullets[i].IsCollided() {
			g.grid.Insert(g.Bullets[i].Pos, i)
		}
	}
}

// firstBulletWithin returns the lowest-index bullet still in play that is
// closer than radius to p, or -1. Picking the lowest index keeps the result
// identical to scanning the bullets in order.
func (g *Game) firstBulletWithin(p physics.Point, radius float64) int {
	if len(g.Bullets) == 0 {
		return -1
	}

	best := -1
	g.grid.QueryAround(p, func(i int) bool {
		if best >= 0 && i > best {
			return false
		}
		b := &g.Bullets[i]
		if !b.IsCollided() && physics.Distance(b.Pos, p) < radius {
			best = i
		}
		return false
	})
	return best
}

// prune drops expired and collided bullets and collided asteroids, then adds
// the queued fragments.
func (g *Game) prune(now float64) {
	kept := g.Bullets[:0]
	for _, b := range g.Bullets {
		if !b.IsCollided() && !b.Expired(now, BulletLifetime) {
			kept = append(kept, b)
		}
	}
	g.Bullets = kept

	alive := g.Asteroids[:0]
	for _, a := range g.Asteroids {
		if !a.IsCollided() {
			alive = append(alive, a)
		}
	}
	g.Asteroids = alive

	g.FlushSpawned()
}
