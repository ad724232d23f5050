package loop

import (
	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/physics"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStatePlaying GameState = iota // Active gameplay
	GameStateOver                     // Won or lost, waiting for confirm
)

func (s GameState) String() string {
	switch s {
	case GameStatePlaying:
		return "playing"
	case GameStateOver:
		return "over"
	default:
		return "unknown"
	}
}

// State holds everything the simulation owns. It is only touched by the
// goroutine running the frame loop.
type State struct {
	GameState GameState
	Ship      object.Ship
	Bullets   []object.Bullet
	Asteroids []object.Asteroid
	Bounds    physics.Bounds // Playfield size read at the start of the current frame
	LastShot  float64        // Time of the last shot; the cooldown starts at game creation
	Frame     uint64         // Frames simulated so far

	toSpawn []object.Asteroid // Fragments queued during collision detection
}

// Won reports whether the game ended with the asteroid field cleared.
func (s *State) Won() bool {
	return s.GameState == GameStateOver && len(s.Asteroids) == 0
}

// Spawn queues an asteroid to be added after the current collision pass.
func (s *State) Spawn(a ...object.Asteroid) {
	s.toSpawn = append(s.toSpawn, a...)
}

// FlushSpawned adds all queued asteroids to the field and clears the queue.
func (s *State) FlushSpawned() {
	s.Asteroids = append(s.Asteroids, s.toSpawn...)
	s.toSpawn = s.toSpawn[:0]
}
