package loop

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// Ship
const (
	ShipHeight   = 25.0
	ShipBase     = 22.0
	Thrust       = 0.5
	RotationStep = 3.0 // Degrees per frame

	// Without thrust each velocity axis above the deadband loses DecayFactor of its magnitude.
	DecayDeadband = 0.1
	DecayFactor   = 0.01
)

// Bullets
const (
	TimeBetweenShots = 0.2 // Seconds
	BulletLifetime   = 1.5 // Seconds
	MuzzleSpeed      = 7.0
	MuzzlePreAdvance = 2 // Integration steps taken at spawn to clear the hull
	BulletRadius     = 2.0
)

// World
const (
	InitialAsteroids = 10
	SpawnClearance   = ShipHeight * 3
	ShipHitDistance  = ShipHeight / 3 // Added to the asteroid size
)

// Screens
const (
	WinText      = "You win! Press enter to play again."
	GameOverText = "Game Over. Press enter to play again."
	FontSize     = 23.0
)

// Pacing
const TargetFPS = 60
