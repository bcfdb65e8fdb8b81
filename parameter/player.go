package parameter

// Player Avatar
const (
	// PlayerRadius is the collision radius shared by the player and the boss
	PlayerRadius = 8.0

	// PlayerFastSpeed is the default movement speed in units per second
	PlayerFastSpeed = 85.0

	// PlayerSlowSpeed is the movement speed while the precision modifier is held
	PlayerSlowSpeed = 40.0

	// PlayerHitPoints is the starting hit point count; the session is lost at zero
	PlayerHitPoints = 5

	// PlayerSpawnBottomOffset is the distance from the bottom edge the player starts at
	PlayerSpawnBottomOffset = 20.0
)

// Player Shots
const (
	// ShotSpeed is the upward speed of player shots in units per second
	ShotSpeed = 120.0

	// ShotRadius is the collision radius of a player shot
	ShotRadius = 4.0

	// ShotCooldown is the minimum time between two shots in seconds
	ShotCooldown = 0.25
)
