package parameter

// Boss
const (
	// BossHealth is the boss health pool at session start
	BossHealth = 100.0

	// BossDamagePerShot is subtracted from boss health for every confirmed shot hit
	BossDamagePerShot = 0.5

	// BossSpawnY is the fixed vertical boss position; the boss is centered horizontally
	BossSpawnY = 30.0

	// BossFireInterval is the time between two volleys in seconds
	BossFireInterval = 2.0
)

// Boss Volley
// Two rings fired together; spacing and tilt are in degrees
const (
	VolleyPrimarySpacingDeg   = 30.0
	VolleyPrimaryTiltDeg      = 0.0
	VolleySecondarySpacingDeg = 60.0
	VolleySecondaryTiltDeg    = 15.0

	// VolleyBulletRadius is the radius of every volley bullet
	VolleyBulletRadius = 6.0

	// VolleyBulletSpeed is the speed of every volley bullet in units per second
	VolleyBulletSpeed = 120.0
)
