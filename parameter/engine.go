package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TicksPerSecond is the default simulation rate; each tick runs one simulation step
	TicksPerSecond = 60

	// FrameUpdateInterval is the default frame interval derived from TicksPerSecond
	FrameUpdateInterval = time.Second / TicksPerSecond

	// MaxFrameDelta caps the delta handed to the simulation after a stall (suspend, debugger)
	MaxFrameDelta = 100 * time.Millisecond

	// LoadingDelay is the simulated asset load time spent in the Loading phase
	LoadingDelay = 3 * time.Second

	// HitReactionDelay is how long play is frozen after the player is hit
	HitReactionDelay = 1 * time.Second
)

// Playfield
const (
	// PlayfieldWidth is the default playfield width in world units
	PlayfieldWidth = 500.0

	// PlayfieldHeight is the default playfield height in world units
	PlayfieldHeight = 350.0

	// InitialBulletCapacity pre-sizes the enemy bullet store
	InitialBulletCapacity = 64

	// InitialShotCapacity pre-sizes the player shot store
	InitialShotCapacity = 20
)
