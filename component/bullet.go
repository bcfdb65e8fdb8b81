package component

// Bullet is an enemy projectile moving with a fixed velocity
type Bullet struct {
	X, Y   float64
	Radius float64
	VX, VY float64 // Units per second
}

// Shot is a player projectile; its velocity is the shared upward shot speed
type Shot struct {
	X, Y   float64
	Radius float64
}
