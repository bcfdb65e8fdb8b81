package component

// Player is the avatar controlled by the input oracle
type Player struct {
	X, Y   float64
	Radius float64
	HP     int
}

// Boss is the stationary target of player shots
type Boss struct {
	X, Y   float64
	Radius float64
	Health float64
}

// Defeated reports whether the health pool is exhausted
func (b Boss) Defeated() bool {
	return b.Health <= 0
}
