package input

// Edge turns a level (held / not held) into one-shot press and release events
// Each press and each release is reported exactly once, on the first Update that observes it
type Edge struct {
	prev bool
}

// Update records the current level and reports transitions since the previous call
func (e *Edge) Update(held bool) (pressed, released bool) {
	pressed = held && !e.prev
	released = !held && e.prev
	e.prev = held
	return pressed, released
}

// Reset forgets the previous level so that a key already held counts as a new press
func (e *Edge) Reset() {
	e.prev = false
}
