package vmath

// Bounds is the playfield extent in world units; the origin is the top-left corner
type Bounds struct {
	Width  float64
	Height float64
}

// Valid reports whether both extents are positive
func (b Bounds) Valid() bool {
	return b.Width > 0 && b.Height > 0
}

// Center returns the middle of the playfield
func (b Bounds) Center() (x, y float64) {
	return b.Width / 2, b.Height / 2
}

// InsideX reports whether x lies strictly between the left and right edges
func (b Bounds) InsideX(x float64) bool {
	return x > 0 && x < b.Width
}

// InsideY reports whether y lies strictly between the top and bottom edges
func (b Bounds) InsideY(y float64) bool {
	return y > 0 && y < b.Height
}

// CircleOutside reports whether a circle has fully left the playfield on either axis
// A circle touching an edge from outside counts as gone
func (b Bounds) CircleOutside(x, y, r float64) bool {
	return x+r <= 0 || x-r >= b.Width || y+r <= 0 || y-r >= b.Height
}
