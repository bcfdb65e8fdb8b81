package vmath

import "math"

// FullTurn is one revolution in radians
const FullTurn = 2 * math.Pi

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Polar returns the cartesian vector of the given length pointing at angle (radians)
// Positive angles turn clockwise on screen since y grows downward
func Polar(length, angle float64) (x, y float64) {
	return length * math.Cos(angle), length * math.Sin(angle)
}
