package vmath

import "math"

// CirclesOverlap reports whether two circles intersect
// Strict inequality: circles whose edges only touch do not collide
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return r1+r2 > math.Hypot(x2-x1, y2-y1)
}
