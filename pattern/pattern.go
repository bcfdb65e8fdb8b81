// Package pattern generates boss bullet formations
package pattern

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/seihou/component"
	"github.com/lixenwraith/seihou/parameter"
	"github.com/lixenwraith/seihou/vmath"
)

// ErrInvalidSpacing is returned when a ring is requested with a non-positive or non-finite angular step
var ErrInvalidSpacing = errors.New("pattern: angular spacing must be positive, finite and at least MinSpacing")

// ErrInvalidRadius is returned for negative bullet radii
var ErrInvalidRadius = errors.New("pattern: bullet radius must not be negative")

// MaxRingBullets caps the bullets of a single ring
const MaxRingBullets = 1024

// MinSpacing is the finest accepted angular step, one full turn split MaxRingBullets ways
const MinSpacing = vmath.FullTurn / MaxRingBullets

// angleEpsilon absorbs accumulated rounding so that spacings dividing a full turn
// (30°, 60°, 90°) never emit a duplicate bullet at 2π
const angleEpsilon = 1e-9

// Radial describes a ring of bullets fired from one origin
// Spacing and Tilt are in radians, Radius in units, Speed in units per second
type Radial struct {
	Spacing float64
	Tilt    float64
	Radius  float64
	Speed   float64
}

// NewRadialDeg builds a ring from degree angles
func NewRadialDeg(spacingDeg, tiltDeg, radius, speed float64) Radial {
	return Radial{
		Spacing: vmath.DegToRad(spacingDeg),
		Tilt:    vmath.DegToRad(tiltDeg),
		Radius:  radius,
		Speed:   speed,
	}
}

// Validate checks the ring precondition without emitting
func (r Radial) Validate() error {
	if !(r.Spacing > 0) || math.IsInf(r.Spacing, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidSpacing, r.Spacing)
	}
	if r.Spacing < MinSpacing {
		return fmt.Errorf("%w: %v is finer than %v", ErrInvalidSpacing, r.Spacing, MinSpacing)
	}
	if r.Radius < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidRadius, r.Radius)
	}
	return nil
}

// Count returns the number of bullets Emit produces
func (r Radial) Count() int {
	if r.Radius == 0 || r.Validate() != nil {
		return 0
	}
	n := 0
	for k := 0; float64(k)*r.Spacing < vmath.FullTurn-angleEpsilon; k++ {
		n++
	}
	return n
}

// Emit sends one bullet per step of the ring to emit, in increasing angle order
// Zero radius emits nothing. An invalid ring emits nothing and returns the error.
func (r Radial) Emit(originX, originY float64, emit func(component.Bullet)) (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	if r.Radius == 0 {
		return 0, nil
	}

	n := 0
	for k := 0; ; k++ {
		step := float64(k) * r.Spacing
		if step >= vmath.FullTurn-angleEpsilon {
			break
		}
		vx, vy := vmath.Polar(r.Speed, step+r.Tilt)
		emit(component.Bullet{
			X:      originX,
			Y:      originY,
			Radius: r.Radius,
			VX:     vx,
			VY:     vy,
		})
		n++
	}
	return n, nil
}

// BossVolley returns the two rings the boss fires on every volley
func BossVolley() []Radial {
	return []Radial{
		NewRadialDeg(parameter.VolleyPrimarySpacingDeg, parameter.VolleyPrimaryTiltDeg,
			parameter.VolleyBulletRadius, parameter.VolleyBulletSpeed),
		NewRadialDeg(parameter.VolleySecondarySpacingDeg, parameter.VolleySecondaryTiltDeg,
			parameter.VolleyBulletRadius, parameter.VolleyBulletSpeed),
	}
}
