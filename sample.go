package motionaccel

import (
	"fmt"

	"github.com/tphakala/go-motion-accel/internal/curve"
)

// CurveProfile is a curve tier evaluated on an evenly spaced velocity grid.
type CurveProfile = curve.Profile

// SampleCurve evaluates the curve for family and speed at n velocities
// spanning [lo, hi]. lo must be positive.
func SampleCurve(family Family, speed int, lo, hi float64, n int) (*CurveProfile, error) {
	var table *curve.Table
	switch family {
	case FamilyMouse:
		table = curve.Mouse()
	case FamilyTouchpad:
		table = curve.Touchpad()
	default:
		return nil, fmt.Errorf("%w: unknown family %d", ErrInvalidConfig, int(family))
	}

	p, err := curve.Sample(table, speed, lo, hi, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return p, nil
}
