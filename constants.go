package motionaccel

import "github.com/tphakala/go-motion-accel/internal/curve"

// Speed tier bounds shared by both device families.
const (
	MinSpeed = curve.MinSpeed
	MaxSpeed = curve.MaxSpeed
)

// Status codes returned by the boundary functions.
const (
	RetOK  int32 = 0
	RetErr int32 = -1
)

// Velocity estimation constants
const (
	// velocityEpsilon is the smallest velocity treated as motion.
	velocityEpsilon = 1e-6

	// minorAxisDivisor weights the minor axis in both velocity estimates.
	minorAxisDivisor = 2.0

	// mouseBlendDivisor divides the mouse estimate as a whole.
	mouseBlendDivisor = 2.0
)
