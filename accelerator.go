package motionaccel

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/tphakala/go-motion-accel/internal/curve"
)

// Offset is the raw displacement reported by a pointing device for one event.
// Its layout matches the host event struct: two float64 in x, y order.
type Offset struct {
	DX float64
	DY float64
}

// Errors returned for events that must not be accelerated.
var (
	// ErrBelowEpsilon indicates the event carried no meaningful motion.
	ErrBelowEpsilon = errors.New("velocity below motion threshold")

	// ErrInvalidSpeed indicates a speed tier outside [MinSpeed, MaxSpeed].
	ErrInvalidSpeed = errors.New("invalid speed tier")

	// ErrNonFiniteMotion indicates a displacement whose velocity, gain or
	// accelerated output is infinite.
	ErrNonFiniteMotion = errors.New("non-finite motion")
)

func (o Offset) finite() bool {
	return !math.IsNaN(o.DX) && !math.IsInf(o.DX, 0) &&
		!math.IsNaN(o.DY) && !math.IsInf(o.DY, 0)
}

// Accelerator turns raw pointer displacement into accelerated displacement.
//
// The mouse path is stateless. The touchpad path keeps a sub-pixel carry
// that is guarded by a mutex, so one Accelerator may be shared between
// goroutines. Independent devices should each use their own Accelerator so
// that their carries do not mix.
type Accelerator struct {
	mouse    *curve.Table
	touchpad *curve.Table

	mu    sync.Mutex
	carry CarryState
}

// NewAccelerator creates an accelerator over the built-in curve tables.
func NewAccelerator() *Accelerator {
	return &Accelerator{
		mouse:    curve.Mouse(),
		touchpad: curve.Touchpad(),
	}
}

// Accelerate applies the mouse curve for speed to off.
//
// In capture mode the gain is still resolved, so invalid input fails the
// same way, but off is returned unchanged. Otherwise each axis becomes
// d + d*gain.
func (a *Accelerator) Accelerate(off Offset, captureMode bool, speed int) (Offset, error) {
	out, _, err := a.accelerateMouse(off, captureMode, speed)
	return out, err
}

func (a *Accelerator) accelerateMouse(off Offset, captureMode bool, speed int) (Offset, float64, error) {
	gain, err := resolveGain(a.mouse, MouseVelocity(off), speed)
	if err != nil {
		return Offset{}, 0, err
	}
	if captureMode {
		return off, gain, nil
	}

	out := Offset{
		DX: off.DX + off.DX*gain,
		DY: off.DY + off.DY*gain,
	}
	if !out.finite() {
		return Offset{}, 0, fmt.Errorf("%w: output overflows for %+v", ErrNonFiniteMotion, off)
	}
	return out, gain, nil
}

// AccelerateTouchpad applies the touchpad curve for speed to off.
//
// Outside capture mode each axis is scaled by the gain, the carried
// remainder from earlier events is added, and the result is truncated toward
// zero. The truncated-away fraction becomes the new carry.
func (a *Accelerator) AccelerateTouchpad(off Offset, captureMode bool, speed int) (Offset, error) {
	out, _, err := a.accelerateTouchpad(off, captureMode, speed)
	return out, err
}

func (a *Accelerator) accelerateTouchpad(off Offset, captureMode bool, speed int) (Offset, float64, error) {
	gain, err := resolveGain(a.touchpad, TouchpadVelocity(off), speed)
	if err != nil {
		return Offset{}, 0, err
	}
	if captureMode {
		return off, gain, nil
	}

	scaled := Offset{DX: off.DX * gain, DY: off.DY * gain}
	if !scaled.finite() {
		return Offset{}, 0, fmt.Errorf("%w: output overflows for %+v", ErrNonFiniteMotion, off)
	}

	a.mu.Lock()
	out := a.carry.apply(scaled.DX, scaled.DY)
	carry := a.carry
	a.mu.Unlock()

	Logger().Debug("touchpad output",
		"dx", out.DX, "dy", out.DY, "carry_x", carry.X, "carry_y", carry.Y)
	return out, gain, nil
}

// Gain resolves the gain for off without applying it or touching the carry.
func (a *Accelerator) Gain(family Family, off Offset, speed int) (float64, error) {
	switch family {
	case FamilyMouse:
		return resolveGain(a.mouse, MouseVelocity(off), speed)
	case FamilyTouchpad:
		return resolveGain(a.touchpad, TouchpadVelocity(off), speed)
	default:
		return 0, fmt.Errorf("%w: unknown family %d", ErrInvalidConfig, family)
	}
}

// Carry returns a snapshot of the touchpad remainder.
func (a *Accelerator) Carry() CarryState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.carry
}

// Reset clears the touchpad remainder.
func (a *Accelerator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.carry = CarryState{}
}

// MouseVelocity is the mouse velocity estimate: the mean of the major and
// minor axis magnitudes.
func MouseVelocity(off Offset) float64 {
	ax, ay := math.Abs(off.DX), math.Abs(off.DY)
	return (math.Max(ax, ay) + math.Min(ax, ay)) / mouseBlendDivisor
}

// TouchpadVelocity is the touchpad velocity estimate: the major axis
// magnitude plus half the minor axis magnitude.
func TouchpadVelocity(off Offset) float64 {
	ax, ay := math.Abs(off.DX), math.Abs(off.DY)
	return math.Max(ax, ay) + math.Min(ax, ay)/minorAxisDivisor
}

// resolveGain validates vin and speed, then looks the gain up in table.
// The epsilon check runs first; NaN velocities count as no motion and
// infinite ones are rejected before the speed check.
func resolveGain(table *curve.Table, vin float64, speed int) (float64, error) {
	if !(math.Abs(vin) >= velocityEpsilon) {
		Logger().Debug("velocity below threshold",
			"family", table.Name(), "vin", vin, "epsilon", velocityEpsilon)
		return 0, fmt.Errorf("%w: %g", ErrBelowEpsilon, vin)
	}
	if math.IsInf(vin, 0) {
		Logger().Warn("velocity not finite", "family", table.Name(), "vin", vin)
		return 0, fmt.Errorf("%w: velocity %g", ErrNonFiniteMotion, vin)
	}
	if speed < MinSpeed || speed > MaxSpeed {
		Logger().Warn("speed tier out of range",
			"family", table.Name(), "speed", speed, "min", MinSpeed, "max", MaxSpeed)
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidSpeed, speed, MinSpeed, MaxSpeed)
	}

	gain := table.Resolve(vin, speed)
	if math.IsNaN(gain) || math.IsInf(gain, 0) {
		return 0, fmt.Errorf("%w: gain %g at velocity %g", ErrNonFiniteMotion, gain, vin)
	}
	Logger().Debug("gain resolved",
		"family", table.Name(), "vin", vin, "speed", speed, "gain", gain)
	return gain, nil
}
