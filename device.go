package motionaccel

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/tphakala/go-motion-accel/internal/curve"
	"github.com/tphakala/go-motion-accel/internal/simdops"
)

// ErrInvalidConfig indicates invalid configuration parameters.
var ErrInvalidConfig = errors.New("invalid accelerator configuration")

// Family selects the acceleration curve family of a device.
type Family int

const (
	// FamilyMouse is for relative pointing devices such as mice and trackballs.
	FamilyMouse Family = iota

	// FamilyTouchpad is for touchpads; output is whole pixels with a carried remainder.
	FamilyTouchpad
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyMouse:
		return "mouse"
	case FamilyTouchpad:
		return "touchpad"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// ParseFamily parses a family name as accepted on command lines.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mouse", "pointer":
		return FamilyMouse, nil
	case "touchpad", "trackpad":
		return FamilyTouchpad, nil
	default:
		return 0, fmt.Errorf("%w: unknown family %q", ErrInvalidConfig, s)
	}
}

// Config holds the settings of one pointing device.
type Config struct {
	// Family selects the curve family.
	Family Family

	// Speed is the speed tier, MinSpeed to MaxSpeed. Higher is faster.
	Speed int

	// CaptureMode passes displacement through unchanged while still
	// validating every event.
	CaptureMode bool
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Family != FamilyMouse && c.Family != FamilyTouchpad {
		return fmt.Errorf("%w: unknown family %d", ErrInvalidConfig, int(c.Family))
	}

	if c.Speed < MinSpeed || c.Speed > MaxSpeed {
		return fmt.Errorf("%w: speed must be %d-%d", ErrInvalidConfig, MinSpeed, MaxSpeed)
	}

	return nil
}

// Device applies acceleration for one pointing device. Each device owns its
// own Accelerator, so touchpad remainders never leak between devices.
type Device struct {
	accel *Accelerator

	mu          sync.RWMutex
	family      Family
	speed       int
	captureMode bool
}

// Info describes a configured device.
type Info struct {
	Family      Family
	Speed       int
	CaptureMode bool

	// Tiers and Segments describe the curve table in use.
	Tiers    int
	Segments int

	// SIMDType names the vector kernels used for batch statistics.
	SIMDType string
}

// New creates a device from config.
func New(config *Config) (*Device, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Device{
		accel:       NewAccelerator(),
		family:      config.Family,
		speed:       config.Speed,
		captureMode: config.CaptureMode,
	}, nil
}

// NewMouse creates a mouse device at the given speed.
func NewMouse(speed int) (*Device, error) {
	return New(&Config{Family: FamilyMouse, Speed: speed})
}

// NewTouchpad creates a touchpad device at the given speed.
func NewTouchpad(speed int) (*Device, error) {
	return New(&Config{Family: FamilyTouchpad, Speed: speed})
}

// Process accelerates one event with the device's current settings.
func (d *Device) Process(off Offset) (Offset, error) {
	speed, capture := d.settings()
	out, _, err := d.process(off, capture, speed)
	return out, err
}

func (d *Device) process(off Offset, capture bool, speed int) (Offset, float64, error) {
	if d.family == FamilyTouchpad {
		return d.accel.accelerateTouchpad(off, capture, speed)
	}
	return d.accel.accelerateMouse(off, capture, speed)
}

// settings returns a consistent snapshot of speed and capture mode.
func (d *Device) settings() (speed int, capture bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.speed, d.captureMode
}

// SetSpeed changes the speed tier. Out-of-range values are rejected and the
// previous tier is kept.
func (d *Device) SetSpeed(speed int) error {
	if speed < MinSpeed || speed > MaxSpeed {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidSpeed, speed, MinSpeed, MaxSpeed)
	}

	d.mu.Lock()
	d.speed = speed
	d.mu.Unlock()
	return nil
}

// SetCaptureMode switches capture mode on or off.
func (d *Device) SetCaptureMode(on bool) {
	d.mu.Lock()
	d.captureMode = on
	d.mu.Unlock()
}

// Speed returns the current speed tier.
func (d *Device) Speed() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.speed
}

// CaptureMode reports whether capture mode is on.
func (d *Device) CaptureMode() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.captureMode
}

// Family returns the device's curve family.
func (d *Device) Family() Family {
	return d.family
}

// Carry returns the touchpad remainder. It is always zero for mice.
func (d *Device) Carry() CarryState {
	return d.accel.Carry()
}

// Reset clears the touchpad remainder.
func (d *Device) Reset() {
	d.accel.Reset()
}

// Info returns information about the device.
func (d *Device) Info() Info {
	table := curve.Mouse()
	if d.family == FamilyTouchpad {
		table = curve.Touchpad()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	return Info{
		Family:      d.family,
		Speed:       d.speed,
		CaptureMode: d.captureMode,
		Tiers:       table.Tiers(),
		Segments:    len(table.Tier(MinSpeed)),
		SIMDType:    simdops.CPUInfo(),
	}
}
