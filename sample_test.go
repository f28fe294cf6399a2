package motionaccel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-motion-accel/internal/testutil"
)

// TestSampleCurve checks sampled gains agree with Accelerator.Gain at
// velocities that map to the same magnitude.
func TestSampleCurve(t *testing.T) {
	p, err := SampleCurve(FamilyTouchpad, 4, 1, 50, 50)
	require.NoError(t, err)
	require.Len(t, p.Gains, 50)

	a := NewAccelerator()
	for i, v := range p.Velocities {
		// TouchpadVelocity of (v, 0) is v.
		gain, err := a.Gain(FamilyTouchpad, Offset{DX: v}, 4)
		require.NoError(t, err)
		assert.InDelta(t, gain, p.Gains[i], testutil.GainTolerance, "v=%v", v)
	}
}

func TestSampleCurve_Errors(t *testing.T) {
	_, err := SampleCurve(Family(3), 1, 1, 2, 10)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = SampleCurve(FamilyMouse, 12, 1, 2, 10)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = SampleCurve(FamilyMouse, 1, 0, 2, 10)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
