package motionaccel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarryAxis(t *testing.T) {
	tests := []struct {
		name      string
		delta     float64
		carry     float64
		wantOut   float64
		wantCarry float64
	}{
		{"sub-pixel stays in carry", 0.3, 0, 0, 0.3},
		{"carry completes a pixel", 0.3, 0.8, 1, 0.1},
		{"whole pixels pass through", 5, 0, 5, 0},
		{"negative truncates toward zero", -2.75, 0, -2, -0.75},
		{"opposite signs cancel", -0.4, 0.3, 0, -0.1},
		{"negative carry completes a pixel", -0.5, -0.6, -1, -0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carry := tt.carry
			out := carryAxis(tt.delta, &carry)
			assert.Equal(t, tt.wantOut, out)
			assert.InDelta(t, tt.wantCarry, carry, 1e-12)
		})
	}
}

func TestCarryState_Apply(t *testing.T) {
	c := CarryState{X: 0.5, Y: -0.5}
	out := c.apply(0.75, -0.75)
	assert.Equal(t, Offset{DX: 1, DY: -1}, out)
	assert.InDelta(t, 0.25, c.X, 1e-12)
	assert.InDelta(t, -0.25, c.Y, 1e-12)
}
