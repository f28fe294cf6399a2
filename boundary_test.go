package motionaccel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMotionAccelerate(t *testing.T) {
	tests := []struct {
		name     string
		offset   Offset
		mode     bool
		wantRet  int32
		wantAbsX float64
		wantAbsY float64
	}{
		{"normal motion", Offset{DX: 10, DY: 5}, false, RetOK, 13.2, 6.6},
		{"no motion", Offset{DX: 1e-8, DY: 1e-8}, false, RetErr, 0, 0},
		{"capture mode", Offset{DX: 10, DY: 5}, true, RetOK, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var absX, absY float64
			off := tt.offset
			ret := HandleMotionAccelerate(&off, tt.mode, &absX, &absY, 2)
			assert.Equal(t, tt.wantRet, ret)
			assert.InDelta(t, tt.wantAbsX, absX, 1e-9)
			assert.InDelta(t, tt.wantAbsY, absY, 1e-9)
		})
	}
}

func TestHandleMotionAccelerateTouchpad(t *testing.T) {
	tests := []struct {
		name     string
		offset   Offset
		mode     bool
		wantRet  int32
		wantAbsX float64
		wantAbsY float64
	}{
		// velocity 25 at speed 2: gain (1.37*25 - 17.58) / 25
		{"normal motion", Offset{DX: 20, DY: 10}, false, RetOK, 13, 6},
		{"no motion", Offset{DX: 1e-8, DY: 1e-8}, false, RetErr, 0, 0},
		{"capture mode", Offset{DX: 20, DY: 10}, true, RetOK, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Default().Reset()
			t.Cleanup(Default().Reset)

			var absX, absY float64
			off := tt.offset
			ret := HandleMotionAccelerateTouchpad(&off, tt.mode, &absX, &absY, 2)
			assert.Equal(t, tt.wantRet, ret)
			assert.Equal(t, tt.wantAbsX, absX)
			assert.Equal(t, tt.wantAbsY, absY)
		})
	}
}

func TestHandleMotion_AddsToExistingPosition(t *testing.T) {
	absX, absY := 100.0, -50.0
	off := Offset{DX: 10, DY: 5}
	require.Equal(t, RetOK, HandleMotionAccelerate(&off, false, &absX, &absY, 2))
	assert.InDelta(t, 113.2, absX, 1e-9)
	assert.InDelta(t, -43.4, absY, 1e-9)
}

func TestHandleMotion_InvalidArguments(t *testing.T) {
	off := Offset{DX: 10, DY: 5}
	var absX, absY float64

	assert.Equal(t, RetErr, HandleMotionAccelerate(nil, false, &absX, &absY, 2))
	assert.Equal(t, RetErr, HandleMotionAccelerate(&off, false, nil, &absY, 2))
	assert.Equal(t, RetErr, HandleMotionAccelerateTouchpad(&off, false, &absX, nil, 2))

	assert.Equal(t, RetErr, HandleMotionAccelerate(&off, false, &absX, &absY, 0))
	assert.Equal(t, RetErr, HandleMotionAccelerateTouchpad(&off, false, &absX, &absY, 12))
	assert.Equal(t, RetErr, HandleMotionAccelerate(&off, true, &absX, &absY, -1))

	assert.Zero(t, absX)
	assert.Zero(t, absY)
}

// TestHandleMotionAccelerateTouchpad_CarryPersists checks that slow motion
// reaches the caller across calls.
func TestHandleMotionAccelerateTouchpad_CarryPersists(t *testing.T) {
	Default().Reset()
	t.Cleanup(Default().Reset)

	var absX, absY float64
	for range 10 {
		off := Offset{DX: 1, DY: 0}
		require.Equal(t, RetOK, HandleMotionAccelerateTouchpad(&off, false, &absX, &absY, 3))
	}
	// ten events at gain 0.24 move 2.4 pixels
	assert.Equal(t, 2.0, absX)
	assert.Zero(t, absY)
	assert.InDelta(t, 0.4, Default().Carry().X, 1e-9)
}

// TestHandleMotion_NonFiniteLeavesPosition checks that overflowing or
// infinite motion never reaches the caller's coordinates.
func TestHandleMotion_NonFiniteLeavesPosition(t *testing.T) {
	Default().Reset()
	t.Cleanup(Default().Reset)

	tests := []struct {
		name string
		off  Offset
		fn   func(*Offset, bool, *float64, *float64, int32) int32
	}{
		{"mouse overflow", Offset{DX: 1e308, DY: 1e308}, HandleMotionAccelerate},
		{"mouse infinite", Offset{DX: math.Inf(1)}, HandleMotionAccelerate},
		{"touchpad infinite", Offset{DY: math.Inf(-1)}, HandleMotionAccelerateTouchpad},
		{"touchpad overflow", Offset{DX: 1e308, DY: 1e308}, HandleMotionAccelerateTouchpad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			absX, absY := 10.0, 20.0
			off := tt.off
			assert.Equal(t, RetErr, tt.fn(&off, false, &absX, &absY, MaxSpeed))
			assert.Equal(t, 10.0, absX)
			assert.Equal(t, 20.0, absY)
		})
	}
	assert.Equal(t, CarryState{}, Default().Carry())
}

func TestDefault_Singleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}
