package motionaccel

import "sync"

// The boundary functions below keep the pointer-based shape expected by a
// native input pipeline. They share one process-wide Accelerator, so the
// touchpad carry persists from call to call as the host expects.
var (
	defaultOnce  sync.Once
	defaultAccel *Accelerator
)

// Default returns the process-wide accelerator used by the boundary functions.
func Default() *Accelerator {
	defaultOnce.Do(func() {
		defaultAccel = NewAccelerator()
	})
	return defaultAccel
}

// HandleMotionAccelerate applies mouse acceleration to one event and adds
// the result to *absX and *absY.
//
// It returns RetOK on success and RetErr when the event has no meaningful
// motion, speed is out of range, or a pointer is nil. In capture mode, and
// on any failure, *absX and *absY are left untouched.
func HandleMotionAccelerate(offset *Offset, mode bool, absX, absY *float64, speed int32) int32 {
	return handleMotion(offset, mode, absX, absY, speed, Default().Accelerate)
}

// HandleMotionAccelerateTouchpad is HandleMotionAccelerate for touchpads.
// Increments are whole pixels; the sub-pixel remainder is carried into the
// next call.
func HandleMotionAccelerateTouchpad(offset *Offset, mode bool, absX, absY *float64, speed int32) int32 {
	return handleMotion(offset, mode, absX, absY, speed, Default().AccelerateTouchpad)
}

type accelerateFunc func(off Offset, captureMode bool, speed int) (Offset, error)

func handleMotion(offset *Offset, mode bool, absX, absY *float64, speed int32, fn accelerateFunc) int32 {
	if offset == nil || absX == nil || absY == nil {
		Logger().Warn("motion accelerate called with nil pointer")
		return RetErr
	}

	out, err := fn(*offset, mode, int(speed))
	if err != nil {
		Logger().Debug("motion accelerate rejected",
			"dx", offset.DX, "dy", offset.DY, "speed", speed, "error", err)
		return RetErr
	}
	if !mode {
		*absX += out.DX
		*absY += out.DY
	}

	Logger().Debug("motion accelerate",
		"abs_x", *absX, "abs_y", *absY, "capture", mode)
	return RetOK
}
