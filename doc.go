// Package motionaccel provides pointer-motion acceleration for mice and touchpads.
//
// Each input event carries a raw displacement (dx, dy). The package estimates
// a velocity from it, looks up a gain on a piecewise-linear curve selected by
// a speed tier, and returns the accelerated displacement.
//
// # Features
//
//   - Two curve families: mouse-like devices and touchpads
//   - Eleven speed tiers per family, from gentlest (1) to strongest (11)
//   - Whole-pixel touchpad output with a carried sub-pixel remainder, so
//     slow touchpad motion is not lost to truncation
//   - Capture mode that validates events but passes displacement through
//   - Batch and multi-device processing with SIMD-backed statistics
//   - Pointer-based boundary functions for native input pipelines
//
// # Quick Start
//
// For a single device:
//
//	dev, err := motionaccel.New(&motionaccel.Config{
//	    Family: motionaccel.FamilyTouchpad,
//	    Speed:  6,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for ev := range events {
//	    out, err := dev.Process(motionaccel.Offset{DX: ev.DX, DY: ev.DY})
//	    if errors.Is(err, motionaccel.ErrBelowEpsilon) {
//	        continue // no motion in this event
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    cursor.Move(out.DX, out.DY)
//	}
//
// # Curves
//
// A curve is a short list of segments, each with a threshold, a slope and an
// intercept. The first segment whose threshold is at least the velocity
// magnitude is active; past the last threshold the last segment extends
// without bound. The gain is (slope*v + intercept) / v, a factor that can be
// applied to both axes without changing the direction of motion.
//
// The two families differ in more than their data:
//
//   - Mouse: velocity is (max(|dx|,|dy|) + min(|dx|,|dy|)) / 2, the magnitude
//     is rounded up to an integer before lookup, and each axis becomes
//     d + d*gain.
//   - Touchpad: velocity is max(|dx|,|dy|) + min(|dx|,|dy|)/2, the magnitude is
//     used as is, and each axis becomes trunc(d*gain + carry).
//
// # Errors
//
// [ErrBelowEpsilon] means the event had no meaningful motion (velocity under
// 1e-6). [ErrInvalidSpeed] means the speed tier was outside [MinSpeed,
// MaxSpeed]. [ErrNonFiniteMotion] means the velocity or the accelerated
// displacement was infinite. None is retried; the caller should leave its
// coordinates alone for that event.
//
// # Thread Safety
//
// The curve tables are built once on first use and are read-only afterwards.
// An [Accelerator] guards its touchpad carry with a mutex, so concurrent
// calls never lose updates, but events from different touchpads should go
// through different accelerators (or [Device] values) to keep their
// remainders apart.
//
// [HandleMotionAccelerate] and [HandleMotionAccelerateTouchpad] share the
// accelerator returned by [Default].
package motionaccel
