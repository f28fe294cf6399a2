// Command libmotionaccel builds the acceleration engine as a C shared
// library:
//
//	go build -buildmode=c-shared -o libmotionaccel.so ./cmd/libmotionaccel
//
// Both exported functions return 0 on success and -1 on failure.
package main

/*
#include <stdbool.h>
#include <stdint.h>

typedef struct {
	double dx;
	double dy;
} Offset;
*/
import "C"

import (
	motionaccel "github.com/tphakala/go-motion-accel"
)

//export HandleMotionAccelerate
func HandleMotionAccelerate(offset *C.Offset, mode C.bool, absX, absY *C.double, speed C.int32_t) C.int32_t {
	return handle(offset, mode, absX, absY, speed, motionaccel.HandleMotionAccelerate)
}

//export HandleMotionAccelerateTouchpad
func HandleMotionAccelerateTouchpad(offset *C.Offset, mode C.bool, absX, absY *C.double, speed C.int32_t) C.int32_t {
	return handle(offset, mode, absX, absY, speed, motionaccel.HandleMotionAccelerateTouchpad)
}

type handler func(*motionaccel.Offset, bool, *float64, *float64, int32) int32

func handle(offset *C.Offset, mode C.bool, absX, absY *C.double, speed C.int32_t, fn handler) C.int32_t {
	if offset == nil || absX == nil || absY == nil {
		return C.int32_t(motionaccel.RetErr)
	}

	off := motionaccel.Offset{DX: float64(offset.dx), DY: float64(offset.dy)}
	x, y := float64(*absX), float64(*absY)
	ret := fn(&off, bool(mode), &x, &y, int32(speed))
	*absX = C.double(x)
	*absY = C.double(y)
	return C.int32_t(ret)
}

func main() {}
