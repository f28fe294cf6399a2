// Package simdops provides the vector operations used for batch motion
// processing, backed by SIMD kernels where the CPU supports them.
package simdops

import (
	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f64"
)

// Ops provides SIMD-accelerated operations over float64 slices.
// Function pointers keep call sites independent of the kernel package.
type Ops struct {
	// Sum returns the sum of all elements.
	Sum func(a []float64) float64

	// DotProduct returns Σ a[i]*b[i]. Slices must have equal length.
	DotProduct func(a, b []float64) float64

	// Interleave2 interleaves two slices: dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
	Interleave2 func(dst, a, b []float64)
}

var ops64 = Ops{
	Sum:         f64.Sum,
	DotProduct:  f64.DotProduct,
	Interleave2: f64.Interleave2,
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops {
	return &ops64
}

// CPUInfo describes the SIMD feature set selected at runtime.
func CPUInfo() string {
	return cpu.Info()
}
