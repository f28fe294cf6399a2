// Package testutil provides reusable test helper functions for motion acceleration tests.
package testutil

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	GainTolerance    = 1e-9
)

type tHelper interface {
	Helper()
}

func helper(t assert.TestingT) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t assert.TestingT, s []float64, msgAndArgs ...any) bool {
	helper(t)
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("s[%d] is NaN", i), msgAndArgs...)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, fmt.Sprintf("s[%d] is Inf", i), msgAndArgs...)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic(t assert.TestingT, s []float64, msgAndArgs ...any) bool {
	helper(t)
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not monotonic: s[%d]=%f < s[%d]=%f",
				i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertStrictlyIncreasing verifies that every element is above its predecessor.
func AssertStrictlyIncreasing(t assert.TestingT, s []float64, msgAndArgs ...any) bool {
	helper(t)
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not strictly increasing: s[%d]=%f <= s[%d]=%f",
				i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t assert.TestingT, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	helper(t)
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	if relError > tolerance {
		return assert.Fail(t, fmt.Sprintf("relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
			relError, tolerance, expected, actual), msgAndArgs...)
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t assert.TestingT, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	helper(t)
	if value < minVal || value > maxVal {
		return assert.Fail(t, fmt.Sprintf("value %f is outside range [%f, %f]",
			value, minVal, maxVal), msgAndArgs...)
	}
	return true
}

// AssertUnitInterval verifies that |value| < 1.
func AssertUnitInterval(t assert.TestingT, value float64, msgAndArgs ...any) bool {
	helper(t)
	if math.Abs(value) >= 1 {
		return assert.Fail(t, fmt.Sprintf("value outside (-1, 1): |%f| >= 1", value), msgAndArgs...)
	}
	return true
}

// AssertIntegral verifies that a value has no fractional part.
func AssertIntegral(t assert.TestingT, value float64, msgAndArgs ...any) bool {
	helper(t)
	if math.Trunc(value) != value {
		return assert.Fail(t, fmt.Sprintf("value %f is not integral", value), msgAndArgs...)
	}
	return true
}
