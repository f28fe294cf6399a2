package testutil

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorder captures failures reported through assert.TestingT.
type recorder struct {
	msgs []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.msgs = append(r.msgs, fmt.Sprintf(format, args...))
}

func (r *recorder) output() string { return strings.Join(r.msgs, "\n") }

func TestHelpers_Pass(t *testing.T) {
	assert.True(t, AssertNoNaNOrInf(t, []float64{0, 1, -2}))
	assert.True(t, AssertMonotonic(t, []float64{1, 1, 2}))
	assert.True(t, AssertStrictlyIncreasing(t, []float64{1, 2, 3}))
	assert.True(t, AssertRelativeError(t, 100, 100.0000001, 1e-6))
	assert.True(t, AssertInRange(t, 0.5, 0, 1))
	assert.True(t, AssertUnitInterval(t, -0.999))
	assert.True(t, AssertIntegral(t, -3))
}

// TestHelpers_ForwardMessage checks every helper reports its failure along
// with the caller's message.
func TestHelpers_ForwardMessage(t *testing.T) {
	tests := []struct {
		name string
		call func(r *recorder) bool
		want string
	}{
		{"nan", func(r *recorder) bool {
			return AssertNoNaNOrInf(r, []float64{1, math.NaN()}, "case %d", 1)
		}, "s[1] is NaN"},
		{"inf", func(r *recorder) bool {
			return AssertNoNaNOrInf(r, []float64{math.Inf(-1)}, "case %d", 1)
		}, "s[0] is Inf"},
		{"monotonic", func(r *recorder) bool {
			return AssertMonotonic(r, []float64{2, 1}, "case %d", 1)
		}, "not monotonic"},
		{"strictly increasing", func(r *recorder) bool {
			return AssertStrictlyIncreasing(r, []float64{1, 1}, "case %d", 1)
		}, "not strictly increasing"},
		{"relative error", func(r *recorder) bool {
			return AssertRelativeError(r, 1, 2, 1e-3, "case %d", 1)
		}, "relative error"},
		{"range", func(r *recorder) bool {
			return AssertInRange(r, 5, 0, 1, "case %d", 1)
		}, "outside range"},
		{"unit interval", func(r *recorder) bool {
			return AssertUnitInterval(r, 1, "case %d", 1)
		}, "outside (-1, 1)"},
		{"integral", func(r *recorder) bool {
			return AssertIntegral(r, 1.5, "case %d", 1)
		}, "not integral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			assert.False(t, tt.call(r))
			assert.Contains(t, r.output(), tt.want)
			assert.Contains(t, r.output(), "case 1")
		})
	}
}
