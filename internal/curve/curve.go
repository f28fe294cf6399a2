// Package curve holds the piecewise-linear acceleration curves and the gain
// lookup over them.
package curve

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidTable indicates curve data that breaks an ordering invariant.
var ErrInvalidTable = errors.New("invalid curve table")

// Rounding selects how a velocity is turned into a lookup magnitude.
type Rounding int

const (
	// RoundNone uses |v| as is.
	RoundNone Rounding = iota

	// RoundCeil rounds |v| up to the next integer before lookup.
	RoundCeil
)

// Segment is one linear piece of a curve: output = Slope*v + Intercept,
// active for magnitudes up to and including Threshold.
type Segment struct {
	Threshold float64
	Slope     float64
	Intercept float64
}

// Tier is the curve for one speed setting. The last segment also covers
// every magnitude beyond its threshold.
type Tier []Segment

// Select returns the first segment whose threshold is >= magnitude.
// When magnitude exceeds every threshold the last segment is returned.
func (t Tier) Select(magnitude float64) (int, Segment) {
	for i, seg := range t {
		if magnitude <= seg.Threshold {
			return i, seg
		}
	}
	last := len(t) - 1
	return last, t[last]
}

// Table is an immutable set of tiers indexed by speed, starting at 1.
type Table struct {
	name     string
	rounding Rounding
	tiers    []Tier
}

// Name returns the curve family name.
func (t *Table) Name() string { return t.name }

// Rounding returns the magnitude rounding mode of the table.
func (t *Table) Rounding() Rounding { return t.rounding }

// Tiers returns the number of speed tiers.
func (t *Table) Tiers() int { return len(t.tiers) }

// Tier returns the curve for speed. Speed is 1-indexed and is not range
// checked; callers validate it first.
func (t *Table) Tier(speed int) Tier {
	return t.tiers[speed-1]
}

// Magnitude converts a velocity into the lookup key for this table.
func (t *Table) Magnitude(velocity float64) float64 {
	m := math.Abs(velocity)
	if t.rounding == RoundCeil {
		m = math.Ceil(m)
	}
	return m
}

// Resolve returns the gain factor for velocity at the given speed:
// (slope*v + intercept) / v of the active segment.
// velocity must be non-zero.
func (t *Table) Resolve(velocity float64, speed int) float64 {
	_, seg := t.Tier(speed).Select(t.Magnitude(velocity))
	return (seg.Slope*velocity + seg.Intercept) / velocity
}

// Segment returns the index and data of the segment active for velocity.
func (t *Table) Segment(velocity float64, speed int) (int, Segment) {
	return t.Tier(speed).Select(t.Magnitude(velocity))
}

// Validate checks the ordering invariants of the table data.
func (t *Table) Validate() error {
	if len(t.tiers) == 0 {
		return fmt.Errorf("%w: %s has no tiers", ErrInvalidTable, t.name)
	}

	width := len(t.tiers[0])
	for s, tier := range t.tiers {
		if len(tier) != width {
			return fmt.Errorf("%w: %s speed %d has %d segments, want %d",
				ErrInvalidTable, t.name, s+1, len(tier), width)
		}
		for i := 1; i < len(tier); i++ {
			if tier[i].Threshold <= tier[i-1].Threshold {
				return fmt.Errorf("%w: %s speed %d threshold %d (%v) not above %v",
					ErrInvalidTable, t.name, s+1, i, tier[i].Threshold, tier[i-1].Threshold)
			}
			if tier[i].Slope <= tier[i-1].Slope {
				return fmt.Errorf("%w: %s speed %d slope %d (%v) not above %v",
					ErrInvalidTable, t.name, s+1, i, tier[i].Slope, tier[i-1].Slope)
			}
		}
		if s == 0 {
			continue
		}
		prev := t.tiers[s-1]
		for i := range tier {
			if tier[i].Slope <= prev[i].Slope {
				return fmt.Errorf("%w: %s slope %d of speed %d (%v) not above speed %d (%v)",
					ErrInvalidTable, t.name, i, s+1, tier[i].Slope, s, prev[i].Slope)
			}
		}
	}

	return nil
}

// newTable builds a table from per-tier slopes and intercepts that share one
// threshold set.
func newTable(name string, rounding Rounding, thresholds []float64, slopes, intercepts [][]float64) *Table {
	t := &Table{
		name:     name,
		rounding: rounding,
		tiers:    make([]Tier, len(slopes)),
	}
	for s := range slopes {
		tier := make(Tier, len(thresholds))
		for i, th := range thresholds {
			tier[i] = Segment{
				Threshold: th,
				Slope:     slopes[s][i],
				Intercept: intercepts[s][i],
			}
		}
		t.tiers[s] = tier
	}
	return t
}
