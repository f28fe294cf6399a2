package curve

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Profile is a curve evaluated on an evenly spaced velocity grid.
type Profile struct {
	Velocities []float64
	Gains      []float64
	Outputs    []float64 // Slope*v + Intercept before dividing by v
	Segments   []int
}

// Sample evaluates the tier for speed at n velocities spanning [lo, hi].
// lo must be positive so that no gain is evaluated at zero velocity.
func Sample(t *Table, speed int, lo, hi float64, n int) (*Profile, error) {
	if n < 2 {
		return nil, fmt.Errorf("sample count must be at least 2, got %d", n)
	}
	if lo <= 0 || hi <= lo {
		return nil, fmt.Errorf("velocity range (%v, %v) must satisfy 0 < lo < hi", lo, hi)
	}
	if speed < MinSpeed || speed > t.Tiers() {
		return nil, fmt.Errorf("speed %d out of range [%d, %d]", speed, MinSpeed, t.Tiers())
	}

	p := &Profile{
		Velocities: floats.Span(make([]float64, n), lo, hi),
		Gains:      make([]float64, n),
		Outputs:    make([]float64, n),
		Segments:   make([]int, n),
	}
	for i, v := range p.Velocities {
		idx, seg := t.Segment(v, speed)
		p.Segments[i] = idx
		p.Outputs[i] = seg.Slope*v + seg.Intercept
		p.Gains[i] = p.Outputs[i] / v
	}

	return p, nil
}

// GainRange returns the smallest and largest gain in the profile.
func (p *Profile) GainRange() (lo, hi float64) {
	return floats.Min(p.Gains), floats.Max(p.Gains)
}
