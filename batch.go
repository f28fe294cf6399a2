package motionaccel

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tphakala/go-motion-accel/internal/simdops"
)

// BatchResult holds the outcome of processing a sequence of events.
type BatchResult struct {
	Family Family

	// Out holds one output displacement per input event. Events without
	// meaningful motion produce a zero displacement.
	Out []Offset

	// Gains holds the resolved gain per event, zero for skipped events.
	Gains []float64

	// Skipped counts events rejected with ErrBelowEpsilon.
	Skipped int

	captureMode bool
	inX, inY    []float64
}

// ProcessBatch accelerates events in order with the device's current
// settings. The touchpad carry flows from one event to the next exactly as
// with repeated Process calls. Events below the motion threshold are skipped;
// any other error aborts the batch.
func (d *Device) ProcessBatch(events []Offset) (*BatchResult, error) {
	speed, capture := d.settings()

	r := &BatchResult{
		Family:      d.family,
		Out:         make([]Offset, len(events)),
		Gains:       make([]float64, len(events)),
		captureMode: capture,
		inX:         make([]float64, len(events)),
		inY:         make([]float64, len(events)),
	}

	for i, ev := range events {
		out, gain, err := d.process(ev, capture, speed)
		if err != nil {
			if errors.Is(err, ErrBelowEpsilon) {
				r.Skipped++
				continue
			}
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		r.Out[i] = out
		r.Gains[i] = gain
		r.inX[i] = ev.DX
		r.inY[i] = ev.DY
	}

	Logger().Debug("batch processed",
		"family", d.family, "events", len(events), "skipped", r.Skipped)
	return r, nil
}

// Totals returns the summed output displacement of the batch.
func (r *BatchResult) Totals() (x, y float64) {
	xs, ys := r.split()
	ops := simdops.Float64Ops()
	return ops.Sum(xs), ops.Sum(ys)
}

// Ideal returns the displacement the batch would produce without integer
// truncation: Σd*gain for touchpads, Σ(d + d*gain) for mice, and Σd in
// capture mode. Skipped events contribute nothing.
func (r *BatchResult) Ideal() (x, y float64) {
	ops := simdops.Float64Ops()
	if r.captureMode {
		return ops.Sum(r.inX), ops.Sum(r.inY)
	}

	x = ops.DotProduct(r.inX, r.Gains)
	y = ops.DotProduct(r.inY, r.Gains)
	if r.Family == FamilyMouse {
		x += ops.Sum(r.inX)
		y += ops.Sum(r.inY)
	}
	return x, y
}

// Drift returns Totals minus Ideal. For a touchpad it equals the carry held
// before the batch minus the carry left after it.
func (r *BatchResult) Drift() (x, y float64) {
	tx, ty := r.Totals()
	ix, iy := r.Ideal()
	return tx - ix, ty - iy
}

// Interleaved returns the outputs packed as x0, y0, x1, y1, ...
func (r *BatchResult) Interleaved() []float64 {
	xs, ys := r.split()
	dst := make([]float64, 2*len(xs))
	simdops.Float64Ops().Interleave2(dst, xs, ys)
	return dst
}

func (r *BatchResult) split() (xs, ys []float64) {
	xs = make([]float64, len(r.Out))
	ys = make([]float64, len(r.Out))
	for i, o := range r.Out {
		xs[i] = o.DX
		ys[i] = o.DY
	}
	return xs, ys
}

// ProcessMulti runs one event stream per device. When parallel is true the
// devices are processed concurrently; each device still sees its own events
// in order, so results are identical either way. Devices must be non-nil and
// distinct.
func ProcessMulti(devices []*Device, streams [][]Offset, parallel bool) ([]*BatchResult, error) {
	if len(devices) != len(streams) {
		return nil, fmt.Errorf("%w: %d devices but %d streams", ErrInvalidConfig, len(devices), len(streams))
	}

	seen := make(map[*Device]int, len(devices))
	for i, dev := range devices {
		if dev == nil {
			return nil, fmt.Errorf("%w: device %d is nil", ErrInvalidConfig, i)
		}
		if j, ok := seen[dev]; ok {
			return nil, fmt.Errorf("%w: device %d repeats device %d", ErrInvalidConfig, i, j)
		}
		seen[dev] = i
	}

	results := make([]*BatchResult, len(devices))

	if !parallel || len(devices) <= 1 {
		for i, dev := range devices {
			r, err := dev.ProcessBatch(streams[i])
			if err != nil {
				return nil, fmt.Errorf("device %d: %w", i, err)
			}
			results[i] = r
		}
		return results, nil
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(devices))

	for i := range devices {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			r, err := devices[idx].ProcessBatch(streams[idx])
			if err != nil {
				errChan <- fmt.Errorf("device %d: %w", idx, err)
				return
			}
			results[idx] = r
		}(i)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
