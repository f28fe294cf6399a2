package curve

import (
	"sync"
)

// Speed tiers shared by both families.
const (
	MinSpeed = 1
	MaxSpeed = 11
)

// Mouse curve tuning. Thresholds are integer velocities.
var (
	mouseThresholds = []float64{8, 32, 128}

	mouseSlopes = [][]float64{
		{0.16, 0.30, 0.56},
		{0.32, 0.60, 1.12},
		{0.64, 1.2, 2.24},
		{0.80, 1.50, 2.80},
		{0.92, 2.40, 4.48},
		{1.04, 3.30, 6.16},
		{1.10, 3.75, 7.00},
		{1.16, 4.20, 7.84},
		{1.22, 4.65, 8.68},
		{1.28, 5.1, 9.52},
		{1.34, 5.55, 10.36},
	}

	mouseIntercepts = [][]float64{
		{0.0, -1.12, -9.44},
		{0.0, -2.24, -18.88},
		{0.0, -4.48, -37.76},
		{0.0, -5.6, -47.2},
		{0.0, -11.84, -78.4},
		{0.0, -18.08, -109.60},
		{0.0, -21.2, -125.20},
		{0.0, -24.32, -140.8},
		{0.0, -27.44, -156.40},
		{0.0, -30.56, -172.00},
		{0.0, -33.68, -187.6},
	}
)

// Touchpad curve tuning.
var (
	touchpadThresholds = []float64{1.27, 12.73, 19.09, 81.46}

	touchpadSlopes = [][]float64{
		{0.14, 0.25, 0.53, 1.03},
		{0.19, 0.33, 0.71, 1.37},
		{0.24, 0.41, 0.88, 1.71},
		{0.28, 0.49, 1.06, 2.05},
		{0.38, 0.66, 1.41, 2.73},
		{0.47, 0.82, 1.77, 3.42},
		{0.57, 0.99, 2.12, 4.10},
		{0.71, 1.24, 2.65, 5.13},
		{0.90, 1.57, 3.36, 6.49},
		{1.08, 1.90, 4.07, 7.86},
		{1.27, 2.23, 4.77, 9.23},
	}

	touchpadIntercepts = [][]float64{
		{0.0, -0.14, -3.74, -13.19},
		{0.0, -0.18, -4.98, -17.58},
		{0.0, -0.21, -5.91, -20.88},
		{0.0, -0.27, -7.47, -26.37},
		{0.0, -0.36, -9.96, -35.16},
		{0.0, -0.45, -12.45, -43.95},
		{0.0, -0.54, -14.94, -52.74},
		{0.0, -0.68, -18.68, -65.93},
		{0.0, -0.86, -23.66, -83.51},
		{0.0, -1.04, -28.64, -101.09},
		{0.0, -1.22, -33.62, -118.67},
	}
)

var (
	mouseOnce  sync.Once
	mouseTable *Table

	touchpadOnce  sync.Once
	touchpadTable *Table
)

// Mouse returns the mouse curve table, building it on first use.
func Mouse() *Table {
	mouseOnce.Do(func() {
		mouseTable = mustBuild("mouse", RoundCeil, mouseThresholds, mouseSlopes, mouseIntercepts)
	})
	return mouseTable
}

// Touchpad returns the touchpad curve table, building it on first use.
func Touchpad() *Table {
	touchpadOnce.Do(func() {
		touchpadTable = mustBuild("touchpad", RoundNone, touchpadThresholds, touchpadSlopes, touchpadIntercepts)
	})
	return touchpadTable
}

func mustBuild(name string, rounding Rounding, thresholds []float64, slopes, intercepts [][]float64) *Table {
	t := newTable(name, rounding, thresholds, slopes, intercepts)
	if err := t.Validate(); err != nil {
		panic("curve: " + err.Error())
	}
	return t
}
