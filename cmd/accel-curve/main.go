// Command accel-curve prints an acceleration curve as a table of velocity,
// active segment, gain and curve output.
package main

import (
	"flag"
	"fmt"
	"log"

	motionaccel "github.com/tphakala/go-motion-accel"
	"github.com/tphakala/go-motion-accel/internal/curve"
)

func main() {
	var (
		family = flag.String("family", "mouse", "Curve family: mouse, touchpad")
		speed  = flag.Int("speed", defaultSpeed, "Speed tier (1-11)")
		lo     = flag.Float64("min", defaultMin, "Lowest velocity to sample")
		hi     = flag.Float64("max", defaultMax, "Highest velocity to sample")
		steps  = flag.Int("steps", defaultSteps, "Number of velocities to sample")
	)
	flag.Parse()

	f, err := motionaccel.ParseFamily(*family)
	if err != nil {
		log.Fatalf("Invalid family: %v", err)
	}

	profile, err := motionaccel.SampleCurve(f, *speed, *lo, *hi, *steps)
	if err != nil {
		log.Fatalf("Failed to sample curve: %v", err)
	}

	table := curve.Mouse()
	if f == motionaccel.FamilyTouchpad {
		table = curve.Touchpad()
	}

	fmt.Printf("Curve: %s, speed %d\n", table.Name(), *speed)
	for i, seg := range table.Tier(*speed) {
		fmt.Printf("  segment %d: v <= %-7g slope %-5g intercept %g\n",
			i, seg.Threshold, seg.Slope, seg.Intercept)
	}

	fmt.Printf("\n%10s %4s %10s %12s\n", "velocity", "seg", "gain", "output")
	for i, v := range profile.Velocities {
		fmt.Printf("%10.3f %4d %10.4f %12.4f\n",
			v, profile.Segments[i], profile.Gains[i], profile.Outputs[i])
	}

	gmin, gmax := profile.GainRange()
	fmt.Printf("\nGain range: %.4f - %.4f\n", gmin, gmax)
}
