// Command accel-sim replays a stream of identical motion events through a
// device and reports how far the accelerated output strays from the ideal
// displacement.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"gonum.org/v1/gonum/stat"

	motionaccel "github.com/tphakala/go-motion-accel"
)

func main() {
	var (
		family  = flag.String("family", "touchpad", "Device family: mouse, touchpad")
		speed   = flag.Int("speed", defaultSpeed, "Speed tier (1-11)")
		dx      = flag.Float64("dx", defaultDX, "Horizontal displacement per event")
		dy      = flag.Float64("dy", defaultDY, "Vertical displacement per event")
		events  = flag.Int("events", defaultEvents, "Number of events to replay")
		capture = flag.Bool("capture", false, "Enable capture mode")
		verbose = flag.Bool("v", false, "Log every event at debug level")
	)
	flag.Parse()

	if *verbose {
		motionaccel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	f, err := motionaccel.ParseFamily(*family)
	if err != nil {
		log.Fatalf("Invalid family: %v", err)
	}
	if *events < 1 {
		log.Fatalf("Event count must be positive, got %d", *events)
	}

	dev, err := motionaccel.New(&motionaccel.Config{
		Family:      f,
		Speed:       *speed,
		CaptureMode: *capture,
	})
	if err != nil {
		log.Fatalf("Failed to create device: %v", err)
	}

	stream := make([]motionaccel.Offset, *events)
	for i := range stream {
		stream[i] = motionaccel.Offset{DX: *dx, DY: *dy}
	}

	r, err := dev.ProcessBatch(stream)
	if err != nil {
		log.Fatalf("Processing failed: %v", err)
	}

	info := dev.Info()
	fmt.Printf("Device: %s, speed %d, capture %v\n", info.Family, info.Speed, info.CaptureMode)
	fmt.Printf("  SIMD: %s\n", info.SIMDType)
	fmt.Printf("Events: %d (%d skipped)\n", len(stream), r.Skipped)
	if r.Skipped == len(stream) {
		fmt.Println("No event carried meaningful motion.")
		return
	}

	tx, ty := r.Totals()
	ix, iy := r.Ideal()
	fx, fy := r.Drift()
	fmt.Printf("Total output: (%.4f, %.4f)\n", tx, ty)
	fmt.Printf("Ideal output: (%.4f, %.4f)\n", ix, iy)
	fmt.Printf("Drift:        (%.4f, %.4f)\n", fx, fy)

	// Running error after each event shows how the carry behaves over time.
	errX := make([]float64, len(r.Out))
	errY := make([]float64, len(r.Out))
	var sumX, sumY, idealX, idealY float64
	for i, o := range r.Out {
		sumX += o.DX
		sumY += o.DY
		idealX += stream[i].DX * r.Gains[i]
		idealY += stream[i].DY * r.Gains[i]
		if f == motionaccel.FamilyMouse {
			idealX += stream[i].DX
			idealY += stream[i].DY
		}
		if *capture {
			idealX, idealY = sumX, sumY
		}
		errX[i] = sumX - idealX
		errY[i] = sumY - idealY
	}

	meanX, stdX := stat.MeanStdDev(errX, nil)
	meanY, stdY := stat.MeanStdDev(errY, nil)
	fmt.Printf("Running error x: mean %.4f, stddev %.4f\n", meanX, stdX)
	fmt.Printf("Running error y: mean %.4f, stddev %.4f\n", meanY, stdY)

	c := dev.Carry()
	fmt.Printf("Final carry:  (%.4f, %.4f)\n", c.X, c.Y)
}
