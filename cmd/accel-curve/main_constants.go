package main

// Default command-line flag values
const (
	defaultSpeed = 6   // Middle of the 1-11 range
	defaultMin   = 0.5 // Slowest velocity sampled
	defaultMax   = 150 // Past the last mouse threshold
	defaultSteps = 40  // Rows printed
)
