package main

// Default command-line flag values
const (
	defaultSpeed  = 6    // Middle of the 1-11 range
	defaultDX     = 0.8  // Slow horizontal drag
	defaultDY     = 0.3  // with a slight vertical component
	defaultEvents = 1000 // Events replayed
)
