package scatter

// Zone is a circular exclusion region. Candidates strictly inside it
// (distance to center < radius) are rejected; the boundary itself is
// allowed.
type Zone struct {
	X, Y   float64
	Radius float64
}

// Config holds every tunable of a scatter run. Start from DefaultConfig
// and adjust; a zero Config is not usable.
type Config struct {
	Seed uint32

	// MinDistance is the minimum spacing enforced between placed points.
	MinDistance float64

	// MaxAttempts bounds annulus draws per selected point before it is
	// retired from the active pool.
	MaxAttempts int

	// Width and Height define the sample domain [0, Width) x [0, Height).
	Width, Height int

	// MaxPoints stops the run once this many points are placed.
	MaxPoints int

	// MaxIterations hard-stops the outer loop and reports truncation.
	MaxIterations int

	// InitAttempts bounds the search for a valid starting point.
	InitAttempts int

	Zones []Zone
}

// DefaultConfig returns the reference scenario: a 72x48 field with a
// single radius-1 exclusion zone at the center, capped at 15 points.
func DefaultConfig() Config {
	return Config{
		Seed:          12345,
		MinDistance:   5,
		MaxAttempts:   50,
		Width:         72,
		Height:        48,
		MaxPoints:     15,
		MaxIterations: 21,
		InitAttempts:  1000,
		Zones:         []Zone{{X: 36, Y: 24, Radius: 1}},
	}
}
