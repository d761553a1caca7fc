package scatter

// Rand is a mulberry32 generator. A given seed produces the same draw
// sequence on every platform: state is a single uint32 with wraparound
// arithmetic and the output mantissa fits a float64 exactly, so there is
// no dependence on libm, entropy, or the clock.
type Rand struct {
	state uint32
}

// NewRand creates a generator from a 32-bit seed. Seed 0 is valid.
func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Next advances the state and returns a draw in [0, 1).
func (r *Rand) Next() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	t ^= t >> 14
	return float64(t) / 4294967296.0
}
