package scene

// RNG is a deterministic pseudo-random number generator based on the
// Mulberry32 mixing function. The same seed always produces the same
// output sequence, which is what makes scenes reproducible: every
// geometric decision in this package is a draw from an RNG stream.
//
// RNG is NOT safe for concurrent use. Each build or stroke event owns
// its own instance.
type RNG struct {
	state uint32
	seed  uint32
}

// NewRNG creates a generator seeded with the given value.
func NewRNG(seed uint32) *RNG {
	return &RNG{state: seed, seed: seed}
}

// Seed returns the seed the generator was created with.
// Stroke generators fold it into element identifiers so that distinct
// edit events never produce colliding IDs.
func (r *RNG) Seed() uint32 { return r.seed }

// Float returns the next value in [0, 1).
func (r *RNG) Float() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Range returns the next value in [min, max).
func (r *RNG) Range(min, max float64) float64 {
	return min + r.Float()*(max-min)
}

// IntN returns the next integer in [0, n). n must be positive.
func (r *RNG) IntN(n int) int {
	return int(r.Float() * float64(n))
}

// Angle returns the next angle in [0, 2π) radians.
func (r *RNG) Angle() float64 {
	return r.Float() * twoPi
}
