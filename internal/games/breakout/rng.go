package breakout

// Rand is the random source the session draws from. Tests inject a fixed
// source to pin the initial ball direction.
type Rand interface {
	Float64() float64
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator).
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	// Top 53 bits so the result is exactly representable and never 1.0
	return float64(r.Next()>>11) / (1 << 53)
}

// rangeF returns a value in [lo, hi) drawn from rng.
func rangeF(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
