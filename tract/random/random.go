package random

import (
	"math"
	"math/rand"
)

// Uniform returns a pseudo-random value in [0, 1) from the process-wide
// generator.
func Uniform() float64 {
	return rand.Float64()
}

// Source generates deterministic pseudo-random values from an explicit seed.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a deterministic generator seeded with seed.
func NewSource(seed int64) *Source {
	return &Source{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Uniform returns a pseudo-random value in [0, 1).
func (s *Source) Uniform() float64 {
	return s.rng.Float64()
}

// Point writes a point sampled uniformly from the unit cube [0,1)^3 into
// dst. dst must hold at least 3 values.
func (s *Source) Point(dst []float64) {
	dst[0] = s.rng.Float64()
	dst[1] = s.rng.Float64()
	dst[2] = s.rng.Float64()
}

// UnitVector writes a direction sampled uniformly from the unit sphere into
// dst: a normalized triple of standard normal deviates. dst must hold at
// least 3 values.
func (s *Source) UnitVector(dst []float64) {
	for {
		x := s.rng.NormFloat64()
		y := s.rng.NormFloat64()
		z := s.rng.NormFloat64()
		n := math.Sqrt(x*x + y*y + z*z)
		if n == 0 {
			continue
		}
		dst[0] = x / n
		dst[1] = y / n
		dst[2] = z / n
		return
	}
}
