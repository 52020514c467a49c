package geom

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Dot returns the dot product of a and b: sum(a[i] * b[i]).
// Only the minimum length of the two slices is used; mismatched lengths are
// the caller's responsibility.
func Dot(a, b []float64) float64 {
	return vecmath.DotProduct(a, b)
}

// Norm returns the Euclidean (L2) norm of v: sqrt(sum(v[i]^2)).
func Norm(v []float64) float64 {
	return math.Sqrt(vecmath.DotProduct(v, v))
}

// Normalize divides each component of v in place by its norm. The caller
// must ensure v is non-zero; a zero vector yields non-finite components.
func Normalize(v []float64) {
	vecmath.ScaleBlockInPlace(v, 1/Norm(v))
}
