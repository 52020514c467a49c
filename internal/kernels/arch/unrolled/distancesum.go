package unrolled

import "math"

// DistanceSum returns sum_i ||a_i - b_i|| over paired points of two flattened
// xyz buffers, processing four point pairs per iteration with independent
// accumulators to break the add dependency chain.
func DistanceSum(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	n /= 3

	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += pointDistance(a, b, i, i)
		s1 += pointDistance(a, b, i+1, i+1)
		s2 += pointDistance(a, b, i+2, i+2)
		s3 += pointDistance(a, b, i+3, i+3)
	}

	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		sum += pointDistance(a, b, i, i)
	}
	return sum
}

// DistanceSumFlipped returns sum_i ||a_i - b_{n-1-i}||, the reversed-order
// pairing used by the flipped branch of the MDF distance.
func DistanceSumFlipped(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	n /= 3

	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += pointDistance(a, b, i, n-1-i)
		s1 += pointDistance(a, b, i+1, n-2-i)
		s2 += pointDistance(a, b, i+2, n-3-i)
		s3 += pointDistance(a, b, i+3, n-4-i)
	}

	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		sum += pointDistance(a, b, i, n-1-i)
	}
	return sum
}

// pointDistance returns the Euclidean distance between point i of a and
// point j of b.
func pointDistance(a, b []float64, i, j int) float64 {
	dx := a[3*i] - b[3*j]
	dy := a[3*i+1] - b[3*j+1]
	dz := a[3*i+2] - b[3*j+2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
