package generic

import "math"

// DistanceSum returns the sum of pairwise point distances between two
// flattened xyz buffers: sum_i ||a_i - b_i||.
// Processes min(len(a), len(b))/3 points. Returns 0 for empty input.
func DistanceSum(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	n /= 3

	sum := 0.0
	for i := 0; i < n; i++ {
		dx := a[3*i] - b[3*i]
		dy := a[3*i+1] - b[3*i+1]
		dz := a[3*i+2] - b[3*i+2]
		sum += math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	return sum
}

// DistanceSumFlipped returns the sum of pairwise point distances with b
// traversed in reverse point order: sum_i ||a_i - b_{n-1-i}||.
// Both buffers must describe the same number of points; the minimum point
// count of the two is used.
func DistanceSumFlipped(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	n /= 3

	sum := 0.0
	for i := 0; i < n; i++ {
		j := n - 1 - i
		dx := a[3*i] - b[3*j]
		dy := a[3*i+1] - b[3*j+1]
		dz := a[3*i+2] - b[3*j+2]
		sum += math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	return sum
}
