package generic

import "math"

// PointNorms writes per-point Euclidean norms of the flattened xyz buffer pts
// into dst: dst[i] = ||pts[3i:3i+3]||.
// Processes min(len(dst), len(pts)/3) points.
func PointNorms(dst, pts []float64) {
	n := len(pts) / 3
	if len(dst) < n {
		n = len(dst)
	}

	for i := 0; i < n; i++ {
		x := pts[3*i]
		y := pts[3*i+1]
		z := pts[3*i+2]
		dst[i] = math.Sqrt(x*x + y*y + z*z)
	}
}
