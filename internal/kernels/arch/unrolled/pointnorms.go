package unrolled

import "math"

// PointNorms writes per-point Euclidean norms of the flattened xyz buffer pts
// into dst, processing four points per iteration.
// Processes min(len(dst), len(pts)/3) points.
func PointNorms(dst, pts []float64) {
	n := len(pts) / 3
	if len(dst) < n {
		n = len(dst)
	}

	i := 0
	for ; i+4 <= n; i += 4 {
		x0, y0, z0 := pts[3*i], pts[3*i+1], pts[3*i+2]
		x1, y1, z1 := pts[3*i+3], pts[3*i+4], pts[3*i+5]
		x2, y2, z2 := pts[3*i+6], pts[3*i+7], pts[3*i+8]
		x3, y3, z3 := pts[3*i+9], pts[3*i+10], pts[3*i+11]

		dst[i] = math.Sqrt(x0*x0 + y0*y0 + z0*z0)
		dst[i+1] = math.Sqrt(x1*x1 + y1*y1 + z1*z1)
		dst[i+2] = math.Sqrt(x2*x2 + y2*y2 + z2*z2)
		dst[i+3] = math.Sqrt(x3*x3 + y3*y3 + z3*z3)
	}

	for ; i < n; i++ {
		x := pts[3*i]
		y := pts[3*i+1]
		z := pts[3*i+2]
		dst[i] = math.Sqrt(x*x + y*y + z*z)
	}
}
