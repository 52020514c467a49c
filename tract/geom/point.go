package geom

// CopyPoint copies exactly three components from src into dst.
// dst and src must each hold at least 3 values.
func CopyPoint(dst, src []float64) {
	dst[0] = src[0]
	dst[1] = src[1]
	dst[2] = src[2]
}

// ScalePoint multiplies the three components of p in place by s.
func ScalePoint(p []float64, s float64) {
	p[0] *= s
	p[1] *= s
	p[2] *= s
}

// Cross writes the 3D cross product of a and b into dst using the right-hand
// rule. dst, a, and b must each hold at least 3 values; dst must not alias
// a or b.
func Cross(dst, a, b []float64) {
	dst[0] = a[1]*b[2] - a[2]*b[1]
	dst[1] = a[2]*b[0] - a[0]*b[2]
	dst[2] = a[0]*b[1] - a[1]*b[0]
}
