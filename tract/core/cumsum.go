package core

// CumSum writes the inclusive prefix sums of src into dst:
// dst[i] = src[0] + ... + src[i]. Processes min(len(dst), len(src)) elements.
//
// Writes are strictly left to right, so dst may alias src for in-place use.
func CumSum(dst, src []float64) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	if n == 0 {
		return
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += src[i]
		dst[i] = sum
	}
}
