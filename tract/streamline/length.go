package streamline

import (
	"math"

	"github.com/cwbudde/algo-tract/internal/kernels"
	"github.com/cwbudde/algo-tract/tract/core"
)

// SegmentLengths writes the Euclidean length of each polyline segment of s
// into dst: dst[i] = ||p_{i+1} - p_i||. A streamline with n points has n-1
// segments; dst must hold at least that many values. Not validated.
func SegmentLengths(dst, s []float64) {
	n := len(s)/3 - 1
	if len(dst) < n {
		n = len(dst)
	}

	for i := 0; i < n; i++ {
		dx := s[3*i+3] - s[3*i]
		dy := s[3*i+4] - s[3*i+1]
		dz := s[3*i+5] - s[3*i+2]
		dst[i] = math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
}

// Length returns the total arc length of s: the sum of its segment lengths.
// Returns 0 for streamlines with fewer than two points.
func Length(s []float64) float64 {
	if len(s) < 6 {
		return 0
	}
	// Pairwise distance between the streamline and its one-point shift.
	return kernels.DistanceSum(s[3:], s[:len(s)-3])
}

// CumulativeLengths writes the cumulative arc length at each point of s into
// dst: dst[0] = 0 and dst[i] = dst[i-1] + ||p_i - p_{i-1}||. dst must hold
// one value per point. Not validated.
func CumulativeLengths(dst, s []float64) {
	n := len(s) / 3
	if len(dst) < n {
		n = len(dst)
	}
	if n == 0 {
		return
	}

	dst[0] = 0
	SegmentLengths(dst[1:n], s)
	core.CumSum(dst[1:n], dst[1:n])
}
