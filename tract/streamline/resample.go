package streamline

import (
	"errors"

	"github.com/cwbudde/algo-tract/tract/core"
)

var (
	// ErrNotFlattened indicates a buffer whose length is not a multiple of 3.
	ErrNotFlattened = errors.New("streamline: buffer length not a multiple of 3")

	// ErrTooFewPoints indicates a streamline with fewer than two points.
	ErrTooFewPoints = errors.New("streamline: need at least two points")

	// ErrBadPointCount indicates a requested output point count below two.
	ErrBadPointCount = errors.New("streamline: output point count must be >= 2")
)

// Resample returns a copy of s with exactly n points spaced evenly by arc
// length, preserving both endpoints. Intermediate points are linearly
// interpolated within the bracketing segment.
//
// A degenerate streamline with zero total length resamples to n copies of
// its first point.
func Resample(s []float64, n int) ([]float64, error) {
	if len(s)%3 != 0 {
		return nil, ErrNotFlattened
	}

	points := len(s) / 3
	if points < 2 {
		return nil, ErrTooFewPoints
	}
	if n < 2 {
		return nil, ErrBadPointCount
	}

	cum := make([]float64, points)
	CumulativeLengths(cum, s)
	total := cum[points-1]

	out := make([]float64, 3*n)
	copy(out[:3], s[:3])
	copy(out[3*(n-1):], s[3*(points-1):])

	if total == 0 {
		for i := 1; i < n-1; i++ {
			copy(out[3*i:3*i+3], s[:3])
		}
		return out, nil
	}

	step := total / float64(n-1)
	for i := 1; i < n-1; i++ {
		target := float64(i) * step

		// Rightmost insertion keeps the bracketing segment ahead of the
		// target even when cumulative lengths repeat (zero-length segments).
		seg := searchSegment(cum, target)

		segLen := cum[seg+1] - cum[seg]
		frac := 0.0
		if segLen > 0 {
			// Rounding in the cumulative sums can push the ratio a hair
			// outside the segment; keep the interpolation on it.
			frac = core.Clamp((target-cum[seg])/segLen, 0, 1)
		}

		a := s[3*seg : 3*seg+3]
		b := s[3*seg+3 : 3*seg+6]
		out[3*i] = a[0] + frac*(b[0]-a[0])
		out[3*i+1] = a[1] + frac*(b[1]-a[1])
		out[3*i+2] = a[2] + frac*(b[2]-a[2])
	}

	return out, nil
}

// searchSegment returns the index of the segment containing the given arc
// length: the largest j with cum[j] <= target and j <= len(cum)-2.
func searchSegment(cum []float64, target float64) int {
	j := core.SearchAscending(cum, target) - 1
	if j < 0 {
		j = 0
	}
	if max := len(cum) - 2; j > max {
		j = max
	}
	return j
}
