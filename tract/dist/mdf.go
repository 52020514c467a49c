package dist

import (
	"errors"

	"github.com/cwbudde/algo-tract/internal/kernels"
	"github.com/cwbudde/algo-tract/tract/parallel"
)

var (
	// ErrEmptyBundle indicates a bundle with no streamlines.
	ErrEmptyBundle = errors.New("dist: empty bundle")

	// ErrPointCountMismatch indicates streamlines with differing point counts.
	ErrPointCountMismatch = errors.New("dist: streamlines must share one point count")

	// ErrNotFlattened indicates a buffer whose length is not a multiple of 3.
	ErrNotFlattened = errors.New("dist: buffer length not a multiple of 3")
)

// MDF returns the minimum average direct-flip distance between two
// streamlines with the same point count:
//
//	min( mean_i ||a_i - b_i||, mean_i ||a_i - b_{n-1-i}|| )
//
// Both buffers must be flattened xyz with equal, non-zero point counts.
func MDF(a, b []float64) (float64, error) {
	if len(a)%3 != 0 || len(b)%3 != 0 {
		return 0, ErrNotFlattened
	}
	if len(a) != len(b) {
		return 0, ErrPointCountMismatch
	}
	if len(a) == 0 {
		return 0, ErrEmptyBundle
	}

	return mdf(a, b, float64(len(a)/3)), nil
}

// mdf is the unchecked core shared with Matrix.
func mdf(a, b []float64, points float64) float64 {
	direct := kernels.DistanceSum(a, b) / points
	flipped := kernels.DistanceSumFlipped(a, b) / points
	if flipped < direct {
		return flipped
	}
	return direct
}

// Matrix returns the dense MDF distance table between two bundles:
// out[i][j] is the distance between moving[i] and static[j]. Every
// streamline in both bundles must share one point count.
//
// Rows are computed in parallel; see parallel.SetWorkers for the worker
// knob.
func Matrix(moving, static [][]float64) ([][]float64, error) {
	if len(moving) == 0 || len(static) == 0 {
		return nil, ErrEmptyBundle
	}

	points := len(moving[0])
	for _, s := range moving {
		if len(s) != points {
			return nil, ErrPointCountMismatch
		}
	}
	for _, s := range static {
		if len(s) != points {
			return nil, ErrPointCountMismatch
		}
	}
	if points%3 != 0 {
		return nil, ErrNotFlattened
	}
	if points == 0 {
		return nil, ErrEmptyBundle
	}

	pf := float64(points / 3)
	out := make([][]float64, len(moving))

	parallel.For(len(moving), func(i int) {
		row := make([]float64, len(static))
		for j, s := range static {
			row[j] = mdf(moving[i], s, pf)
		}
		out[i] = row
	})

	return out, nil
}
