package field

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-tract/internal/kernels"
)

var (
	// ErrLengthMismatch indicates point sets of differing sizes.
	ErrLengthMismatch = errors.New("field: point sets must have equal length")

	// ErrNotFlattened indicates a buffer whose length is not a multiple of 3.
	ErrNotFlattened = errors.New("field: buffer length not a multiple of 3")
)

// Displacements writes the per-component displacement field into dst:
// dst[i] = deformed[i] - aligned[i]. All three buffers must have equal
// length; the underlying block ops panic on mismatch.
func Displacements(dst, deformed, aligned []float64) {
	vecmath.ScaleBlock(dst, aligned, -1)
	vecmath.AddBlockInPlace(dst, deformed)
}

// Offsets writes the per-point displacement magnitudes into dst:
// dst[i] = ||field point i||. len(field) = 3*len(dst). Not validated.
func Offsets(dst, field []float64) {
	kernels.PointNorms(dst, field)
}

// Directions normalizes each point of field in place by its offset,
// yielding unit direction vectors. Points with zero offset become
// non-finite, as in geom.Normalize; callers filter those if needed.
// Not validated.
func Directions(field, offsets []float64) {
	n := len(field) / 3
	if len(offsets) < n {
		n = len(offsets)
	}

	for i := 0; i < n; i++ {
		inv := 1 / offsets[i]
		field[3*i] *= inv
		field[3*i+1] *= inv
		field[3*i+2] *= inv
	}
}

// Compute returns the displacement magnitudes and unit directions between a
// deformed and an aligned point set. directions is the displacement field
// normalized point-wise by offsets.
func Compute(deformed, aligned []float64) (offsets, directions []float64, err error) {
	if len(deformed)%3 != 0 || len(aligned)%3 != 0 {
		return nil, nil, ErrNotFlattened
	}
	if len(deformed) != len(aligned) {
		return nil, nil, ErrLengthMismatch
	}

	directions = make([]float64, len(deformed))
	offsets = make([]float64, len(deformed)/3)

	Displacements(directions, deformed, aligned)
	Offsets(offsets, directions)
	Directions(directions, offsets)

	return offsets, directions, nil
}
