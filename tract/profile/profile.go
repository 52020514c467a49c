package profile

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-tract/tract/streamline"
)

var (
	// ErrBadDiskCount indicates a disk count below one.
	ErrBadDiskCount = errors.New("profile: disk count must be >= 1")

	// ErrLengthMismatch indicates offsets and labels of differing lengths.
	ErrLengthMismatch = errors.New("profile: offsets and labels must have equal length")

	// ErrLabelRange indicates a label outside [0, disks).
	ErrLabelRange = errors.New("profile: label out of range")
)

// SegmentLabels assigns each point of s to a disk along the streamline:
// point i gets disk floor(frac_i * disks), where frac_i is its normalized
// cumulative arc length, with the final point clamped into the last disk.
//
// s is a flattened xyz buffer with at least two points. A zero-length
// streamline puts every point in disk 0.
func SegmentLabels(s []float64, disks int) ([]int, error) {
	if disks < 1 {
		return nil, ErrBadDiskCount
	}
	if len(s)%3 != 0 {
		return nil, streamline.ErrNotFlattened
	}

	points := len(s) / 3
	if points < 2 {
		return nil, streamline.ErrTooFewPoints
	}

	cum := make([]float64, points)
	streamline.CumulativeLengths(cum, s)
	total := cum[points-1]

	labels := make([]int, points)
	if total == 0 {
		return labels, nil
	}

	for i, l := range cum {
		d := int(l / total * float64(disks))
		if d >= disks {
			d = disks - 1
		}
		labels[i] = d
	}
	return labels, nil
}

// ShapeProfile returns the per-disk mean and population standard deviation
// of the displacement magnitudes grouped by their disk labels. Disks with no
// points yield 0 for both.
func ShapeProfile(offsets []float64, labels []int, disks int) (mean, std []float64, err error) {
	if disks < 1 {
		return nil, nil, ErrBadDiskCount
	}
	if len(offsets) != len(labels) {
		return nil, nil, ErrLengthMismatch
	}

	buckets := make([][]float64, disks)
	for i, l := range labels {
		if l < 0 || l >= disks {
			return nil, nil, ErrLabelRange
		}
		buckets[l] = append(buckets[l], offsets[i])
	}

	mean = make([]float64, disks)
	std = make([]float64, disks)
	for d, b := range buckets {
		if len(b) == 0 {
			continue
		}
		mean[d] = stat.Mean(b, nil)
		std[d] = stat.PopStdDev(b, nil)
	}
	return mean, std, nil
}
