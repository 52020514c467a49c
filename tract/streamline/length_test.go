package streamline

import (
	"math"
	"testing"
)

// line returns a straight streamline along the x axis with the given
// x coordinates.
func line(xs ...float64) []float64 {
	out := make([]float64, 0, 3*len(xs))
	for _, x := range xs {
		out = append(out, x, 0, 0)
	}
	return out
}

func TestSegmentLengths(t *testing.T) {
	s := []float64{
		0, 0, 0,
		3, 4, 0,
		3, 4, 2,
	}
	dst := make([]float64, 2)
	SegmentLengths(dst, s)

	if math.Abs(dst[0]-5) > 1e-12 || math.Abs(dst[1]-2) > 1e-12 {
		t.Fatalf("SegmentLengths() = %v, want [5 2]", dst)
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		name string
		s    []float64
		want float64
	}{
		{name: "empty", s: nil, want: 0},
		{name: "single point", s: []float64{1, 2, 3}, want: 0},
		{name: "straight", s: line(0, 1, 2, 5), want: 5},
		{name: "right angle", s: []float64{0, 0, 0, 3, 0, 0, 3, 4, 0}, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Length(tt.s)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCumulativeLengths(t *testing.T) {
	s := line(0, 1, 3, 6)
	dst := make([]float64, 4)
	CumulativeLengths(dst, s)

	want := []float64{0, 1, 3, 6}
	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-12 {
			t.Fatalf("CumulativeLengths()[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}
