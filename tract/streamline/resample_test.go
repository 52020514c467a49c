package streamline

import (
	"errors"
	"math"
	"testing"
)

func TestResampleStraightLine(t *testing.T) {
	s := line(0, 10)
	out, err := Resample(s, 5)
	if err != nil {
		t.Fatalf("Resample() error: %v", err)
	}

	wantX := []float64{0, 2.5, 5, 7.5, 10}
	for i, x := range wantX {
		if math.Abs(out[3*i]-x) > 1e-12 {
			t.Fatalf("point %d x = %v, want %v", i, out[3*i], x)
		}
		if out[3*i+1] != 0 || out[3*i+2] != 0 {
			t.Fatalf("point %d left the x axis: %v", i, out[3*i:3*i+3])
		}
	}
}

func TestResamplePreservesEndpoints(t *testing.T) {
	s := []float64{
		1, 2, 3,
		4, 6, 3,
		-1, 0, 5,
	}
	out, err := Resample(s, 7)
	if err != nil {
		t.Fatalf("Resample() error: %v", err)
	}

	for i := 0; i < 3; i++ {
		if out[i] != s[i] {
			t.Fatalf("first point component %d = %v, want %v", i, out[i], s[i])
		}
		if out[18+i] != s[6+i] {
			t.Fatalf("last point component %d = %v, want %v", i, out[18+i], s[6+i])
		}
	}
}

func TestResamplePreservesLengthOfStraightPolyline(t *testing.T) {
	// Resampling cannot lengthen a polyline; for straight geometry the arc
	// length must be preserved exactly (up to float tolerance).
	s := line(0, 1, 2, 3, 4, 10)
	out, err := Resample(s, 23)
	if err != nil {
		t.Fatalf("Resample() error: %v", err)
	}
	if got, want := Length(out), Length(s); math.Abs(got-want) > 1e-9 {
		t.Fatalf("resampled length = %v, want %v", got, want)
	}
}

func TestResampleUnevenSpacingBecomesEven(t *testing.T) {
	s := line(0, 0.1, 9, 10)
	out, err := Resample(s, 11)
	if err != nil {
		t.Fatalf("Resample() error: %v", err)
	}

	seg := make([]float64, 10)
	SegmentLengths(seg, out)
	for i, l := range seg {
		if math.Abs(l-1) > 1e-9 {
			t.Fatalf("segment %d length = %v, want 1", i, l)
		}
	}
}

func TestResamplePointsStayOnPolyline(t *testing.T) {
	// Awkward float segment lengths make the interpolation ratio land right
	// on segment boundaries; the output must never overshoot a segment.
	s := line(0, 0.1, 0.1+0.2, math.Pi, 10)
	out, err := Resample(s, 17)
	if err != nil {
		t.Fatalf("Resample() error: %v", err)
	}

	prev := math.Inf(-1)
	for i := 0; i < 17; i++ {
		x := out[3*i]
		if x < 0 || x > 10 {
			t.Fatalf("point %d x = %v, want within [0, 10]", i, x)
		}
		if x < prev {
			t.Fatalf("point %d x = %v decreased from %v", i, x, prev)
		}
		prev = x
	}
}

func TestResampleDegenerate(t *testing.T) {
	// All points coincide: zero total length.
	s := []float64{2, 2, 2, 2, 2, 2, 2, 2, 2}
	out, err := Resample(s, 4)
	if err != nil {
		t.Fatalf("Resample() error: %v", err)
	}
	for i := 0; i < 4; i++ {
		for c := 0; c < 3; c++ {
			if out[3*i+c] != 2 {
				t.Fatalf("point %d = %v, want [2 2 2]", i, out[3*i:3*i+3])
			}
		}
	}
}

func TestResampleErrors(t *testing.T) {
	tests := []struct {
		name string
		s    []float64
		n    int
		want error
	}{
		{name: "not flattened", s: []float64{1, 2}, n: 4, want: ErrNotFlattened},
		{name: "single point", s: []float64{1, 2, 3}, n: 4, want: ErrTooFewPoints},
		{name: "empty", s: nil, n: 4, want: ErrTooFewPoints},
		{name: "bad count", s: line(0, 1), n: 1, want: ErrBadPointCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resample(tt.s, tt.n)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Resample() error = %v, want %v", err, tt.want)
			}
		})
	}
}
