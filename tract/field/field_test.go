package field

import (
	"errors"
	"math"
	"testing"
)

func TestDisplacements(t *testing.T) {
	aligned := []float64{0, 0, 0, 1, 1, 1}
	deformed := []float64{1, 0, 0, 1, 3, 1}
	dst := make([]float64, 6)

	Displacements(dst, deformed, aligned)

	want := []float64{1, 0, 0, 0, 2, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("Displacements()[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

// TestDisplacementsAntisymmetric pins the sign convention: swapping the
// deformed and aligned sets negates the field, which rules out any
// sum-based formulation.
func TestDisplacementsAntisymmetric(t *testing.T) {
	deformed := []float64{2, -1, 3, 0.5, 4, -2}
	aligned := []float64{1, 1, 1, 1, 1, 1}

	fwd := make([]float64, 6)
	rev := make([]float64, 6)
	Displacements(fwd, deformed, aligned)
	Displacements(rev, aligned, deformed)

	want := []float64{1, -2, 2, -0.5, 3, -3}
	for i := range want {
		if fwd[i] != want[i] {
			t.Fatalf("Displacements()[%d] = %v, want %v", i, fwd[i], want[i])
		}
		if rev[i] != -fwd[i] {
			t.Fatalf("reversed field[%d] = %v, want %v", i, rev[i], -fwd[i])
		}
	}
}

func TestCompute(t *testing.T) {
	aligned := []float64{
		0, 0, 0,
		1, 0, 0,
		2, 0, 0,
	}
	deformed := []float64{
		0, 3, 4,
		1, 0, 2,
		2, 0, 0,
	}

	offsets, directions, err := Compute(deformed, aligned)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	wantOffsets := []float64{5, 2, 0}
	for i := range wantOffsets {
		if math.Abs(offsets[i]-wantOffsets[i]) > 1e-12 {
			t.Fatalf("offsets[%d] = %v, want %v", i, offsets[i], wantOffsets[i])
		}
	}

	// First displacement (0,3,4) normalizes to (0, 0.6, 0.8).
	if math.Abs(directions[1]-0.6) > 1e-12 || math.Abs(directions[2]-0.8) > 1e-12 {
		t.Fatalf("directions[0:3] = %v, want [0 0.6 0.8]", directions[0:3])
	}

	// Second displacement points along +z.
	if math.Abs(directions[5]-1) > 1e-12 {
		t.Fatalf("directions[3:6] = %v, want [0 0 1]", directions[3:6])
	}

	// Unit norm for every moved point.
	for p := 0; p < 2; p++ {
		n := math.Sqrt(directions[3*p]*directions[3*p] +
			directions[3*p+1]*directions[3*p+1] +
			directions[3*p+2]*directions[3*p+2])
		if math.Abs(n-1) > 1e-12 {
			t.Fatalf("direction %d norm = %v, want 1", p, n)
		}
	}

	// Zero displacement yields non-finite direction components.
	for c := 6; c < 9; c++ {
		if !math.IsNaN(directions[c]) && !math.IsInf(directions[c], 0) {
			t.Fatalf("directions[%d] = %v, want NaN or Inf for zero offset", c, directions[c])
		}
	}
}

func TestComputeErrors(t *testing.T) {
	tests := []struct {
		name              string
		deformed, aligned []float64
		want              error
	}{
		{name: "not flattened", deformed: []float64{1, 2}, aligned: []float64{1, 2}, want: ErrNotFlattened},
		{name: "mismatch", deformed: []float64{1, 2, 3}, aligned: []float64{1, 2, 3, 4, 5, 6}, want: ErrLengthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Compute(tt.deformed, tt.aligned)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Compute() error = %v, want %v", err, tt.want)
			}
		})
	}
}
