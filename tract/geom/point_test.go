package geom

import (
	"math"
	"testing"
)

func TestCopyPointNoAliasing(t *testing.T) {
	src := []float64{1, 2, 3}
	dst := make([]float64, 3)
	CopyPoint(dst, src)

	// Mutating the source must not affect the copy.
	src[0], src[1], src[2] = 9, 9, 9

	want := []float64{1, 2, 3}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestScalePoint(t *testing.T) {
	tests := []struct {
		name   string
		point  []float64
		scalar float64
		want   []float64
	}{
		{name: "double", point: []float64{1, -2, 3}, scalar: 2, want: []float64{2, -4, 6}},
		{name: "zero", point: []float64{1, 2, 3}, scalar: 0, want: []float64{0, 0, 0}},
		{name: "identity", point: []float64{0.5, 0.25, -1}, scalar: 1, want: []float64{0.5, 0.25, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := append([]float64(nil), tt.point...)
			ScalePoint(p, tt.scalar)
			for i := range tt.want {
				if p[i] != tt.want[i] {
					t.Fatalf("ScalePoint()[%d] = %v, want %v", i, p[i], tt.want[i])
				}
			}
		})
	}
}

func TestCross(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want []float64
	}{
		{name: "x cross y", a: []float64{1, 0, 0}, b: []float64{0, 1, 0}, want: []float64{0, 0, 1}},
		{name: "y cross z", a: []float64{0, 1, 0}, b: []float64{0, 0, 1}, want: []float64{1, 0, 0}},
		{name: "anti-commutative", a: []float64{0, 1, 0}, b: []float64{1, 0, 0}, want: []float64{0, 0, -1}},
		{name: "parallel", a: []float64{2, 2, 2}, b: []float64{1, 1, 1}, want: []float64{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]float64, 3)
			Cross(out, tt.a, tt.b)
			for i := range tt.want {
				if out[i] != tt.want[i] {
					t.Fatalf("Cross()[%d] = %v, want %v", i, out[i], tt.want[i])
				}
			}
		})
	}
}

// TestCrossOrthogonal checks that the cross product is orthogonal to both
// inputs for non-trivial vectors.
func TestCrossOrthogonal(t *testing.T) {
	a := []float64{1.5, -2.25, 0.75}
	b := []float64{-0.5, 3, 2}
	out := make([]float64, 3)
	Cross(out, a, b)

	if d := Dot(out, a); math.Abs(d) > 1e-12 {
		t.Fatalf("Dot(cross, a) = %v, want ~0", d)
	}
	if d := Dot(out, b); math.Abs(d) > 1e-12 {
		t.Fatalf("Dot(cross, b) = %v, want ~0", d)
	}
}
