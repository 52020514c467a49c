package testutil

import (
	"math"
	"math/rand"
)

// StraightLine returns a flattened streamline of points evenly spaced along
// dir, starting at start.
func StraightLine(start, dir [3]float64, points int) []float64 {
	out := make([]float64, 0, 3*points)
	for i := 0; i < points; i++ {
		t := float64(i)
		out = append(out, start[0]+t*dir[0], start[1]+t*dir[1], start[2]+t*dir[2])
	}
	return out
}

// Helix returns a flattened streamline winding around the z axis with the
// given radius and vertical pitch per point.
func Helix(radius, pitch float64, points int) []float64 {
	out := make([]float64, 0, 3*points)
	step := 2 * math.Pi / float64(points)
	for i := 0; i < points; i++ {
		phi := step * float64(i)
		out = append(out, radius*math.Cos(phi), radius*math.Sin(phi), pitch*float64(i))
	}
	return out
}

// RandomWalk returns a flattened streamline built from a seeded random walk
// with the given step size. Reproducible for a fixed seed.
func RandomWalk(seed int64, points int, step float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	return randomWalk(rng, points, step)
}

// RandomBundle returns count random-walk streamlines drawn from a single
// seeded source, each offset from the origin.
func RandomBundle(seed int64, count, points int, step float64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	bundle := make([][]float64, count)
	for i := range bundle {
		s := randomWalk(rng, points, step)
		dx, dy, dz := rng.Float64()*10, rng.Float64()*10, rng.Float64()*10
		for p := 0; p < points; p++ {
			s[3*p] += dx
			s[3*p+1] += dy
			s[3*p+2] += dz
		}
		bundle[i] = s
	}
	return bundle
}

func randomWalk(rng *rand.Rand, points int, step float64) []float64 {
	out := make([]float64, 3*points)
	var x, y, z float64
	for i := 0; i < points; i++ {
		out[3*i], out[3*i+1], out[3*i+2] = x, y, z
		x += (rng.Float64()*2 - 1) * step
		y += (rng.Float64()*2 - 1) * step
		z += (rng.Float64()*2 - 1) * step
	}
	return out
}
