package kernels

import (
	"sync"

	"github.com/cwbudde/algo-tract/internal/cpu"
	"github.com/cwbudde/algo-tract/internal/kernels/registry"
)

var (
	pointNormsImpl     func(dst, pts []float64)
	pointNormsInitOnce sync.Once
)

func initPointNormsOperation() {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("kernels: no pointnorms implementation registered")
	}
	if entry.PointNorms == nil {
		panic("kernels: selected implementation missing pointnorms operation")
	}
	pointNormsImpl = entry.PointNorms
}

// PointNorms writes per-point Euclidean norms of the flattened xyz buffer pts
// into dst: dst[i] = sqrt(pts[3i]^2 + pts[3i+1]^2 + pts[3i+2]^2).
// Processes min(len(dst), len(pts)/3) points.
func PointNorms(dst, pts []float64) {
	pointNormsInitOnce.Do(initPointNormsOperation)
	pointNormsImpl(dst, pts)
}
