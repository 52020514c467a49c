package kernels

import (
	"sync"

	"github.com/cwbudde/algo-tract/internal/cpu"
	"github.com/cwbudde/algo-tract/internal/kernels/registry"
)

var (
	distanceSumImpl            func(a, b []float64) float64
	distanceSumInitOnce        sync.Once
	distanceSumFlippedImpl     func(a, b []float64) float64
	distanceSumFlippedInitOnce sync.Once
)

func initDistanceSumOperation() {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("kernels: no distancesum implementation registered")
	}
	if entry.DistanceSum == nil {
		panic("kernels: selected implementation missing distancesum operation")
	}
	distanceSumImpl = entry.DistanceSum
}

func initDistanceSumFlippedOperation() {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("kernels: no distancesumflipped implementation registered")
	}
	if entry.DistanceSumFlipped == nil {
		panic("kernels: selected implementation missing distancesumflipped operation")
	}
	distanceSumFlippedImpl = entry.DistanceSumFlipped
}

// DistanceSum returns the sum of pairwise point distances between two
// flattened xyz buffers: sum_i ||a_i - b_i||.
// Processes min(len(a), len(b))/3 points; returns 0 for empty input.
func DistanceSum(a, b []float64) float64 {
	distanceSumInitOnce.Do(initDistanceSumOperation)
	return distanceSumImpl(a, b)
}

// DistanceSumFlipped returns the sum of pairwise point distances with the
// second buffer traversed in reverse point order: sum_i ||a_i - b_{n-1-i}||.
func DistanceSumFlipped(a, b []float64) float64 {
	distanceSumFlippedInitOnce.Do(initDistanceSumFlippedOperation)
	return distanceSumFlippedImpl(a, b)
}
