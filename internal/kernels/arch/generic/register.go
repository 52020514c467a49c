package generic

import (
	"github.com/cwbudde/algo-tract/internal/cpu"
	"github.com/cwbudde/algo-tract/internal/kernels/registry"
)

// init registers the generic (pure Go, straight-loop) implementations.
//
// These serve as the baseline fallback and as the reference oracle for the
// other variants.
//
// Priority: 0 (lowest).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		PointNorms:         PointNorms,
		DistanceSum:        DistanceSum,
		DistanceSumFlipped: DistanceSumFlipped,
	})
}
