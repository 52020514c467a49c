package unrolled

import (
	"github.com/cwbudde/algo-tract/internal/cpu"
	"github.com/cwbudde/algo-tract/internal/kernels/registry"
)

// init registers the 4x unrolled pure Go implementations.
//
// Portable across architectures (SIMDNone), preferred over the straight-loop
// generic variant. SIMD variants slot in above this priority.
//
// Priority: 10.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "unrolled",
		SIMDLevel: cpu.SIMDNone,
		Priority:  10,

		PointNorms:         PointNorms,
		DistanceSum:        DistanceSum,
		DistanceSumFlipped: DistanceSumFlipped,
	})
}
