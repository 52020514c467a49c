package kernels

// This file imports the implementation packages to trigger their init()
// registrations with the global registry. All variants are pure Go, so the
// same set applies on every architecture.

import (
	// Registry package
	_ "github.com/cwbudde/algo-tract/internal/kernels/registry"

	// Straight-loop baseline (priority 0)
	_ "github.com/cwbudde/algo-tract/internal/kernels/arch/generic"

	// 4x unrolled variant (priority 10)
	_ "github.com/cwbudde/algo-tract/internal/kernels/arch/unrolled"
)
