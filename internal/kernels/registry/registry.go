// Package registry provides the implementation registry for streamline kernels.
//
// Multiple implementation variants (generic, unrolled, future SIMD) coexist;
// the best variant for the current CPU is selected at runtime. Variants
// register themselves via init() functions in their arch packages, and the
// kernels package resolves the winning entry from detected CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-tract/internal/cpu"
)

// OpEntry is a registered implementation variant of the streamline kernels.
//
// Each entry carries typed function pointers for the operations it provides
// at a given SIMD level. Fields left nil are treated as not implemented by
// that variant.
type OpEntry struct {
	// Name is a human-readable identifier ("generic", "unrolled", "avx2", ...).
	Name string

	// SIMDLevel is the instruction set this variant requires.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when several compatible variants
	// exist; higher wins. Suggested: generic 0, unrolled 10, SIMD 20+.
	Priority int

	// PointNorms writes per-point Euclidean norms of a flattened xyz buffer:
	// dst[i] = sqrt(pts[3i]^2 + pts[3i+1]^2 + pts[3i+2]^2).
	PointNorms func(dst, pts []float64)

	// DistanceSum returns the sum of pairwise point distances between two
	// flattened xyz buffers: sum_i ||a_i - b_i||.
	DistanceSum func(a, b []float64) float64

	// DistanceSumFlipped is DistanceSum with the second buffer traversed in
	// reverse point order: sum_i ||a_i - b_{n-1-i}||.
	DistanceSumFlipped func(a, b []float64) float64
}

// OpRegistry manages registration and lookup of kernel variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default registry used by all kernel operations.
var Global = &OpRegistry{}

// Register adds an implementation variant to the registry.
//
// Typically called from init() in arch packages. Safe for concurrent use, but
// all registrations should complete before the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry compatible with the given CPU
// features, or nil if none is registered (which cannot happen while the
// generic fallback registers itself).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority sorts entries by priority, descending.
// Must be called with r.mu held for writing. Insertion sort; the registry
// holds a handful of entries.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries sorted by priority.
// Intended for testing and the tractinfo command.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries. Intended for testing only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
