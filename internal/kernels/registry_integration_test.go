package kernels

import (
	"testing"

	"github.com/cwbudde/algo-tract/internal/cpu"
	"github.com/cwbudde/algo-tract/internal/kernels/registry"
)

// TestRegisteredVariants verifies that importing the kernels package wires
// both pure Go variants into the global registry.
func TestRegisteredVariants(t *testing.T) {
	names := map[string]bool{}
	for _, e := range registry.Global.ListEntries() {
		names[e.Name] = true
	}

	for _, want := range []string{"generic", "unrolled"} {
		if !names[want] {
			t.Fatalf("registry missing %q variant (have %v)", want, names)
		}
	}
}

// TestUnrolledPreferred verifies the unrolled variant wins the priority race
// on any architecture, since both variants are portable.
func TestUnrolledPreferred(t *testing.T) {
	entry := registry.Global.Lookup(cpu.Features{})
	if entry == nil {
		t.Fatal("Lookup() = nil, want entry")
	}
	if entry.Name != "unrolled" {
		t.Fatalf("Lookup().Name = %q, want %q", entry.Name, "unrolled")
	}
}
