// Command tractinfo prints the detected CPU features and the registered
// streamline kernel variants, marking the variant selected at runtime.
//
// Usage:
//
//	tractinfo [flags]
//
// Examples:
//
//	tractinfo
//	tractinfo -force-generic
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-tract/internal/cpu"
	_ "github.com/cwbudde/algo-tract/internal/kernels"
	"github.com/cwbudde/algo-tract/internal/kernels/registry"
)

func main() {
	forceGeneric := flag.Bool("force-generic", false, "disable SIMD-gated kernels and show the resulting selection")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tractinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints detected CPU features and registered kernel variants.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	features := cpu.DetectFeatures()
	if *forceGeneric {
		features.ForceGeneric = true
	}

	printFeatures(features)
	printVariants(features)
}

func printFeatures(f cpu.Features) {
	fmt.Printf("Architecture: %s\n", f.Architecture)
	fmt.Printf("SSE2: %v  AVX2: %v  NEON: %v\n", f.HasSSE2, f.HasAVX2, f.HasNEON)
	if f.ForceGeneric {
		fmt.Println("SIMD-gated kernels disabled (-force-generic)")
	}
	fmt.Println()
}

func printVariants(features cpu.Features) {
	entries := registry.Global.ListEntries()
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no kernel variants registered\n")
		os.Exit(1)
	}

	selected := registry.Global.Lookup(features)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Variant\tSIMD\tPriority\tOps\tSelected\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-------\t----\t--------\t---\t--------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, e := range entries {
		mark := ""
		if selected != nil && e.Name == selected.Name {
			mark = "*"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			e.Name, e.SIMDLevel, e.Priority, opList(e), mark); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func opList(e registry.OpEntry) string {
	ops := ""
	add := func(name string, present bool) {
		if !present {
			return
		}
		if ops != "" {
			ops += ","
		}
		ops += name
	}
	add("pointnorms", e.PointNorms != nil)
	add("distancesum", e.DistanceSum != nil)
	add("distancesumflipped", e.DistanceSumFlipped != nil)
	return ops
}
