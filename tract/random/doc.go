// Package random provides uniform pseudo-random values and point sampling
// for test data generation and randomized coloring.
//
// The generator is the standard library's math/rand source: package-level
// functions draw from the process-wide source (seeded per process by the
// runtime), and [Source] wraps an explicitly seeded rand.Rand for
// deterministic sequences. Neither is cryptographically secure.
//
// A Source is not safe for concurrent use; the package-level functions are.
package random
