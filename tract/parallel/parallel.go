package parallel

import (
	"sync"

	gopar "github.com/dgravesa/go-parallel/parallel"
)

var (
	workersMutex sync.RWMutex
	workers      int // <= 0 means library default (GOMAXPROCS-driven)
)

// SetWorkers sets the number of goroutines used by For. n <= 0 restores the
// default, which tracks GOMAXPROCS.
func SetWorkers(n int) {
	workersMutex.Lock()
	defer workersMutex.Unlock()
	workers = n
}

// Workers returns the configured worker count, or 0 when the default is in
// effect.
func Workers() int {
	workersMutex.RLock()
	defer workersMutex.RUnlock()
	if workers <= 0 {
		return 0
	}
	return workers
}

// For runs body(i) for every i in [0, n) across the configured number of
// goroutines and returns when all iterations have completed.
//
// Iterations must not share mutable state without synchronization; writing
// to disjoint slices or indices is safe.
func For(n int, body func(i int)) {
	if n <= 0 {
		return
	}

	w := Workers()
	if w == 1 {
		for i := 0; i < n; i++ {
			body(i)
		}
		return
	}

	if w > 0 {
		gopar.WithNumGoroutines(w).For(n, func(i, _ int) {
			body(i)
		})
		return
	}

	gopar.For(n, func(i, _ int) {
		body(i)
	})
}
