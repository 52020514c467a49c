package parallel

import "sync"

// Lock is a mutual-exclusion lock with a non-blocking acquire. The zero
// value is unlocked and ready for use; no init or destroy step exists.
//
// Lock is not reentrant: a goroutine acquiring a lock it already holds
// deadlocks, as with sync.Mutex.
type Lock struct {
	mu sync.Mutex
}

// Acquire blocks the calling goroutine until the lock is held.
func (l *Lock) Acquire() {
	l.mu.Lock()
}

// Release unlocks the lock. It must only be called while the lock is held.
func (l *Lock) Release() {
	l.mu.Unlock()
}

// TryAcquire attempts a non-blocking acquire and reports whether the lock
// was obtained.
func (l *Lock) TryAcquire() bool {
	return l.mu.TryLock()
}
