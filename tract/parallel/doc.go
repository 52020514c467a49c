// Package parallel provides the module's shared-nothing threading helpers:
// a parallel range loop with a process-wide worker-count knob, and a small
// mutual-exclusion lock with a non-blocking acquire.
//
// The worker knob and loop replace the foreign thread-pool binding the
// original numeric code relied on; the lock covers the same capability
// surface (blocking acquire, release, try-acquire) directly atop sync.Mutex.
package parallel
