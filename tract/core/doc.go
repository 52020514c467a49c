// Package core provides scalar and array primitives shared across the
// module: clamping, tolerant comparison, sorted insertion search, and
// inclusive prefix sums.
//
// The array functions follow the unchecked-kernel contract used throughout
// this module: output buffers are caller-allocated and pre-sized, inputs are
// not validated, and no allocation happens inside a call. They are safe to
// call concurrently as long as callers do not share output buffers.
package core
