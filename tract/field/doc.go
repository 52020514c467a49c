// Package field computes displacement fields between two point sets, such
// as an affinely aligned bundle and its nonlinearly deformed counterpart.
//
// Buffers are flattened xyz; the low-level functions are unchecked kernels,
// and Compute is the validated, allocating entry point.
package field
