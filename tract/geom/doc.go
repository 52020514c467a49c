// Package geom provides point and vector primitives over caller-owned
// float64 buffers.
//
// A 3D point is three consecutive values in a flattened xyz buffer. Vector
// functions accept arbitrary-length slices. Per the module-wide contract,
// preconditions (buffer sizes, equal lengths, non-zero norms) are the
// caller's responsibility and are not checked.
package geom
