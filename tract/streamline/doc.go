// Package streamline provides arc-length operations over streamlines.
//
// A streamline is a 3D polyline stored as a flattened xyz buffer: point i
// occupies s[3i:3i+3] and the point count is len(s)/3. The buffer layout
// matches the rest of the module (geom, dist, field).
//
// The exported entry points validate their inputs and return sentinel
// errors; the per-segment helpers follow the module's unchecked-kernel
// contract.
package streamline
