// Package dist provides bundle distances between streamlines.
//
// The minimum average direct-flip (MDF) distance compares two streamlines
// with the same number of points, taking the smaller of the direct and the
// reversed point pairing so that orientation does not matter. Matrix builds
// the dense all-pairs distance table between two bundles, parallelized
// across rows.
package dist
