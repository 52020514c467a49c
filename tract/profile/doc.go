// Package profile builds along-bundle shape difference profiles from
// displacement magnitudes.
//
// A streamline is divided into a fixed number of disks by normalized arc
// length; per-disk mean and spread of the displacement magnitudes form the
// profile. Smooth applies Gaussian smoothing to a finished profile in the
// frequency domain.
package profile
