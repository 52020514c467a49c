// Package kernels provides runtime-dispatched hot loops over flattened xyz
// point buffers (per-point norms, pairwise distance reductions).
//
// Implementation variants register themselves with the registry subpackage;
// the best variant for the detected CPU is bound once per operation via
// sync.Once, so calls after the first have zero dispatch overhead.
//
// All operations follow the unchecked-kernel contract: buffer sizes are the
// caller's responsibility and no validation is performed.
package kernels
