// Package posterior combines a bounded Forward and a bounded Backward
// matrix into per-cell posterior decoding probabilities: the chance a
// given (query position, profile position) pair is visited in state M or
// I along the true alignment, normal-space values in [0, 1] renormalised
// per row to correct the small numerical drift a banded Forward/Backward
// pair accumulates relative to an unbounded one.
package posterior
