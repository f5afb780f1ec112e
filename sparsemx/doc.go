// Package sparsemx implements the sparse three-state DP matrix: a flat
// float64 buffer addressed through two coupled edgebound indices
// (inner = the active cloud, outer = inner padded by a one-cell halo)
// so the bounded Forward/Backward recurrence (package fwdback) never
// has to bounds-check a read against the full (Q+1) x (T+1) rectangle.
//
// The construction strategy — validate shape, allocate one flat
// row-major buffer, and derive typed accessors over it instead of raw
// pointer arithmetic — follows a dense-matrix builder's approach: a
// single backing slice plus small integer offset tables, with every
// accessor going through a named method rather than an inlined index
// expression.
package sparsemx
