// Package fwdback computes the bounded Forward and Backward algorithms
// over a sparsemx.Matrix: the same Plan-7 recurrence the unbounded
// algorithm would run over the full (Q+1)x(T+1) rectangle, restricted to
// the cells a prior cloud search decided were worth computing.
//
// The row-by-row sweep with a left-to-right scan across live columns and
// explicit handling of the boundary columns is grounded on a rolling
// dynamic-programming row loop, generalised from a dense single-state
// recurrence to three coupled states plus five special states addressed
// through sparsemx.Matrix.
package fwdback
