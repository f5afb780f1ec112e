// Package edgebound implements the ordered per-row/per-antidiagonal
// column-interval sets ("edgebounds") that describe which cells of the
// (Q+1) x (T+1) DP lattice are live.
//
// An Edgebounds value is, after Sort+Merge+Index, a sorted, non-
// overlapping sequence of Bound{RowID, Lb, Rb} values plus a secondary
// index (idsIdx) giving O(1) row lookup. Cloud search (package cloud)
// produces two antidiagonal-indexed Edgebounds; Union and Reorient turn
// them into the single row-indexed set the sparse matrix (package
// sparsemx) is built from.
//
// The ordered, reusable, capacity-preserving slice discipline mirrors an
// adjacency-list's bookkeeping (sorted neighbour lists with a position
// index) and a matrix builder's pattern of validating shape before
// committing data.
package edgebound
