package sparsemx

// cellIndex turns a rowMap plus a column offset (relative to the owning
// inner bound's Lb) into a flat-buffer index, or reports the read as
// falling outside the live geometry (the recurrence's boundary
// condition, handled by returning the semiring zero — not an error).
func (mx *Matrix) cellIndex(rm rowMap, colOffset int, s State) (int, bool) {
	if !rm.present || colOffset < rm.lo || colOffset >= rm.hi {
		return 0, false
	}
	return (rm.offset+colOffset)*int(numStates) + int(s), true
}

// Cur reads state s at (inner bound i's row, Lb+colOffset).
func (mx *Matrix) Cur(i, colOffset int, s State) float64 {
	idx, ok := mx.cellIndex(mx.imapCur[i], colOffset, s)
	if !ok {
		return mx.zero
	}
	return mx.data[idx]
}

// SetCur writes state s at (inner bound i's row, Lb+colOffset). Any
// colOffset inside the containing outer bound is written, halo columns
// included; writes outside the outer bound silently no-op. Keeping writes
// within the inner bound's own live range (colOffset in [0, width)) is
// the caller's job (package fwdback ranges colOffset itself).
func (mx *Matrix) SetCur(i, colOffset int, s State, v float64) {
	idx, ok := mx.cellIndex(mx.imapCur[i], colOffset, s)
	if !ok {
		return
	}
	mx.data[idx] = v
}

// Prev reads state s at (row above inner bound i, Lb+colOffset).
func (mx *Matrix) Prev(i, colOffset int, s State) float64 {
	idx, ok := mx.cellIndex(mx.imapPrv[i], colOffset, s)
	if !ok {
		return mx.zero
	}
	return mx.data[idx]
}

// Next reads state s at (row below inner bound i, Lb+colOffset).
func (mx *Matrix) Next(i, colOffset int, s State) float64 {
	idx, ok := mx.cellIndex(mx.imapNxt[i], colOffset, s)
	if !ok {
		return mx.zero
	}
	return mx.data[idx]
}

// RowBounds returns the slice indices [begin, end) into Inner.All()
// covering row q, walking the secondary row index built by
// edgebound.Index (amortised O(1) beyond the indexing pass itself).
func (mx *Matrix) RowBounds(q int) (begin, end int) {
	b, e, err := mx.Inner.FindRowRange(q)
	if err != nil {
		return 0, 0
	}
	return b, e
}

// Special reads special state s on row q.
func (mx *Matrix) Special(q, s int) float64 { return mx.special[q][s] }

// SetSpecial writes special state s on row q.
func (mx *Matrix) SetSpecial(q, s int, v float64) { mx.special[q][s] = v }

// Stats reports cell-accounting statistics: how many cells the banded
// matrix actually holds against the full (Q+1)x(T+1) rectangle it
// stands in for.
type Stats struct {
	CloudCells     int
	TotalCells     int
	PercentCells   float64
}

// ComputeStats derives Stats from the inner edgebounds against the full
// (Q+1) x (T+1) embedding rectangle.
func (mx *Matrix) ComputeStats() Stats {
	cloud := mx.Inner.CountCells()
	total := (mx.Q + 1) * (mx.T + 1)
	pct := 0.0
	if total > 0 {
		pct = 100 * float64(cloud) / float64(total)
	}
	return Stats{CloudCells: cloud, TotalCells: total, PercentCells: pct}
}
