package edgebound

import "sort"

// Sort orders bounds by RowID ascending, then Lb ascending within a row.
// After Sort+Merge+Index, bounds are sorted and no two bounds in the
// same row overlap or abut.
func (e *Edgebounds) Sort() {
	sort.Slice(e.bounds, func(i, j int) bool {
		if e.bounds[i].RowID != e.bounds[j].RowID {
			return e.bounds[i].RowID < e.bounds[j].RowID
		}
		return e.bounds[i].Lb < e.bounds[j].Lb
	})
	e.sorted = true
	e.indexed = false
}

// Merge coalesces touching or overlapping bounds within a row. Sort must
// have been called first (or is called here if stale).
func (e *Edgebounds) Merge() {
	if !e.sorted {
		e.Sort()
	}
	if len(e.bounds) == 0 {
		return
	}

	merged := e.bounds[:1]
	for _, b := range e.bounds[1:] {
		last := &merged[len(merged)-1]
		if b.RowID == last.RowID && b.Lb <= last.Rb {
			if b.Rb > last.Rb {
				last.Rb = b.Rb
			}
			continue
		}
		merged = append(merged, b)
	}
	e.bounds = merged
	e.indexed = false
}

// Index builds idsIdx, the O(1) row-lookup table, over the current
// (assumed sorted) bound list. The valid row range is [0, Q] for
// row-indexed sets and [0, Q+T] for antidiagonal-indexed sets; the table
// keeps one extra slot past that range, so FindRowRange treats row Q+1
// (Q+T+1) as an empty row rather than an out-of-range one.
func (e *Edgebounds) Index() {
	maxRow := e.Q
	if e.Orient == AntiDiagIndexed {
		maxRow = e.Q + e.T
	}
	idx := make([]int, maxRow+2)
	for i := range idx {
		idx[i] = -1
	}
	for i, b := range e.bounds {
		if idx[b.RowID] == -1 {
			idx[b.RowID] = i
		}
	}
	e.idsIdx = idx
	e.indexed = true
}

// FindRowRange returns the half-open [begin, end) slice range within
// All() covering row, or ErrNotIndexed / ErrRowOutOfRange.
func (e *Edgebounds) FindRowRange(row int) (begin, end int, err error) {
	if !e.indexed {
		return 0, 0, ErrNotIndexed
	}
	if row < 0 || row >= len(e.idsIdx) {
		return 0, 0, ErrRowOutOfRange
	}
	begin = e.idsIdx[row]
	if begin == -1 {
		return 0, 0, nil // no bounds on this row; empty range, not an error
	}
	end = begin + 1
	for end < len(e.bounds) && e.bounds[end].RowID == row {
		end++
	}
	return begin, end, nil
}

// CountCells sums Width() over every bound, the total number of live
// cells described by e.
func (e *Edgebounds) CountCells() int {
	total := 0
	for _, b := range e.bounds {
		total += b.Width()
	}
	return total
}

// Union returns a new Edgebounds containing the sorted, merged
// concatenation of a and b, which must share the same (Q, T, Orient).
func Union(a, b *Edgebounds) *Edgebounds {
	out := New(a.Q, a.T, a.Orient, a.Len()+b.Len())
	out.bounds = append(out.bounds, a.bounds...)
	out.bounds = append(out.bounds, b.bounds...)
	out.Sort()
	out.Merge()
	return out
}

// Reorient converts an antidiagonal-indexed Edgebounds (RowID = d,
// columns k in [Lb, Rb) the antidiagonal offset) into a row-indexed one:
// each cell (d, k) becomes (q=k, t=d-k). The result is sorted, merged and
// indexed, ready to serve as edg_inner for sparse matrix construction.
func (e *Edgebounds) Reorient() *Edgebounds {
	out := New(e.Q, e.T, RowIndexed, e.CountCells())
	for _, b := range e.bounds {
		for k := b.Lb; k < b.Rb; k++ {
			q := k
			t := b.RowID - k
			if q < 0 || q > e.Q || t < 0 || t > e.T {
				continue
			}
			_ = out.Push(Bound{RowID: q, Lb: t, Rb: t + 1})
		}
	}
	out.Sort()
	out.Merge()
	out.Index()
	return out
}

// Pad derives the "outer" edgebounds from a row-indexed "inner" set:
// every inner bound {q, lb, rb} grows three outer bounds, {q-1, lb-1,
// rb+1}, {q, lb-1, rb+1}, {q+1, lb-1, rb+1}, clipped to the embedding
// rectangle, so that every cell the Forward and Backward recurrences
// read (q-1,t-1), (q-1,t), (q,t-1), (q+1,t+1), (q+1,t), (q,t+1) is
// guaranteed present.
func (e *Edgebounds) Pad() *Edgebounds {
	out := New(e.Q, e.T, RowIndexed, e.Len()*3)
	for _, b := range e.bounds {
		lb, rb := b.Lb-1, b.Rb+1
		if lb < 0 {
			lb = 0
		}
		if rb > e.T+1 {
			rb = e.T + 1
		}
		if lb >= rb {
			continue
		}
		for _, row := range [...]int{b.RowID - 1, b.RowID, b.RowID + 1} {
			if row < 0 || row > e.Q {
				continue
			}
			_ = out.Push(Bound{RowID: row, Lb: lb, Rb: rb})
		}
	}
	out.Sort()
	out.Merge()
	out.Index()
	return out
}
