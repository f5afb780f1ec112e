package sparsemx

import "github.com/halvardsen/cloudhmm/edgebound"

// Build constructs a sparse matrix over inner (already sorted, merged and
// indexed — the output of edgebound.Reorient) using zero as the additive
// identity of whichever semiring the caller intends to run (logspace.Log
// or logspace.Normal's Zero). Returns ErrEmptyInner if inner has no live
// cells, or a *GeometryError if a required outer bound is missing (a bug
// in cloud search, not a malformed input).
func Build(inner *edgebound.Edgebounds, zero float64) (*Matrix, error) {
	if inner.Len() == 0 || inner.CountCells() == 0 {
		return nil, ErrEmptyInner
	}

	outer := inner.Pad()

	base, total := prefixSumOffsets(outer)
	data := make([]float64, total*int(numStates))
	for i := range data {
		data[i] = zero
	}

	mx := &Matrix{
		Q: inner.Q, T: inner.T,
		Inner: inner, Outer: outer,
		data: data, zero: zero,
		omapCur: base,
		special: make([][numSpecialStates]float64, inner.Q+1),
	}
	for q := range mx.special {
		for s := range mx.special[q] {
			mx.special[q][s] = zero
		}
	}

	n := inner.Len()
	mx.imapPrv = make([]rowMap, n)
	mx.imapCur = make([]rowMap, n)
	mx.imapNxt = make([]rowMap, n)

	for i, b := range inner.All() {
		rm, err := resolveRowMap(outer, base, b.RowID-1, b, inner.Q)
		if err != nil {
			return nil, err
		}
		mx.imapPrv[i] = rm

		rm, err = resolveRowMap(outer, base, b.RowID, b, inner.Q)
		if err != nil {
			return nil, err
		}
		mx.imapCur[i] = rm

		rm, err = resolveRowMap(outer, base, b.RowID+1, b, inner.Q)
		if err != nil {
			return nil, err
		}
		mx.imapNxt[i] = rm
	}

	return mx, nil
}

// prefixSumOffsets computes, for each outer bound in order, its starting
// cell offset in the flat buffer, and returns the total cell count.
func prefixSumOffsets(outer *edgebound.Edgebounds) ([]int, int) {
	base := make([]int, outer.Len())
	cum := 0
	for i, b := range outer.All() {
		base[i] = cum
		cum += b.Width()
	}
	return base, cum
}

// resolveRowMap finds the outer bound on `row` that contains inner
// bound b's first column, and derives the rowMap used by Matrix's
// accessors. If row is outside [0, maxQ] it returns a not-present rowMap
// (valid: the recurrence boundary, not a bug). If row is inside the
// embedding but no containing outer bound exists, that is the
// InvalidGeometry condition a *GeometryError reports.
func resolveRowMap(outer *edgebound.Edgebounds, base []int, row int, b edgebound.Bound, maxQ int) (rowMap, error) {
	if row < 0 || row > maxQ {
		return rowMap{present: false}, nil
	}

	begin, end, err := outer.FindRowRange(row)
	if err != nil || begin == end {
		return rowMap{}, &GeometryError{Row: row, Col: b.Lb, Reason: "missing required outer bound"}
	}

	bounds := outer.All()
	for idx := begin; idx < end; idx++ {
		ob := bounds[idx]
		if ob.Lb <= b.Lb && b.Lb < ob.Rb {
			offset := base[idx] + (b.Lb - ob.Lb)
			return rowMap{
				present: true,
				offset:  offset,
				lo:      ob.Lb - b.Lb,
				hi:      ob.Rb - b.Lb,
			}, nil
		}
	}
	return rowMap{}, &GeometryError{Row: row, Col: b.Lb, Reason: "containing outer bound not found"}
}
