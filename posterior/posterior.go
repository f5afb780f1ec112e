package posterior

import (
	"math"

	"github.com/halvardsen/cloudhmm/sparsemx"
)

// Compute derives a normal-space posterior matrix from a Forward matrix
// fwd and a Backward matrix bwd built over the same sparse geometry,
// given the overall Forward score in nats. For each live cell:
//
//	raw(M) = exp(fwd.M + bwd.M - overall)
//	raw(I) = exp(fwd.I + bwd.I - overall)
//
// D is left at zero (delete-state occupancy is not part of the aligned
// residue trace). Each
// row is then renormalised so its M/I mass plus the N/J/C flanking mass
// sums to 1, correcting the drift a banded Forward/Backward pair
// accumulates relative to the unbounded algorithm.
func Compute(fwd, bwd *sparsemx.Matrix, overall float64) (*sparsemx.Matrix, error) {
	if fwd.Q != bwd.Q || fwd.T != bwd.T || fwd.Inner.Len() != bwd.Inner.Len() {
		return nil, ErrGeometryMismatch
	}

	out, err := sparsemx.Build(fwd.Inner, 0.0)
	if err != nil {
		return nil, err
	}

	for q := 0; q <= fwd.Q; q++ {
		n := math.Exp(fwd.Special(q, sparsemx.SN) + bwd.Special(q, sparsemx.SN) - overall)
		j := math.Exp(fwd.Special(q, sparsemx.SJ) + bwd.Special(q, sparsemx.SJ) - overall)
		c := math.Exp(fwd.Special(q, sparsemx.SC) + bwd.Special(q, sparsemx.SC) - overall)
		rowSum := n + j + c

		begin, end := fwd.RowBounds(q)
		mRaw := make([]float64, 0, end-begin)
		iRaw := make([]float64, 0, end-begin)
		for idx := begin; idx < end; idx++ {
			bnd := fwd.Inner.At(idx)
			for co := 0; co < bnd.Width(); co++ {
				m := math.Exp(fwd.Cur(idx, co, sparsemx.M) + bwd.Cur(idx, co, sparsemx.M) - overall)
				i := math.Exp(fwd.Cur(idx, co, sparsemx.I) + bwd.Cur(idx, co, sparsemx.I) - overall)
				mRaw = append(mRaw, m)
				iRaw = append(iRaw, i)
				rowSum += m + i
			}
		}

		if rowSum <= 0 {
			continue
		}

		out.SetSpecial(q, sparsemx.SN, n/rowSum)
		out.SetSpecial(q, sparsemx.SJ, j/rowSum)
		out.SetSpecial(q, sparsemx.SC, c/rowSum)

		k := 0
		for idx := begin; idx < end; idx++ {
			bnd := fwd.Inner.At(idx)
			for co := 0; co < bnd.Width(); co++ {
				out.SetCur(idx, co, sparsemx.M, mRaw[k]/rowSum)
				out.SetCur(idx, co, sparsemx.I, iRaw[k]/rowSum)
				k++
			}
		}
	}

	return out, nil
}
