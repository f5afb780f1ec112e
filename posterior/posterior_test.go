package posterior_test

import (
	"math"
	"testing"

	"github.com/halvardsen/cloudhmm/edgebound"
	"github.com/halvardsen/cloudhmm/fwdback"
	"github.com/halvardsen/cloudhmm/hmm"
	"github.com/halvardsen/cloudhmm/posterior"
	"github.com/halvardsen/cloudhmm/seq"
	"github.com/halvardsen/cloudhmm/sparsemx"
	"github.com/stretchr/testify/assert"
)

func buildProfileAndMatrix(t *testing.T) (*hmm.Profile, *seq.Sequence, *sparsemx.Matrix, *sparsemx.Matrix) {
	p, err := hmm.New(3)
	assert.NoError(t, err)
	logUniform := math.Log(1.0 / float64(seq.NumSymbols))
	logThird := math.Log(1.0 / 3.0)
	for pos := 0; pos <= 3; pos++ {
		for a := 0; a < seq.NumSymbols; a++ {
			if pos >= 1 {
				assert.NoError(t, p.SetMatchEmit(pos, a, logUniform))
			}
			assert.NoError(t, p.SetInsertEmit(pos, a, logUniform))
		}
		assert.NoError(t, p.SetTrans(pos, hmm.MM, logThird))
		assert.NoError(t, p.SetTrans(pos, hmm.MI, logThird))
		assert.NoError(t, p.SetTrans(pos, hmm.MD, logThird))
		assert.NoError(t, p.SetTrans(pos, hmm.IM, math.Log(0.5)))
		assert.NoError(t, p.SetTrans(pos, hmm.II, math.Log(0.5)))
		assert.NoError(t, p.SetTrans(pos, hmm.DM, math.Log(0.5)))
		assert.NoError(t, p.SetTrans(pos, hmm.DD, math.Log(0.5)))
		assert.NoError(t, p.SetTrans(pos, hmm.BM, math.Log(1.0/3.0)))
	}
	assert.NoError(t, p.Reconfigure(3))
	// Reconfigure leaves E untouched; a unihit profile exits E->C with probability 1.
	assert.NoError(t, p.SetSpecial(hmm.SE, hmm.Move, 0))

	query, err := seq.New("q", []byte("ACD"))
	assert.NoError(t, err)

	inner := edgebound.New(query.Len(), p.T, edgebound.RowIndexed, 0)
	for row := 1; row <= query.Len(); row++ {
		assert.NoError(t, inner.Push(edgebound.Bound{RowID: row, Lb: 0, Rb: p.T + 1}))
	}
	inner.Sort()
	inner.Merge()
	inner.Index()

	fwdMx, err := sparsemx.Build(inner, math.Inf(-1))
	assert.NoError(t, err)
	bwdMx, err := sparsemx.Build(inner, math.Inf(-1))
	assert.NoError(t, err)

	return p, query, fwdMx, bwdMx
}

func TestCompute_RowsSumToOne(t *testing.T) {
	p, q, fwdMx, bwdMx := buildProfileAndMatrix(t)

	score, err := fwdback.Forward(p, q, fwdMx)
	assert.NoError(t, err)
	_, err = fwdback.Backward(p, q, bwdMx)
	assert.NoError(t, err)

	post, err := posterior.Compute(fwdMx, bwdMx, score)
	assert.NoError(t, err)

	for row := 0; row <= q.Len(); row++ {
		sum := post.Special(row, sparsemx.SN) + post.Special(row, sparsemx.SJ) + post.Special(row, sparsemx.SC)
		begin, end := post.RowBounds(row)
		for idx := begin; idx < end; idx++ {
			bnd := post.Inner.At(idx)
			for co := 0; co < bnd.Width(); co++ {
				sum += post.Cur(idx, co, sparsemx.M) + post.Cur(idx, co, sparsemx.I)
			}
		}
		if sum > 0 {
			assert.InDelta(t, 1.0, sum, 1e-6)
		}
	}
}

func TestCompute_RejectsGeometryMismatch(t *testing.T) {
	_, _, fwdMx, _ := buildProfileAndMatrix(t)
	other := edgebound.New(1, 1, edgebound.RowIndexed, 0)
	assert.NoError(t, other.Push(edgebound.Bound{RowID: 1, Lb: 0, Rb: 1}))
	other.Sort()
	other.Merge()
	other.Index()
	bwdMx, err := sparsemx.Build(other, math.Inf(-1))
	assert.NoError(t, err)

	_, err = posterior.Compute(fwdMx, bwdMx, 0)
	assert.ErrorIs(t, err, posterior.ErrGeometryMismatch)
}
