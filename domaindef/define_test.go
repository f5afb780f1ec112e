package domaindef_test

import (
	"math"
	"testing"

	"github.com/halvardsen/cloudhmm/domaindef"
	"github.com/halvardsen/cloudhmm/edgebound"
	"github.com/halvardsen/cloudhmm/fwdback"
	"github.com/halvardsen/cloudhmm/hmm"
	"github.com/halvardsen/cloudhmm/seq"
	"github.com/halvardsen/cloudhmm/sparsemx"
	"github.com/stretchr/testify/assert"
)

func TestDefine_RejectsBadThresholds(t *testing.T) {
	_, err := domaindef.Define(nil, nil, 0, domaindef.Config{Rt1: 0.1, Rt2: 0.5})
	assert.ErrorIs(t, err, domaindef.ErrBadThresholds)
}

func TestDefine_FindsADomainInAUniformProfile(t *testing.T) {
	length := 6
	p, err := hmm.New(length)
	assert.NoError(t, err)
	logUniform := math.Log(1.0 / float64(seq.NumSymbols))
	logHigh := math.Log(0.9)
	logLow := math.Log(0.1 / 6.0)
	for pos := 0; pos <= length; pos++ {
		for a := 0; a < seq.NumSymbols; a++ {
			if pos >= 1 {
				assert.NoError(t, p.SetMatchEmit(pos, a, logUniform))
			}
			assert.NoError(t, p.SetInsertEmit(pos, a, logUniform))
		}
		assert.NoError(t, p.SetTrans(pos, hmm.MM, logHigh))
		assert.NoError(t, p.SetTrans(pos, hmm.MI, logLow))
		assert.NoError(t, p.SetTrans(pos, hmm.MD, logLow))
		assert.NoError(t, p.SetTrans(pos, hmm.IM, math.Log(0.5)))
		assert.NoError(t, p.SetTrans(pos, hmm.II, math.Log(0.5)))
		assert.NoError(t, p.SetTrans(pos, hmm.DM, math.Log(0.5)))
		assert.NoError(t, p.SetTrans(pos, hmm.DD, math.Log(0.5)))
		assert.NoError(t, p.SetTrans(pos, hmm.BM, math.Log(1.0/float64(length))))
	}
	assert.NoError(t, p.Reconfigure(length))

	query, err := seq.New("q", []byte("ACDEFGH"))
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

	score, err := fwdback.Forward(p, query, fwdMx)
	assert.NoError(t, err)
	_, err = fwdback.Backward(p, query, bwdMx)
	assert.NoError(t, err)

	domains, err := domaindef.Define(fwdMx, bwdMx, score, domaindef.DefaultConfig())
	assert.NoError(t, err)
	for _, d := range domains {
		assert.LessOrEqual(t, d.Start, d.End)
		assert.GreaterOrEqual(t, d.Start, 1)
		assert.LessOrEqual(t, d.End, query.Len())
	}
}
