package fwdback_test

import (
	"math"
	"testing"

	"github.com/halvardsen/cloudhmm/edgebound"
	"github.com/halvardsen/cloudhmm/fwdback"
	"github.com/halvardsen/cloudhmm/hmm"
	"github.com/halvardsen/cloudhmm/seq"
	"github.com/halvardsen/cloudhmm/sparsemx"
	"github.com/stretchr/testify/assert"
)

func uniformProfile(t *testing.T, length int) *hmm.Profile {
	p, err := hmm.New(length)
	assert.NoError(t, err)
	logUniform := math.Log(1.0 / float64(seq.NumSymbols))
	logThird := math.Log(1.0 / 3.0)
	for pos := 0; pos <= length; pos++ {
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
		assert.NoError(t, p.SetTrans(pos, hmm.BM, math.Log(1.0/float64(length))))
	}
	assert.NoError(t, p.Reconfigure(5))
	// Reconfigure leaves E untouched; a unihit profile exits E->C with probability 1.
	assert.NoError(t, p.SetSpecial(hmm.SE, hmm.Move, 0))
	return p
}

func fullMatrix(t *testing.T, q, length int) *sparsemx.Matrix {
	inner := edgebound.New(q, length, edgebound.RowIndexed, 0)
	for row := 1; row <= q; row++ {
		assert.NoError(t, inner.Push(edgebound.Bound{RowID: row, Lb: 0, Rb: length + 1}))
	}
	inner.Sort()
	inner.Merge()
	inner.Index()
	mx, err := sparsemx.Build(inner, math.Inf(-1))
	assert.NoError(t, err)
	return mx
}

func TestForward_FiniteScore(t *testing.T) {
	p := uniformProfile(t, 4)
	q, err := seq.New("q", []byte("ACDEF"))
	assert.NoError(t, err)
	mx := fullMatrix(t, q.Len(), p.T)

	score, err := fwdback.Forward(p, q, mx)
	assert.NoError(t, err)
	assert.False(t, math.IsInf(score, 0))
	assert.False(t, math.IsNaN(score))
}

func TestBackward_FiniteScore(t *testing.T) {
	p := uniformProfile(t, 4)
	q, err := seq.New("q", []byte("ACDEF"))
	assert.NoError(t, err)
	mx := fullMatrix(t, q.Len(), p.T)

	score, err := fwdback.Backward(p, q, mx)
	assert.NoError(t, err)
	assert.False(t, math.IsInf(score, 0))
	assert.False(t, math.IsNaN(score))
}

func TestForward_DomainRangeScoresSubSpan(t *testing.T) {
	p := uniformProfile(t, 4)
	q, err := seq.New("q", []byte("ACDEF"))
	assert.NoError(t, err)

	whole := fullMatrix(t, q.Len(), p.T)
	wholeScore, err := fwdback.Forward(p, q, whole)
	assert.NoError(t, err)

	domMx := fullMatrix(t, q.Len(), p.T)
	domScore, err := fwdback.Forward(p, q, domMx, fwdback.Range{QLo: 2, QHi: 4})
	assert.NoError(t, err)

	assert.False(t, math.IsNaN(domScore))
	assert.False(t, math.IsInf(domScore, 0))
	// A sub-span re-entered fresh at QLo need not equal the whole-query
	// score, but it must be computed (not the zero-value boundary score).
	assert.NotEqual(t, wholeScore, domScore)

	// Row 1 lies outside [QLo,QHi] and was never written by this run, so
	// its M cell still holds the matrix's initial zero value.
	begin, _ := domMx.RowBounds(1)
	assert.Equal(t, math.Inf(-1), domMx.Cur(begin, 0, sparsemx.M))
}

func TestForward_RightEdgeForcesNoInsert(t *testing.T) {
	p := uniformProfile(t, 4)
	q, err := seq.New("q", []byte("ACDEF"))
	assert.NoError(t, err)
	mx := fullMatrix(t, q.Len(), p.T)

	_, err = fwdback.Forward(p, q, mx)
	assert.NoError(t, err)

	begin, end := mx.RowBounds(1)
	assert.Equal(t, 1, end-begin)
	bnd := mx.Inner.At(begin)
	lastCol := bnd.Width() - 1 // t == T
	assert.Equal(t, math.Inf(-1), mx.Cur(begin, lastCol, sparsemx.I))
}
