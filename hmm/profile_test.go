package hmm_test

import (
	"math"
	"testing"

	"github.com/halvardsen/cloudhmm/hmm"
	"github.com/halvardsen/cloudhmm/seq"
	"github.com/stretchr/testify/assert"
)

func uniformProfile(t *testing.T, length int) *hmm.Profile {
	p, err := hmm.New(length)
	assert.NoError(t, err)
	logUniform := math.Log(1.0 / float64(seq.NumSymbols))
	for pos := 0; pos <= length; pos++ {
		for a := 0; a < seq.NumSymbols; a++ {
			if pos >= 1 {
				assert.NoError(t, p.SetMatchEmit(pos, a, logUniform))
			}
			assert.NoError(t, p.SetInsertEmit(pos, a, logUniform))
		}
	}
	return p
}

func TestNew_RejectsNonPositiveLength(t *testing.T) {
	_, err := hmm.New(0)
	assert.ErrorIs(t, err, hmm.ErrInvalidLength)
}

func TestValidate_UniformProfileOK(t *testing.T) {
	p := uniformProfile(t, 5)
	assert.NoError(t, p.Validate())
}

func TestValidate_BadEmissionRow(t *testing.T) {
	p, err := hmm.New(2)
	assert.NoError(t, err)
	assert.NoError(t, p.SetMatchEmit(1, 0, 0)) // prob 1 at symbol 0, rest -Inf: sums to 1
	for a := 0; a < seq.NumSymbols; a++ {
		assert.NoError(t, p.SetInsertEmit(0, a, math.Log(1.0/float64(seq.NumSymbols))))
		assert.NoError(t, p.SetInsertEmit(1, a, math.Log(1.0/float64(seq.NumSymbols))))
		assert.NoError(t, p.SetInsertEmit(2, a, math.Log(1.0/float64(seq.NumSymbols))))
	}
	// position 2's match row is left at all -Inf: sums to 0, not 1.
	assert.ErrorIs(t, p.Validate(), hmm.ErrBadEmissions)
}

func TestReconfigure_RejectsNonPositiveLength(t *testing.T) {
	p := uniformProfile(t, 3)
	assert.ErrorIs(t, p.Reconfigure(0), hmm.ErrBadTargetLength)
}

func TestReconfigure_SetsSymmetricNCJ(t *testing.T) {
	p := uniformProfile(t, 3)
	assert.NoError(t, p.Reconfigure(10))
	assert.Equal(t, 10, p.TargetLength)
	assert.Equal(t, p.Special(hmm.SN, hmm.Loop), p.Special(hmm.SC, hmm.Loop))
	assert.Equal(t, p.Special(hmm.SN, hmm.Loop), p.Special(hmm.SJ, hmm.Loop))
	// loop + move probabilities (normal space) must sum to 1.
	loop := math.Exp(p.Special(hmm.SN, hmm.Loop))
	move := math.Exp(p.Special(hmm.SN, hmm.Move))
	assert.InDelta(t, 1.0, loop+move, 1e-9)
}
