package score

import (
	"errors"
	"math"

	"github.com/halvardsen/cloudhmm/hmm"
)

// ErrNonPositiveDBSize indicates EValue was asked to scale by a
// non-positive number of database sequences or residues.
var ErrNonPositiveDBSize = errors.New("score: database size must be > 0")

// BitScore converts a nat-space Forward score into bits, subtracting the
// null model's own bias terms (the background-composition bias and the
// sequence-length bias HMMER-style null models fold in) before the
// natural-log-to-bits conversion.
func BitScore(natScore, nullHMMBias, nullSeqBias float64) float64 {
	return (natScore - nullHMMBias - nullSeqBias) / math.Ln2
}

// PValue estimates the probability a random sequence scores at least
// bitScore, from the profile's fitted Forward-score tail (a Gumbel-type
// right tail in the HMMER convention: P(S >= x) = exp(-lambda*(x-mu))),
// clamped to 1 since the fit is only accurate in the tail.
func PValue(bitScore float64, dist hmm.DistParams) float64 {
	p := math.Exp(-dist.Lambda * (bitScore - dist.Mu))
	if p > 1 {
		return 1
	}
	return p
}

// EValue scales a P-value by the number of sequences (or positions)
// searched, the expected number of equal-or-better-scoring hits by
// chance alone in a database that size.
func EValue(pvalue float64, dbSize int) (float64, error) {
	if dbSize <= 0 {
		return 0, ErrNonPositiveDBSize
	}
	return pvalue * float64(dbSize), nil
}
