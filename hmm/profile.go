package hmm

import (
	"math"

	"github.com/halvardsen/cloudhmm/logspace"
	"github.com/halvardsen/cloudhmm/seq"
)

// New allocates a Profile of length T with every emission and transition
// initialised to the log-space semiring zero (-Inf). Callers fill the
// matrices with SetMatchEmit / SetInsertEmit / SetTrans / SetSpecial
// before calling Validate.
func New(t int) (*Profile, error) {
	if t <= 0 {
		return nil, ErrInvalidLength
	}

	p := &Profile{T: t}
	p.matchEmit = make([][]float64, t+1)
	p.insertEmit = make([][]float64, t+1)
	p.trans = make([][]float64, t+1)
	for i := 0; i <= t; i++ {
		p.matchEmit[i] = fillRow(seq.NumSymbols, logspace.NegInf)
		p.insertEmit[i] = fillRow(seq.NumSymbols, logspace.NegInf)
		p.trans[i] = fillRow(int(numTrans), logspace.NegInf)
	}
	for s := range p.special {
		for m := range p.special[s] {
			p.special[s][m] = logspace.NegInf
		}
	}
	return p, nil
}

func fillRow(n int, v float64) []float64 {
	row := make([]float64, n)
	for i := range row {
		row[i] = v
	}
	return row
}

// SetMatchEmit sets the log-space match-emission probability of symbol a
// at position t (1..T).
func (p *Profile) SetMatchEmit(t, a int, logProb float64) error {
	if t < 1 || t > p.T || a < 0 || a >= seq.NumSymbols {
		return ErrOutOfRange
	}
	p.matchEmit[t][a] = logProb
	return nil
}

// SetInsertEmit sets the log-space insert-emission probability of symbol
// a at position t (0..T).
func (p *Profile) SetInsertEmit(t, a int, logProb float64) error {
	if t < 0 || t > p.T || a < 0 || a >= seq.NumSymbols {
		return ErrOutOfRange
	}
	p.insertEmit[t][a] = logProb
	return nil
}

// SetTrans sets the log-space transition of kind k leaving position t (0..T).
func (p *Profile) SetTrans(t int, k TransKind, logProb float64) error {
	if t < 0 || t > p.T || k < 0 || k >= numTrans {
		return ErrOutOfRange
	}
	p.trans[t][k] = logProb
	return nil
}

// SetSpecial sets the log-space transition of special state s, move kind m.
func (p *Profile) SetSpecial(s SpecialState, m SpecialMove, logProb float64) error {
	if s < 0 || s >= numSpecial || m < 0 || m >= numMoves {
		return ErrOutOfRange
	}
	p.special[s][m] = logProb
	return nil
}

// MatchEmit reads the log-space match-emission probability of symbol a at position t.
func (p *Profile) MatchEmit(t, a int) float64 { return p.matchEmit[t][a] }

// InsertEmit reads the log-space insert-emission probability of symbol a at position t.
func (p *Profile) InsertEmit(t, a int) float64 { return p.insertEmit[t][a] }

// Trans reads the log-space transition of kind k leaving position t.
func (p *Profile) Trans(t int, k TransKind) float64 { return p.trans[t][k] }

// Special reads the log-space transition of special state s, move kind m.
func (p *Profile) Special(s SpecialState, m SpecialMove) float64 { return p.special[s][m] }

// ConsensusDigit returns the alphabet index of the most probable match
// emission at position t (1..T): the residue a profile-consensus
// sequence would show at that column.
func (p *Profile) ConsensusDigit(t int) int {
	row := p.matchEmit[t]
	best := 0
	for a := 1; a < len(row); a++ {
		if row[a] > row[best] {
			best = a
		}
	}
	return best
}

// Validate checks the constraints a well-formed profile must satisfy:
// T > 0 (guaranteed by New) and every emission row sums to 1 in normal
// space within 1e-4.
func (p *Profile) Validate() error {
	for t := 1; t <= p.T; t++ {
		if err := checkRowSum(p.matchEmit[t]); err != nil {
			return err
		}
	}
	for t := 0; t <= p.T; t++ {
		if err := checkRowSum(p.insertEmit[t]); err != nil {
			return err
		}
	}
	return nil
}

func checkRowSum(logRow []float64) error {
	sum := 0.0
	for _, lp := range logRow {
		if !math.IsInf(lp, -1) {
			sum += math.Exp(lp)
		}
	}
	if math.Abs(sum-1.0) > 1e-4 {
		return ErrBadEmissions
	}
	return nil
}
