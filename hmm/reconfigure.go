package hmm

import "math"

// Reconfigure recomputes the length-dependent N/C/J special-state
// transitions for a new target query length L, mirroring the expected-
// length correction HMMER-style background models apply.
//
// Per residue emitted by the N, C or J states outside the profile's own
// match/insert states, the loop probability is L/(L+1) and the move
// (exit) probability is 1/(L+1); at L=0 the profile would never emit
// flanking residues, which cannot happen for a real query (seq.New
// rejects empty sequences), so L <= 0 is rejected here too.
func (p *Profile) Reconfigure(L int) error {
	if L <= 0 {
		return ErrBadTargetLength
	}

	logLoop := math.Log(float64(L) / float64(L+1))
	logMove := -math.Log(float64(L + 1))

	for _, s := range [...]SpecialState{SN, SC, SJ} {
		p.special[s][Loop] = logLoop
		p.special[s][Move] = logMove
	}
	p.TargetLength = L
	return nil
}
