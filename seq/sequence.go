package seq

// Sequence is a digitised biological sequence using 1-based indexing:
// Residues[0] and Digits[0] are unused padding,
// Residues[Len] / Digits[Len] is the terminal position, and valid query
// positions run q in [1, Len].
type Sequence struct {
	Name     string
	Residues []byte // raw residue bytes, 1-based (index 0 unused)
	Digits   []int  // index into the 24-symbol alphabet, 1-based
}

// New digitises raw (a 0-based slice of residue bytes) into a 1-based
// Sequence. Returns ErrEmptySequence if raw is empty: every downstream
// stage assumes Q > 0.
func New(name string, raw []byte) (*Sequence, error) {
	if len(raw) == 0 {
		return nil, ErrEmptySequence
	}

	q := len(raw)
	s := &Sequence{
		Name:     name,
		Residues: make([]byte, q+1),
		Digits:   make([]int, q+1),
	}
	for i, b := range raw {
		s.Residues[i+1] = b
		s.Digits[i+1] = indexOf(b)
	}
	return s, nil
}

// Len returns Q, the number of residues (not counting the unused position 0).
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Residues) - 1
}

// DigitAt returns the alphabet index of residue q (1-based). Callers must
// ensure 1 <= q <= Len(); this is a hot-path accessor with no bounds
// check beyond what the slice itself enforces.
func (s *Sequence) DigitAt(q int) int {
	return s.Digits[q]
}

// ResidueAt returns the raw residue byte at position q (1-based).
func (s *Sequence) ResidueAt(q int) byte {
	return s.Residues[q]
}
