// Package seq defines the digitised biological sequence type consumed by
// the cloud-search and bounded Forward/Backward stages.
//
// A Sequence uses 1-based indexing (position 0 unused, position Len is
// the terminal) over a 24-symbol amino-acid alphabet: the 20 standard
// residues plus gap, unknown (X), and two rare symbols (B, Z).
// Digitisation is layered on top of github.com/biogo/biogo/alphabet's
// stock Protein alphabet, validating each raw byte with
// alphabet.BytesToLetters before mapping it to its emission column.
package seq
