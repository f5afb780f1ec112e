package seq

import (
	"errors"

	"github.com/biogo/biogo/alphabet"
)

// NumSymbols is the size of the profile's emission alphabet: the 20
// standard amino acids plus a gap placeholder, the unknown symbol X, and
// the two rare symbols B (Asx) and Z (Glx) that HMMER-style profiles
// still carry an emission column for.
const NumSymbols = 24

// symbolOrder fixes the column order profile emission vectors use.
// The first 20 symbols match github.com/biogo/biogo/alphabet.Protein's
// canonical ordering; the trailing four are the profile-specific gap,
// unknown, and ambiguity slots.
const symbolOrder = "ACDEFGHIKLMNPQRSTVWY-XBZ"

// UnknownSymbol is the index any residue biogo's alphabet rejects falls
// back to.
const UnknownSymbol = 21 // index of 'X' in symbolOrder

var (
	// ErrEmptySequence is returned when a zero-length sequence is digitised.
	ErrEmptySequence = errors.New("seq: sequence must be non-empty")

	byteToIndex [256]int8
	proteinBase = alphabet.Protein
)

func init() {
	for i := range byteToIndex {
		byteToIndex[i] = -1
	}
	for i := 0; i < len(symbolOrder); i++ {
		byteToIndex[symbolOrder[i]] = int8(i)
		byteToIndex[lower(symbolOrder[i])] = int8(i)
	}
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// SymbolAt returns the raw residue byte for alphabet column idx (the
// inverse of indexOf), the canonical uppercase letter for that column
// of symbolOrder. Out-of-range idx returns the unknown symbol 'X'.
func SymbolAt(idx int) byte {
	if idx < 0 || idx >= len(symbolOrder) {
		return symbolOrder[UnknownSymbol]
	}
	return symbolOrder[idx]
}

// indexOf maps a single raw residue byte to its column in the 24-symbol
// emission alphabet, validating it against biogo's protein alphabet first
// and falling back to UnknownSymbol for anything biogo rejects and that
// is not one of the profile-specific rare/gap symbols.
func indexOf(raw byte) int {
	letters := alphabet.BytesToLetters([]byte{raw})
	if len(letters) == 1 {
		b := byte(letters[0])
		if proteinBase.IsValid(letters[0]) {
			if idx := byteToIndex[b]; idx >= 0 {
				return int(idx)
			}
		}
	}
	if idx := byteToIndex[raw]; idx >= 0 {
		return int(idx)
	}
	return UnknownSymbol
}
