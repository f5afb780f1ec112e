package fwdback

import (
	"errors"
	"math"
)

// ErrNumericOverflow indicates a recurrence produced a NaN or +Inf, which
// a log-space Plan-7 recurrence should never do over finite, validated
// inputs; surfacing it lets a caller distinguish a real numeric bug from
// an ordinary -Inf (log of zero probability).
var ErrNumericOverflow = errors.New("fwdback: numeric overflow in recurrence")

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 1) {
		return ErrNumericOverflow
	}
	return nil
}

// Range restricts Forward/Backward to a query sub-span [QLo, QHi]
// (1-based, inclusive), treating QLo as if it were the start of the
// sequence (a fresh N/B entry) and QHi as if it were the end (the C/E
// exit read out as the score). Omitting a Range runs the whole query,
// row 1 through mx.Q, the ordinary single-domain/whole-sequence case.
//
// A domain-restricted Forward run needs its own freshly built matrix
// (see sparsemx.Build): reusing a matrix that already holds a
// whole-query Forward pass would leak the previous row's real M/I/D
// values into what should be a fresh entry at QLo.
type Range struct {
	QLo, QHi int
}
