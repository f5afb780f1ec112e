package logspace

import "gonum.org/v1/gonum/floats"

// Semiring is a {sum, prod, zero, one} tuple that a recurrence can take
// in place of its two operators rather than branching on a mode flag.
// No recurrence in this module takes one: package fwdback is written
// against log space directly.
type Semiring struct {
	Name string
	Zero float64
	One  float64
	Sum  func(a, b float64) float64
	Prod func(a, b float64) float64
}

// Log is the default semiring: addition is LogSum, multiplication is
// ordinary addition of logs, the additive identity is -Inf.
var Log = Semiring{
	Name: "log",
	Zero: NegInf,
	One:  0,
	Sum:  LogSum,
	Prod: LogProd,
}

// Normal is the normal-space semiring: addition and multiplication are
// the usual floating point operators.
var Normal = Semiring{
	Name: "normal",
	Zero: 0,
	One:  1,
	Sum:  func(a, b float64) float64 { return a + b },
	Prod: func(a, b float64) float64 { return a * b },
}

// Max returns the maximum of vals, or the log-space zero (-Inf) for an
// empty slice. Cloud search (package cloud) calls this once per
// antidiagonal to find diag_max; wrapping gonum/floats.Max spares every
// call site from re-deriving the empty-slice convention.
func Max(vals []float64) float64 {
	if len(vals) == 0 {
		return NegInf
	}
	return floats.Max(vals)
}
