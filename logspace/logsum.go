package logspace

import "math"

// NegInf is the log-space representation of the semiring zero.
const NegInf = math.Inf(-1)

const (
	// tableScale is the table resolution: 1/tableScale nats per bucket.
	tableScale = 1000.0
	// tableMaxDiff bounds the interpolated region; beyond it ln(1+exp(-d)) is
	// below 1.2e-7, far inside LogSum's tolerance, so logsum(x,y) is taken as max(x,y).
	tableMaxDiff = 16.0
	tableSize    = int(tableMaxDiff*tableScale) + 1
)

// logsumTable[i] holds ln(1+exp(-i/tableScale)) for i in [0, tableSize).
// Built once at process init and never mutated afterwards, so it may be
// shared by reference across every worker goroutine.
var logsumTable [tableSize]float64

func init() {
	for i := range logsumTable {
		d := float64(i) / tableScale
		logsumTable[i] = math.Log1p(math.Exp(-d))
	}
}

// LogSum computes ln(exp(x)+exp(y)) for log-space values x, y, accurate to
// within 1e-4 nats of the exact value. logsum(-Inf, y) = y and
// logsum(x, -Inf) = x hold without special-casing NaN from 0*Inf.
func LogSum(x, y float64) float64 {
	if math.IsInf(x, -1) {
		return y
	}
	if math.IsInf(y, -1) {
		return x
	}

	hi, lo := x, y
	if lo > hi {
		hi, lo = lo, hi
	}
	diff := hi - lo
	if diff >= tableMaxDiff {
		return hi
	}

	pos := diff * tableScale
	idx := int(pos)
	frac := pos - float64(idx)
	return hi + logsumTable[idx] + frac*(logsumTable[idx+1]-logsumTable[idx])
}

// LogProd is log-space multiplication: a + b.
func LogProd(x, y float64) float64 {
	return x + y
}
