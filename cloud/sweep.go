package cloud

import (
	"github.com/halvardsen/cloudhmm/edgebound"
	"github.com/halvardsen/cloudhmm/hmm"
	"github.com/halvardsen/cloudhmm/logspace"
	"github.com/halvardsen/cloudhmm/seq"
)

// layer is one antidiagonal's worth of normal-state probe values, narrow
// (only the live q-range, not the full query length) the way dtw.go keeps
// two narrow rolling rows instead of a dense matrix.
type layer struct {
	valid    bool
	qLo, qHi int // inclusive
	cells    [][3]float64
}

func newLayer(qLo, qHi int) layer {
	if qLo > qHi {
		return layer{valid: true, qLo: qLo, qHi: qHi}
	}
	return layer{valid: true, qLo: qLo, qHi: qHi, cells: make([][3]float64, qHi-qLo+1)}
}

func (l layer) get(q, s int) float64 {
	if !l.valid || qLoHiEmpty(l) || q < l.qLo || q > l.qHi {
		return logspace.NegInf
	}
	return l.cells[q-l.qLo][s]
}

func qLoHiEmpty(l layer) bool { return l.qLo > l.qHi }

func (l *layer) set(q, s int, v float64) {
	l.cells[q-l.qLo][s] = v
}

const (
	stM = 0
	stI = 1
	stD = 2
)

// sweep runs one directional probe from (q0, t0) out to the embedding
// boundary or until pruning terminates it, recording each surviving
// antidiagonal's live q-range as an antidiagonal-indexed Bound.
func sweep(p *hmm.Profile, query *seq.Sequence, q0, t0 int, forward bool, cfg Config) *edgebound.Edgebounds {
	Q, T := query.Len(), p.T
	maxSteps := Q + T + 2
	out := edgebound.New(Q, T, edgebound.AntiDiagIndexed, maxSteps)

	dir := 1
	if !forward {
		dir = -1
	}

	d := q0 + t0
	qLo, qHi := q0, q0

	var prevPrev, prev layer
	totalMax := logspace.NegInf

	for k := 0; k < maxSteps; k++ {
		embLo, embHi := embedRange(d, Q, T)
		if embLo > embHi {
			break
		}

		if k > 0 {
			if forward {
				qHi++
			} else {
				qLo--
			}
			if qLo < embLo {
				qLo = embLo
			}
			if qHi > embHi {
				qHi = embHi
			}
		} else {
			if qLo < embLo {
				qLo = embLo
			}
			if qHi > embHi {
				qHi = embHi
			}
		}
		if qLo > qHi {
			break
		}

		cur := newLayer(qLo, qHi)
		best := make([]float64, qHi-qLo+1)
		for q := qLo; q <= qHi; q++ {
			t := d - q
			var m, i, dd float64
			if k == 0 && q == q0 && t == t0 {
				m, i, dd = 0, logspace.NegInf, logspace.NegInf
			} else if forward {
				m, i, dd = forwardCell(p, query, q, t, prev, prevPrev)
			} else {
				m, i, dd = backwardCell(p, query, q, t, prev, prevPrev)
			}
			cur.set(q, stM, m)
			cur.set(q, stI, i)
			cur.set(q, stD, dd)
			best[q-qLo] = maxOf3(m, i, dd)
		}
		diagMax := logspace.Max(best)

		trimLo, trimHi := qLo, qHi
		if k >= cfg.Gamma {
			if diagMax < totalMax-cfg.Beta {
				break // termination: the cloud does not extend further here
			}
			thresh := totalMax - cfg.Alpha
			trimLo = qHi + 1
			for q := qLo; q <= qHi; q++ {
				if best[q-qLo] >= thresh {
					trimLo = q
					break
				}
			}
			trimHi = qLo - 1
			for q := qHi; q >= qLo; q-- {
				if best[q-qLo] >= thresh {
					trimHi = q
					break
				}
			}
			if trimLo > trimHi {
				break // no cell on this antidiagonal survives edge-trim
			}
		}

		_ = out.Push(edgebound.Bound{RowID: d, Lb: trimLo, Rb: trimHi + 1})

		if diagMax > totalMax {
			totalMax = diagMax
		}

		qLo, qHi = trimLo, trimHi
		prevPrev, prev = prev, cur
		d += dir
	}

	out.Sort()
	out.Merge()
	out.Index()
	return out
}

func embedRange(d, Q, T int) (lo, hi int) {
	lo = d - T
	if lo < 0 {
		lo = 0
	}
	hi = d
	if hi > Q {
		hi = Q
	}
	return lo, hi
}

func maxOf3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// forwardCell computes the three normal states at (q, t) from predecessor
// cells (q-1,t-1) on prevPrev and (q-1,t), (q,t-1) on prev, per the
// standard Plan-7 Forward recurrence restricted to M/I/D (no special-state
// term: the probe tracks relative reachability, not an exact Forward
// score, and only the surviving cell set is exported — see SPEC_FULL.md).
func forwardCell(p *hmm.Profile, query *seq.Sequence, q, t int, prev, prevPrev layer) (m, i, d float64) {
	a := query.DigitAt(q)

	if t >= 1 {
		m = p.MatchEmit(t, a) + logspace.LogSum(
			logspace.LogSum(
				prevPrev.get(q-1, stM)+p.Trans(t-1, hmm.MM),
				prevPrev.get(q-1, stI)+p.Trans(t-1, hmm.IM)),
			prevPrev.get(q-1, stD)+p.Trans(t-1, hmm.DM))
	} else {
		m = logspace.NegInf
	}

	i = p.InsertEmit(t, a) + logspace.LogSum(
		prev.get(q-1, stM)+p.Trans(t, hmm.MI),
		prev.get(q-1, stI)+p.Trans(t, hmm.II))

	if t >= 1 {
		d = logspace.LogSum(
			prev.get(q, stM)+p.Trans(t-1, hmm.MD),
			prev.get(q, stD)+p.Trans(t-1, hmm.DD))
	} else {
		d = logspace.NegInf
	}
	return m, i, d
}

// backwardCell mirrors forwardCell, reading successor cells (q+1,t+1) on
// prevPrev and (q+1,t), (q,t+1) on prev (both at a higher antidiagonal
// than (q,t), since the backward sweep processes d in descending order).
func backwardCell(p *hmm.Profile, query *seq.Sequence, q, t int, prev, prevPrev layer) (m, i, d float64) {
	Q, T := query.Len(), p.T

	var emitNextM, emitNextI float64
	var nextDigit int
	if q+1 <= Q {
		nextDigit = query.DigitAt(q + 1)
	}
	if t+1 <= T && q+1 <= Q {
		emitNextM = p.MatchEmit(t+1, nextDigit)
	} else {
		emitNextM = logspace.NegInf
	}
	if q+1 <= Q {
		emitNextI = p.InsertEmit(t, nextDigit)
	} else {
		emitNextI = logspace.NegInf
	}

	mSucc := prevPrev.get(q+1, stM)
	iSucc := prev.get(q+1, stI)
	dSucc := prev.get(q, stD)

	m = logspace.LogSum(
		logspace.LogSum(
			p.Trans(t, hmm.MM)+emitNextM+mSucc,
			p.Trans(t, hmm.MI)+emitNextI+iSucc),
		p.Trans(t, hmm.MD)+dSucc)

	i = logspace.LogSum(
		p.Trans(t, hmm.IM)+emitNextM+mSucc,
		p.Trans(t, hmm.II)+emitNextI+iSucc)

	d = logspace.LogSum(
		p.Trans(t, hmm.DM)+emitNextM+mSucc,
		p.Trans(t, hmm.DD)+dSucc)

	return m, i, d
}
