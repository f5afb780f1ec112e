package fwdback

import (
	"github.com/halvardsen/cloudhmm/hmm"
	"github.com/halvardsen/cloudhmm/logspace"
	"github.com/halvardsen/cloudhmm/seq"
	"github.com/halvardsen/cloudhmm/sparsemx"
)

// Forward runs the bounded Forward algorithm over mx in place, writing
// every live M/I/D cell and every row's five special states for rows
// dom.QLo..dom.QHi, and returns the Forward score at the end of that
// span, C(dom.QHi) + special(SC, MOVE), in nats. With no Range given it
// runs the whole query, row 1 through mx.Q, matching the unrestricted
// algorithm.
func Forward(p *hmm.Profile, query *seq.Sequence, mx *sparsemx.Matrix, dom ...Range) (float64, error) {
	qLo, qHi := 1, mx.Q
	if len(dom) > 0 {
		qLo, qHi = dom[0].QLo, dom[0].QHi
	}
	boundary := qLo - 1

	// Boundary row: N starts at log(1), B follows from N's MOVE
	// transition, everything else is the semiring zero. For the whole
	// query this is row 0; for a domain-restricted run it's the row
	// just before the domain, treated as a fresh entry.
	n := 0.0
	j := logspace.NegInf
	c := logspace.NegInf
	b := n + p.Special(hmm.SN, hmm.Move)
	mx.SetSpecial(boundary, sparsemx.SN, n)
	mx.SetSpecial(boundary, sparsemx.SJ, j)
	mx.SetSpecial(boundary, sparsemx.SB, b)
	mx.SetSpecial(boundary, sparsemx.SC, c)
	mx.SetSpecial(boundary, sparsemx.SE, logspace.NegInf)

	for q := qLo; q <= qHi; q++ {
		begin, end := mx.RowBounds(q)
		e := logspace.NegInf
		a := query.DigitAt(q)
		bPrev := mx.Special(q-1, sparsemx.SB)

		for idx := begin; idx < end; idx++ {
			bnd := mx.Inner.At(idx)
			for co := 0; co < bnd.Width(); co++ {
				t := bnd.Lb + co

				var m float64
				if t >= 1 {
					m = p.MatchEmit(t, a) + logspace.LogSum(
						logspace.LogSum(
							logspace.LogSum(mx.Prev(idx, co-1, sparsemx.M)+p.Trans(t-1, hmm.MM),
								mx.Prev(idx, co-1, sparsemx.I)+p.Trans(t-1, hmm.IM)),
							mx.Prev(idx, co-1, sparsemx.D)+p.Trans(t-1, hmm.DM)),
						bPrev+p.Trans(t-1, hmm.BM))
				} else {
					m = logspace.NegInf
				}

				in := p.InsertEmit(t, a) + logspace.LogSum(
					mx.Prev(idx, co, sparsemx.M)+p.Trans(t, hmm.MI),
					mx.Prev(idx, co, sparsemx.I)+p.Trans(t, hmm.II))
				if t == mx.T {
					in = logspace.NegInf // right edge: no insert state after the last profile position
				}

				var d float64
				if t >= 1 {
					d = logspace.LogSum(
						mx.Cur(idx, co-1, sparsemx.M)+p.Trans(t-1, hmm.MD),
						mx.Cur(idx, co-1, sparsemx.D)+p.Trans(t-1, hmm.DD))
				} else {
					d = logspace.NegInf
				}

				mx.SetCur(idx, co, sparsemx.M, m)
				mx.SetCur(idx, co, sparsemx.I, in)
				mx.SetCur(idx, co, sparsemx.D, d)

				e = logspace.LogSum(e, m)
				if t == mx.T {
					e = logspace.LogSum(e, d)
				}
			}
		}

		n = n + p.Special(hmm.SN, hmm.Loop)
		if p.SearchMode.MultiHit {
			j = logspace.LogSum(j+p.Special(hmm.SJ, hmm.Loop), e+p.Special(hmm.SE, hmm.Move))
			b = logspace.LogSum(n+p.Special(hmm.SN, hmm.Move), j+p.Special(hmm.SJ, hmm.Move))
		} else {
			j = logspace.NegInf
			b = n + p.Special(hmm.SN, hmm.Move)
		}
		c = logspace.LogSum(c+p.Special(hmm.SC, hmm.Loop), e+p.Special(hmm.SE, hmm.Move))

		mx.SetSpecial(q, sparsemx.SE, e)
		mx.SetSpecial(q, sparsemx.SJ, j)
		mx.SetSpecial(q, sparsemx.SB, b)
		mx.SetSpecial(q, sparsemx.SC, c)
		mx.SetSpecial(q, sparsemx.SN, n)
	}

	score := mx.Special(qHi, sparsemx.SC) + p.Special(hmm.SC, hmm.Move)
	if err := checkFinite(score); err != nil {
		return 0, err
	}
	return score, nil
}
