package fwdback

import (
	"github.com/halvardsen/cloudhmm/hmm"
	"github.com/halvardsen/cloudhmm/logspace"
	"github.com/halvardsen/cloudhmm/seq"
	"github.com/halvardsen/cloudhmm/sparsemx"
)

// Backward runs the bounded Backward algorithm over mx in place, the
// reverse-direction mirror of Forward: every source of a Forward edge
// accumulates the Backward value of its Forward target plus that edge's
// transition weight. Rows are swept from dom.QHi down to dom.QLo and,
// within a row, columns from T down to the row's first live position,
// so that every same-row or next-row dependency a cell needs has
// already been filled. With no Range given it runs the whole query, row
// mx.Q down to 1, matching the unrestricted algorithm. As with Forward,
// a domain-restricted run needs its own freshly built matrix.
func Backward(p *hmm.Profile, query *seq.Sequence, mx *sparsemx.Matrix, dom ...Range) (float64, error) {
	qLo, qHi := 1, mx.Q
	if len(dom) > 0 {
		qLo, qHi = dom[0].QLo, dom[0].QHi
	}

	c := p.Special(hmm.SC, hmm.Move)
	j := logspace.NegInf
	e := c + p.Special(hmm.SE, hmm.Move)
	b := logspace.NegInf
	n := logspace.NegInf
	mx.SetSpecial(qHi, sparsemx.SC, c)
	mx.SetSpecial(qHi, sparsemx.SJ, j)
	mx.SetSpecial(qHi, sparsemx.SE, e)
	mx.SetSpecial(qHi, sparsemx.SB, b)
	mx.SetSpecial(qHi, sparsemx.SN, n)

	for r := qHi - 1; r >= qLo-1; r-- {
		// B(r) accumulates from every M cell on row r+1 it can enter.
		nextBegin, nextEnd := mx.RowBounds(r + 1)
		b = logspace.NegInf
		for idx := nextBegin; idx < nextEnd; idx++ {
			bnd := mx.Inner.At(idx)
			for co := 0; co < bnd.Width(); co++ {
				t := bnd.Lb + co
				if t < 1 {
					continue
				}
				b = logspace.LogSum(b, p.Trans(t-1, hmm.BM)+mx.Cur(idx, co, sparsemx.M))
			}
		}

		c = c + p.Special(hmm.SC, hmm.Loop)
		if p.SearchMode.MultiHit {
			j = logspace.LogSum(j+p.Special(hmm.SJ, hmm.Loop), b+p.Special(hmm.SJ, hmm.Move))
		} else {
			j = logspace.NegInf
		}
		n = logspace.LogSum(n+p.Special(hmm.SN, hmm.Loop), b+p.Special(hmm.SN, hmm.Move))
		e = logspace.LogSum(c+p.Special(hmm.SE, hmm.Move), j+p.Special(hmm.SE, hmm.Move))

		mx.SetSpecial(r, sparsemx.SB, b)
		mx.SetSpecial(r, sparsemx.SC, c)
		mx.SetSpecial(r, sparsemx.SJ, j)
		mx.SetSpecial(r, sparsemx.SN, n)
		mx.SetSpecial(r, sparsemx.SE, e)

		if r == qLo-1 {
			continue // boundary row has no M/I/D states to fill
		}

		begin, end := mx.RowBounds(r)
		var nextDigit int
		if r+1 <= query.Len() {
			nextDigit = query.DigitAt(r + 1)
		}

		for idx := begin; idx < end; idx++ {
			bnd := mx.Inner.At(idx)
			for co := bnd.Width() - 1; co >= 0; co-- {
				t := bnd.Lb + co

				var emitNextM, emitNextI float64
				if t+1 <= mx.T {
					emitNextM = p.MatchEmit(t+1, nextDigit)
				} else {
					emitNextM = logspace.NegInf
				}
				emitNextI = p.InsertEmit(t, nextDigit)

				mSucc := mx.Next(idx, co+1, sparsemx.M)
				iSucc := mx.Next(idx, co, sparsemx.I)
				dSucc := mx.Cur(idx, co+1, sparsemx.D)

				m := logspace.LogSum(
					logspace.LogSum(
						logspace.LogSum(
							p.Trans(t, hmm.MM)+emitNextM+mSucc,
							p.Trans(t, hmm.MI)+emitNextI+iSucc),
						p.Trans(t, hmm.MD)+dSucc),
					e)

				in := logspace.LogSum(
					p.Trans(t, hmm.IM)+emitNextM+mSucc,
					p.Trans(t, hmm.II)+emitNextI+iSucc)
				if t == mx.T {
					in = logspace.NegInf
				}

				d := logspace.LogSum(
					p.Trans(t, hmm.DM)+emitNextM+mSucc,
					p.Trans(t, hmm.DD)+dSucc)

				mx.SetCur(idx, co, sparsemx.M, m)
				mx.SetCur(idx, co, sparsemx.I, in)
				mx.SetCur(idx, co, sparsemx.D, d)
			}
		}
	}

	score := mx.Special(qLo-1, sparsemx.SN)
	if err := checkFinite(score); err != nil {
		return 0, err
	}
	return score, nil
}
