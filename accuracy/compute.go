package accuracy

import (
	"github.com/halvardsen/cloudhmm/domaindef"
	"github.com/halvardsen/cloudhmm/hmm"
	"github.com/halvardsen/cloudhmm/seq"
	"github.com/halvardsen/cloudhmm/sparsemx"
)

type key struct {
	q, t int
	s    State
}

type cell struct {
	score   float64
	hasPred bool
	pred    key
}

// candidate is one predecessor offered to the max-plus reducer.
type candidate struct {
	score float64
	from  key
	state State // the CANDIDATE's own state, used only for the tie-break
}

// Compute decodes the optimal-accuracy alignment within domain's query
// span over post (a posterior matrix built by package posterior), with a
// virtual B entry before domain.Start and a virtual E exit after
// domain.End — single-domain decoding, no mid-domain B re-entry. p and
// query supply the consensus and query residues Pretty and IdentityFrac
// render and score.
func Compute(p *hmm.Profile, query *seq.Sequence, post *sparsemx.Matrix, domain domaindef.Domain) (*Alignment, error) {
	cells := make(map[key]cell)

	for q := domain.Start; q <= domain.End; q++ {
		begin, end := post.RowBounds(q)
		for idx := begin; idx < end; idx++ {
			bnd := post.Inner.At(idx)
			for co := 0; co < bnd.Width(); co++ {
				t := bnd.Lb + co

				mReward := post.Cur(idx, co, sparsemx.M)
				iReward := post.Cur(idx, co, sparsemx.I)

				mCands := []candidate{}
				if q == domain.Start {
					mCands = append(mCands, candidate{score: 0, state: StateB})
				}
				if prev, ok := cells[key{q - 1, t - 1, StateM}]; ok {
					mCands = append(mCands, candidate{prev.score, key{q - 1, t - 1, StateM}, StateM})
				}
				if prev, ok := cells[key{q - 1, t - 1, StateI}]; ok {
					mCands = append(mCands, candidate{prev.score, key{q - 1, t - 1, StateI}, StateI})
				}
				if prev, ok := cells[key{q - 1, t - 1, StateD}]; ok {
					mCands = append(mCands, candidate{prev.score, key{q - 1, t - 1, StateD}, StateD})
				}
				if best, ok := reduce(mCands); ok {
					c := cell{score: best.score + mReward, hasPred: true, pred: best.from}
					if best.state == StateB {
						c.pred = key{q, t, StateB}
					}
					cells[key{q, t, StateM}] = c
				}

				iCands := []candidate{}
				if prev, ok := cells[key{q - 1, t, StateM}]; ok {
					iCands = append(iCands, candidate{prev.score, key{q - 1, t, StateM}, StateM})
				}
				if prev, ok := cells[key{q - 1, t, StateI}]; ok {
					iCands = append(iCands, candidate{prev.score, key{q - 1, t, StateI}, StateI})
				}
				if best, ok := reduce(iCands); ok {
					cells[key{q, t, StateI}] = cell{score: best.score + iReward, hasPred: true, pred: best.from}
				}

				dCands := []candidate{}
				if prev, ok := cells[key{q, t - 1, StateM}]; ok {
					dCands = append(dCands, candidate{prev.score, key{q, t - 1, StateM}, StateM})
				}
				if prev, ok := cells[key{q, t - 1, StateD}]; ok {
					dCands = append(dCands, candidate{prev.score, key{q, t - 1, StateD}, StateD})
				}
				if best, ok := reduce(dCands); ok {
					cells[key{q, t, StateD}] = cell{score: best.score, hasPred: true, pred: best.from}
				}
			}
		}
	}

	endKey, ok := bestInRow(cells, domain.End)
	if !ok {
		return nil, ErrEmptyDomain
	}

	var trace []Step
	cur := endKey
	for {
		step := Step{State: cur.s, Q: cur.q, T: cur.t}
		switch cur.s {
		case StateM:
			step.ProfileResidue = seq.SymbolAt(p.ConsensusDigit(cur.t))
			step.QueryResidue = toUpper(query.ResidueAt(cur.q))
		case StateI:
			step.QueryResidue = toUpper(query.ResidueAt(cur.q))
		case StateD:
			step.ProfileResidue = seq.SymbolAt(p.ConsensusDigit(cur.t))
		}
		trace = append(trace, step)
		c := cells[cur]
		if !c.hasPred || c.pred.s == StateB {
			break
		}
		cur = c.pred
	}
	for l, r := 0, len(trace)-1; l < r; l, r = l+1, r-1 {
		trace[l], trace[r] = trace[r], trace[l]
	}

	a := &Alignment{
		DomainStart:      domain.Start,
		DomainEnd:        domain.End,
		Trace:            trace,
		ExpectedAccuracy: cells[endKey].score,
	}
	identical := 0
	for _, st := range trace {
		switch st.State {
		case StateM:
			a.MatchCount++
			if st.ProfileResidue == st.QueryResidue {
				identical++
			}
		case StateI:
			a.InsertCount++
		case StateD:
			a.DeleteCount++
		}
	}
	if len(trace) > 0 {
		a.IdentityFrac = float64(identical) / float64(len(trace))
	}
	return a, nil
}

// toUpper canonicalises a residue byte for identity comparison; query
// residues may arrive in either case, consensus residues never do.
func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// reduce picks the candidate with the highest score, breaking ties by
// State precedence order (lower State value wins).
func reduce(cands []candidate) (candidate, bool) {
	if len(cands) == 0 {
		return candidate{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.score > best.score || (c.score == best.score && c.state < best.state) {
			best = c
		}
	}
	return best, true
}

func bestInRow(cells map[key]cell, row int) (key, bool) {
	var best key
	bestScore := 0.0
	found := false
	for k, c := range cells {
		if k.q != row || (k.s != StateM && k.s != StateD) {
			continue
		}
		if !found || c.score > bestScore {
			best, bestScore, found = k, c.score, true
		}
	}
	return best, found
}
