package cloud

import (
	"github.com/halvardsen/cloudhmm/edgebound"
	"github.com/halvardsen/cloudhmm/hmm"
	"github.com/halvardsen/cloudhmm/seq"
)

// Search runs the bidirectional adaptive-banding cloud search: a forward
// sweep from the seed's begin anchor out toward (Q, T), and a backward
// sweep from its end anchor back toward
// (0, 0), each independently pruned against its own running score
// maximum. It returns the two antidiagonal-indexed edgebound sets ready
// for edgebound.Union and edgebound.Reorient.
//
// Returns ErrInvalidAnchor if the anchor's points are out of range or not
// properly ordered, and ErrEmptyCloud if pruning collapsed both sweeps
// before either left warm-up.
func Search(p *hmm.Profile, query *seq.Sequence, anchor Anchor, cfg Config) (forward, backward *edgebound.Edgebounds, err error) {
	Q, T := query.Len(), p.T
	if err := anchor.validate(Q, T); err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	forward = sweep(p, query, anchor.QB, anchor.TB, true, cfg)
	backward = sweep(p, query, anchor.QE, anchor.TE, false, cfg)

	if forward.CountCells()+backward.CountCells() <= 2 {
		return nil, nil, ErrEmptyCloud
	}
	return forward, backward, nil
}
