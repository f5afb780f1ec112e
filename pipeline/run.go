package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/halvardsen/cloudhmm/accuracy"
	"github.com/halvardsen/cloudhmm/cloud"
	"github.com/halvardsen/cloudhmm/domaindef"
	"github.com/halvardsen/cloudhmm/edgebound"
	"github.com/halvardsen/cloudhmm/fwdback"
	"github.com/halvardsen/cloudhmm/hmm"
	"github.com/halvardsen/cloudhmm/logspace"
	"github.com/halvardsen/cloudhmm/posterior"
	"github.com/halvardsen/cloudhmm/score"
	"github.com/halvardsen/cloudhmm/seq"
	"github.com/halvardsen/cloudhmm/sparsemx"
)

// Run executes the full search: cloud search from anchor, bounded
// Forward/Backward over the discovered cells, posterior decoding, domain
// definition, and an optimal-accuracy alignment plus final score for
// every domain found.
//
// If the cloud search collapses before leaving warm-up (cloud.ErrEmptyCloud),
// Run returns an empty, non-nil Result and a nil error: that is a
// structured "nothing found" outcome, not a failure.
func Run(ctx context.Context, p *hmm.Profile, query *seq.Sequence, anchor cloud.Anchor, opts ...Option) (*Result, error) {
	if p == nil {
		return nil, ErrNilProfile
	}
	if query == nil {
		return nil, ErrNilQuery
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg.logf("pipeline: cloud search from anchor (%d,%d)-(%d,%d)", anchor.QB, anchor.TB, anchor.QE, anchor.TE)
	fwdEdges, bwdEdges, err := cloud.Search(p, query, anchor, cfg.Cloud)
	if err != nil {
		if errors.Is(err, cloud.ErrEmptyCloud) {
			cfg.logf("pipeline: empty cloud, no hits")
			return &Result{}, nil
		}
		return nil, fmt.Errorf("pipeline: cloud search: %w", err)
	}

	union := edgebound.Union(fwdEdges, bwdEdges)
	inner := union.Reorient()

	fwdMx, err := sparsemx.Build(inner, logspace.NegInf)
	if err != nil {
		return nil, fmt.Errorf("pipeline: build forward matrix: %w", err)
	}
	bwdMx, err := sparsemx.Build(inner, logspace.NegInf)
	if err != nil {
		return nil, fmt.Errorf("pipeline: build backward matrix: %w", err)
	}

	natScore, err := fwdback.Forward(p, query, fwdMx)
	if err != nil {
		return nil, fmt.Errorf("pipeline: forward: %w", err)
	}
	if _, err := fwdback.Backward(p, query, bwdMx); err != nil {
		return nil, fmt.Errorf("pipeline: backward: %w", err)
	}
	cfg.logf("pipeline: overall forward score %.4f nats", natScore)

	post, err := posterior.Compute(fwdMx, bwdMx, natScore)
	if err != nil {
		return nil, fmt.Errorf("pipeline: posterior: %w", err)
	}

	domains, err := domaindef.Define(fwdMx, bwdMx, natScore, cfg.Domain)
	if err != nil {
		return nil, fmt.Errorf("pipeline: domain definition: %w", err)
	}
	cfg.logf("pipeline: %d domain(s) found", len(domains))

	result := &Result{NatScore: natScore, Stats: fwdMx.ComputeStats()}
	for _, d := range domains {
		align, err := accuracy.Compute(p, query, post, d)
		if err != nil {
			if errors.Is(err, accuracy.ErrEmptyDomain) {
				continue
			}
			return nil, fmt.Errorf("pipeline: accuracy decode domain [%d,%d]: %w", d.Start, d.End, err)
		}

		domScore, err := domainForwardScore(p, query, inner, d)
		if err != nil {
			return nil, fmt.Errorf("pipeline: domain forward score [%d,%d]: %w", d.Start, d.End, err)
		}

		bits := score.BitScore(domScore, cfg.NullHMMBias, cfg.NullSeqBias)
		pvalue := score.PValue(bits, p.Forward)
		evalue, err := score.EValue(pvalue, cfg.DBSize)
		if err != nil {
			return nil, fmt.Errorf("pipeline: scoring domain [%d,%d]: %w", d.Start, d.End, err)
		}

		hit := DomainHit{
			Domain:    d,
			Alignment: align,
			NatScore:  domScore,
			BitScore:  bits,
			PValue:    pvalue,
			EValue:    evalue,
		}
		result.Hits = append(result.Hits, hit)
		if cfg.OnDomain != nil {
			cfg.OnDomain(hit)
		}
	}

	return result, nil
}

// domainForwardScore recomputes the Forward score restricted to one
// domain's query span, entering fresh at its start the way a single-
// domain search would rather than inheriting the whole-query sweep's
// state. It builds its own matrix over the same band geometry so the
// restricted run never reads real M/I/D values left behind by the
// whole-query Forward pass.
func domainForwardScore(p *hmm.Profile, query *seq.Sequence, inner *edgebound.Edgebounds, d domaindef.Domain) (float64, error) {
	domMx, err := sparsemx.Build(inner, logspace.NegInf)
	if err != nil {
		return 0, err
	}
	return fwdback.Forward(p, query, domMx, fwdback.Range{QLo: d.Start, QHi: d.End})
}
