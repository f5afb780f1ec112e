package domaindef

import (
	"math"

	"github.com/halvardsen/cloudhmm/sparsemx"
)

// Define scans fwd/bwd (a Forward/Backward pair built over the same
// geometry, overall the Forward score that normalises them) for domain
// envelopes, returned in discovery order (increasing Start).
func Define(fwd, bwd *sparsemx.Matrix, overall float64, cfg Config) ([]Domain, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	Q := fwd.Q
	mOcc := make([]float64, Q+1)
	bTot := make([]float64, Q+1)
	eTot := make([]float64, Q+1)

	running := 0.0
	for q := 0; q <= Q; q++ {
		n := math.Exp(fwd.Special(q, sparsemx.SN) + bwd.Special(q, sparsemx.SN) - overall)
		j := math.Exp(fwd.Special(q, sparsemx.SJ) + bwd.Special(q, sparsemx.SJ) - overall)
		c := math.Exp(fwd.Special(q, sparsemx.SC) + bwd.Special(q, sparsemx.SC) - overall)
		mOcc[q] = 1 - n - j - c

		b := math.Exp(fwd.Special(q, sparsemx.SB) + bwd.Special(q, sparsemx.SB) - overall)
		e := math.Exp(fwd.Special(q, sparsemx.SE) + bwd.Special(q, sparsemx.SE) - overall)
		running += b
		bTot[q] = running
		if q == 0 {
			eTot[q] = e
		} else {
			eTot[q] = eTot[q-1] + e
		}
	}

	var domains []Domain
	inDomain := false
	start := 0
	for q := 1; q <= Q; q++ {
		if !inDomain && mOcc[q] >= cfg.Rt1 {
			inDomain = true
			start = q
			for start > 1 && mOcc[start-1] >= cfg.Rt2 {
				start--
			}
		}
		if inDomain && (mOcc[q] < cfg.Rt2 || q == Q) {
			end := q
			if mOcc[q] < cfg.Rt2 {
				end = q - 1
			}
			inDomain = false
			if end < start {
				continue
			}
			bEvents := bTot[end] - bTot[start-1]
			eEvents := eTot[end]
			if start > 1 {
				eEvents -= eTot[start-1]
			}
			if bEvents <= 0 || eEvents <= 0 {
				continue // m_occ bump with no corroborating entry/exit event
			}
			domains = append(domains, Domain{Start: start, End: end})
		}
	}
	return domains, nil
}
