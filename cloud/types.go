package cloud

import "errors"

// Sentinel errors. ErrEmptyCloud, despite its Err prefix, does not mark
// a failure: a cloud that never leaves warm-up is a normal, structured
// outcome a caller checks for with errors.Is, not a crash.
var (
	// ErrInvalidAnchor indicates the seed anchor's begin/end points are
	// out of range or not properly ordered for the (Q, T) embedding.
	ErrInvalidAnchor = errors.New("cloud: invalid seed anchor")

	// ErrEmptyCloud indicates pruning collapsed the search before a
	// single antidiagonal made it past warm-up in either direction.
	ErrEmptyCloud = errors.New("cloud: search produced an empty cloud")
)

// Anchor is the seed alignment's begin and end diagonal points, the only
// two cells of the seed the cloud-search engine consumes.
type Anchor struct {
	QB, TB int
	QE, TE int
}

func (a Anchor) validate(q, t int) error {
	if a.QB < 0 || a.QB > q || a.TB < 0 || a.TB > t {
		return ErrInvalidAnchor
	}
	if a.QE < 0 || a.QE > q || a.TE < 0 || a.TE > t {
		return ErrInvalidAnchor
	}
	if a.QB > a.QE || a.TB > a.TE {
		return ErrInvalidAnchor
	}
	return nil
}

// Config holds the three tuning parameters of the sweep: Alpha (edge-trim
// tolerance, nats), Beta (termination tolerance, nats, must be >= Alpha),
// and Gamma (warm-up antidiagonal count, no pruning applied within it).
type Config struct {
	Alpha float64
	Beta  float64
	Gamma int
}

// DefaultConfig returns the tuning values the external interface table
// names as defaults.
func DefaultConfig() Config {
	return Config{Alpha: 12.0, Beta: 20.0, Gamma: 5}
}

// Validate checks Alpha, Beta > 0, Beta >= Alpha and Gamma >= 0. A
// termination tolerance tighter than the edge-trim tolerance (Beta <
// Alpha) would end the whole sweep on an antidiagonal whose best cell
// edge-trim would still keep.
func (c Config) Validate() error {
	if c.Alpha <= 0 || c.Beta <= 0 {
		return errors.New("cloud: alpha and beta must be > 0")
	}
	if c.Beta < c.Alpha {
		return errors.New("cloud: beta must be >= alpha")
	}
	if c.Gamma < 0 {
		return errors.New("cloud: gamma must be >= 0")
	}
	return nil
}
