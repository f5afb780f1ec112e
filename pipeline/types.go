package pipeline

import (
	"errors"
	"log"

	"github.com/halvardsen/cloudhmm/accuracy"
	"github.com/halvardsen/cloudhmm/cloud"
	"github.com/halvardsen/cloudhmm/domaindef"
	"github.com/halvardsen/cloudhmm/sparsemx"
)

// ErrNilProfile and ErrNilQuery guard the two required Run arguments.
var (
	ErrNilProfile = errors.New("pipeline: profile must not be nil")
	ErrNilQuery   = errors.New("pipeline: query must not be nil")
)

// Config holds every tuning knob the pipeline's stages need, built from
// DefaultConfig() plus any Option values passed to Run.
type Config struct {
	Cloud  cloud.Config
	Domain domaindef.Config

	NullHMMBias float64
	NullSeqBias float64
	DBSize      int

	Logger  *log.Logger
	OnDomain func(DomainHit)

	err error // first error recorded by an Option, surfaced by Run
}

// DomainHit is one discovered domain plus its optimal-accuracy alignment
// and final score, passed to Config.OnDomain as soon as it's computed.
type DomainHit struct {
	Domain    domaindef.Domain
	Alignment *accuracy.Alignment
	NatScore  float64
	BitScore  float64
	PValue    float64
	EValue    float64
}

// Result is the pipeline's overall output for one query/profile/anchor run.
type Result struct {
	Hits     []DomainHit
	NatScore float64
	Stats    sparsemx.Stats
}

// Option mutates a Config during DefaultConfig() application in Run.
type Option func(*Config)

// DefaultConfig returns the tuning values the external interface table
// names as defaults across cloud search, domain definition and scoring.
func DefaultConfig() Config {
	return Config{
		Cloud:       cloud.DefaultConfig(),
		Domain:      domaindef.DefaultConfig(),
		NullHMMBias: 0,
		NullSeqBias: 0,
		DBSize:      1,
	}
}

// WithCloudConfig overrides the cloud-search tuning parameters.
func WithCloudConfig(c cloud.Config) Option {
	return func(cfg *Config) {
		if err := c.Validate(); err != nil {
			cfg.err = err
			return
		}
		cfg.Cloud = c
	}
}

// WithDomainConfig overrides the domain-definer thresholds.
func WithDomainConfig(d domaindef.Config) Option {
	return func(cfg *Config) { cfg.Domain = d }
}

// WithNullBias sets the background-model bias terms BitScore subtracts.
func WithNullBias(hmmBias, seqBias float64) Option {
	return func(cfg *Config) {
		cfg.NullHMMBias = hmmBias
		cfg.NullSeqBias = seqBias
	}
}

// WithDBSize sets the database size EValue scales its P-value by.
func WithDBSize(n int) Option {
	return func(cfg *Config) {
		if n <= 0 {
			cfg.err = errors.New("pipeline: db size must be > 0")
			return
		}
		cfg.DBSize = n
	}
}

// WithLogger attaches a logger Run uses for per-stage progress messages.
func WithLogger(l *log.Logger) Option {
	return func(cfg *Config) { cfg.Logger = l }
}

// WithOnDomain attaches a hook invoked once per discovered domain, in
// discovery order, immediately after its alignment and score are computed.
func WithOnDomain(fn func(DomainHit)) Option {
	return func(cfg *Config) { cfg.OnDomain = fn }
}

func (c *Config) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
