// Package tsp - optimizer configuration.
//
// Config is plain data passed to NewOptimizer; nothing is read from process
// state. Option helpers follow the functional-options pattern so callers only
// spell out what differs from DefaultConfig.
package tsp

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Policy selects how the 2-opt improver accepts moves.
type Policy int

const (
	// FirstImprovement applies the first strictly improving move of a pass
	// and restarts the scan from i = 1.
	FirstImprovement Policy = iota

	// BestImprovement applies the single best move found in a full pass.
	// It converges to a different (usually better) local optimum; opt-in only.
	BestImprovement
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case FirstImprovement:
		return "first"
	case BestImprovement:
		return "best"
	default:
		return "unknown"
	}
}

// Defaults.
const (
	DefaultThreshold    = 15
	DefaultMaxPasses    = 1000
	DefaultEps          = 1e-9
	DefaultScale        = 1000.0
	DefaultHeldKarpMaxN = 16
	DefaultMaxNodes     = 2_000_000
	DefaultTimeLimit    = 2 * time.Second

	// heldKarpHardMax bounds the DP table at 2^19 × 19 int64 (~80 MB).
	heldKarpHardMax = 20
)

// Config holds every optimizer knob.
type Config struct {
	// Threshold: instances with N > Threshold go to the exact strategy.
	Threshold int

	// ExactEnabled turns the exact strategy on. It is still skipped when the
	// capability is compiled out (see ExactAvailable).
	ExactEnabled bool

	// MaxPasses caps 2-opt passes; 0 means run until a local optimum.
	MaxPasses int

	// Policy is the 2-opt acceptance policy.
	Policy Policy

	// Eps is the absolute improvement tolerance of 2-opt: a move is accepted
	// when Δ < −(Eps + round-off bound of the evaluated sums). The bound is
	// relative to the arcs involved, so small gains next to
	// matrix.Unreachable arcs are not masked by the sentinel's magnitude.
	Eps float64

	// Scale converts float costs to the exact engines' int64 domain
	// (1000: kilometres to metres).
	Scale float64

	// HeldKarpMaxN: the exact strategy uses the Held–Karp DP up to this N
	// and branch-and-bound above it.
	HeldKarpMaxN int

	// MaxNodes bounds branch-and-bound node expansions; 0 means unbounded.
	MaxNodes int64

	// TimeLimit bounds one exact search; 0 means no limit besides ctx.
	TimeLimit time.Duration

	// Logger receives debug events (fallbacks, capped searches). Never nil
	// after NewOptimizer.
	Logger logrus.FieldLogger

	// Observer receives one Event per Optimize call. May be nil.
	Observer Observer

	// exactCapability overrides the compiled-in capability (tests only).
	exactCapability *bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the documented defaults with a discarding logger.
func DefaultConfig() Config {
	return Config{
		Threshold:    DefaultThreshold,
		ExactEnabled: true,
		MaxPasses:    DefaultMaxPasses,
		Policy:       FirstImprovement,
		Eps:          DefaultEps,
		Scale:        DefaultScale,
		HeldKarpMaxN: DefaultHeldKarpMaxN,
		MaxNodes:     DefaultMaxNodes,
		TimeLimit:    DefaultTimeLimit,
		Logger:       discardLogger(),
	}
}

// WithConfig replaces the whole Config (later options still apply on top).
func WithConfig(c Config) Option { return func(o *Config) { *o = c } }

// WithThreshold sets the size above which the exact strategy is used.
func WithThreshold(n int) Option { return func(o *Config) { o.Threshold = n } }

// WithExact enables or disables the exact strategy.
func WithExact(enabled bool) Option { return func(o *Config) { o.ExactEnabled = enabled } }

// WithMaxPasses sets the 2-opt pass cap (0 = until local optimum).
func WithMaxPasses(n int) Option { return func(o *Config) { o.MaxPasses = n } }

// WithPolicy sets the 2-opt acceptance policy.
func WithPolicy(p Policy) Option { return func(o *Config) { o.Policy = p } }

// WithEps sets the improvement tolerance.
func WithEps(eps float64) Option { return func(o *Config) { o.Eps = eps } }

// WithScale sets the float→int64 cost scale of the exact engines.
func WithScale(s float64) Option { return func(o *Config) { o.Scale = s } }

// WithHeldKarpMaxN sets the largest N solved by Held–Karp.
func WithHeldKarpMaxN(n int) Option { return func(o *Config) { o.HeldKarpMaxN = n } }

// WithMaxNodes sets the branch-and-bound node budget.
func WithMaxNodes(n int64) Option { return func(o *Config) { o.MaxNodes = n } }

// WithTimeLimit sets the exact search time budget.
func WithTimeLimit(d time.Duration) Option { return func(o *Config) { o.TimeLimit = d } }

// WithLogger sets the debug logger; nil restores the discarding logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Config) {
		if l == nil {
			l = discardLogger()
		}
		o.Logger = l
	}
}

// WithObserver sets the per-call observer.
func WithObserver(obs Observer) Option { return func(o *Config) { o.Observer = obs } }

// withExactCapability pins the capability check, regardless of build tags.
func withExactCapability(available bool) Option {
	return func(o *Config) { o.exactCapability = &available }
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
