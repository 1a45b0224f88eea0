package statics

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
)

const (
	// DefaultKmax caps the Gauss–Seidel sweeps of UpdateFormFromForce.
	DefaultKmax = 100

	// DefaultTol is the relative movement tolerance (× diagram scale).
	DefaultTol = 1e-9

	// MinAbsTol floors the absolute movement tolerance.
	MinAbsTol = 1e-12

	// DefaultCondWarn is the condition estimate above which a solve is
	// flagged WarnIllConditioned.
	DefaultCondWarn = 1e12
)

// DefaultCondLimit is the condition estimate above which a solve fails with
// ErrSingularSystem (1/ε).
var DefaultCondLimit = 1 / 0x1p-52

const (
	panicKmaxInvalid    = "statics: WithKmax: k must be > 0"
	panicTolInvalid     = "statics: WithTolerance: tol must be finite and > 0"
	panicCondInvalid    = "statics: WithCondLimit/WithCondWarn: limit must be > 1"
	panicRankTolInvalid = "statics: WithRankTol: tol must be finite, non-negative"
	panicCGTolInvalid   = "statics: WithCGTol: tol must be finite and > 0"
)

// Option configures a statics call.
type Option func(*Options)

// Options is the effective configuration of a call.
type Options struct {
	kmax            int
	tol             float64
	condLimit       float64
	condWarn        float64
	rankTol         float64
	cgTol           float64 // 0 keeps matrix.DefaultResidualTol
	logger          *log.Logger
	markIndependent bool
}

// WithKmax sets the maximum number of Gauss–Seidel sweeps.
func WithKmax(k int) Option {
	if k <= 0 {
		panic(panicKmaxInvalid)
	}

	return func(o *Options) { o.kmax = k }
}

// WithTolerance sets the relative movement tolerance.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicTolInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithCondLimit sets the fatal condition threshold.
func WithCondLimit(limit float64) Option {
	if math.IsNaN(limit) || limit <= 1 {
		panic(panicCondInvalid)
	}

	return func(o *Options) { o.condLimit = limit }
}

// WithCondWarn sets the warning condition threshold.
func WithCondWarn(limit float64) Option {
	if math.IsNaN(limit) || limit <= 1 {
		panic(panicCondInvalid)
	}

	return func(o *Options) { o.condWarn = limit }
}

// WithRankTol sets the absolute pivot threshold of the rank computation;
// zero selects the automatic rule of matrix.RankTol.
func WithRankTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicRankTolInvalid)
	}

	return func(o *Options) { o.rankTol = tol }
}

// WithCGTol sets the relative residual target of the conjugate gradient
// solve in UpdateForceFromForm.
func WithCGTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicCGTolInvalid)
	}

	return func(o *Options) { o.cgTol = tol }
}

// WithLogger routes debug and warning output to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMarkIndependent makes IdentifyDOF flag the independent edges (is_ind)
// on the form diagram.
func WithMarkIndependent() Option {
	return func(o *Options) { o.markIndependent = true }
}

var discard = log.New(io.Discard)

func gatherOptions(opts ...Option) Options {
	o := Options{
		kmax:      DefaultKmax,
		tol:       DefaultTol,
		condLimit: DefaultCondLimit,
		condWarn:  DefaultCondWarn,
		logger:    discard,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// warn records w and logs it.
func (o *Options) warn(dst *[]Warning, kind WarningKind, msg string, keyvals ...any) {
	*dst = append(*dst, Warning{Kind: kind, Message: msg})
	o.logger.Warn(msg, keyvals...)
}
