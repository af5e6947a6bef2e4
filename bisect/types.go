// Package bisect defines the configuration options and sentinel errors
// for the bisection solver.
package bisect

import "errors"

// Func is a caller-supplied scalar function f(x).
// It must be evaluable at every point the solver visits; the solver
// enforces no domain-validity contract of its own.
type Func func(x float64) float64

// ErrNoBracket indicates that f(a) and f(b) do not straddle a sign
// change, so the interval is not guaranteed to contain a root.
// Returned before any iteration is attempted.
var ErrNoBracket = errors.New("bisect: f(a) and f(b) must have opposite signs")

// ErrNoConvergence indicates the iteration budget was spent without
// either stopping rule being satisfied.
var ErrNoConvergence = errors.New("bisect: maximum number of iterations reached without convergence")

// ErrBadInput indicates a negative tolerance or iteration cap.
var ErrBadInput = errors.New("bisect: eps and max iterations must be non-negative")

// DefaultEps is the canonical convergence tolerance.
const DefaultEps = 1e-6

// DefaultMaxIter is the canonical iteration cap.
const DefaultMaxIter = 100

// Options configures the bisection solver.
//
// Fields:
//   - Eps         — convergence tolerance; a zero value means DefaultEps.
//   - MaxIter     — iteration cap; a zero value means DefaultMaxIter.
//   - ReturnTrace — if true, Bisect also returns every midpoint visited,
//     in order, as the trace slice.
//   - Verbose     — if true, Bisect prints a one-line convergence message
//     on success and implies ReturnTrace.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Eps = 1e-9        // pin the root to nine digits
//	opts.ReturnTrace = true
//
//	root, trace, err := Bisect(f, a, b, &opts)
type Options struct {
	Eps         float64
	MaxIter     int
	ReturnTrace bool
	Verbose     bool
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithEps returns an Option that sets the convergence tolerance.
func WithEps(eps float64) Option {
	return func(opts *Options) {
		opts.Eps = eps
	}
}

// WithMaxIter returns an Option that sets the iteration cap.
func WithMaxIter(n int) Option {
	return func(opts *Options) {
		opts.MaxIter = n
	}
}

// WithReturnTrace returns an Option that enables trace capture.
func WithReturnTrace(capture bool) Option {
	return func(opts *Options) {
		opts.ReturnTrace = capture
	}
}

// WithVerbose returns an Option that enables the convergence message
// (and, implicitly, trace capture).
func WithVerbose(verbose bool) Option {
	return func(opts *Options) {
		opts.Verbose = verbose
	}
}

// DefaultOptions returns Options initialized with the canonical
// defaults:
//
//	– Eps     = DefaultEps (1e-6)
//	– MaxIter = DefaultMaxIter (100)
//	– ReturnTrace, Verbose = false.
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Eps:     DefaultEps,
		MaxIter: DefaultMaxIter,
	}
}
