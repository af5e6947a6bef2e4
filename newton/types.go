// Package newton defines the configuration options and sentinel errors
// for the Newton–Raphson solver.
package newton

import "errors"

// Func is a caller-supplied scalar function; both f and its derivative
// df are passed in this shape. It must be evaluable at every point the
// solver visits.
type Func func(x float64) float64

// ErrZeroDerivative indicates that df evaluated to exactly zero at
// some iterate, making the tangent step undefined. The solve aborts
// immediately and no partial history is returned.
var ErrZeroDerivative = errors.New("newton: derivative is zero, no solution found")

// ErrNoConvergence indicates the iteration budget was spent with the
// step size still at or above the tolerance.
var ErrNoConvergence = errors.New("newton: maximum number of iterations reached without convergence")

// ErrBadInput indicates a negative tolerance or iteration cap.
var ErrBadInput = errors.New("newton: eps and max iterations must be non-negative")

// DefaultEps is the canonical convergence tolerance.
const DefaultEps = 1e-6

// DefaultMaxIter is the canonical iteration cap.
const DefaultMaxIter = 100

// Options configures the Newton solver.
//
// Fields:
//   - Eps         — convergence tolerance; a zero value means DefaultEps.
//   - MaxIter     — iteration cap; a zero value means DefaultMaxIter.
//   - ReturnTrace — if true, Newton also returns the full iterate
//     history, seeded with x0.
//   - Verbose     — if true, Newton prints a one-line convergence message
//     on success and implies ReturnTrace.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.ReturnTrace = true
//
//	root, history, err := Newton(f, df, 1.0, &opts)
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

// WithReturnTrace returns an Option that enables iterate-history capture.
func WithReturnTrace(capture bool) Option {
	return func(opts *Options) {
		opts.ReturnTrace = capture
	}
}

// WithVerbose returns an Option that enables the convergence message
// (and, implicitly, history capture).
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
