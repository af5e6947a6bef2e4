// Package fixedpoint defines the configuration options and sentinel
// errors for the fixed-point solver.
package fixedpoint

import "errors"

// Func is a caller-supplied scalar mapping f(x) whose fixed point is
// sought. It must be evaluable at every point the iteration visits.
type Func func(x float64) float64

// ErrNoConvergence indicates the iteration budget was spent with the
// step size still at or above the tolerance.
var ErrNoConvergence = errors.New("fixedpoint: maximum number of iterations reached without convergence")

// ErrBadInput indicates a negative tolerance or iteration cap.
var ErrBadInput = errors.New("fixedpoint: eps and max iterations must be non-negative")

// DefaultEps is the canonical convergence tolerance.
const DefaultEps = 1e-6

// DefaultMaxIter is the canonical iteration cap.
const DefaultMaxIter = 100

// Options configures the fixed-point solver.
//
// Fields:
//   - Eps     — convergence tolerance; a zero value means DefaultEps.
//   - MaxIter — iteration cap; a zero value means DefaultMaxIter.
//
// Unlike bisect and newton there is no trace or verbose mode here:
// the iteration keeps only its latest value.
type Options struct {
	Eps     float64
	MaxIter int
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

// DefaultOptions returns Options initialized with the canonical
// defaults (Eps = 1e-6, MaxIter = 100).
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Eps:     DefaultEps,
		MaxIter: DefaultMaxIter,
	}
}
