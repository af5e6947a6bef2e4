// Package bisect provides an implementation of the bisection method for
// scalar root-finding on a sign-changing bracket.
package bisect

import (
	"fmt"
	"math"
)

// Bisect locates a root of f inside the bracket [a, b].
// The bounds may be given in either order; what matters is that f(a)
// and f(b) have strictly opposite signs.
//
// Error Conditions:
//   - ErrBadInput      : if opts carries a negative Eps or MaxIter.
//   - ErrNoBracket     : if f(a)·f(b) ≥ 0 at entry.
//   - ErrNoConvergence : if MaxIter steps elapse before either stop rule fires.
//
// Steps:
//  1. Normalize options: nil opts or zero fields fall back to DefaultEps /
//     DefaultMaxIter; negative values are rejected.
//  2. Validate the bracket: f(a)·f(b) < 0, else ErrNoBracket.
//  3. Loop up to MaxIter times: compute the midpoint c = (a+b)/2 and
//     evaluate fc = f(c); record c in the trace when capture is on.
//  4. Stop at c when |fc| < eps or half the bracket width |b−a|/2 < eps.
//     An exact zero fc short-circuits here, before any bracket update.
//  5. Otherwise shrink the bracket, preserving sign-opposition: if fc
//     opposes f(a), the root lies left of c, so b = c; else a = c (and
//     the cached f(a) becomes fc).
//  6. Budget spent without convergence → ErrNoConvergence.
//
// Returns (root, trace, error); trace is nil unless opts requests it.
// Complexity: O(MaxIter) time, O(1) memory (O(k) with trace capture).
func Bisect(f Func, a, b float64, opts *Options) (float64, []float64, error) {
	// 1. Apply options or defaults.
	eps, maxIter, capture, verbose, err := normalize(opts)
	if err != nil {
		return 0, nil, err
	}

	// 2. The bracket must straddle a sign change; equality covers the
	//    degenerate case where either endpoint value is exactly zero.
	fa := f(a)
	if fa*f(b) >= 0 {
		return 0, nil, ErrNoBracket
	}

	var trace []float64
	for k := 1; k <= maxIter; k++ {
		// 3. Midpoint of the current bracket.
		c := (a + b) / 2
		fc := f(c)
		if capture {
			trace = append(trace, c)
		}

		// 4. Dual stopping rule. |b-a| keeps the width positive even
		//    when the caller passed the bounds reversed.
		if math.Abs(fc) < eps || math.Abs(b-a)/2 < eps {
			if verbose {
				fmt.Printf("Converged to %g after %d iterations.\n", c, k)
			}

			return c, trace, nil
		}

		// 5. Keep the half that still straddles the sign change.
		if fc*fa < 0 {
			b = c
		} else {
			a = c
			fa = fc // a moved, refresh its cached function value
		}
	}

	// 6. Iteration budget exhausted.
	return 0, nil, ErrNoConvergence
}

// normalize resolves opts into concrete solver parameters.
// Zero-valued fields fall back to the package defaults; negative
// values are rejected with ErrBadInput.
func normalize(opts *Options) (eps float64, maxIter int, capture, verbose bool, err error) {
	eps, maxIter = DefaultEps, DefaultMaxIter
	if opts == nil {
		return eps, maxIter, false, false, nil
	}
	if opts.Eps < 0 || opts.MaxIter < 0 {
		return 0, 0, false, false, ErrBadInput
	}
	if opts.Eps > 0 {
		eps = opts.Eps
	}
	if opts.MaxIter > 0 {
		maxIter = opts.MaxIter
	}

	// Verbose mode reports the trace as well as printing the message.
	return eps, maxIter, opts.ReturnTrace || opts.Verbose, opts.Verbose, nil
}
