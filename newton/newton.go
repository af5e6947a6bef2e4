// Package newton provides an implementation of the Newton–Raphson
// method for scalar root-finding with a caller-supplied derivative.
package newton

import (
	"fmt"
	"math"
)

// Newton locates a root of f starting from the guess x0, using df as
// the derivative of f for tangent-line steps.
//
// Error Conditions:
//   - ErrBadInput       : if opts carries a negative Eps or MaxIter.
//   - ErrZeroDerivative : if df(x) == 0 at any iterate — checked fresh every
//     step, so a derivative that flattens out mid-solve still aborts.
//   - ErrNoConvergence  : if MaxIter steps elapse with steps still ≥ eps.
//
// Steps:
//  1. Normalize options: nil opts or zero fields fall back to DefaultEps /
//     DefaultMaxIter; negative values are rejected.
//  2. Seed the iterate history with x0 (captured only when requested).
//  3. Loop up to MaxIter times: evaluate fx = f(x) and dfx = df(x).
//  4. dfx exactly zero → abort with ErrZeroDerivative; the partial
//     history is discarded, not returned.
//  5. Tangent step: xNext = x − fx/dfx, appended to the history.
//  6. Stop and return xNext when |xNext − x| < eps.
//  7. Budget spent without convergence → ErrNoConvergence.
//
// Returns (root, history, error); history is nil unless opts requests it.
// Complexity: O(MaxIter) time (quadratic convergence makes the typical
// count far smaller), O(1) memory (O(k) with history capture).
func Newton(f, df Func, x0 float64, opts *Options) (float64, []float64, error) {
	// 1. Apply options or defaults.
	eps, maxIter, capture, verbose, err := normalize(opts)
	if err != nil {
		return 0, nil, err
	}

	// 2. The history is seeded with the initial guess.
	var trace []float64
	if capture {
		trace = append(trace, x0)
	}

	x := x0
	for k := 1; k <= maxIter; k++ {
		// 3. Fresh evaluations at the current iterate.
		fx := f(x)
		dfx := df(x)

		// 4. The tangent step divides by dfx; exactly zero means the
		//    linearization has no root at all.
		if dfx == 0 {
			return 0, nil, ErrZeroDerivative
		}

		// 5. Jump to the tangent line's zero crossing.
		xNext := x - fx/dfx
		if capture {
			trace = append(trace, xNext)
		}

		// 6. Step-size stopping rule.
		if math.Abs(xNext-x) < eps {
			if verbose {
				fmt.Printf("Converged to %g after %d iterations.\n", xNext, k)
			}

			return xNext, trace, nil
		}

		x = xNext
	}

	// 7. Iteration budget exhausted.
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

	// Verbose mode reports the history as well as printing the message.
	return eps, maxIter, opts.ReturnTrace || opts.Verbose, opts.Verbose, nil
}
