// Package fixedpoint provides an implementation of fixed-point
// iteration for scalar mappings.
package fixedpoint

import "math"

// Iterate applies f repeatedly starting from x0 until two successive
// values agree to within the tolerance, and returns the latest value.
//
// Error Conditions:
//   - ErrBadInput      : if opts carries a negative Eps or MaxIter.
//   - ErrNoConvergence : if MaxIter steps elapse with |f(x)−x| ≥ eps.
//
// Steps:
//  1. Normalize options: nil opts or zero fields fall back to DefaultEps /
//     DefaultMaxIter; negative values are rejected.
//  2. Loop up to MaxIter times: compute xNext = f(x).
//  3. Stop and return xNext when |xNext − x| < eps.
//  4. Otherwise advance: x = xNext.
//  5. Budget spent without convergence → ErrNoConvergence.
//
// There is no precondition on x0; whether the iteration converges is a
// property of f (it must contract near the fixed point).
// Complexity: O(MaxIter) time, O(1) memory.
func Iterate(f Func, x0 float64, opts *Options) (float64, error) {
	// 1. Apply options or defaults.
	eps, maxIter := DefaultEps, DefaultMaxIter
	if opts != nil {
		if opts.Eps < 0 || opts.MaxIter < 0 {
			return 0, ErrBadInput
		}
		if opts.Eps > 0 {
			eps = opts.Eps
		}
		if opts.MaxIter > 0 {
			maxIter = opts.MaxIter
		}
	}

	x := x0
	for k := 0; k < maxIter; k++ {
		// 2. One application of the mapping.
		xNext := f(x)

		// 3. Step-size stopping rule.
		if math.Abs(xNext-x) < eps {
			return xNext, nil
		}

		// 4. Advance.
		x = xNext
	}

	// 5. Iteration budget exhausted.
	return 0, ErrNoConvergence
}
