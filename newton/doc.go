// Package newton finds a root of a scalar function by Newton–Raphson
// tangent-line steps, using a caller-supplied derivative.
//
// 🚀 What is Newton's method?
//
//	From the current iterate x, approximate f by its tangent line and
//	jump to where that line crosses zero:
//
//	    x ← x − f(x) / f′(x)
//
//	Near a simple root with a well-behaved derivative this converges
//	quadratically — the number of correct digits roughly doubles each
//	step, so six-digit accuracy typically arrives in well under ten
//	iterations where bisection needs twenty.
//
// ✨ Key features:
//   - caller-supplied derivative — no automatic differentiation
//   - zero-derivative guard checked fresh on every iteration
//   - full iterate history, seeded with x0, on request (ReturnTrace)
//   - optional convergence message on stdout (Verbose)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rootfind/newton"
//
//	f := func(x float64) float64 { return x*x - 2 }
//	df := func(x float64) float64 { return 2 * x }
//
//	root, _, err := newton.Newton(f, df, 1.0, nil)
//	// root ≈ 1.41421356 after ~5 iterations
//
// Errors:
//   - ErrZeroDerivative — f′ evaluated to exactly 0 at some iterate; the
//     solve aborts and the partial history is discarded
//   - ErrNoConvergence  — MaxIter steps elapsed with steps still ≥ eps
//   - ErrBadInput       — negative Eps or MaxIter
//
// Performance:
//
//   - Time:   O(MaxIter) evaluations of f and f′ (usually far fewer)
//   - Memory: O(1), or O(k) when the trace is captured
//
// Caveat: convergence is local. A poor x0, an inflection point or a
// nearly flat f′ can send the iteration far afield; bracket first with
// bisect when in doubt.
package newton
