// Package bisect finds a root of a scalar function by repeatedly
// halving an interval known to contain one.
//
// 🚀 What is bisection?
//
//	Given a continuous f and a bracket [a, b] with f(a)·f(b) < 0, the
//	Intermediate Value Theorem guarantees a root between a and b.
//	Bisection evaluates f at the midpoint, keeps the half that still
//	straddles the sign change, and repeats.  It is the workhorse when:
//	  • f is cheap but its derivative is unknown or unreliable
//	  • a guaranteed, monotonically shrinking error bound is required
//	  • robustness matters more than speed (linear convergence)
//
// ✨ Key features:
//   - sign-opposition invariant maintained at every step
//   - dual stopping rule: |f(c)| < eps OR half the bracket width < eps
//   - optional trace capture of every midpoint (ReturnTrace)
//   - optional convergence message on stdout (Verbose)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rootfind/bisect"
//
//	f := func(x float64) float64 { return x*x - 2 }
//	opts := bisect.DefaultOptions()
//	opts.ReturnTrace = true
//
//	root, trace, err := bisect.Bisect(f, 0, 2, &opts)
//	// root ≈ 1.41421, trace holds every midpoint visited
//
// Errors:
//   - ErrNoBracket     — f(a) and f(b) do not have opposite signs
//   - ErrNoConvergence — MaxIter steps elapsed before either stop rule fired
//   - ErrBadInput      — negative Eps or MaxIter
//
// Performance:
//
//   - Time:   O(MaxIter) evaluations of f (one per step after entry)
//   - Memory: O(1), or O(k) when the trace is captured
//
// The bracket half-width halves each step, so the error bound after k
// steps is |b−a| / 2^(k+1) — about 21 steps per decimal digit of the
// initial width.
package bisect
