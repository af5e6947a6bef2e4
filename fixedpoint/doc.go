// Package fixedpoint finds a fixed point of a scalar mapping by
// repeated application: x ← f(x) until successive values agree.
//
// 🚀 What is fixed-point iteration?
//
//	A value x* is a fixed point of f when f(x*) = x*.  Starting from a
//	guess x0, the iteration x ← f(x) converges to x* whenever f is a
//	contraction near x* (|f′| < 1 there).  Root-finding problems
//	g(x) = 0 become fixed-point problems via any rearrangement
//	x = f(x); the classic demo is x ← cos(x) → 0.739085 (the Dottie
//	number).
//
// ✨ Key features:
//   - single step-size stopping rule: |f(x) − x| < eps
//   - no precondition on the initial guess
//   - deliberately minimal surface: no trace or verbose mode —
//     the mapping is applied, the latest value is returned
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rootfind/fixedpoint"
//
//	x, err := fixedpoint.Iterate(math.Cos, 0.5, nil)
//	// x ≈ 0.739085
//
// Errors:
//   - ErrNoConvergence — MaxIter steps elapsed with steps still ≥ eps
//     (typical when f is not a contraction and the iteration diverges
//     or cycles)
//   - ErrBadInput      — negative Eps or MaxIter
//
// Performance:
//
//   - Time:   O(MaxIter) evaluations of f
//   - Memory: O(1)
package fixedpoint
