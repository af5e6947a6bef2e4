// Package rootfind is your toolbox for locating roots of scalar
// functions — three classic iterative solvers behind one small,
// uniform API.
//
// 🚀 What is rootfind?
//
//	A compact, dependency-light library that brings together:
//		• Bisection: bracket a sign change, halve it until the root is pinned
//		• Fixed-point iteration: apply f repeatedly until x = f(x)
//		• Newton's method: follow the tangent line for quadratic convergence
//		• Expression compiler: turn "x^2 - 2" into a solver-ready func(x)
//
// ✨ Why choose rootfind?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Uniform contract – every solver returns (root, trace, error)
//   - Sentinel errors – bad brackets, zero derivatives and exhausted
//     iteration budgets are distinct, errors.Is-able values
//   - Trace capture – opt in to the full iterate sequence for plotting,
//     debugging or streaming
//
// Under the hood, everything is organized under five subpackages:
//
//	bisect/     — bracketing bisection search
//	fixedpoint/ — fixed-point iteration x ← f(x)
//	newton/     — Newton–Raphson with a zero-derivative guard
//	expr/       — govaluate-backed compilation of f(x) strings
//	cmd/        — rootfindd, a small solve service with live SSE iterates
//
// Quick ASCII example:
//
//	    f(a) < 0          f(b) > 0
//	    a────────c────────b
//	             └─ midpoint: keep the half that still straddles zero
//
// Dive into the per-package doc.go files for algorithms, complexity
// notes and worked examples.
//
//	go get github.com/katalvlaran/rootfind
package rootfind
