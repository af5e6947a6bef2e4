// Package expr compiles textual expressions like "x^2 - 2" into
// solver-ready scalar functions.
//
// 🚀 What is expr?
//
//	A thin bridge between user input and the rootfind solvers: a string
//	in the single variable x is parsed once with govaluate and returned
//	as a plain func(float64) float64 that can be handed straight to
//	bisect.Bisect, fixedpoint.Iterate or newton.Newton.
//
// ✨ Key features:
//   - one compile, many cheap evaluations
//   - math helpers registered out of the box:
//     sin, cos, tan, exp, log, sqrt, abs, pow(x, y)
//   - decimal commas normalized ("0,5" → "0.5") for locale-typed input
//   - evaluation failures surface as NaN, never as a panic
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rootfind/expr"
//
//	f, err := expr.Compile("x^2 - 2")
//	if err != nil { ... }           // syntax errors caught at compile time
//
//	root, _, err := bisect.Bisect(bisect.Func(f), 0, 2, nil)
//
// Note: the returned function is not safe for concurrent use — it
// reuses one parameter map per compiled expression. Compile a fresh
// copy per goroutine.
package expr
