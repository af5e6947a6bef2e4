// Package expr provides compilation of single-variable math expressions
// into plain Go functions, backed by govaluate.
package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
)

// mathFuncs is the helper table registered with every compiled
// expression. Each helper coerces its arguments the same way the final
// result is coerced, so "sqrt(x)" and "pow(x, 2)" behave like their
// math-package counterparts.
func mathFuncs() map[string]govaluate.ExpressionFunction {
	return map[string]govaluate.ExpressionFunction{
		"sin": func(args ...interface{}) (interface{}, error) { return math.Sin(toFloat(args[0])), nil },
		"cos": func(args ...interface{}) (interface{}, error) { return math.Cos(toFloat(args[0])), nil },
		"tan": func(args ...interface{}) (interface{}, error) { return math.Tan(toFloat(args[0])), nil },
		"exp": func(args ...interface{}) (interface{}, error) { return math.Exp(toFloat(args[0])), nil },
		"log": func(args ...interface{}) (interface{}, error) { return math.Log(toFloat(args[0])), nil },
		"sqrt": func(args ...interface{}) (interface{}, error) {
			return math.Sqrt(toFloat(args[0])), nil
		},
		"abs": func(args ...interface{}) (interface{}, error) {
			return math.Abs(toFloat(args[0])), nil
		},
		"pow": func(args ...interface{}) (interface{}, error) {
			return math.Pow(toFloat(args[0]), toFloat(args[1])), nil
		},
	}
}

// Compile parses src, an expression in the single variable x, and
// returns it as a scalar function.
//
// Input is normalized before parsing: decimal commas become dots
// ("0,5" → "0.5") and the caret becomes govaluate's exponent operator
// ("x^2" → "x**2"), since bitwise XOR has no place in scalar math.
//
// Syntax errors are reported here, wrapped around the govaluate error;
// runtime evaluation failures (for example log of a string result) are
// mapped to NaN by the returned function.
func Compile(src string) (func(float64) float64, error) {
	normalized := strings.ReplaceAll(src, ",", ".")
	normalized = strings.ReplaceAll(normalized, "^", "**")

	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(normalized, mathFuncs())
	if err != nil {
		return nil, fmt.Errorf("expr: parse %q: %w", src, err)
	}

	// One parameter map per compiled function, reused across calls.
	params := map[string]interface{}{"x": 0.0}

	return func(x float64) float64 {
		params["x"] = x
		v, err := parsed.Evaluate(params)
		if err != nil {
			return math.NaN()
		}

		return toFloat(v)
	}, nil
}

// toFloat coerces govaluate result types to float64, yielding NaN for
// anything that is not a number.
func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return math.NaN()
		}

		return f
	default:
		return math.NaN()
	}
}
