package newton_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rootfind/newton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fSqrt2(x float64) float64  { return x*x - 2 }
func dfSqrt2(x float64) float64 { return 2 * x }

// TestNewton_Sqrt2 verifies quadratic convergence to √2 from x0 = 1:
// default tolerance reached in well under ten iterations.
func TestNewton_Sqrt2(t *testing.T) {
	opts := newton.DefaultOptions()
	opts.ReturnTrace = true

	root, trace, err := newton.Newton(fSqrt2, dfSqrt2, 1.0, &opts)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1e-8, "root should approximate √2")

	// trace = [x0, x1, ...]; steps taken = len(trace)-1.
	assert.Less(t, len(trace)-1, 10, "quadratic convergence needs far fewer than 10 steps")
	assert.Equal(t, 1.0, trace[0], "history must be seeded with x0")
	assert.Equal(t, root, trace[len(trace)-1], "history must end at the returned root")
}

// TestNewton_ZeroDerivativeAtStart checks the guard for a derivative
// that is zero from the very first iterate, for any x0.
func TestNewton_ZeroDerivativeAtStart(t *testing.T) {
	zero := func(float64) float64 { return 0 }

	for _, x0 := range []float64{-3, 0, 1, 42} {
		_, trace, err := newton.Newton(fSqrt2, zero, x0, nil)
		assert.ErrorIs(t, err, newton.ErrZeroDerivative, "x0=%v must hit the zero-derivative guard", x0)
		assert.Nil(t, trace, "partial history must be discarded")
	}
}

// TestNewton_ZeroDerivativeMidSolve checks that the guard fires fresh on
// every iteration, not just the first: the derivative below is nonzero
// on its first evaluation and zero afterwards.
func TestNewton_ZeroDerivativeMidSolve(t *testing.T) {
	calls := 0
	df := func(float64) float64 {
		calls++
		if calls == 1 {
			return 1
		}

		return 0
	}
	f := func(x float64) float64 { return x - 10 } // keeps the step size large

	opts := newton.DefaultOptions()
	opts.ReturnTrace = true

	_, trace, err := newton.Newton(f, df, 0, &opts)
	assert.ErrorIs(t, err, newton.ErrZeroDerivative, "second-step zero derivative must abort")
	assert.Nil(t, trace, "partial history must be discarded on abort")
	assert.Equal(t, 2, calls, "the guard fired on the second evaluation")
}

// TestNewton_FasterThanBisection pins the quadratic-vs-linear contrast:
// the same tolerance that costs bisection ~20 halvings on [0,2] is met
// by Newton in a handful of steps.
func TestNewton_FasterThanBisection(t *testing.T) {
	opts := newton.DefaultOptions()
	opts.Eps = 1e-10
	opts.ReturnTrace = true

	_, trace, err := newton.Newton(fSqrt2, dfSqrt2, 1.0, &opts)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(trace)-1, 7, "1e-10 should cost at most a few doublings of precision")
}

// TestNewton_MaxIterExhausted verifies ErrNoConvergence when the cap is
// too small for the step-size criterion.
func TestNewton_MaxIterExhausted(t *testing.T) {
	opts := newton.DefaultOptions()
	opts.MaxIter = 1

	_, _, err := newton.Newton(fSqrt2, dfSqrt2, 1.0, &opts)
	assert.ErrorIs(t, err, newton.ErrNoConvergence, "the first step from 1.0 moves by 0.5")
}

// TestNewton_NoTraceByDefault confirms the history stays nil unless
// requested, while the scalar result is unchanged.
func TestNewton_NoTraceByDefault(t *testing.T) {
	root, trace, err := newton.Newton(fSqrt2, dfSqrt2, 1.0, nil)
	require.NoError(t, err)
	assert.Nil(t, trace, "history must be nil without ReturnTrace")

	opts := newton.DefaultOptions()
	opts.ReturnTrace = true
	traced, trace, err := newton.Newton(fSqrt2, dfSqrt2, 1.0, &opts)
	require.NoError(t, err)
	assert.Equal(t, root, traced, "history capture must not change the result")
	assert.Equal(t, root, trace[len(trace)-1])
}

// TestNewton_BadInput ensures negative tolerances and caps are rejected.
func TestNewton_BadInput(t *testing.T) {
	opts := newton.Options{Eps: -1}
	_, _, err := newton.Newton(fSqrt2, dfSqrt2, 1.0, &opts)
	assert.ErrorIs(t, err, newton.ErrBadInput, "negative Eps must error ErrBadInput")

	opts = newton.Options{MaxIter: -1}
	_, _, err = newton.Newton(fSqrt2, dfSqrt2, 1.0, &opts)
	assert.ErrorIs(t, err, newton.ErrBadInput, "negative MaxIter must error ErrBadInput")
}

// TestNewton_OptionSetters exercises the functional option helpers.
func TestNewton_OptionSetters(t *testing.T) {
	opts := newton.DefaultOptions()
	newton.WithEps(1e-12)(&opts)
	newton.WithMaxIter(50)(&opts)
	newton.WithReturnTrace(true)(&opts)
	newton.WithVerbose(false)(&opts)

	assert.Equal(t, 1e-12, opts.Eps)
	assert.Equal(t, 50, opts.MaxIter)
	assert.True(t, opts.ReturnTrace)

	root, trace, err := newton.Newton(fSqrt2, dfSqrt2, 1.0, &opts)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1e-11)
	assert.NotEmpty(t, trace)
}
