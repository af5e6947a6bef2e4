package fixedpoint_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rootfind/fixedpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dottie is the fixed point of cos(x), ≈ 0.739085.
const dottie = 0.7390851332151607

// TestIterate_Cosine verifies convergence of x ← cos(x) from 0.5 to
// the Dottie number with default options.
func TestIterate_Cosine(t *testing.T) {
	x, err := fixedpoint.Iterate(math.Cos, 0.5, nil)
	require.NoError(t, err, "cos is a contraction near its fixed point")
	assert.InDelta(t, dottie, x, 1e-5, "iteration should approach the Dottie number")
}

// TestIterate_ImmediateFixedPoint checks that a guess already at the
// fixed point converges on the very first step.
func TestIterate_ImmediateFixedPoint(t *testing.T) {
	identity := func(x float64) float64 { return x }

	x, err := fixedpoint.Iterate(identity, 3.25, nil)
	require.NoError(t, err)
	assert.Equal(t, 3.25, x, "identity maps the guess to itself on step one")
}

// TestIterate_Babylonian converges to √2 via the Babylonian mean map
// x ← (x + 2/x)/2, a fixed-point formulation of x² = 2.
func TestIterate_Babylonian(t *testing.T) {
	f := func(x float64) float64 { return (x + 2/x) / 2 }

	x, err := fixedpoint.Iterate(f, 1.0, nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, x, 1e-6)
}

// TestIterate_MaxIterExhausted verifies ErrNoConvergence when the cap
// is too small for the step-size criterion.
func TestIterate_MaxIterExhausted(t *testing.T) {
	opts := fixedpoint.DefaultOptions()
	opts.MaxIter = 1

	_, err := fixedpoint.Iterate(math.Cos, 0.5, &opts)
	assert.ErrorIs(t, err, fixedpoint.ErrNoConvergence, "one step of cos from 0.5 moves by ≈0.38")
}

// TestIterate_Divergent verifies that a non-contracting map burns the
// whole budget and reports exhaustion rather than a bogus value.
func TestIterate_Divergent(t *testing.T) {
	double := func(x float64) float64 { return 2 * x } // |f'| = 2, never settles

	_, err := fixedpoint.Iterate(double, 1.0, nil)
	assert.ErrorIs(t, err, fixedpoint.ErrNoConvergence)
}

// TestIterate_BadInput ensures negative tolerances and caps are rejected.
func TestIterate_BadInput(t *testing.T) {
	opts := fixedpoint.Options{Eps: -1e-6}
	_, err := fixedpoint.Iterate(math.Cos, 0.5, &opts)
	assert.ErrorIs(t, err, fixedpoint.ErrBadInput, "negative Eps must error ErrBadInput")

	opts = fixedpoint.Options{MaxIter: -1}
	_, err = fixedpoint.Iterate(math.Cos, 0.5, &opts)
	assert.ErrorIs(t, err, fixedpoint.ErrBadInput, "negative MaxIter must error ErrBadInput")
}

// TestIterate_OptionSetters exercises the functional option helpers.
func TestIterate_OptionSetters(t *testing.T) {
	opts := fixedpoint.DefaultOptions()
	fixedpoint.WithEps(1e-10)(&opts)
	fixedpoint.WithMaxIter(500)(&opts)

	assert.Equal(t, 1e-10, opts.Eps)
	assert.Equal(t, 500, opts.MaxIter)

	x, err := fixedpoint.Iterate(math.Cos, 0.5, &opts)
	require.NoError(t, err)
	assert.InDelta(t, dottie, x, 1e-9)
}
