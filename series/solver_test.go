package series_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypercat/catalan"
	"github.com/katalvlaran/hypercat/exact"
	"github.com/katalvlaran/hypercat/geom"
	"github.com/katalvlaran/hypercat/series"
)

// quadratic builds the geometric coefficients of 1 − a + t₂a² = 0 by
// converting the standard-form equation 1 − x + t₂x² (its own geometric
// form, so Convert returns t₂ unchanged).
func quadratic(t *testing.T, p, q int64) geom.Coefficients {
	t.Helper()
	ts, _, err := geom.Convert([]exact.Number{exact.One(), exact.Int64(-1), exact.Frac(p, q)})
	require.NoError(t, err)

	return ts
}

// closedForm is the exact quadratic root (1 − √(1−4t)) / (2t).
func closedForm(t float64) float64 {
	return (1 - math.Sqrt(1-4*t)) / (2 * t)
}

// TestSolve_QuadraticClosedForm checks the series against the quadratic
// closed form for several t₂ inside the convergence disk |t₂| < 1/4.
func TestSolve_QuadraticClosedForm(t *testing.T) {
	solver := series.NewSolver(catalan.NewCalculator())

	cases := []struct{ p, q int64 }{
		{1, 10}, {1, 8}, {-1, 5}, {1, 100}, {-3, 16},
	}
	for _, tc := range cases {
		ts := quadratic(t, tc.p, tc.q)

		// One tuple per even weight at degree 2, so a deep cap stays cheap.
		opts := series.DefaultOptions()
		opts.MaxOrder = 220
		res, err := solver.Solve(ts, opts)
		require.NoError(t, err, "t2=%d/%d", tc.p, tc.q)

		want := closedForm(float64(tc.p) / float64(tc.q))
		assert.InDelta(t, want, res.Estimate.Float64(), 1e-9,
			"t2=%d/%d: series must match the closed form", tc.p, tc.q)
	}
}

// TestSolve_ConvergenceFlag verifies the converged/capped distinction: a
// tiny t₂ converges quickly, a borderline one runs into the cap.
func TestSolve_ConvergenceFlag(t *testing.T) {
	solver := series.NewSolver(catalan.NewCalculator())

	opts := series.DefaultOptions()
	opts.MaxOrder = 40
	res, err := solver.Solve(quadratic(t, 1, 1000), opts)
	require.NoError(t, err)
	assert.True(t, res.Converged, "t2=1/1000 converges well before weight 40")
	assert.Less(t, res.Order, 40, "convergence must terminate before the cap")

	opts = series.DefaultOptions()
	opts.MaxOrder = 6
	res, err = solver.Solve(quadratic(t, 1, 5), opts)
	require.NoError(t, err, "shrinking contributions at the cap are not divergence")
	assert.False(t, res.Converged, "cap exhaustion must clear the flag")
	assert.Equal(t, 6, res.Order)
}

// TestSolve_MonotoneTruncation checks pure accumulation: raising the cap
// never changes already-summed layers, so successive estimates of a
// convergent series approach the true root monotonically in cap order.
func TestSolve_MonotoneTruncation(t *testing.T) {
	solver := series.NewSolver(catalan.NewCalculator())
	ts := quadratic(t, 1, 8)
	want := closedForm(1.0 / 8)

	var prevGap float64 = math.Inf(1)
	var prevTerms int
	for _, cap := range []int{2, 6, 10, 16, 24, 40} {
		opts := series.DefaultOptions()
		opts.MaxOrder = cap
		res, err := solver.Solve(ts, opts)
		require.NoError(t, err)

		gap := math.Abs(res.Estimate.Float64() - want)
		assert.LessOrEqual(t, gap, prevGap+1e-15, "cap %d must not move away from the root", cap)
		assert.GreaterOrEqual(t, res.Terms, prevTerms, "terms only accumulate")
		prevGap, prevTerms = gap, res.Terms
	}
}

// TestSolve_Divergence drives the solver with t₂ = −1 (the golden-ratio
// conversion), whose layer magnitudes are Catalan numbers and grow without
// bound.
func TestSolve_Divergence(t *testing.T) {
	solver := series.NewSolver(catalan.NewCalculator())

	res, err := solver.Solve(quadratic(t, -1, 1), series.DefaultOptions())
	assert.ErrorIs(t, err, series.ErrSeriesDiverges)
	assert.False(t, res.Converged)
}

// TestSolve_LinearDegenerate covers the degree-1 equation 1 − a = 0.
func TestSolve_LinearDegenerate(t *testing.T) {
	solver := series.NewSolver(catalan.NewCalculator())

	res, err := solver.Solve(geom.Coefficients{}, series.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Zero(t, exact.One().Cmp(res.Estimate), "root of 1 − a = 0 is exactly 1")
}

// TestSolve_SparseCoefficients covers a zeroed-out layer: with t₂ = 0 the
// weight-2 layer contributes exactly 0, which must not read as
// convergence while t₃ still feeds later layers.
func TestSolve_SparseCoefficients(t *testing.T) {
	ts, _, err := geom.Convert([]exact.Number{
		exact.One(), exact.Int64(-1), exact.Zero(), exact.Frac(1, 50),
	})
	require.NoError(t, err)

	solver := series.NewSolver(catalan.NewCalculator())
	opts := series.DefaultOptions()
	opts.MaxOrder = 60
	res, err := solver.Solve(ts, opts)
	require.NoError(t, err)
	require.True(t, res.Converged)

	// Bisection reference for 1 − a + a³/50 = 0.
	f := func(a float64) float64 { return 1 - a + a*a*a/50 }
	lo, hi := 0.5, 1.5
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		if f(lo)*f(mid) <= 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	assert.InDelta(t, (lo+hi)/2, res.Estimate.Float64(), 1e-9)
}

// TestSolve_Validation covers the configuration sentinels.
func TestSolve_Validation(t *testing.T) {
	solver := series.NewSolver(catalan.NewCalculator())
	ts := quadratic(t, 1, 8)

	opts := series.DefaultOptions()
	opts.Tolerance = exact.Zero()
	_, err := solver.Solve(ts, opts)
	assert.ErrorIs(t, err, series.ErrBadTolerance)

	opts = series.DefaultOptions()
	opts.Tolerance = exact.Int64(-1)
	_, err = solver.Solve(ts, opts)
	assert.ErrorIs(t, err, series.ErrBadTolerance)

	opts = series.DefaultOptions()
	opts.MaxOrder = -1
	_, err = solver.Solve(ts, opts)
	assert.ErrorIs(t, err, series.ErrBadMaxOrder)

	_, err = series.NewSolver(nil).Solve(ts, series.DefaultOptions())
	assert.ErrorIs(t, err, series.ErrNilCalculator)
}

// TestSolve_CubicAgainstNewton cross-checks a cubic series sum against a
// separately computed high-precision root of 1 − a + t₂a² + t₃a³ = 0.
func TestSolve_CubicAgainstNewton(t *testing.T) {
	// t₂ = 1/10, t₃ = 1/20 — small enough to converge fast.
	ts, _, err := geom.Convert([]exact.Number{
		exact.One(), exact.Int64(-1), exact.Frac(1, 10), exact.Frac(1, 20),
	})
	require.NoError(t, err)

	solver := series.NewSolver(catalan.NewCalculator())
	opts := series.DefaultOptions()
	opts.MaxOrder = 80
	res, err := solver.Solve(ts, opts)
	require.NoError(t, err)

	// Bisection reference on the residual, independent of the series.
	f := func(a float64) float64 { return 1 - a + a*a/10 + a*a*a/20 }
	lo, hi := 0.5, 1.5
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		if f(lo)*f(mid) <= 0 {
			hi = mid
		} else {
			lo = mid
		}
	}

	assert.InDelta(t, (lo+hi)/2, res.Estimate.Float64(), 1e-9)
}
