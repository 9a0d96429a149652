// Unified dispatcher for the root-finding pipeline.
//
// Solve is the canonical entry point: geometric-form conversion, truncated
// Hyper-Catalan summation, Newton refinement and back-mapping, with the
// documented fallbacks to direct seeded iteration when conversion or the
// series cannot serve.
//
// Design principles:
//   - Deterministic: the fallback seed is fixed (DefaultSeed) unless the
//     caller overrides it; no randomness anywhere.
//   - Strict sentinels: validation errors come from the owning packages
//     (geom, series, newton) and are matched with errors.Is.
//   - Honest results: Result.Method names the path that produced the root
//     and Result.Converged is never inferred, only carried from the
//     refinement status.
package hypercat

import (
	"errors"
	"math"

	"github.com/katalvlaran/hypercat/catalan"
	"github.com/katalvlaran/hypercat/exact"
	"github.com/katalvlaran/hypercat/geom"
	"github.com/katalvlaran/hypercat/newton"
	"github.com/katalvlaran/hypercat/poly"
	"github.com/katalvlaran/hypercat/series"
)

// DefaultSeed is the deterministic Newton seed used when no caller seed is
// supplied and the series estimate is unavailable. 1 is the base term of
// the Hyper-Catalan expansion — the zeroth series approximation — which
// makes it the natural bootstrap point.
const DefaultSeed = 1.0

// Method names the pipeline path that produced a root.
type Method int

const (
	// MethodSeries: series estimate refined by Newton iteration.
	MethodSeries Method = iota

	// MethodNewton: direct Newton iteration on the original polynomial
	// (degenerate input or divergent series).
	MethodNewton
)

// String renders the method for logs and CLI output.
func (m Method) String() string {
	switch m {
	case MethodSeries:
		return "hyper-catalan series + newton"
	case MethodNewton:
		return "newton iteration"
	default:
		return "unknown"
	}
}

// Options configures a full solve.
//
// Tolerance     — Newton step tolerance and (as an exact value) the series
// layer tolerance. Must be > 0 and finite.
// MaxOrder      — series truncation cap, ≥ 0.
// MaxIterations — Newton iteration cap, > 0.
// Seed          — starting point for the direct-iteration fallbacks.
type Options struct {
	Tolerance     float64
	MaxOrder      int
	MaxIterations int
	Seed          float64
}

// DefaultOptions returns the defaults: tolerance 1e−10, series cap
// series.DefaultMaxOrder, 50 Newton iterations, seed DefaultSeed.
func DefaultOptions() Options {
	return Options{
		Tolerance:     1e-10,
		MaxOrder:      series.DefaultMaxOrder,
		MaxIterations: 50,
		Seed:          DefaultSeed,
	}
}

// Result is the outcome of a solve.
type Result struct {
	// Root is the real root estimate of the original polynomial.
	Root float64

	// Converged is true when Newton refinement reached tolerance; false
	// means the estimate is best effort (iteration cap ran out).
	Converged bool

	// Method is the pipeline path that produced Root.
	Method Method

	// SeriesOrder is the truncation order the series stage actually
	// reached; -1 when the series stage did not run.
	SeriesOrder int

	// Residual is the original polynomial evaluated at Root.
	Residual float64
}

// Solve finds one real root of the polynomial with the given coefficients
// (constant term first, exact values).
//
// Pipeline: geom.Convert → series.Solve → newton.Refine on the geometric
// residual → geom.MapRoot → a final Newton polish against the original
// polynomial. Degenerate input (no constant or linear pivot) and series
// divergence both reroute to direct Newton iteration from opts.Seed; the
// chosen path is recorded in Result.Method.
//
// Errors: structural sentinels from geom (too few coefficients, zero
// leading coefficient); newton.ErrDerivativeVanished if every available
// path ran out of safe steps, joined with the error that forced the
// fallback.
func Solve(coeffs []exact.Number, opts Options) (Result, error) {
	return NewPipeline(catalan.NewCalculator()).Solve(coeffs, opts)
}

// SolveNewton skips the series stage entirely: direct Newton iteration on
// the polynomial from the given seed. The convenience mirrors Solve's
// Result shape for callers that already hold a good estimate.
func SolveNewton(coeffs []exact.Number, seed float64, opts Options) (Result, error) {
	opts.Seed = seed

	return solveDirect(poly.FromExact(coeffs), opts, nil)
}

// Pipeline is a reusable solver: it owns the coefficient calculator, so
// repeated solves share one Hyper-Catalan cache.
type Pipeline struct {
	series *series.Solver
}

// NewPipeline returns a Pipeline backed by calc.
func NewPipeline(calc *catalan.Calculator) *Pipeline {
	return &Pipeline{series: series.NewSolver(calc)}
}

// Solve runs the full pipeline; see the package-level Solve.
func (p *Pipeline) Solve(coeffs []exact.Number, opts Options) (Result, error) {
	if !(opts.Tolerance > 0) || math.IsInf(opts.Tolerance, 1) { // also rejects NaN
		return Result{}, series.ErrBadTolerance
	}

	target := poly.FromExact(coeffs)

	conv, params, err := geom.Convert(coeffs)
	if err != nil {
		if errors.Is(err, geom.ErrDegenerateInput) {
			return solveDirect(target, opts, err)
		}

		return Result{}, err
	}

	sres, err := p.series.Solve(conv, series.Options{
		Tolerance: exact.Float(opts.Tolerance),
		MaxOrder:  opts.MaxOrder,
	})
	if err != nil {
		if errors.Is(err, series.ErrSeriesDiverges) {
			return solveDirect(target, opts, err)
		}

		return Result{}, err
	}

	nopts := newton.Options{Tolerance: opts.Tolerance, MaxIterations: opts.MaxIterations}

	// Refine in geometric coordinates first: the series estimate lives
	// there, and so does its convergence basin.
	a, status, err := newton.Refine(geom.NewResidual(conv), sres.Estimate.Float64(), nopts)
	if err != nil {
		// Derivative vanished at or near the series estimate; the original
		// polynomial from the caller's seed is the remaining option.
		return solveDirect(target, opts, err)
	}

	root := geom.MapRoot(a, params)

	// Final polish against the original polynomial absorbs the rounding
	// introduced by the float back-mapping.
	if polished, pstatus, perr := newton.Refine(target, root, nopts); perr == nil {
		root, status = polished, pstatus
	}

	return Result{
		Root:        root,
		Converged:   status == newton.Converged,
		Method:      MethodSeries,
		SeriesOrder: sres.Order,
		Residual:    target.Value(root),
	}, nil
}

// solveDirect is the fallback path: Newton iteration on the original
// polynomial from opts.Seed. cause, when non-nil, is the error that forced
// the fallback and is joined into any terminal failure.
func solveDirect(target poly.Polynomial, opts Options, cause error) (Result, error) {
	nopts := newton.Options{Tolerance: opts.Tolerance, MaxIterations: opts.MaxIterations}

	root, status, err := newton.Refine(target, opts.Seed, nopts)
	if err != nil {
		return Result{}, errors.Join(cause, err)
	}

	return Result{
		Root:        root,
		Converged:   status == newton.Converged,
		Method:      MethodNewton,
		SeriesOrder: -1,
		Residual:    target.Value(root),
	}, nil
}
