// Package hypercat finds real roots of univariate polynomials by the
// Hyper-Catalan series method: normalize to geometric form, sum the
// combinatorial series for an initial approximation, then refine with
// Newton iteration.
//
// 🚀 What is hypercat?
//
//	A pure-Go solver built from small, independently usable packages:
//		• exact    — arbitrary-precision rational arithmetic
//		• subdigon — series index tuples + weight-ordered enumeration
//		• catalan  — memoized Hyper-Catalan coefficients
//		• geom     — geometric-form conversion and root mapping
//		• series   — truncated series summation with divergence detection
//		• newton   — Newton–Raphson refinement over a target interface
//		• poly     — float64 polynomials for the direct-iteration paths
//
// ✨ Why the series?
//
//   - One closed combinatorial formula covers every degree: no casework
//     per degree, no radicals.
//   - Exact arithmetic in the combinatorial stage: rounding only enters
//     at the final float hand-off to Newton refinement.
//   - Graceful degradation: when the series diverges or the input lacks
//     the geometric-form structure, the solver falls back to seeded
//     Newton iteration and reports which path produced the root.
//
// ⚙️ Quick start:
//
//	coeffs := []exact.Number{exact.Int64(-1), exact.Int64(-1), exact.Int64(1)} // x² − x − 1
//	res, err := hypercat.Solve(coeffs, hypercat.DefaultOptions())
//	if err != nil {
//	    // geom.ErrDegenerateInput, series.ErrSeriesDiverges,
//	    // newton.ErrDerivativeVanished; match with errors.Is
//	}
//	fmt.Println(res.Root) // 1.6180339887…
//
// The cmd/hypercat CLI wraps Solve with interactive prompts.
package hypercat
