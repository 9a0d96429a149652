// Package series sums the truncated Hyper-Catalan series to produce the
// initial root approximation of a geometric-form polynomial equation.
//
// 🚀 How the series solves equations
//
//	The root of 1 − a + t₂a² + t₃a³ + … = 0 nearest the base point 1 has
//	the expansion
//
//	    a = Σ_m C_m · t₂^{m₂} · t₃^{m₃} · …
//
//	over all subdigon types m, where C_m is the Hyper-Catalan number of m.
//	The solver admits types layer by layer of non-decreasing weight and
//	stops when a whole layer's contribution drops below tolerance.
//
// ✨ Key properties:
//   - terms are accumulated in exact rational arithmetic; rounding enters
//     only when the caller converts the estimate to float64
//   - truncation is monotone: raising the order cap only adds terms
//   - convergence is data-dependent — for large tᵢ the layers grow instead
//     of shrinking; the order cap is the hard backstop, and a still-growing
//     tail at the cap is reported as ErrSeriesDiverges so the caller can
//     fall back to seeded Newton iteration
//
// ⚙️ Usage:
//
//	s := series.NewSolver(catalan.NewCalculator())
//	res, err := s.Solve(ts, series.DefaultOptions())
//	switch {
//	case errors.Is(err, series.ErrSeriesDiverges):
//	    // discard the partial sum, refine from an explicit seed
//	case res.Converged:
//	    // res.Estimate is within tolerance of the true geometric root
//	}
//
// Complexity: the number of terms up to weight W for degree d grows like
// the number of partitions of ≤ W into parts 2..d; each term costs one
// coefficient lookup plus O(d) exact multiplications.
package series
