// Package poly provides the standard-form polynomial over float64 —
// coefficient storage, Horner evaluation and the derivative — used as the
// Newton target for the original (unconverted) equation.
//
// Coefficients are stored constant term first: Polynomial{-1, -1, 1} is
// x² − x − 1. The type implements newton.Target, so it plugs straight
// into newton.Refine for the direct-iteration fallback paths.
package poly
