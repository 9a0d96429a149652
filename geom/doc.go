// Package geom converts standard-form polynomials to the geometric form
// the Hyper-Catalan series solves, and maps geometric roots back.
//
// 🚀 What is the geometric form?
//
//	The series expansion targets equations shaped
//
//	    1 − a + t₂a² + t₃a³ + … + t_na^n = 0
//
//	with constant term fixed at 1 and linear coefficient fixed at −1.
//	Any polynomial a₀ + a₁x + … + a_nx^n = 0 with a₀ ≠ 0 and a₁ ≠ 0 takes
//	this shape under the substitution x = s·a with s = −a₀/a₁: dividing by
//	a₀ and scaling gives tᵢ = (aᵢ/a₀)·sⁱ.  The same s maps the geometric
//	root back: x = s·a.
//
// ✨ Key properties:
//   - conversion is pure and exact (rational arithmetic end to end)
//   - Params records the scale s, so MapRoot is the exact inverse of the
//     substitution
//   - degenerate inputs (a₀ = 0 or a₁ = 0) are refused with
//     ErrDegenerateInput naming the offending coefficient — the caller
//     falls back to seeded Newton iteration on the original polynomial
//
// ⚙️ Usage:
//
//	ts, params, err := geom.Convert(coeffs)   // coeffs: a₀ first
//	if err != nil { /* errors.Is(err, geom.ErrDegenerateInput) … */ }
//	a := …                                    // root of the geometric form
//	x := geom.MapRoot(a, params)              // root of the original
package geom
