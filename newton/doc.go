// Package newton refines a root estimate by Newton–Raphson iteration
// against any target exposing a value and a derivative.
//
// 🚀 Role in the pipeline
//
//	The Hyper-Catalan series delivers a good initial approximation; Newton
//	iteration turns it into a root accurate to tolerance.  The same loop
//	also serves as the fallback path when the series is unavailable
//	(degenerate input) or untrustworthy (divergence), starting from a
//	caller-supplied or default seed.
//
// ✨ State machine:
//
//	Iterating ──|step < tolerance|──▶ Converged            (terminal)
//	Iterating ──|iteration cap hit|─▶ Exhausted            (terminal, best effort)
//	Iterating ──|f′ below floor|────▶ ErrDerivativeVanished (terminal, error)
//
//	Exhausted is a status, not an error: the last estimate is returned
//	with an explicit non-convergence flag, never passed off as success.
//
// ⚙️ Usage:
//
//	root, status, err := newton.Refine(target, 1.0, newton.DefaultOptions())
//	if err != nil { /* retry from a different seed */ }
//	if status == newton.Exhausted { /* best effort only */ }
//
// Target is a capability interface — the geometric residual (geom.Residual)
// and the original polynomial (poly.Polynomial) both implement it.
package newton
