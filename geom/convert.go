package geom

import (
	"fmt"

	"github.com/katalvlaran/hypercat/exact"
)

// Convert — standard form to geometric form.
//
// Description:
//
//	Rewrites a₀ + a₁x + … + a_nx^n = 0 (coeffs holds a₀ first) as
//	1 − a + t₂a² + … + t_na^n = 0 via the substitution x = s·a,
//	s = −a₀/a₁.  Dividing the equation by a₀ and substituting gives
//	tᵢ = (aᵢ/a₀)·sⁱ; the linear coefficient lands on −1 by the choice
//	of s and the constant on 1 by the division.
//
// Contracts:
//   - len(coeffs) ≥ 2, coeffs[n] ≠ 0.
//   - a₀ ≠ 0 and a₁ ≠ 0; either zero means there is no pivot for the
//     normalization and the only valid path is direct Newton iteration on
//     the original polynomial from a caller-supplied seed.
//
// Errors:
//   - ErrTooFewCoefficients, ErrZeroLeadingCoefficient on malformed input.
//   - ErrDegenerateInput (wrapped, naming the coefficient) when a₀ = 0 or
//     a₁ = 0.
//
// Pure function: no state, exact arithmetic only.
func Convert(coeffs []exact.Number) (Coefficients, Params, error) {
	if len(coeffs) < 2 {
		return Coefficients{}, Params{}, ErrTooFewCoefficients
	}
	if coeffs[len(coeffs)-1].IsZero() {
		return Coefficients{}, Params{}, ErrZeroLeadingCoefficient
	}
	if coeffs[0].IsZero() {
		return Coefficients{}, Params{}, fmt.Errorf("%w: constant term a0 is zero", ErrDegenerateInput)
	}
	if coeffs[1].IsZero() {
		return Coefficients{}, Params{}, fmt.Errorf("%w: linear coefficient a1 is zero", ErrDegenerateInput)
	}

	scale := coeffs[0].Neg().Quo(coeffs[1]) // s = −a₀/a₁

	ts := make([]exact.Number, len(coeffs)-2)
	power := scale // sⁱ, starting at i = 1
	for i := 2; i < len(coeffs); i++ {
		power = power.Mul(scale)
		ts[i-2] = coeffs[i].Quo(coeffs[0]).Mul(power)
	}

	return Coefficients{ts: ts}, Params{Scale: scale}, nil
}

// MapRoot applies the inverse substitution: a root a of the geometric form
// corresponds to x = Scale·a of the original polynomial.
func MapRoot(a float64, p Params) float64 {
	return p.Scale.Float64() * a
}

// MapRootExact is MapRoot over exact values, for callers that keep the
// geometric root rational.
func MapRootExact(a exact.Number, p Params) exact.Number {
	return p.Scale.Mul(a)
}
