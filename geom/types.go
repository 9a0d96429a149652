// Package geom types: geometric coefficients, normalization parameters and
// the conversion sentinels.
package geom

import (
	"errors"

	"github.com/katalvlaran/hypercat/exact"
)

// Sentinel errors returned by Convert.
var (
	// ErrTooFewCoefficients indicates fewer than two coefficients — not
	// even a linear equation.
	ErrTooFewCoefficients = errors.New("geom: need at least two coefficients")

	// ErrZeroLeadingCoefficient indicates a_n = 0, i.e. the stated degree
	// is a lie.
	ErrZeroLeadingCoefficient = errors.New("geom: leading coefficient is zero")

	// ErrDegenerateInput indicates the polynomial lacks the structure the
	// geometric form pivots on (a₀ = 0 or a₁ = 0). The wrapped message
	// names the offending coefficient. Recoverable: solve the original
	// polynomial with seeded Newton iteration instead.
	ErrDegenerateInput = errors.New("geom: degenerate input for geometric form")
)

// Coefficients holds the geometric-form coefficients t₂ … t_n.
// The zero value describes the linear equation 1 − a = 0.
type Coefficients struct {
	ts []exact.Number // ts[0] is t₂
}

// Degree returns the degree n of the geometric-form equation.
func (c Coefficients) Degree() int { return len(c.ts) + 1 }

// T returns tᵢ for 2 ≤ i ≤ Degree, and zero outside that range.
func (c Coefficients) T(i int) exact.Number {
	j := i - 2
	if j < 0 || j >= len(c.ts) {
		return exact.Zero()
	}

	return c.ts[j]
}

// Floats returns t₂ … t_n as float64, for the float-arithmetic residual
// used by Newton refinement.
func (c Coefficients) Floats() []float64 {
	out := make([]float64, len(c.ts))
	for i, t := range c.ts {
		out[i] = t.Float64()
	}

	return out
}

// Params records the substitution applied by Convert, x = Scale·a, so the
// geometric root maps back exactly.
type Params struct {
	// Scale is s = −a₀/a₁.
	Scale exact.Number
}
