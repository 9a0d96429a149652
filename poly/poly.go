package poly

import "github.com/katalvlaran/hypercat/exact"

// Polynomial is a standard-form univariate polynomial, constant term
// first: p[i] is the coefficient of xⁱ.
type Polynomial []float64

// FromExact converts exact coefficients to their float64 polynomial.
func FromExact(coeffs []exact.Number) Polynomial {
	p := make(Polynomial, len(coeffs))
	for i, c := range coeffs {
		p[i] = c.Float64()
	}

	return p
}

// Degree returns the index of the highest stored coefficient; trailing
// zeros are the caller's concern. The zero polynomial reports -1.
func (p Polynomial) Degree() int { return len(p) - 1 }

// Value evaluates p at x by Horner's rule.
func (p Polynomial) Value(x float64) float64 {
	v := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		v = v*x + p[i]
	}

	return v
}

// Derivative evaluates p′ at x by Horner's rule on the derived
// coefficients.
func (p Polynomial) Derivative(x float64) float64 {
	v := 0.0
	for i := len(p) - 1; i >= 1; i-- {
		v = v*x + float64(i)*p[i]
	}

	return v
}
