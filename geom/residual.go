package geom

// Residual is the geometric-form equation 1 − a + Σ tᵢaⁱ as a Newton
// target over float64. It satisfies newton.Target.
type Residual struct {
	ts []float64 // ts[0] is t₂
}

// NewResidual builds the float residual for the given geometric
// coefficients.
func NewResidual(c Coefficients) Residual {
	return Residual{ts: c.Floats()}
}

// Value evaluates 1 − a + t₂a² + t₃a³ + … at a.
func (r Residual) Value(a float64) float64 {
	// Horner over the tail Σ tᵢaⁱ = a²·(t₂ + a·(t₃ + …)).
	tail := 0.0
	for i := len(r.ts) - 1; i >= 0; i-- {
		tail = tail*a + r.ts[i]
	}

	return 1 - a + tail*a*a
}

// Derivative evaluates −1 + 2t₂a + 3t₃a² + … at a.
func (r Residual) Derivative(a float64) float64 {
	tail := 0.0
	for i := len(r.ts) - 1; i >= 0; i-- {
		tail = tail*a + float64(i+2)*r.ts[i]
	}

	return -1 + tail*a
}
