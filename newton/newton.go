package newton

import (
	"fmt"
	"math"
)

// Refine — Newton–Raphson root refinement.
//
// Description:
//
//	Starting from initial, iterates aᵢ₊₁ = aᵢ − f(aᵢ)/f′(aᵢ) against the
//	target until the step shrinks below tolerance, the iteration cap is
//	hit, or the derivative vanishes.
//
// Contracts:
//   - t non-nil, initial finite, opts validated per types.go.
//   - No side effects: the returned estimate and status are the only
//     outputs.
//
// Returns:
//   - (root, Converged, nil) when |aᵢ₊₁ − aᵢ| < opts.Tolerance.
//   - (last, Exhausted, nil) when the cap runs out first — an explicit
//     best-effort signal, not a silent success.
//   - (last, Exhausted, ErrDerivativeVanished-wrapped) when |f′| drops
//     below opts.DerivativeFloor; the message names the iteration and the
//     point so the caller can pick a better seed.
//
// Complexity: O(MaxIterations) target evaluations; quadratic convergence
// near a simple root means the cap is rarely approached from a decent seed.
func Refine(t Target, initial float64, opts Options) (float64, Status, error) {
	if t == nil {
		return 0, Exhausted, ErrNilTarget
	}
	if opts.Tolerance <= 0 {
		return 0, Exhausted, ErrBadTolerance
	}
	if opts.MaxIterations <= 0 {
		return 0, Exhausted, ErrBadMaxIterations
	}
	if math.IsNaN(initial) || math.IsInf(initial, 0) {
		return 0, Exhausted, ErrBadSeed
	}

	floor := opts.DerivativeFloor
	if floor == 0 {
		floor = DerivativeFloor
	}

	a := initial
	for i := 0; i < opts.MaxIterations; i++ {
		f := t.Value(a)
		df := t.Derivative(a)

		if math.Abs(df) < floor {
			return a, Exhausted, fmt.Errorf("%w: |f'(%g)| = %g at iteration %d",
				ErrDerivativeVanished, a, math.Abs(df), i)
		}

		next := a - f/df
		if math.Abs(next-a) < opts.Tolerance {
			return next, Converged, nil
		}
		a = next
	}

	return a, Exhausted, nil
}
