// Package newton options, status values and sentinels.
package newton

import "errors"

// Sentinel errors returned by Refine.
var (
	// ErrNilTarget indicates Refine was called without a target.
	ErrNilTarget = errors.New("newton: target is nil")

	// ErrBadTolerance indicates a tolerance that is not strictly positive.
	ErrBadTolerance = errors.New("newton: tolerance must be positive")

	// ErrBadMaxIterations indicates a non-positive iteration cap.
	ErrBadMaxIterations = errors.New("newton: max iterations must be positive")

	// ErrBadSeed indicates a NaN or infinite initial estimate.
	ErrBadSeed = errors.New("newton: initial estimate is not finite")

	// ErrDerivativeVanished reports |f′| below the safe-division floor.
	// The wrapped message carries the iteration index and the point.
	// Recoverable by retrying from a different seed.
	ErrDerivativeVanished = errors.New("newton: derivative vanished")
)

// Target is the capability Refine iterates against: evaluate the function
// and its derivative at a point.
type Target interface {
	Value(x float64) float64
	Derivative(x float64) float64
}

// Status is the terminal state of a refinement run.
type Status int

const (
	// Converged: successive estimates came within tolerance.
	Converged Status = iota

	// Exhausted: the iteration cap was reached first; the returned
	// estimate is best effort and must not be treated as converged.
	Exhausted
)

// String renders the status for logs and CLI output.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case Exhausted:
		return "iteration limit reached"
	default:
		return "unknown"
	}
}

// DerivativeFloor is the default magnitude below which f′ is considered
// too small to divide by.
const DerivativeFloor = 1e-14

// Options configures a refinement run.
//
// Tolerance       — stop once |aᵢ₊₁ − aᵢ| < Tolerance. Must be > 0.
// DerivativeFloor — |f′| below this aborts with ErrDerivativeVanished;
//
//	zero selects the package default.
//
// MaxIterations   — hard cap on iterations. Must be > 0.
type Options struct {
	Tolerance       float64
	DerivativeFloor float64
	MaxIterations   int
}

// DefaultOptions returns the defaults: tolerance 1e−10, derivative floor
// DerivativeFloor, 50 iterations.
func DefaultOptions() Options {
	return Options{
		Tolerance:       1e-10,
		DerivativeFloor: DerivativeFloor,
		MaxIterations:   50,
	}
}
