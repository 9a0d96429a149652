// Package series options, result type and sentinels.
package series

import (
	"errors"

	"github.com/katalvlaran/hypercat/exact"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilCalculator indicates the solver was built without a
	// coefficient calculator.
	ErrNilCalculator = errors.New("series: calculator is nil")

	// ErrBadTolerance indicates a tolerance that is not strictly positive.
	ErrBadTolerance = errors.New("series: tolerance must be positive")

	// ErrBadMaxOrder indicates a negative truncation cap.
	ErrBadMaxOrder = errors.New("series: max order must be non-negative")

	// ErrSeriesDiverges reports that the order cap was reached while layer
	// contributions were still growing in magnitude — the series most
	// likely diverges for these coefficients. Recoverable: discard the
	// partial sum and refine from an explicit Newton seed instead.
	ErrSeriesDiverges = errors.New("series: contributions still growing at the order cap")
)

// DefaultMaxOrder is the truncation cap used by DefaultOptions. Weight 12
// admits every type with up to six digons — enough for quadratics well
// inside the convergence disk, while keeping the worst-case term count
// small for higher degrees.
const DefaultMaxOrder = 12

// Options configures the truncated summation.
//
// Tolerance — a weight layer whose total contribution has magnitude below
// this value ends the summation with Converged = true. Must be > 0.
//
// MaxOrder — hard cap on the truncation weight; the backstop against
// unbounded enumeration when the series does not contract. Must be ≥ 0.
type Options struct {
	Tolerance exact.Number
	MaxOrder  int
}

// DefaultOptions returns the defaults: tolerance 1e−12, order cap
// DefaultMaxOrder.
func DefaultOptions() Options {
	return Options{
		Tolerance: exact.Frac(1, 1_000_000_000_000),
		MaxOrder:  DefaultMaxOrder,
	}
}

// Result is the outcome of a truncated summation.
type Result struct {
	// Estimate is the accumulated partial sum — the initial approximation
	// of the geometric-form root.
	Estimate exact.Number

	// Converged is true when a layer contribution fell below tolerance,
	// false when the order cap ended the summation.
	Converged bool

	// Order is the highest weight layer actually summed.
	Order int

	// Terms is the total number of series terms accumulated.
	Terms int
}
