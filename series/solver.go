package series

import (
	"github.com/katalvlaran/hypercat/catalan"
	"github.com/katalvlaran/hypercat/exact"
	"github.com/katalvlaran/hypercat/geom"
	"github.com/katalvlaran/hypercat/subdigon"
)

// Solver accumulates the Hyper-Catalan series for geometric-form
// coefficients. It owns no state besides the shared coefficient
// calculator, so one Solver may serve many solves.
type Solver struct {
	calc *catalan.Calculator
}

// NewSolver returns a Solver backed by calc. Sharing one calculator across
// solvers shares its coefficient cache, which is safe and usually wanted.
func NewSolver(calc *catalan.Calculator) *Solver {
	return &Solver{calc: calc}
}

// state is the running accumulator of one truncated summation.
type state struct {
	sum     exact.Number // partial sum over all admitted terms
	order   int          // weight of the layer summed last
	lastMag exact.Number // magnitude of the last non-zero layer contribution
	growing bool         // was the last non-zero contribution larger than the one before?
	terms   int
}

// Solve — truncated series summation.
//
// Description:
//
//	Sums C_m · t₂^{m₂} · t₃^{m₃} · … over subdigon types m in layers of
//	non-decreasing weight W = 0, 1, 2, …  Each layer is summed exactly;
//	the layer's total magnitude drives termination.
//
// Termination:
//   - |layer contribution| < opts.Tolerance → Converged = true.
//   - W reaches opts.MaxOrder with the last two non-zero contributions
//     still growing → ErrSeriesDiverges (the partial sum is returned so
//     diagnostics can inspect it, but callers must not trust it).
//   - W reaches opts.MaxOrder otherwise → Converged = false, estimate is
//     best effort.
//
// Edge cases:
//   - Degree-1 input (no tᵢ at all): the sum is the base term 1 and the
//     first empty layer converges immediately.
//   - Zero tolerance or negative cap are configuration errors, not data
//     conditions (ErrBadTolerance / ErrBadMaxOrder).
//
// Complexity: Σ_{w ≤ W} |layer(w)| coefficient lookups, each O(d) exact
// multiplications plus the power computations.
func (s *Solver) Solve(ts geom.Coefficients, opts Options) (Result, error) {
	if s.calc == nil {
		return Result{}, ErrNilCalculator
	}
	if opts.Tolerance.Sign() <= 0 {
		return Result{}, ErrBadTolerance
	}
	if opts.MaxOrder < 0 {
		return Result{}, ErrBadMaxOrder
	}

	d := ts.Degree()
	if d < 2 {
		// Linear equation 1 − a = 0: the whole series is the base term.
		return Result{Estimate: exact.One(), Converged: true, Order: 0, Terms: 1}, nil
	}

	st := state{sum: exact.Zero()}
	for w := 0; w <= opts.MaxOrder; w++ {
		layer, err := subdigon.AtWeight(d, w)
		if err != nil {
			return Result{}, err
		}
		if len(layer) == 0 {
			continue
		}

		contribution := exact.Zero()
		for _, ty := range layer {
			contribution = contribution.Add(s.term(ty, ts))
		}
		st.sum = st.sum.Add(contribution)
		st.order = w
		st.terms += len(layer)

		mag := contribution.Abs()
		if mag.IsZero() {
			// Sparse coefficients can zero out a whole layer (t₂ = 0 with
			// a live t₃, say). That is not convergence: later layers may
			// still contribute. The leading coefficient keeps some tᵢ
			// non-zero, so non-zero layers keep coming until the cap.
			continue
		}
		if mag.Cmp(opts.Tolerance) < 0 {
			return Result{Estimate: st.sum, Converged: true, Order: w, Terms: st.terms}, nil
		}
		if !st.lastMag.IsZero() {
			st.growing = mag.Cmp(st.lastMag) > 0
		}
		st.lastMag = mag
	}

	res := Result{Estimate: st.sum, Converged: false, Order: st.order, Terms: st.terms}
	if st.growing {
		return res, ErrSeriesDiverges
	}

	return res, nil
}

// term computes C_m · Π tᵢ^{mᵢ} for one subdigon type.
func (s *Solver) term(ty subdigon.Type, ts geom.Coefficients) exact.Number {
	product := s.calc.C(ty)
	for i, count := range ty.Counts() {
		if count == 0 {
			continue
		}
		t := ts.T(i + 2)
		if t.IsZero() {
			return exact.Zero()
		}
		product = product.Mul(t.Pow(count))
	}

	return product
}
