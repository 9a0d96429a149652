// Package exact provides the arbitrary-precision rational value type used
// throughout hypercat for polynomial coefficients, Hyper-Catalan
// coefficients and series terms.
//
// 🚀 Why exact arithmetic?
//
//	The Hyper-Catalan series multiplies huge factorial ratios by small
//	rational powers.  In floating point those products lose the exact
//	cancellation the coefficient formula relies on; in rationals the
//	cancellation is an identity.  Number therefore wraps math/big.Rat and
//	every combinatorial intermediate stays exact until the final float64
//	hand-off to Newton refinement.
//
// ✨ Key properties:
//   - Number is immutable: every operation returns a fresh value, so
//     Numbers can be shared across goroutines and cached without copies.
//   - The zero value of Number is the number 0 and is ready to use.
//   - Factorial computes n! as a big.Int — the building block of the
//     Hyper-Catalan formula — and never overflows by construction.
//
// ⚙️ Usage:
//
//	a := exact.Frac(1, 3)            // 1/3
//	b := a.Mul(exact.Int64(6))       // 2
//	c := b.Pow(10)                   // 1024, still exact
//	f := c.Float64()                 // hand-off to float math
//
// Performance: operations cost what math/big costs; there is no hidden
// normalization beyond big.Rat's own.
package exact
