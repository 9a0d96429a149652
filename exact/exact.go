package exact

import (
	"math"
	"math/big"
)

// Number is an immutable arbitrary-precision rational.
//
// The zero value represents 0. All methods treat the receiver and their
// arguments as read-only and return a new Number, so values may be freely
// shared, stored as map values and read concurrently.
type Number struct {
	r *big.Rat
}

// Int64 returns the Number n/1.
func Int64(n int64) Number {
	return Number{r: new(big.Rat).SetInt64(n)}
}

// Frac returns the Number p/q. It panics if q == 0; a zero denominator is
// a programming error, not a data condition.
func Frac(p, q int64) Number {
	if q == 0 {
		panic("exact: zero denominator")
	}

	return Number{r: new(big.Rat).SetFrac64(p, q)}
}

// Float returns the Number holding the exact value of f.
// NaN and infinities have no rational value and panic.
func Float(f float64) Number {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("exact: non-finite float")
	}

	return Number{r: new(big.Rat).SetFloat64(f)}
}

// FromRat returns a Number holding a private copy of r.
func FromRat(r *big.Rat) Number {
	return Number{r: new(big.Rat).Set(r)}
}

// FromInt returns a Number holding a private copy of the integer i.
func FromInt(i *big.Int) Number {
	return Number{r: new(big.Rat).SetInt(i)}
}

// Zero returns the Number 0.
func Zero() Number { return Number{} }

// One returns the Number 1.
func One() Number { return Int64(1) }

// rat exposes the receiver's backing value without allocating.
// Callers must not mutate the result.
func (n Number) rat() *big.Rat {
	if n.r == nil {
		return new(big.Rat)
	}

	return n.r
}

// Add returns n + m.
func (n Number) Add(m Number) Number {
	return Number{r: new(big.Rat).Add(n.rat(), m.rat())}
}

// Sub returns n − m.
func (n Number) Sub(m Number) Number {
	return Number{r: new(big.Rat).Sub(n.rat(), m.rat())}
}

// Mul returns n · m.
func (n Number) Mul(m Number) Number {
	return Number{r: new(big.Rat).Mul(n.rat(), m.rat())}
}

// Quo returns n / m. It panics if m is zero; callers guard the data paths
// where a zero divisor is possible (see geom.Convert).
func (n Number) Quo(m Number) Number {
	if m.IsZero() {
		panic("exact: division by zero")
	}

	return Number{r: new(big.Rat).Quo(n.rat(), m.rat())}
}

// Neg returns −n.
func (n Number) Neg() Number {
	return Number{r: new(big.Rat).Neg(n.rat())}
}

// Inv returns 1/n. It panics if n is zero.
func (n Number) Inv() Number {
	if n.IsZero() {
		panic("exact: inverse of zero")
	}

	return Number{r: new(big.Rat).Inv(n.rat())}
}

// Pow returns nᵏ for k ≥ 0 by binary exponentiation. Negative exponents
// panic: the series only raises coefficients to face counts, which are
// non-negative by construction.
func (n Number) Pow(k int) Number {
	if k < 0 {
		panic("exact: negative exponent")
	}

	result := new(big.Rat).SetInt64(1)
	base := new(big.Rat).Set(n.rat())
	for k > 0 {
		if k&1 == 1 {
			result.Mul(result, base)
		}
		base.Mul(base, base)
		k >>= 1
	}

	return Number{r: result}
}

// Abs returns |n|.
func (n Number) Abs() Number {
	return Number{r: new(big.Rat).Abs(n.rat())}
}

// Cmp compares n and m, returning -1, 0 or +1.
func (n Number) Cmp(m Number) int {
	return n.rat().Cmp(m.rat())
}

// Sign returns -1, 0 or +1 according to the sign of n.
func (n Number) Sign() int { return n.rat().Sign() }

// IsZero reports whether n == 0.
func (n Number) IsZero() bool { return n.rat().Sign() == 0 }

// Float64 returns the nearest float64 to n.
func (n Number) Float64() float64 {
	f, _ := n.rat().Float64()

	return f
}

// Rat returns a copy of n as a *big.Rat.
func (n Number) Rat() *big.Rat {
	return new(big.Rat).Set(n.rat())
}

// String renders n as "p/q", or just "p" when n is an integer.
func (n Number) String() string {
	if n.rat().IsInt() {
		return n.rat().Num().String()
	}

	return n.rat().RatString()
}

// Factorial returns n! as a big.Int. Factorials of negative arguments are
// undefined and panic. The plain product loop beats Stirling-style
// shortcuts for the argument sizes the coefficient formula produces.
func Factorial(n int) *big.Int {
	if n < 0 {
		panic("exact: factorial of negative argument")
	}

	result := big.NewInt(1)
	for i := int64(2); i <= int64(n); i++ {
		result.Mul(result, big.NewInt(i))
	}

	return result
}
