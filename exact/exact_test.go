package exact_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypercat/exact"
)

// assertEq fails unless a and b are the same rational value.
// Comparison goes through Cmp so differing internal big.Rat layouts of
// equal values cannot produce false negatives.
func assertEq(t *testing.T, want, got exact.Number, msg string) {
	t.Helper()
	assert.Zero(t, want.Cmp(got), "%s: want %s, got %s", msg, want, got)
}

// TestNumber_ZeroValue verifies the zero Number behaves as the number 0.
func TestNumber_ZeroValue(t *testing.T) {
	var n exact.Number

	assert.True(t, n.IsZero(), "zero value must be 0")
	assert.Equal(t, 0, n.Sign(), "zero value must have sign 0")
	assert.Equal(t, "0", n.String(), "zero value must render as 0")
	assertEq(t, exact.Int64(5), n.Add(exact.Int64(5)), "0 + 5")
}

// TestNumber_Arithmetic exercises the basic field operations on small
// rationals and checks exactness of the results.
func TestNumber_Arithmetic(t *testing.T) {
	third := exact.Frac(1, 3)
	half := exact.Frac(1, 2)

	assertEq(t, exact.Frac(5, 6), third.Add(half), "1/3 + 1/2")
	assertEq(t, exact.Frac(-1, 6), third.Sub(half), "1/3 - 1/2")
	assertEq(t, exact.Frac(1, 6), third.Mul(half), "1/3 * 1/2")
	assertEq(t, exact.Frac(2, 3), third.Quo(half), "1/3 / 1/2")
	assertEq(t, exact.Frac(-1, 3), third.Neg(), "-(1/3)")
	assertEq(t, exact.Int64(3), third.Inv(), "(1/3)^-1")
	assertEq(t, exact.Frac(1, 3), third.Neg().Abs(), "|-1/3|")
}

// TestNumber_Pow checks binary exponentiation, including the k = 0 and
// negative-base cases.
func TestNumber_Pow(t *testing.T) {
	assertEq(t, exact.One(), exact.Frac(7, 9).Pow(0), "x^0")
	assertEq(t, exact.Frac(1, 1024), exact.Frac(1, 2).Pow(10), "(1/2)^10")
	assertEq(t, exact.Frac(-1, 8), exact.Frac(-1, 2).Pow(3), "(-1/2)^3")
	assertEq(t, exact.Frac(1, 4), exact.Frac(-1, 2).Pow(2), "(-1/2)^2")
}

// TestNumber_Immutability ensures operations never mutate their operands.
func TestNumber_Immutability(t *testing.T) {
	a := exact.Frac(2, 5)
	b := exact.Frac(3, 5)

	_ = a.Add(b)
	_ = a.Mul(b)
	_ = a.Pow(5)
	_ = a.Neg()

	assertEq(t, exact.Frac(2, 5), a, "operand a must be unchanged")
	assertEq(t, exact.Frac(3, 5), b, "operand b must be unchanged")
}

// TestNumber_FloatRoundTrip verifies Float/Float64 agree on values that
// float64 represents exactly.
func TestNumber_FloatRoundTrip(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 0.5, -0.25, 1024, 1.0 / 8} {
		assert.Equal(t, f, exact.Float(f).Float64(), "round-trip of %v", f)
	}
}

// TestNumber_String covers integer and fractional rendering.
func TestNumber_String(t *testing.T) {
	assert.Equal(t, "7", exact.Frac(14, 2).String(), "integers render bare")
	assert.Equal(t, "-3/7", exact.Frac(3, -7).String(), "sign normalizes to numerator")
}

// TestNumber_Panics ensures the documented panic conditions fire.
func TestNumber_Panics(t *testing.T) {
	assert.Panics(t, func() { exact.Frac(1, 0) }, "zero denominator must panic")
	assert.Panics(t, func() { exact.Int64(1).Quo(exact.Zero()) }, "division by zero must panic")
	assert.Panics(t, func() { exact.Zero().Inv() }, "inverse of zero must panic")
	assert.Panics(t, func() { exact.Int64(2).Pow(-1) }, "negative exponent must panic")
	assert.Panics(t, func() { exact.Factorial(-1) }, "negative factorial must panic")
}

// TestFactorial checks small factorials against precomputed values and one
// value past the int64 range.
func TestFactorial(t *testing.T) {
	want := []int64{1, 1, 2, 6, 24, 120, 720, 5040}
	for n, w := range want {
		assert.Zero(t, big.NewInt(w).Cmp(exact.Factorial(n)), "%d!", n)
	}

	// 20! is the largest factorial an int64 can hold; 21! must still be exact.
	f21, ok := new(big.Int).SetString("51090942171709440000", 10)
	require.True(t, ok)
	assert.Zero(t, f21.Cmp(exact.Factorial(21)), "21!")
}
