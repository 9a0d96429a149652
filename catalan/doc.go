// Package catalan computes Hyper-Catalan numbers — the combinatorial
// coefficients of the polynomial-solving series — with exact arithmetic
// and memoization.
//
// 🚀 What is a Hyper-Catalan number?
//
//	For a subdigon type m = (m₂, m₃, …, m_d), the count of subdivided
//	polygons of that type is
//
//	    C_m = (2m₂ + 3m₃ + … + d·m_d)!
//	          ─────────────────────────────────────────────
//	          (1 + m₂ + 2m₃ + … + (d−1)·m_d)! · m₂!·m₃!·…·m_d!
//
//	i.e. edges! / (vertices! · Π faces!).  With only digons this
//	collapses to the classical Catalan numbers 1, 1, 2, 5, 14, 42, …
//
// ✨ Key features:
//   - exact: factorial ratios are evaluated over big integers, so the
//     cancellation in the formula is an identity, not an approximation
//   - memoized: every computed C_m is cached by the tuple's canonical key;
//     repeated lookups are map reads
//   - concurrency-safe: the cache is RWMutex-guarded and insert-once — a
//     racing duplicate computation writes the same pure-function value,
//     never a divergent one
//
// ⚙️ Usage:
//
//	calc := catalan.NewCalculator()
//	c := calc.C(subdigon.New([]int{4}))   // Catalan(4) = 14
//
// Performance: a cache hit is a read-locked map lookup; a miss costs three
// big-integer factorials plus one rational reduction.
package catalan
