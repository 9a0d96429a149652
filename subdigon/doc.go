// Package subdigon defines subdigon types — the integer tuples that index
// terms of the Hyper-Catalan series — and their weight-ordered enumeration.
//
// 🚀 What is a subdigon type?
//
//	A subdivided polygon is described by how many faces of each size it
//	contains: m₂ digons, m₃ trigons, m₄ tetragons, and so on.  The tuple
//	(m₂, m₃, …, m_d) is its type.  Each type contributes exactly one term
//	to the series that solves 1 − a + t₂a² + t₃a³ + … = 0, so enumerating
//	types is enumerating series terms.
//
// ✨ Key properties:
//   - Type is immutable once constructed; counts are copied in and out.
//   - Weight (= edge count Σ i·mᵢ) is the truncation measure: the solver
//     admits types weight layer by weight layer.
//   - Enumeration order is total and deterministic: non-decreasing weight,
//     ties broken lexicographically on (m₂, m₃, …).  Raising the weight
//     bound only appends types, never reorders or repeats them.
//
// ⚙️ Usage:
//
//	// All types of weight exactly 6 for a cubic (sizes 2 and 3):
//	layer, _ := subdigon.AtWeight(3, 6)   // [(0,2) (3,0)]
//
//	// Lazy walk over everything up to weight 6:
//	cur, _ := subdigon.NewCursor(3, 6)
//	for ty, ok := cur.Next(); ok; ty, ok = cur.Next() {
//	    _ = ty
//	}
//
// Complexity: the number of types of weight ≤ W is the number of
// multiset partitions of integers ≤ W into parts 2..d — finite for every
// bound, and AtWeight touches each emitted type exactly once.
package subdigon
