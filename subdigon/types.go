// Package subdigon core types: the immutable face-count tuple and the
// sentinel errors shared by the enumeration entry points.
package subdigon

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors returned by the enumeration API.
var (
	// ErrBadDegree indicates a maximum polygon size below 2; there are no
	// polygons smaller than a digon.
	ErrBadDegree = errors.New("subdigon: maximum polygon size must be at least 2")

	// ErrBadWeight indicates a negative weight bound.
	ErrBadWeight = errors.New("subdigon: weight bound must be non-negative")
)

// Type is a subdigon type: counts of faces per polygon size, starting at
// size 2. counts[0] is m₂, counts[1] is m₃, and so on. The slice is owned
// by the Type and never mutated after construction.
type Type struct {
	counts []int
}

// New builds a Type from the given counts (m₂ first). The input slice is
// copied. Negative counts panic: no caller constructs them from data, only
// from enumeration logic, so a negative count is a bug.
func New(counts []int) Type {
	for _, c := range counts {
		if c < 0 {
			panic("subdigon: negative face count")
		}
	}
	owned := make([]int, len(counts))
	copy(owned, counts)

	return Type{counts: owned}
}

// Counts returns a copy of the face counts, m₂ first.
func (t Type) Counts() []int {
	out := make([]int, len(t.counts))
	copy(out, t.counts)

	return out
}

// Count returns mₛ for polygon size s, or 0 when s is out of range.
func (t Type) Count(size int) int {
	i := size - 2
	if i < 0 || i >= len(t.counts) {
		return 0
	}

	return t.counts[i]
}

// Degree returns the largest polygon size the tuple covers.
func (t Type) Degree() int { return len(t.counts) + 1 }

// Faces returns the total face count Σ mᵢ.
func (t Type) Faces() int {
	total := 0
	for _, c := range t.counts {
		total += c
	}

	return total
}

// Edges returns Σ i·mᵢ over polygon sizes i — the number of edges of the
// subdivided polygon, and the weight the series truncates on.
func (t Type) Edges() int {
	total := 0
	for i, c := range t.counts {
		total += (i + 2) * c
	}

	return total
}

// Weight is the truncation measure of the type; it equals Edges.
func (t Type) Weight() int { return t.Edges() }

// Vertices returns 1 + Σ (i−1)·mᵢ over polygon sizes i.
func (t Type) Vertices() int {
	total := 1
	for i, c := range t.counts {
		total += (i + 1) * c
	}

	return total
}

// IsZero reports whether every count is zero (the empty subdivision, whose
// series term is the constant 1).
func (t Type) IsZero() bool {
	for _, c := range t.counts {
		if c != 0 {
			return false
		}
	}

	return true
}

// Key returns the canonical cache key "m₂,m₃,…". Two Types with the same
// counts always produce the same key, and trailing zeros are kept so a
// tuple's key is stable under the degree it was enumerated for.
func (t Type) Key() string {
	var b strings.Builder
	for i, c := range t.counts {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c))
	}

	return b.String()
}

// String renders the tuple as "(m₂,m₃,…)".
func (t Type) String() string {
	return "(" + t.Key() + ")"
}
