package subdigon

// AtWeight — single weight layer of the enumeration.
//
// Description:
//
//	Produces every tuple (m₂,…,m_d) of non-negative integers with
//	Σ i·mᵢ = w, in ascending lexicographic order on (m₂, m₃, …).
//	The layers for w = 0, 1, 2, … partition the full enumeration, which
//	is what lets the series solver raise its truncation order and process
//	only newly admitted types.
//
// Algorithm Outline:
//  1. Recurse over polygon sizes 2..d.
//  2. At size s with remaining weight r, try every count c = 0..r/s and
//     descend with r − c·s.
//  3. A tuple is emitted when the last size has been assigned and the
//     remaining weight is exactly zero.
//
// Trying c = 0 first at every level yields lexicographic order for free.
//
// Edge cases:
//   - w = 0 emits exactly the all-zero tuple.
//   - w = 1 emits nothing: the smallest face, a digon, already weighs 2.
//
// Errors:
//   - ErrBadDegree if d < 2.
//   - ErrBadWeight if w < 0.
//
// Complexity: O(len(output) · d) time, output-sized memory.
func AtWeight(d, w int) ([]Type, error) {
	if d < 2 {
		return nil, ErrBadDegree
	}
	if w < 0 {
		return nil, ErrBadWeight
	}

	var out []Type
	scratch := make([]int, d-1)
	fill(&out, scratch, 0, w)

	return out, nil
}

// fill assigns counts for size index i (polygon size i+2) onward so the
// remaining weight r is consumed exactly, appending complete tuples to out.
func fill(out *[]Type, scratch []int, i, r int) {
	if i == len(scratch) {
		if r == 0 {
			*out = append(*out, New(scratch))
		}

		return
	}

	size := i + 2
	for c := 0; c*size <= r; c++ {
		scratch[i] = c
		fill(out, scratch, i+1, r-c*size)
	}
	scratch[i] = 0
}

// UpTo returns every tuple of weight at most maxWeight for maximum polygon
// size d, in the canonical order: non-decreasing weight, lexicographic
// within a weight layer. Raising maxWeight strictly appends to the result.
func UpTo(d, maxWeight int) ([]Type, error) {
	if d < 2 {
		return nil, ErrBadDegree
	}
	if maxWeight < 0 {
		return nil, ErrBadWeight
	}

	var all []Type
	for w := 0; w <= maxWeight; w++ {
		layer, err := AtWeight(d, w)
		if err != nil {
			return nil, err
		}
		all = append(all, layer...)
	}

	return all, nil
}

// Cursor is a lazy, restartable walk over the canonical enumeration order
// up to a fixed weight bound. It materializes one weight layer at a time,
// so memory tracks the widest layer rather than the whole enumeration.
type Cursor struct {
	d         int
	maxWeight int

	weight int    // weight of the layer currently buffered
	layer  []Type // buffered layer
	next   int    // index of the next unread type in layer
}

// NewCursor returns a Cursor over all types with weight ≤ maxWeight for
// maximum polygon size d, positioned before the first type.
func NewCursor(d, maxWeight int) (*Cursor, error) {
	if d < 2 {
		return nil, ErrBadDegree
	}
	if maxWeight < 0 {
		return nil, ErrBadWeight
	}

	c := &Cursor{d: d, maxWeight: maxWeight}
	c.Reset()

	return c, nil
}

// Next returns the next type in canonical order, or ok == false once the
// weight bound is exhausted. Each type is emitted exactly once per walk.
func (c *Cursor) Next() (Type, bool) {
	for c.next >= len(c.layer) {
		if c.weight > c.maxWeight {
			return Type{}, false
		}
		// Validated in NewCursor; AtWeight cannot fail here.
		c.layer, _ = AtWeight(c.d, c.weight)
		c.next = 0
		c.weight++
	}

	t := c.layer[c.next]
	c.next++

	return t, true
}

// Reset rewinds the cursor to the start of the enumeration.
func (c *Cursor) Reset() {
	c.weight = 0
	c.layer = nil
	c.next = 0
}
