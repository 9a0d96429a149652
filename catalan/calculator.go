package catalan

import (
	"math/big"
	"sync"

	"github.com/katalvlaran/hypercat/exact"
	"github.com/katalvlaran/hypercat/subdigon"
)

// Calculator memoizes Hyper-Catalan numbers keyed by subdigon type.
//
// A Calculator may be shared across solves and across goroutines. The
// cache only grows during a solve; call Reset between independent solves
// if the tuple population gets large enough to matter.
type Calculator struct {
	mu    sync.RWMutex
	cache map[string]exact.Number
}

// NewCalculator returns a Calculator with an empty cache.
func NewCalculator() *Calculator {
	return &Calculator{cache: make(map[string]exact.Number)}
}

// C returns the Hyper-Catalan number C_m for the given subdigon type:
//
//	C_m = E! / (V! · Π mᵢ!)
//
// where E is the type's edge count and V its vertex count. The value is
// computed on first request and served from the cache afterwards; cached
// and fresh values are identical because C is a pure function of t.
func (c *Calculator) C(t subdigon.Type) exact.Number {
	key := t.Key()

	c.mu.RLock()
	v, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return v
	}

	v = compute(t)

	c.mu.Lock()
	// Insert-once: a concurrent miss may have stored the same value
	// already; keep the first write so a key is never rebound.
	if prior, dup := c.cache[key]; dup {
		v = prior
	} else {
		c.cache[key] = v
	}
	c.mu.Unlock()

	return v
}

// compute evaluates the factorial-ratio formula over big integers.
func compute(t subdigon.Type) exact.Number {
	numer := exact.Factorial(t.Edges())

	denom := exact.Factorial(t.Vertices())
	for _, count := range t.Counts() {
		if count > 1 {
			denom.Mul(denom, exact.Factorial(count))
		}
	}

	return exact.FromRat(new(big.Rat).SetFrac(numer, denom))
}

// Len returns the number of cached coefficients.
func (c *Calculator) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.cache)
}

// Reset drops every cached coefficient. The number of distinct subdigon
// types grows combinatorially with degree and truncation order, so callers
// running many unrelated solves use Reset to bound memory.
func (c *Calculator) Reset() {
	c.mu.Lock()
	c.cache = make(map[string]exact.Number)
	c.mu.Unlock()
}
