// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

// MinLengthCache holds, for every offset into a pattern's WeightList, the
// minimum number of source characters whose weights could produce the
// weight suffix pattern[offset:]. Boyer-Moore skips must be safe
// underestimates measured in characters, not weights, and this is the
// component that converts between the two: a contraction can compress many
// characters into one weight, and an expansion can spread one character
// across many weights, so "weights we can skip" has no fixed relationship
// to "characters we can skip" without this table.
type MinLengthCache struct {
	cache []int // length pat.Len()+1; -1 marks a dead end
}

// At returns cache[offset]. offset == pat.Len() yields 0, unless cache[0]
// is -1 (no decomposition at all), which the clamp copies to every offset.
func (c *MinLengthCache) At(offset int) int { return c.cache[offset] }

// BuildMinLengthCache runs the memoized shortest-decomposition search
// described by the pattern's own weights against idx, then clamps the
// result into monotone non-increasing form.
func BuildMinLengthCache(pat WeightList, idx *InverseWeightIndex) *MinLengthCache {
	plen := pat.Len()
	c := &MinLengthCache{cache: make([]int, plen+1)}
	if plen == 0 {
		return c
	}
	computed := make([]bool, plen+1)
	c.cache[plen] = 0
	computed[plen] = true

	var solve func(offset int) int
	solve = func(offset int) int {
		if computed[offset] {
			return c.cache[offset]
		}
		// Guard against revisiting offset while it's on the call stack; the
		// weight graph here is a DAG (ls.Len() >= 1 always advances offset),
		// so this only matters defensively.
		computed[offset] = true
		c.cache[offset] = -1

		best := -1
		for _, id := range idx.StringsStartingWith(pat.At(offset).W) {
			ls := idx.WeightListOf(id)
			if !pat.MatchesAt(offset, ls) {
				continue
			}
			rest := solve(offset + ls.Len())
			if rest < 0 {
				continue
			}
			total := idx.CharCount(id) + rest
			if best < 0 || total < best {
				best = total
			}
		}
		c.cache[offset] = best
		return best
	}
	for i := plen - 1; i >= 0; i-- {
		solve(i)
	}

	// Clamp into monotone non-increasing form: a dead end, or a value
	// bigger than its predecessor, would make a bad-character or
	// good-suffix skip unsafe.
	for p := 1; p <= plen; p++ {
		if c.cache[p] < 0 || c.cache[p] > c.cache[p-1] {
			c.cache[p] = c.cache[p-1]
		}
	}
	return c
}
