// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

// GoodSuffixTable gives the character skip to apply when a suffix of the
// pattern matched the target but the weight to its left did not. It is
// built from a classical Boyer-Moore suffix-length array in two passes,
// exactly as in the reference C++ search engine this package's algorithm is
// drawn from, translated to characters by reading MinLengthCache at each
// update site instead of leaving the table in weight-position units.
type GoodSuffixTable struct {
	table []int // length pat.Len()
}

// At returns the skip for a mismatch at pattern position offset.
func (gs *GoodSuffixTable) At(offset int) int { return gs.table[offset] }

// BuildGoodSuffixTable builds the table for pat using cache and bc (for
// maxSkip), which must both have been built from the same pat.
func BuildGoodSuffixTable(pat WeightList, cache *MinLengthCache, bc *BadCharacterTable) *GoodSuffixTable {
	n := pat.Len()
	gs := &GoodSuffixTable{table: make([]int, n)}
	if n == 0 {
		return gs
	}

	weight := make([]uint64, n)
	for i := 0; i < n; i++ {
		weight[i] = uint64(pat.At(i).W)
	}

	suff := make([]int, n)
	suff[n-1] = n
	start, end := n-1, -1

	for i := n - 2; i >= 0; i-- {
		// (i > start) means we're inside the last suffix match found;
		// if the suffix match at the mirrored position doesn't extend
		// beyond that match, it's the suffix length for i too.
		if i > start && suff[i+n-1-end] < i-start {
			suff[i] = suff[i+n-1-end]
		} else {
			start, end = i, i
			s := n
			for start >= 0 {
				s--
				if weight[start] != weight[s] {
					break
				}
				start--
			}
			suff[i] = end - start
		}
	}

	maxSkip := bc.MaxSkip()
	for i := range gs.table {
		gs.table[i] = maxSkip
	}

	prefix := 0
	for i := n - 2; i >= 0; i-- {
		if suff[i] == i+1 {
			// The matching suffix is also a prefix of the pattern: any
			// mismatch before this suffix should skip so the pattern's
			// front realigns with the front of the matched suffix.
			prefixSkip := cache.At(i + 1)
			for ; prefix < n-1-i; prefix++ {
				if gs.table[prefix] == maxSkip {
					gs.table[prefix] = prefixSkip
				}
			}
		}
	}

	for i := 0; i < n-1; i++ {
		gs.table[n-1-suff[i]] = cache.At(i + 1)
	}

	return gs
}
