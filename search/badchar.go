// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import "github.com/textsearch/collate/colltab"

// hashTableSize is the bad-character table's slot count; a small prime
// keeps collisions spread out without the table costing much memory.
const hashTableSize = 257

func hash(w colltab.Elem) int {
	return int(w.Primary()) % hashTableSize
}

// BadCharacterTable maps a mismatching target weight to the number of
// characters it is safe to skip forward. Collisions are resolved by letting
// the pattern position with the larger index win: if that is wrong for some
// other position sharing the hash, the remembered skip is still safe
// because it is never larger than the true answer for that slot.
type BadCharacterTable struct {
	table   [hashTableSize]int
	maxSkip int
}

// BuildBadCharacterTable builds the table for pat using cache, which must
// have been built from the same pat.
func BuildBadCharacterTable(pat WeightList, cache *MinLengthCache) *BadCharacterTable {
	bc := &BadCharacterTable{maxSkip: cache.At(0)}
	for i := range bc.table {
		bc.table[i] = bc.maxSkip
	}
	for p := 0; p < pat.Len()-1; p++ {
		bc.table[hash(pat.At(p).W)] = cache.At(p + 1)
	}
	return bc
}

// SkipFor returns the character skip to apply when w was seen at the
// position under test and did not match.
func (bc *BadCharacterTable) SkipFor(w colltab.Elem) int {
	return bc.table[hash(w)]
}

// MaxSkip is cache[0], the largest safe advance from a fresh anchor.
func (bc *BadCharacterTable) MaxSkip() int { return bc.maxSkip }
