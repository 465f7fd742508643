// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import "github.com/textsearch/collate/colltab"

// WeightEntry is one weight of a collation element stream, together with the
// half-open span of source code units, [LoOff, HiOff), that produced it.
//
// For a character or contraction that expands into several weights, every
// weight after the first carries LoOff == HiOff, equal to the source offset
// immediately after the whole expansion; only the first weight's span covers
// the consumed source. This is the sole signal the match validator uses to
// detect a candidate match that starts or ends inside an expansion.
type WeightEntry struct {
	W           colltab.Elem
	LoOff, HiOff int
}

// NullEntry is the WeightEntry returned past the end of any stream.
var NullEntry = WeightEntry{W: colltab.NULLORDER, LoOff: -1, HiOff: -1}

// IsNull reports whether e is the end-of-stream sentinel.
func (e WeightEntry) IsNull() bool { return e.W == colltab.NULLORDER }

// WeightList is a materialized, indexable sequence of WeightEntry. Patterns
// are compiled to a WeightList once, at construction, and never mutated
// after. Go's slice length already carries the size that the source design
// stores via a trailing NULL_WEIGHT sentinel entry; accessors that run off
// either end return NullEntry instead of materializing a physical sentinel,
// which keeps Len() meaning exactly "number of real weights".
type WeightList struct {
	entries []WeightEntry
}

// NewWeightList wraps entries, which must not contain ignorable weights.
func NewWeightList(entries []WeightEntry) WeightList {
	return WeightList{entries: entries}
}

// Len returns the number of weights (excluding the conceptual sentinel).
func (wl WeightList) Len() int { return len(wl.entries) }

// At returns the i-th weight, or NullEntry if i is out of range.
func (wl WeightList) At(i int) WeightEntry {
	if i < 0 || i >= len(wl.entries) {
		return NullEntry
	}
	return wl.entries[i]
}

// MatchesAt reports whether other's weights equal wl's weights starting at
// offset, comparing only the W field of each entry (never the offsets).
// It returns false if wl does not have room for the whole of other.
func (wl WeightList) MatchesAt(offset int, other WeightList) bool {
	n := other.Len()
	if offset < 0 || offset+n > wl.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if wl.entries[offset+i].W != other.entries[i].W {
			return false
		}
	}
	return true
}
