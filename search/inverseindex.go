// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import "github.com/textsearch/collate/colltab"

// InverseWeightIndex maps a first weight to every source string whose
// WeightList begins with that weight. MinLengthSolver uses it to discover
// every way a suffix of the pattern's weights could have been produced by
// real source characters, contractions, or expansions.
//
// Strings are owned by the index and referenced from the bucket map by
// integer id rather than by the string's WeightList directly, so the two
// maps (weight -> ids, id -> string/WeightList) don't have to hold pointers
// into each other.
type InverseWeightIndex struct {
	level   colltab.Level
	strings []string
	weights []WeightList
	buckets map[colltab.Elem][]int
}

// BuildInverseWeightIndex builds the index over every string w.Domain()
// declares (individual runes plus contractions/expansions), masked to
// level.
func BuildInverseWeightIndex(w colltab.Weighter, level colltab.Level) *InverseWeightIndex {
	idx := &InverseWeightIndex{
		level:   level,
		buckets: make(map[colltab.Elem][]int),
	}
	for _, s := range w.Domain() {
		wl := DrainString(w, level, s)
		if wl.Len() == 0 {
			// Entirely ignorable at this strength; nothing to index it under.
			continue
		}
		id := len(idx.strings)
		idx.strings = append(idx.strings, s)
		idx.weights = append(idx.weights, wl)
		key := wl.At(0).W
		idx.buckets[key] = append(idx.buckets[key], id)
	}
	return idx
}

// StringsStartingWith returns the ids of every source string whose
// WeightList's first weight equals w. The slice is nil, not empty-but-
// non-nil, when there is no such string.
func (idx *InverseWeightIndex) StringsStartingWith(w colltab.Elem) []int {
	return idx.buckets[w]
}

// String returns the source string for id.
func (idx *InverseWeightIndex) String(id int) string { return idx.strings[id] }

// WeightListOf returns the WeightList for id.
func (idx *InverseWeightIndex) WeightListOf(id int) WeightList { return idx.weights[id] }

// CharCount returns the number of runes the source string for id consists
// of, the unit MinLengthSolver accumulates.
func (idx *InverseWeightIndex) CharCount(id int) int {
	n := 0
	for range idx.strings[id] {
		n++
	}
	return n
}
