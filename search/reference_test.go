// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"testing"

	"github.com/textsearch/collate/colltab"
)

// simpleSearch is a quadratic reference search: it masks every weight of
// text and pat to level and looks for a literal weight-sequence occurrence,
// without any of the Boyer-Moore skipping or expansion/grapheme validation
// the real Engine applies. It exists to differentially test Engine.Search:
// anywhere the two disagree is either a bug in Engine, or a legitimate
// validation rule (expansion straddling, grapheme boundaries) that
// simpleSearch doesn't know about and the test must account for explicitly.
func simpleSearch(w colltab.Weighter, level colltab.Level, text, pat []byte) (start, end int, found bool) {
	tw := Drain(w, level, text)
	pw := Drain(w, level, pat)
	if pw.Len() == 0 {
		return -1, -1, false
	}
	for i := 0; i+pw.Len() <= tw.Len(); i++ {
		if tw.MatchesAt(i, pw) {
			return tw.At(i).LoOff, tw.At(i + pw.Len() - 1).HiOff, true
		}
	}
	return -1, -1, false
}

func TestEngineAgreesWithSimpleSearch(t *testing.T) {
	root := colltab.RootTable()
	german := colltab.GermanPhonebookTable()
	czech := colltab.CzechTable()

	cases := []struct {
		table     colltab.Weighter
		text, pat string
	}{
		{root, "the quick brown fox", "quick"},
		{root, "the quick brown fox", "fox"},
		{root, "the quick brown fox", "the"},
		{root, "mississippi", "issi"},
		{root, "mississippi", "ssi"},
		{root, "aaaaaaaaaa", "aaa"},
		{root, "abcabcabc", "cab"},
		{root, "hello world", "o w"},
		{root, "hello world", "notfound"},
		// German phonebook: the ß -> "ss" expansion must agree with simpleSearch
		// whether the pattern is spelled with the expanding character or with
		// its literal expansion, and across a straddling neighbor.
		{german, "der Fußball", "ß"},
		{german, "der Fußball", "ss"},
		{german, "Straße und Gasse", "e u"},
		{german, "Straße und Gasse", "notfound"},
		// Czech: "ch" is a single contraction sorted after "h"; simpleSearch
		// must agree on both a literal "ch" pattern and a pattern that
		// straddles into surrounding letters.
		{czech, "mnich chodil", "ch"},
		{czech, "nechci", "chc"},
		{czech, "nechci", "ech"},
		{czech, "nechci", "notfound"},
	}
	for _, c := range cases {
		idx := BuildInverseWeightIndex(c.table, colltab.Tertiary)
		pw := Drain(c.table, colltab.Tertiary, []byte(c.pat))
		eng, err := NewEngine(c.table, colltab.Tertiary, pw, idx)
		if err != nil {
			t.Fatalf("NewEngine(%q): %v", c.pat, err)
		}
		eng.SetTarget([]byte(c.text))
		gotStart, gotEnd, gotFound := eng.Search(0)

		wantStart, wantEnd, wantFound := simpleSearch(c.table, colltab.Tertiary, []byte(c.text), []byte(c.pat))

		if gotFound != wantFound || gotStart != wantStart || gotEnd != wantEnd {
			t.Errorf("text=%q pat=%q: Engine = (%d,%d,%v), simpleSearch = (%d,%d,%v)",
				c.text, c.pat, gotStart, gotEnd, gotFound, wantStart, wantEnd, wantFound)
		}
	}
}

func TestEngineMatchesAreMonotone(t *testing.T) {
	root := colltab.RootTable()
	idx := BuildInverseWeightIndex(root, colltab.Tertiary)
	pw := Drain(root, colltab.Tertiary, []byte("ab"))
	eng, err := NewEngine(root, colltab.Tertiary, pw, idx)
	if err != nil {
		t.Fatal(err)
	}
	text := []byte("abababab")
	eng.SetTarget(text)

	off := 0
	var starts []int
	for {
		s, e, ok := eng.Search(off)
		if !ok {
			break
		}
		starts = append(starts, s)
		off = e
	}
	for i := 1; i < len(starts); i++ {
		if starts[i] <= starts[i-1] {
			t.Errorf("matches not strictly increasing: %v", starts)
		}
	}
	if len(starts) != 4 {
		t.Errorf("expected 4 non-overlapping matches of ab in abababab, got %d: %v", len(starts), starts)
	}
}
