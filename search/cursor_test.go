// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"testing"

	"github.com/textsearch/collate/colltab"
)

// TestCursorForwardBackwardAgree checks the offsetTest property the design
// calls out directly: walking backward from an anchor and then forward from
// where that walk started must reproduce the same weights in the same
// order, so PrevCE and NextCE never disagree about what the text contains.
func TestCursorForwardBackwardAgree(t *testing.T) {
	root := colltab.RootTable()
	text := []byte("the quick brown fox jumps over the lazy dog")

	anchor := 20
	c := NewTargetCursor(root, colltab.Tertiary, 8)
	c.SetInput(text)
	c.SetAnchorAtEnd(anchor)

	var backward []colltab.Elem
	for i := 0; ; i++ {
		e := c.PrevCE(i)
		if e.IsNull() {
			break
		}
		backward = append(backward, e.W)
	}

	// Reverse to forward order and compare against a direct forward Stream
	// started from the same region.
	forward := make([]colltab.Elem, len(backward))
	for i, e := range backward {
		forward[len(backward)-1-i] = e
	}

	s := NewStream(root, colltab.Tertiary)
	s.SetInput(text)
	var direct []colltab.Elem
	for {
		e, ok := s.Next()
		if !ok || e.HiOff > anchor {
			break
		}
		if e.LoOff >= 0 {
			direct = append(direct, e.W)
		}
	}
	// Only compare the overlapping suffix: the cursor's backward window may
	// start later into the text than the very beginning.
	if len(forward) > len(direct) {
		t.Fatalf("cursor produced more weights (%d) than exist before the anchor (%d)", len(forward), len(direct))
	}
	offset := len(direct) - len(forward)
	for i, w := range forward {
		if w != direct[offset+i] {
			t.Errorf("weight %d: backward-then-reversed = %v, direct forward = %v", i, w, direct[offset+i])
		}
	}
}

func TestCursorNextCEAfterAnchor(t *testing.T) {
	root := colltab.RootTable()
	text := []byte("abcdef")

	c := NewTargetCursor(root, colltab.Tertiary, 4)
	c.SetInput(text)
	c.SetAnchor(2) // "cdef"

	first := c.NextCE(0)
	if first.IsNull() {
		t.Fatalf("NextCE(0) should not be null")
	}
	// 'c' collates distinctly from 'a'; just check it agrees with a direct
	// drain of the suffix.
	want := Drain(root, colltab.Tertiary, text[2:])
	if first.W != want.At(0).W {
		t.Errorf("NextCE(0) = %v, want %v", first.W, want.At(0).W)
	}
}

func TestNextSafeBoundarySnapsForward(t *testing.T) {
	root := colltab.RootTable()
	// "a" + combining acute accent (U+0301, 2 bytes) + "b": offset 1 is a
	// valid rune boundary (the start of the combining mark) but not a
	// grapheme boundary, since the mark attaches to the preceding "a".
	text := []byte("áb")

	c := NewTargetCursor(root, colltab.Tertiary, 4)
	c.SetInput(text)

	if c.IsGraphemeBoundary(1) {
		t.Fatalf("offset 1 should not be a grapheme boundary in %q", text)
	}
	safe := c.NextSafeBoundary(1)
	if !c.IsGraphemeBoundary(safe) {
		t.Errorf("NextSafeBoundary(1) = %d is not a grapheme boundary", safe)
	}
	if safe <= 1 {
		t.Errorf("NextSafeBoundary(1) = %d, want strictly greater than 1 since 1 is mid-cluster", safe)
	}
}
