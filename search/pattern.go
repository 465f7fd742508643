// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

// A Pattern is a compiled search string: its weights plus the Boyer-Moore
// tables and TargetCursor (components D through H) built from them against
// the Matcher's InverseWeightIndex. Two Patterns compiled from the same
// Matcher share nothing mutable, so concurrent searches on different
// Patterns never interfere; a single Pattern's Engine owns one TargetCursor,
// so concurrent Index calls on the *same* Pattern are not safe — callers
// searching the same compiled pattern from multiple goroutines should
// Compile once per goroutine, or serialize with a mutex.
type Pattern struct {
	m       *Matcher
	weights WeightList
	engine  *Engine
}

// newPattern builds a Pattern from pat's already-weighed WeightList,
// refusing to compile further if it is empty or if its weights cannot be
// decomposed into strings of the Matcher's index.
func newPattern(m *Matcher, weights WeightList) (*Pattern, error) {
	if weights.Len() == 0 {
		return nil, newError(InvalidArgument, ErrEmptyPattern)
	}
	eng, err := NewEngine(m.w, m.level, weights, m.idx)
	if err != nil {
		return nil, err
	}
	return &Pattern{m: m, weights: weights, engine: eng}, nil
}

// Index reports the start and end position of the first occurrence of p in
// b, or -1, -1 if p is not present. With Backwards it reports the last
// occurrence instead of the first. With Anchor the match must additionally
// begin (or, combined with Backwards, end) exactly at the edge of b the
// search started from.
func (p *Pattern) Index(b []byte, opts ...IndexOption) (start, end int) {
	anchor, backwards := parseIndexOptions(opts)

	p.engine.SetTarget(b)
	if backwards {
		s, e, ok := p.engine.SearchBackward(len(b))
		if !ok || (anchor && e != len(b)) {
			return -1, -1
		}
		return s, e
	}
	s, e, ok := p.engine.Search(0)
	if !ok || (anchor && s != 0) {
		return -1, -1
	}
	return s, e
}

// IndexString is the string equivalent of Index. It copies s to a byte
// slice, since the engine's components (WeightEntry spans, grapheme
// boundaries) are all bookkept in byte offsets.
func (p *Pattern) IndexString(s string, opts ...IndexOption) (start, end int) {
	return p.Index([]byte(s), opts...)
}

func parseIndexOptions(opts []IndexOption) (anchor, backwards bool) {
	for _, o := range opts {
		switch o {
		case Anchor:
			anchor = true
		case Backwards:
			backwards = true
		}
	}
	return anchor, backwards
}
