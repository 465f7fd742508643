// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import "github.com/textsearch/collate/colltab"

// Engine is the SearchEngine: it drives the Boyer-Moore loop over a target
// bound by SetTarget and validates candidate matches against expansion and
// grapheme-boundary rules. All of its tables are built once from the
// pattern at construction and never mutated; only the bound TargetCursor
// carries mutable per-search state, so two Engines built from the same
// InverseWeightIndex and colltab.Weighter can run concurrently as long as
// each owns its own Engine instance (see Pattern's doc comment for the full
// concurrency contract).
type Engine struct {
	w     colltab.Weighter
	level colltab.Level
	pat   WeightList
	idx   *InverseWeightIndex
	cache *MinLengthCache
	bc    *BadCharacterTable
	gs    *GoodSuffixTable

	cursor *TargetCursor
	data   []byte
	tLen   int
}

// NewEngine builds an Engine for pat under w/level, indexed by idx. It
// refuses an empty pattern and reports DataDependency if pat's weights,
// read from the start, cannot be decomposed into strings of idx's domain.
func NewEngine(w colltab.Weighter, level colltab.Level, pat WeightList, idx *InverseWeightIndex) (*Engine, error) {
	if pat.Len() == 0 {
		return nil, newError(InvalidArgument, ErrEmptyPattern)
	}
	cache := BuildMinLengthCache(pat, idx)
	if cache.At(0) < 0 {
		return nil, newError(DataDependency, ErrNoDecomposition)
	}
	bc := BuildBadCharacterTable(pat, cache)
	gs := BuildGoodSuffixTable(pat, cache, bc)
	return &Engine{
		w:      w,
		level:  level,
		pat:    pat,
		idx:    idx,
		cache:  cache,
		bc:     bc,
		gs:     gs,
		cursor: NewTargetCursor(w, level, pat.Len()),
	}, nil
}

// SetTarget binds the engine to the text subsequent Search calls scan.
func (e *Engine) SetTarget(data []byte) {
	e.data = data
	e.tLen = len(data)
	e.cursor.SetInput(data)
}

// Search finds the first match at or after fromOff, returning its
// [start, end) span, or found == false if there is none.
func (e *Engine) Search(fromOff int) (start, end int, found bool) {
	plen := e.pat.Len()
	maxSkip := e.bc.MaxSkip()
	tOff := fromOff + maxSkip

	for tOff <= e.tLen {
		lIdx := 0
		if tOff < e.tLen {
			safe := e.cursor.NextSafeBoundary(tOff + 1)
			e.cursor.SetAnchorAtEnd(safe)

			// Walk backward until the first buffered weight whose span
			// ends at or before tOff: that is the true anchor for this
			// candidate, and the comparison below starts at it. A weight
			// whose span straddles tOff means tOff landed inside an
			// expansion; bump it to the span's end and walk again.
			for ; ; lIdx++ {
				ce := e.cursor.PrevCE(lIdx)
				if ce.IsNull() {
					break
				}
				if ce.HiOff <= tOff {
					break
				}
				if ce.LoOff < tOff && tOff < ce.HiOff {
					tOff = ce.HiOff
					lIdx = -1
				}
			}
		} else {
			e.cursor.SetAnchorAtEnd(tOff)
		}

		pIdx := plen - 1
		tIdx := lIdx
		matched := true
		var mismatchW colltab.Elem

		for ; pIdx >= 0; pIdx-- {
			tce := e.cursor.PrevCE(tIdx)
			tIdx++
			if tce.IsNull() || tce.W != e.pat.At(pIdx).W {
				matched = false
				mismatchW = tce.W
				break
			}
		}

		if matched {
			firstCEI := e.cursor.PrevCE(tIdx - 1) // deepest weight consumed
			lastCEI := e.cursor.PrevCE(lIdx)      // shallowest
			mStart := firstCEI.LoOff
			mLimit := lastCEI.HiOff

			e.cursor.SetAnchor(mLimit) // rebase NextCE to just past the match
			if e.validate(&mStart, &mLimit, firstCEI, lastCEI) {
				return mStart, mLimit, true
			}
			tOff += e.gs.At(0)
			continue
		}

		bcShift := e.bc.SkipFor(mismatchW) - e.cache.At(pIdx+1)
		newOff := tOff + bcShift
		gsOff := tOff + e.gs.At(pIdx)
		next := newOff
		if gsOff > next {
			next = gsOff
		}
		if tOff+1 > next {
			next = tOff + 1
		}
		tOff = next
	}
	return -1, -1, false
}

// validate applies the four rejection rules from the design: a match must
// not begin or continue inside an expansion, and both edges must land on
// grapheme cluster boundaries (with one narrow exception for the trailing
// edge, handled below).
func (e *Engine) validate(mStart, mLimit *int, firstCEI, lastCEI WeightEntry) bool {
	if firstCEI.LoOff == firstCEI.HiOff {
		return false // match begins inside an expansion
	}
	if n := e.cursor.NextCE(0); !n.IsNull() && n.LoOff == n.HiOff {
		return false // the next weight is a later part of an expansion we straddled
	}
	if !e.cursor.IsGraphemeBoundary(*mStart) {
		return false
	}
	if e.cursor.IsGraphemeBoundary(*mLimit) {
		return true
	}
	if lastCEI.LoOff < lastCEI.HiOff {
		if candidate := e.cursor.NextGraphemeBoundary(lastCEI.LoOff); candidate >= lastCEI.HiOff {
			*mLimit = candidate
			return true
		}
	}
	return false
}

// SearchBackward finds the last match ending at or before fromOff. It is
// the "may be provided" operation from the design: rather than a second,
// mirror-tabled Boyer-Moore walk, it is built directly on Search's
// monotonicity guarantee (successive matches come back in increasing start
// order), which is sufficient for backward lookup without duplicating the
// shift tables for a reverse direction.
func (e *Engine) SearchBackward(fromOff int) (start, end int, found bool) {
	lastStart, lastEnd := -1, -1
	off := 0
	for {
		s, en, ok := e.Search(off)
		if !ok || en > fromOff {
			break
		}
		lastStart, lastEnd = s, en
		off = en
	}
	if lastStart < 0 {
		return -1, -1, false
	}
	return lastStart, lastEnd, true
}
