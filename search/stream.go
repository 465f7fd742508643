// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import "github.com/textsearch/collate/colltab"

// maxCombiningRun bounds how far back a reordering pass will look before
// giving up and treating the run as already in order; mirrors the teacher
// iterator's maxCombiningCharacters constant.
const maxCombiningRun = 30

// Stream is the CollationElementStream: it turns a (Weighter, text) pair
// into a finite forward sequence of non-ignorable WeightEntry values, masked
// to a configured strength. It reorders runs of combining weights by
// canonical combining class exactly as if the source text had been
// normalized first, without requiring the caller to normalize it — the same
// guarantee golang.org/x/text/internal/colltab.Iter gives its callers.
//
// Stream only reads forward. Backward access for target scanning is the
// TargetCursor's job (see cursor.go): it re-derives backward weights by
// replaying a Stream forward from a safe boundary, rather than this type
// implementing a native previous().
type Stream struct {
	w     colltab.Weighter
	level colltab.Level

	bytes []byte
	str   string
	pos   int // absolute source offset not yet handed to AppendNext

	buf     []WeightEntry // produced so far, some still subject to reordering
	n       int           // buf[:n] is finalized and safe to emit
	emitIdx int           // next index in buf to hand out via Next

	prevCCC  uint8
	pStarter int
}

// NewStream returns a Stream that will weigh text using w at strength level.
func NewStream(w colltab.Weighter, level colltab.Level) *Stream {
	return &Stream{w: w, level: level}
}

// SetInput resets the stream to scan s from the start.
func (s *Stream) SetInput(b []byte) {
	s.bytes, s.str = b, ""
	s.reset()
}

// SetInputString is the string equivalent of SetInput.
func (s *Stream) SetInputString(str string) {
	s.str, s.bytes = str, nil
	s.reset()
}

// Seek moves the read position to off without changing the underlying text.
func (s *Stream) Seek(off int) {
	s.reset()
	s.pos = off
}

// CurrentOffset returns the absolute source offset not yet consumed.
func (s *Stream) CurrentOffset() int { return s.pos }

func (s *Stream) reset() {
	s.buf = s.buf[:0]
	s.n, s.emitIdx = 0, 0
	s.prevCCC, s.pStarter = 0, 0
}

func (s *Stream) srcLen() int {
	if s.bytes != nil {
		return len(s.bytes)
	}
	return len(s.str)
}

func (s *Stream) done() bool { return s.pos >= s.srcLen() }

// appendNext asks the Weighter for the next rune or contraction's weights
// and assigns each one its source span under the expansion-offset rule.
func (s *Stream) appendNext() {
	p := s.pos
	var elems []colltab.Elem
	var n int
	if s.bytes != nil {
		elems, n = s.w.AppendNext(nil, s.bytes[p:])
	} else {
		elems, n = s.w.AppendNextString(nil, s.str[p:])
	}
	for i, e := range elems {
		lo, hi := p, p+n
		if i > 0 {
			lo = hi
		}
		s.buf = append(s.buf, WeightEntry{W: e, LoOff: lo, HiOff: hi})
	}
	s.pos += n
}

// fill pulls more weights into buf until a block with CCC == 0 closes it off
// (the block cannot be reordered with what comes after), reordering as it
// goes. It returns false only when the source is exhausted and buf has
// already been fully finalized.
func (s *Stream) fill() bool {
	for !s.done() {
		p0 := len(s.buf)
		s.appendNext()
		last := len(s.buf) - 1
		ccc := s.buf[last].W.CCC()
		switch {
		case ccc == 0:
			s.n, s.pStarter, s.prevCCC = len(s.buf), last, 0
			return true
		case p0 < last && s.buf[p0].W.CCC() == 0:
			k := p0 + 1
			for ; k < last && s.buf[k].W.CCC() == 0; k++ {
			}
			s.n, s.pStarter, s.prevCCC = k, k-1, ccc
			return true
		case ccc < s.prevCCC:
			s.reorder(p0, ccc)
		default:
			s.prevCCC = ccc
		}
	}
	if len(s.buf) != s.n {
		s.n = len(s.buf)
		return true
	}
	return false
}

// reorder moves the run of combining weights starting at p so that the
// block stays in non-decreasing canonical-combining-class order, matching
// canonical Unicode reordering (UAX #15 D108) applied to weights rather
// than to runes directly.
func (s *Stream) reorder(p int, ccc uint8) {
	if p-s.pStarter > maxCombiningRun {
		s.prevCCC = s.buf[len(s.buf)-1].W.CCC()
		s.pStarter = len(s.buf) - 1
		return
	}
	n := len(s.buf)
	k := p
	for p--; p > s.pStarter && ccc < s.buf[p-1].W.CCC(); p-- {
	}
	s.buf = append(s.buf, s.buf[p:k]...)
	copy(s.buf[p:], s.buf[k:])
	s.buf = s.buf[:n]
}

// Next returns the next non-ignorable weight in the stream, masked to the
// configured strength, or ok == false once the stream is exhausted.
func (s *Stream) Next() (e WeightEntry, ok bool) {
	for {
		if s.emitIdx >= s.n {
			if !s.fill() {
				return WeightEntry{}, false
			}
		}
		entry := s.buf[s.emitIdx]
		s.emitIdx++
		masked := entry.W.Mask(s.level)
		if masked.IsIgnorable(s.level) {
			continue
		}
		entry.W = masked
		return entry, true
	}
}

// Drain runs the stream to completion and returns every weight it produces
// as a WeightList. Used to build a pattern's WeightList once at construction
// (component B).
func Drain(w colltab.Weighter, level colltab.Level, text []byte) WeightList {
	s := NewStream(w, level)
	s.SetInput(text)
	var entries []WeightEntry
	for {
		e, ok := s.Next()
		if !ok {
			break
		}
		entries = append(entries, e)
	}
	return NewWeightList(entries)
}

// DrainString is the string equivalent of Drain.
func DrainString(w colltab.Weighter, level colltab.Level, text string) WeightList {
	s := NewStream(w, level)
	s.SetInputString(text)
	var entries []WeightEntry
	for {
		e, ok := s.Next()
		if !ok {
			break
		}
		entries = append(entries, e)
	}
	return NewWeightList(entries)
}
