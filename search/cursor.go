// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"unicode/utf8"

	"github.com/textsearch/collate/colltab"
	"github.com/textsearch/collate/grapheme"
)

// bufferMargin is the K term in the cursor's capacity of
// patternWeightCount + K, sized generously for worst-case expansions.
const bufferMargin = 40

// TargetCursor is a bidirectional, bounded view of the target's weight
// stream. The search engine never re-drives the underlying text from the
// start: it asks the cursor for the i-th weight before or after an anchor
// offset, and the cursor buffers whatever it needs to answer that.
//
// Bidirectionality is not provided by a native "previous weight" operation
// on the underlying Weighter (that capability belongs to the external
// collation-element iterator, out of scope per the core's design). Instead,
// backward access is reconstructed: the cursor locates a grapheme-safe
// boundary earlier in the text, replays a forward Stream up to the anchor,
// and serves that buffered run in reverse. This is the same trick
// nextSafeBoundary names directly: a forward stream started at any
// grapheme boundary agrees with one started at the true beginning of the
// text, because a boundary can never fall inside a base+combining-mark run.
type TargetCursor struct {
	w        colltab.Weighter
	level    colltab.Level
	capacity int

	data []byte
	grf  grapheme.Breaker

	anchor int

	back []WeightEntry // back[i] is the i-th weight before anchor (prevCE)

	fwdStream *Stream
	fwdBuf    []WeightEntry // fwdBuf[i] is the i-th weight at/after anchor (nextCE)
}

// NewTargetCursor returns a cursor sized to hold at least patternWeightCount
// weights of backward context plus a safety margin.
func NewTargetCursor(w colltab.Weighter, level colltab.Level, patternWeightCount int) *TargetCursor {
	return &TargetCursor{
		w:        w,
		level:    level,
		capacity: patternWeightCount + bufferMargin,
	}
}

// SetInput binds the cursor to target text. Must be called before any
// anchor is set.
func (c *TargetCursor) SetInput(data []byte) {
	c.data = data
	c.grf = grapheme.NewBreaker(data)
}

// IsGraphemeBoundary reports whether off is a grapheme cluster boundary.
func (c *TargetCursor) IsGraphemeBoundary(off int) bool {
	if off <= 0 || off >= len(c.data) {
		return true
	}
	return c.grf.IsBoundary(off)
}

// NextGraphemeBoundary returns the smallest grapheme boundary strictly
// greater than off.
func (c *TargetCursor) NextGraphemeBoundary(off int) int {
	return c.grf.Following(off)
}

// NextSafeBoundary advances off, if necessary, past any position where
// restarting a forward weight stream could disagree with one driven from
// the true start of the text — in practice, any non-boundary position,
// since only grapheme-internal offsets are combining-unsafe restart points.
func (c *TargetCursor) NextSafeBoundary(off int) int {
	if off <= 0 || off >= len(c.data) {
		return off
	}
	if c.grf.IsBoundary(off) {
		return off
	}
	return c.grf.Following(off)
}

// SetAnchor resets the cursor for a forward scan anchored at off: both
// buffers are cleared and NextCE will stream forward from off.
func (c *TargetCursor) SetAnchor(off int) {
	c.anchor = off
	c.back = c.back[:0]
	c.fwdStream = nil
	c.fwdBuf = c.fwdBuf[:0]
}

// SetAnchorAtEnd resets the cursor for a backward scan anchored at off:
// PrevCE(0) will be the weight immediately preceding off.
func (c *TargetCursor) SetAnchorAtEnd(off int) {
	c.anchor = off
	c.fwdStream = nil
	c.fwdBuf = c.fwdBuf[:0]
	c.back = c.back[:0]
	if off <= 0 {
		return
	}

	start := c.backwardWindowStart(off)
	s := NewStream(c.w, c.level)
	s.SetInput(c.data[:off])
	s.Seek(start)

	var fwd []WeightEntry
	for {
		e, ok := s.Next()
		if !ok {
			break
		}
		fwd = append(fwd, e)
	}
	c.back = make([]WeightEntry, len(fwd))
	for i, e := range fwd {
		c.back[len(fwd)-1-i] = e
	}
}

// backwardWindowStart walks grapheme clusters backward from off until it
// has likely covered capacity weights (one cluster very often produces one
// weight, occasionally more for an expansion), then snaps the result to a
// safe boundary. Collecting too few just means PrevCE runs out early, which
// the engine already treats as "no more target text"; collecting too many
// only costs some extra, bounded work.
func (c *TargetCursor) backwardWindowStart(off int) int {
	p := off
	for clusters := 0; p > 0 && clusters < c.capacity; clusters++ {
		p = c.previousClusterStart(p)
	}
	return c.NextSafeBoundary(p)
}

func (c *TargetCursor) previousClusterStart(off int) int {
	if off <= 0 {
		return 0
	}
	_, sz := utf8.DecodeLastRune(c.data[:off])
	p := off - sz
	for p > 0 && !c.grf.IsBoundary(p) {
		_, sz := utf8.DecodeLastRune(c.data[:p])
		p -= sz
	}
	return p
}

// PrevCE returns the i-th weight before the anchor, or NullEntry if that
// falls outside the buffered backward window.
func (c *TargetCursor) PrevCE(i int) WeightEntry {
	if i < 0 || i >= len(c.back) {
		return NullEntry
	}
	return c.back[i]
}

// NextCE returns the i-th weight at or after the anchor, streaming and
// buffering lazily on first use.
func (c *TargetCursor) NextCE(i int) WeightEntry {
	if i < 0 {
		return NullEntry
	}
	if c.fwdStream == nil {
		c.fwdStream = NewStream(c.w, c.level)
		c.fwdStream.SetInput(c.data)
		c.fwdStream.Seek(c.anchor)
	}
	for len(c.fwdBuf) <= i {
		e, ok := c.fwdStream.Next()
		if !ok {
			return NullEntry
		}
		c.fwdBuf = append(c.fwdBuf, e)
	}
	return c.fwdBuf[i]
}

// Anchor returns the offset the cursor is currently anchored at.
func (c *TargetCursor) Anchor() int { return c.anchor }
