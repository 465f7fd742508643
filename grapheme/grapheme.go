// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grapheme provides a minimal grapheme-cluster boundary iterator, the
// "Grapheme-break iterator" consumed interface a collation-aware search
// engine needs to keep matches from splitting a user-perceived character.
//
// This is a UAX #29-lite implementation: it recognizes the Extend and
// SpacingMark boundary rules (GB9, GB9a) using the standard library's
// unicode range tables, but does not implement emoji ZWJ sequences,
// Indic_Conjunct_Break or regional indicator pairing. Full UAX #29 tailoring,
// like locale-specific collation tailoring, is an external concern.
package grapheme

import (
	"unicode"
	"unicode/utf8"
)

// Breaker reports grapheme cluster boundaries in a byte string.
type Breaker interface {
	// IsBoundary reports whether off is a grapheme cluster boundary.
	// off must be a valid rune boundary; 0 and len(s) are always boundaries.
	IsBoundary(off int) bool

	// Following returns the smallest boundary strictly greater than off,
	// or len(s) if off is already at or past the last boundary.
	Following(off int) int
}

// extend reports whether r never starts a new grapheme cluster: combining
// marks (Mn, Me) and spacing combining marks (Mc) attach to the preceding
// base character per UAX #29 rules GB9 and GB9a.
func extend(r rune) bool {
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Mc, r)
}

// breaker implements Breaker over a fixed byte slice, decoding runes lazily.
type breaker struct {
	s []byte
}

// NewBreaker returns a Breaker over s.
func NewBreaker(s []byte) Breaker {
	return &breaker{s: s}
}

// NewBreakerString returns a Breaker over s.
func NewBreakerString(s string) Breaker {
	return &breaker{s: []byte(s)}
}

func (b *breaker) IsBoundary(off int) bool {
	if off <= 0 || off >= len(b.s) {
		return true
	}
	r, _ := utf8.DecodeRune(b.s[off:])
	return !extend(r)
}

func (b *breaker) Following(off int) int {
	n := len(b.s)
	if off >= n {
		return n
	}
	_, sz := utf8.DecodeRune(b.s[off:])
	i := off + sz
	for i < n {
		r, sz := utf8.DecodeRune(b.s[i:])
		if !extend(r) {
			return i
		}
		i += sz
	}
	return n
}
