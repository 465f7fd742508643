// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package search provides collation-aware string search: finding one string
// inside another the way a given locale's collation order says two strings
// are equivalent, not the way their bytes happen to compare. German will
// insist "fuss" occurs in "Fuß" and Czech will treat "ch" as a single letter
// that collates between "h" and "i", and this package gets both right by
// searching over collation weights rather than runes.
//
// Text passed to any of the calls in this package does not need to be
// normalized first: the underlying weight stream reorders combining marks
// on the fly, the same guarantee golang.org/x/text/collate gives its
// callers.
package search

import (
	"github.com/textsearch/collate/colltab"
	"github.com/textsearch/collate/locale"
)

// An Option configures a Matcher.
type Option func(*matcherConfig)

type matcherConfig struct {
	level            colltab.Level
	ignoreCase       bool
	ignoreDiacritics bool
	ignoreWidth      bool
	wholeWord        bool
}

// WholeWord restricts matches to complete words. Reserved: Index does not
// yet enforce it, the same forward-compatible placeholder the teacher
// package carried.
func WholeWord(c *matcherConfig) { c.wholeWord = true }

// Exact requires that two strings are their exact equivalent: case,
// diacritics and width all participate in the match. It overrides any
// Ignore* option applied before it in the Option list.
func Exact(c *matcherConfig) {
	c.level = colltab.Identical
	c.ignoreCase, c.ignoreDiacritics, c.ignoreWidth = false, false, false
}

// Loose causes case, diacritics and width to be ignored: only the primary
// weight participates in the match.
func Loose(c *matcherConfig) {
	c.level = colltab.Primary
	c.ignoreCase, c.ignoreDiacritics, c.ignoreWidth = true, true, true
}

// IgnoreCase enables case-insensitive search.
func IgnoreCase(c *matcherConfig) {
	c.ignoreCase = true
	if c.level > colltab.Secondary {
		c.level = colltab.Secondary
	}
}

// IgnoreDiacritics causes diacritics to be ignored ("o" == "ö").
func IgnoreDiacritics(c *matcherConfig) {
	c.ignoreDiacritics = true
	c.level = colltab.Primary
}

// IgnoreWidth equates fullwidth with halfwidth variants. The reference
// collation table in this package does not tailor width-variant runes
// differently from their halfwidth counterparts, so this option is accepted
// for API symmetry but has no additional effect beyond the strength it
// implies.
func IgnoreWidth(c *matcherConfig) {
	c.ignoreWidth = true
	if c.level > colltab.Secondary {
		c.level = colltab.Secondary
	}
}

// A Matcher implements locale-specific string matching for one option set.
// It is safe for concurrent use: every Compile call builds an independent
// Pattern, each with its own Engine and TargetCursor, so concurrent
// searches never share mutable state.
type Matcher struct {
	loc   locale.ID
	w     colltab.Weighter
	idx   *InverseWeightIndex
	level colltab.Level

	ignoreCase       bool
	ignoreDiacritics bool
	ignoreWidth      bool
	wholeWord        bool
}

// New returns a new Matcher for the given locale and options.
func New(loc locale.ID, opts ...Option) *Matcher {
	cfg := matcherConfig{level: colltab.Tertiary}
	for _, o := range opts {
		o(&cfg)
	}

	w := tableFor(loc)
	return &Matcher{
		loc:              loc,
		w:                w,
		idx:              BuildInverseWeightIndex(w, cfg.level),
		level:            cfg.level,
		ignoreCase:       cfg.ignoreCase,
		ignoreDiacritics: cfg.ignoreDiacritics,
		ignoreWidth:      cfg.ignoreWidth,
		wholeWord:        cfg.wholeWord,
	}
}

// tableFor picks the reference colltab.Table tailoring for loc's base
// language, falling back to root collation for anything this reference
// table does not specially tailor — the same fallback CLDR's parent-locale
// lookup gives an untailored language.
func tableFor(loc locale.ID) colltab.Weighter {
	switch loc.Base() {
	case "de":
		return colltab.GermanPhonebookTable()
	case "cs":
		return colltab.CzechTable()
	default:
		return colltab.RootTable()
	}
}

// An IndexOption specifies how the Index methods of Pattern or Matcher
// should match the input.
type IndexOption byte

const (
	// Anchor restricts the search to the start (or end for Backwards) of
	// the text.
	Anchor IndexOption = iota

	// Backwards starts the search from the end of the text and returns the
	// last match instead of the first.
	Backwards
)

// Index reports the start and end position of the first occurrence of pat
// in b, or -1, -1 if pat is not present or collates to nothing.
func (m *Matcher) Index(b, pat []byte, opts ...IndexOption) (start, end int) {
	p, err := m.Compile(pat)
	if err != nil {
		return -1, -1
	}
	return p.Index(b, opts...)
}

// IndexString reports the start and end position of the first occurrence
// of pat in s, or -1, -1 if pat is not present or collates to nothing.
func (m *Matcher) IndexString(s, pat string, opts ...IndexOption) (start, end int) {
	p, err := m.CompileString(pat)
	if err != nil {
		return -1, -1
	}
	return p.IndexString(s, opts...)
}

// Equal reports whether a and b are equivalent under m.
func (m *Matcher) Equal(a, b []byte) bool {
	_, end := m.Index(a, b, Anchor)
	return end == len(a)
}

// EqualString reports whether a and b are equivalent under m.
func (m *Matcher) EqualString(a, b string) bool {
	_, end := m.IndexString(a, b, Anchor)
	return end == len(a)
}

// Compile compiles pat into a Pattern that can be reused across repeated
// searches without re-weighing pat each time. It returns an error if pat
// collates to nothing under m's strength — including an empty pat — or if
// the pattern's own weights have no decomposition this Matcher's index can
// resolve to a safe character skip.
func (m *Matcher) Compile(pat []byte) (*Pattern, error) {
	return newPattern(m, Drain(m.w, m.level, pat))
}

// CompileString is the string equivalent of Compile.
func (m *Matcher) CompileString(pat string) (*Pattern, error) {
	return newPattern(m, DrainString(m.w, m.level, pat))
}
