// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colltab

import (
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
)

// mark is a combining diacritic: it never contributes a primary weight, so
// it is ignorable at Primary strength, but carries a secondary weight and a
// canonical combining class used to reorder discontiguous combining runs.
type mark struct {
	secondary uint8
	ccc       uint8
}

var (
	acute      = mark{0x30, 230} // U+0301 COMBINING ACUTE ACCENT
	grave      = mark{0x31, 230} // U+0300 COMBINING GRAVE ACCENT
	circumflex = mark{0x38, 230} // U+0302 COMBINING CIRCUMFLEX ACCENT
	diaeresis  = mark{0x32, 230} // U+0308 COMBINING DIAERESIS
	tilde      = mark{0x35, 230} // U+0303 COMBINING TILDE
	caron      = mark{0x36, 230} // U+030C COMBINING CARON
	ringAbove  = mark{0x37, 230} // U+030A COMBINING RING ABOVE
	cedilla    = mark{0x33, 202} // U+0327 COMBINING CEDILLA
	dotBelow   = mark{0x34, 220} // U+0323 COMBINING DOT BELOW
)

// combiningRune maps the standalone combining characters to their mark
// weight, so that e.g. "a"+U+0301 and the precomposed "á" produce identical
// weight sequences.
var combiningRune = map[rune]mark{
	0x0301: acute,
	0x0300: grave,
	0x0302: circumflex,
	0x0308: diaeresis,
	0x0303: tilde,
	0x030C: caron,
	0x030A: ringAbove,
	0x0327: cedilla,
	0x0323: dotBelow,
}

// decomp describes a precomposed letter as a base rune plus a combining mark,
// mirroring canonical decomposition for the small set of Latin-1 letters this
// reference table knows about.
type decomp struct {
	base rune
	mark mark
}

var precomposed = map[rune]decomp{
	'á': {'a', acute}, 'Á': {'A', acute},
	'à': {'a', grave}, 'À': {'A', grave},
	'ä': {'a', diaeresis}, 'Ä': {'A', diaeresis},
	'â': {'a', circumflex}, 'Â': {'A', circumflex},
	'å': {'a', ringAbove}, 'Å': {'A', ringAbove},
	'ã': {'a', tilde}, 'Ã': {'A', tilde},
	'é': {'e', acute}, 'É': {'E', acute},
	'è': {'e', grave}, 'È': {'E', grave},
	'ë': {'e', diaeresis}, 'Ë': {'E', diaeresis},
	'í': {'i', acute}, 'Í': {'I', acute},
	'ï': {'i', diaeresis}, 'Ï': {'I', diaeresis},
	'ó': {'o', acute}, 'Ó': {'O', acute},
	'ö': {'o', diaeresis}, 'Ö': {'O', diaeresis},
	'ú': {'u', acute}, 'Ú': {'U', acute},
	'ü': {'u', diaeresis}, 'Ü': {'U', diaeresis},
	'ñ': {'n', tilde}, 'Ñ': {'N', tilde},
	'ç': {'c', cedilla}, 'Ç': {'C', cedilla},
	'š': {'s', caron}, 'Š': {'S', caron},
	'č': {'c', caron}, 'Č': {'C', caron},
	'ž': {'z', caron}, 'Ž': {'Z', caron},
}

// letterRank gives every ASCII letter a primary weight ten apart, leaving
// room to slot contractions (e.g. Czech "ch") strictly between two letters
// without renumbering the alphabet.
func letterRank(lower rune) uint32 {
	return uint32(10 * (lower - 'a' + 1))
}

const (
	tertiaryLower = 0x02
	tertiaryUpper = 0x08
)

// Table is a small, hand-built reference Weighter. It is not a collation
// table compiler: it hard-codes just enough of English, German and Czech
// collation behavior to exercise contractions, expansions and combining
// mark reordering, the three cases spec.md's concrete scenarios (§8)
// require. Loading real CLDR tailoring data is explicitly out of scope
// (see spec.md §1) and remains the job of an external collator.
type Table struct {
	name          string
	contractions  map[string]uint32 // contraction text -> primary weight
	expandToSS    bool              // German phonebook-ish: ß -> ss
	contractAuto  *ahocorasick.Automaton
	contractKeys  []string
	top           uint32
}

// RootTable implements simple case/diacritic-aware Latin collation with no
// contractions and no expansions: the baseline used when no tailoring
// applies.
func RootTable() *Table {
	return buildTable("root", nil, false)
}

// GermanPhonebookTable additionally expands ß to the two weights of "ss",
// as used by German phonebook ("DIN 5007-2") ordering. See spec.md §8,
// scenarios 1-4.
func GermanPhonebookTable() *Table {
	return buildTable("de-u-co-phonebk", nil, true)
}

// CzechTable additionally treats "ch" as a single contraction collating
// between "h" and "i". See spec.md §8, scenario 5.
func CzechTable() *Table {
	return buildTable("cs", map[string]uint32{"ch": letterRank('h') + 5}, false)
}

func buildTable(name string, contractions map[string]uint32, expandToSS bool) *Table {
	t := &Table{
		name:         name,
		contractions: contractions,
		expandToSS:   expandToSS,
		top:          0x0020,
	}
	for k := range contractions {
		t.contractKeys = append(t.contractKeys, k)
	}
	if len(t.contractKeys) > 0 {
		b := ahocorasick.NewBuilder()
		for _, k := range t.contractKeys {
			b.AddPattern([]byte(k))
		}
		if auto, err := b.Build(); err == nil {
			t.contractAuto = auto
		}
	}
	return t
}

// matchContraction reports the byte length of a contraction matching the
// start of s, or 0 if none applies. It uses the Aho-Corasick automaton
// built over the table's declared contraction strings rather than a linear
// scan, the same multi-pattern dispatch coregx-coregex's meta engine uses
// for large literal alternations.
func (t *Table) matchContraction(s []byte) (weight uint32, n int) {
	if t.contractAuto == nil {
		return 0, 0
	}
	m := t.contractAuto.Find(s, 0)
	if m == nil || m.Start != 0 {
		return 0, 0
	}
	return t.contractions[string(s[m.Start:m.End])], m.End - m.Start
}

func (t *Table) AppendNext(buf []Elem, s []byte) ([]Elem, int) {
	if w, n := t.matchContraction(s); n > 0 {
		return append(buf, MakeElem(w, 0, tertiaryLower, 0)), n
	}
	r, sz := utf8.DecodeRune(s)
	return t.appendRune(buf, r, sz)
}

func (t *Table) AppendNextString(buf []Elem, s string) ([]Elem, int) {
	if w, n := t.matchContraction([]byte(s)); n > 0 {
		return append(buf, MakeElem(w, 0, tertiaryLower, 0)), n
	}
	r, sz := utf8.DecodeRuneInString(s)
	return t.appendRune(buf, r, sz)
}

func (t *Table) appendRune(buf []Elem, r rune, sz int) ([]Elem, int) {
	switch {
	case r == utf8.RuneError && sz <= 1:
		return append(buf, MakeElem(uint32(r), 0, 0, 0)), 1

	case r == 0x00DF && t.expandToSS: // ß -> ss
		return append(buf,
			MakeElem(letterRank('s'), 0, tertiaryLower, 0),
			MakeElem(letterRank('s'), 0, tertiaryLower, 0),
		), sz

	case r == 0x00DF: // ß kept as its own primary when not phonebook-tailored
		return append(buf, MakeElem(letterRank('s')+1, 0, tertiaryLower, 0)), sz

	case r >= 'a' && r <= 'z':
		return append(buf, MakeElem(letterRank(r), 0, tertiaryLower, 0)), sz

	case r >= 'A' && r <= 'Z':
		return append(buf, MakeElem(letterRank(r-'A'+'a'), 0, tertiaryUpper, 0)), sz

	case r >= '0' && r <= '9':
		return append(buf, MakeElem(1000+uint32(r-'0'), 0, 0, 0)), sz

	default:
		if d, ok := precomposed[r]; ok {
			tert := uint8(tertiaryLower)
			if d.base >= 'A' && d.base <= 'Z' {
				tert = tertiaryUpper
			}
			base := lowerOf(d.base)
			buf = append(buf, MakeElem(letterRank(base), 0, tert, 0))
			buf = append(buf, MakeElem(0, d.mark.secondary, 0, d.mark.ccc))
			return buf, sz
		}
		if m, ok := combiningRune[r]; ok {
			return append(buf, MakeElem(0, m.secondary, 0, m.ccc)), sz
		}
		if r == ' ' || r == '\t' {
			return append(buf, MakeElem(1, 0, 0, 0)), sz
		}
		// Punctuation and anything else this toy table does not tailor:
		// give it a non-ignorable primary weight of 300 + r%500, above every
		// letter and below the digits; runes 500 apart share a weight.
		return append(buf, MakeElem(uint32(300+r%500), 0, 0, 0)), sz
	}
}

func lowerOf(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

func (t *Table) Start(p int, b []byte) int {
	for p > 0 && p < len(b) && !utf8.RuneStart(b[p]) {
		p--
	}
	return p
}

func (t *Table) StartString(p int, s string) int {
	return t.Start(p, []byte(s))
}

// asciiPunctRanges lists the ASCII punctuation blocks appendRune's default
// case assigns a distinct, non-ignorable primary weight to (everything
// printable that is not a letter, digit, or space/tab).
var asciiPunctRanges = [][2]rune{
	{0x21, 0x2F}, // ! " # $ % & ' ( ) * + , - . /
	{0x3A, 0x40}, // : ; < = > ? @
	{0x5B, 0x60}, // [ \ ] ^ _ `
	{0x7B, 0x7E}, // { | } ~
}

// Domain returns the ASCII letters, digits, space, tab and punctuation, the
// precomposed letters and combining marks this table knows, ß, and the
// table's contractions; InverseWeightIndex is built over exactly this set.
// Other runes, which appendRune weighs in its default case, are not listed.
// This must stay in lockstep with appendRune: any rune appendRune gives a weight to
// needs an entry here, or MinLengthSolver can never find a way to produce
// that weight and permanently fails closed for patterns containing it
// (spec §4.C's "configured character set" includes space and punctuation,
// not just letters).
func (t *Table) Domain() []string {
	var out []string
	for r := rune('a'); r <= 'z'; r++ {
		out = append(out, string(r), string(r-'a'+'A'))
	}
	for r := '0'; r <= '9'; r++ {
		out = append(out, string(r))
	}
	for r := range precomposed {
		out = append(out, string(r))
	}
	for r := range combiningRune {
		out = append(out, string(r))
	}
	out = append(out, string(rune(0x00DF)))
	out = append(out, " ", "\t")
	for _, rng := range asciiPunctRanges {
		for r := rng[0]; r <= rng[1]; r++ {
			out = append(out, string(r))
		}
	}
	out = append(out, t.contractKeys...)
	return out
}

func (t *Table) Top() uint32 { return t.top }

// Name reports the locale tag this table was built for (informational).
func (t *Table) Name() string { return t.name }
