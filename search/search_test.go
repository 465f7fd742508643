// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"testing"

	"github.com/textsearch/collate/locale"
)

func TestGermanPhonebookExpansionScenarios(t *testing.T) {
	m := New(locale.Make("de"), Loose)

	cases := []struct {
		name      string
		text, pat string
		wantFound bool
	}{
		{"fuss matches fuss literally", "Der Fuss tut weh", "fuss", true},
		{"fuss matches eszett under loose strength", "Der Fuß tut weh", "fuss", true},
		{"eszett pattern matches fuss target", "Der Fuss tut weh", "fuß", true},
		{"eszett matches eszett", "Der Fuß tut weh", "fuß", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			start, end := m.IndexString(c.text, c.pat)
			found := start >= 0
			if found != c.wantFound {
				t.Fatalf("IndexString(%q, %q) found = %v, want %v (start=%d end=%d)",
					c.text, c.pat, found, c.wantFound, start, end)
			}
			if found && c.text[start:end] == "" {
				t.Errorf("matched span is empty")
			}
		})
	}
}

func TestCzechChContractionScenario(t *testing.T) {
	m := New(locale.Make("cs"), Loose)
	start, end := m.IndexString("chata", "ch")
	if start != 0 || end != 2 {
		t.Errorf("IndexString(chata, ch) = %d, %d; want 0, 2", start, end)
	}

	// "ch" must not spuriously match a lone "c" followed by "h" belonging to
	// a different contraction boundary check; here it simply must still be
	// found inside a longer word.
	start, end = m.IndexString("prichazi", "ch")
	if start < 0 {
		t.Errorf("IndexString(prichazi, ch) not found, want a match")
	} else if end-start != 2 {
		t.Errorf("ch contraction match span = %d, want length 2", end-start)
	}
}

func TestCombiningMarkReorderingScenario(t *testing.T) {
	m := New(locale.Root, Loose)

	// A plain "a" pattern must be found at the start of "a" + combining
	// acute (U+0301) + "bc": once diacritics are ignored the mark carries no
	// primary weight, so the loose primary weight match succeeds.
	decomposed := "ábc"
	if start, end := m.IndexString(decomposed, "a"); start != 0 || end == 0 {
		t.Errorf("IndexString(%q, %q) = %d, %d; want a match starting at 0", decomposed, "a", start, end)
	}
}

func TestEmptyPatternRefused(t *testing.T) {
	m := New(locale.Root)
	if _, err := m.Compile(nil); err == nil {
		t.Errorf("Compile(nil) should be refused")
	}
	if _, err := m.CompileString(""); err == nil {
		t.Errorf("CompileString(\"\") should be refused")
	}
	start, end := m.IndexString("anything", "")
	if start != -1 || end != -1 {
		t.Errorf("IndexString with empty pattern = %d, %d; want -1, -1", start, end)
	}
}

func TestPatternEqualsTarget(t *testing.T) {
	m := New(locale.Root)
	start, end := m.IndexString("hello", "hello")
	if start != 0 || end != 5 {
		t.Errorf("IndexString(hello, hello) = %d, %d; want 0, 5", start, end)
	}
}

func TestAllIgnorablePatternAtLooseStrength(t *testing.T) {
	m := New(locale.Root, IgnoreDiacritics)
	// A lone combining acute accent carries no primary weight: at Primary
	// strength it collates to nothing and must be refused as a pattern.
	if _, err := m.CompileString("́"); err == nil {
		t.Errorf("a pattern consisting only of a combining mark should be refused at Primary strength")
	}
}

func TestAnchorOption(t *testing.T) {
	m := New(locale.Root)
	if start, end := m.IndexString("hello world", "world", Anchor); start != -1 || end != -1 {
		t.Errorf("Anchor should reject a match not at the start, got %d, %d", start, end)
	}
	if start, end := m.IndexString("hello world", "hello", Anchor); start != 0 || end != 5 {
		t.Errorf("Anchor should accept a match at the start, got %d, %d", start, end)
	}
}

func TestBackwardsOption(t *testing.T) {
	m := New(locale.Root)
	start, end := m.IndexString("ababab", "ab", Backwards)
	if start != 4 || end != 6 {
		t.Errorf("Backwards search = %d, %d; want 4, 6 (rightmost match)", start, end)
	}
}

func TestEqual(t *testing.T) {
	m := New(locale.Root, Loose)
	if !m.EqualString("Hello", "hello") {
		t.Errorf("loose Matcher should consider Hello and hello equal")
	}
	if m.EqualString("Hello", "hello!") {
		t.Errorf("EqualString should require the whole target to match")
	}
}
