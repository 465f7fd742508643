// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colltab

import "testing"

func TestElemMaskPrimary(t *testing.T) {
	e := MakeElem(42, 5, 9, 230)
	m := e.Mask(Primary)
	if got := m.Primary(); got != 42 {
		t.Errorf("Primary() = %d, want 42", got)
	}
	if got := m.Secondary(); got != 0 {
		t.Errorf("Secondary() after Primary mask = %d, want 0", got)
	}
	if got := m.CCC(); got != 230 {
		t.Errorf("CCC() = %d, want 230 (CCC survives masking)", got)
	}
}

func TestElemIsIgnorable(t *testing.T) {
	mark := MakeElem(0, 0x30, 0, 230)
	if !mark.IsIgnorable(Primary) {
		t.Errorf("combining mark element should be ignorable at Primary strength")
	}
	if mark.IsIgnorable(Secondary) {
		t.Errorf("combining mark element should not be ignorable at Secondary strength")
	}
	letter := MakeElem(10, 0, tertiaryLower, 0)
	if letter.IsIgnorable(Primary) {
		t.Errorf("ordinary letter element should not be ignorable at Primary strength")
	}
}

func TestRootTableCaseFold(t *testing.T) {
	tb := RootTable()
	var buf []Elem
	lower, n := tb.AppendNextString(buf, "a")
	if n != 1 || len(lower) != 1 {
		t.Fatalf("AppendNextString(a) = %v, %d", lower, n)
	}
	upper, n := tb.AppendNextString(nil, "A")
	if n != 1 || len(upper) != 1 {
		t.Fatalf("AppendNextString(A) = %v, %d", upper, n)
	}
	if lower[0].Mask(Primary) != upper[0].Mask(Primary) {
		t.Errorf("a and A should share a primary weight, got %v != %v", lower[0], upper[0])
	}
	if lower[0].Mask(Tertiary) == upper[0].Mask(Tertiary) {
		t.Errorf("a and A should differ at tertiary strength")
	}
}

func TestGermanExpansion(t *testing.T) {
	tb := GermanPhonebookTable()
	// AppendNextString weighs one rune per call, so "ss" takes two calls.
	ss, n := tb.AppendNextString(nil, "ss")
	ss, n2 := tb.AppendNextString(ss, "ss"[n:])
	if n+n2 != 2 || len(ss) != 2 {
		t.Fatalf("AppendNextString(ss) = %v, %d", ss, n+n2)
	}
	eszett, n := tb.AppendNextString(nil, "ß")
	if n != 2 { // ß is two UTF-8 bytes
		t.Fatalf("AppendNextString(ß) consumed %d bytes, want 2", n)
	}
	if len(eszett) != 2 {
		t.Fatalf("ß should expand to two weights under phonebook tailoring, got %d", len(eszett))
	}
	for i := range ss {
		if ss[i].Mask(Primary) != eszett[i].Mask(Primary) {
			t.Errorf("weight %d: ss=%v eszett=%v", i, ss[i], eszett[i])
		}
	}
}

func TestCzechContraction(t *testing.T) {
	tb := CzechTable()
	chWeights, n := tb.AppendNextString(nil, "cho")
	if n != 2 {
		t.Fatalf("AppendNextString(cho) consumed %d bytes, want 2 for the ch contraction", n)
	}
	if len(chWeights) != 1 {
		t.Fatalf("ch contraction should produce exactly one element, got %d", len(chWeights))
	}
	hWeights, _ := tb.AppendNextString(nil, "h")
	iWeights, _ := tb.AppendNextString(nil, "i")
	if !(hWeights[0].Primary() < chWeights[0].Primary() && chWeights[0].Primary() < iWeights[0].Primary()) {
		t.Errorf("ch must collate strictly between h and i: h=%d ch=%d i=%d",
			hWeights[0].Primary(), chWeights[0].Primary(), iWeights[0].Primary())
	}
}

func TestCombiningMarkIgnorableAtPrimary(t *testing.T) {
	tb := RootTable()
	a, _ := tb.AppendNextString(nil, "a")
	aAcute, _ := tb.AppendNextString(nil, "á")
	if len(aAcute) != 2 {
		t.Fatalf("precomposed á should decompose into base+mark, got %d elements", len(aAcute))
	}
	if a[0].Mask(Primary) != aAcute[0].Mask(Primary) {
		t.Errorf("base letter of á should carry the same primary weight as a")
	}
	if !aAcute[1].IsIgnorable(Primary) {
		t.Errorf("the combining mark of á must be ignorable at Primary strength")
	}
}
