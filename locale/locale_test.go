// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locale

import "testing"

func TestMakeParsesBase(t *testing.T) {
	cases := []struct {
		tag  string
		base string
	}{
		{"de", "de"},
		{"cs", "cs"},
		{"de-u-co-phonebk", "de"},
		{"en-US", "en"},
	}
	for _, c := range cases {
		id := Make(c.tag)
		if got := id.Base(); got != c.base {
			t.Errorf("Make(%q).Base() = %q, want %q", c.tag, got, c.base)
		}
	}
}

func TestMakeFallsBackToRootOnGarbage(t *testing.T) {
	id := Make("not a valid tag!!")
	if !id.IsRoot() {
		t.Errorf("Make of unparsable input should fall back to Root, got %v", id)
	}
}

func TestRootIsRoot(t *testing.T) {
	if !Root.IsRoot() {
		t.Errorf("Root.IsRoot() = false")
	}
	if Make("de").IsRoot() {
		t.Errorf("Make(de).IsRoot() = true")
	}
}
