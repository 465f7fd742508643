// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package locale provides the minimal BCP 47 language identifier the search
// engine needs to pick a colltab.Table variant. It is deliberately thin: it
// does not do CLDR likely-subtag inference, parent locale lookup, or
// tailoring data loading. Parsing itself is delegated to the real
// golang.org/x/text/language package rather than hand-rolled, since BCP 47
// parsing is exactly the kind of well-tested, data-heavy routine this
// project should consume rather than reimplement.
package locale

import "golang.org/x/text/language"

// ID identifies a language/region/variant for the purpose of selecting a
// collation table. The zero value is the root (language-neutral) locale.
type ID struct {
	tag language.Tag
}

// Root is the language-neutral locale.
var Root = ID{tag: language.Und}

// Make returns the ID for s, a BCP 47 tag such as "de-u-co-phonebk" or "cs".
// Unparsable input falls back to Root, mirroring language.MustParse's
// "best effort" behavior without panicking.
func Make(s string) ID {
	t, err := language.Parse(s)
	if err != nil {
		return Root
	}
	return ID{tag: t}
}

// String returns the canonical BCP 47 form of id.
func (id ID) String() string {
	return id.tag.String()
}

// Base returns the two or three letter ISO 639 language code, e.g. "de".
func (id ID) Base() string {
	b, _ := id.tag.Base()
	return b.String()
}

// IsRoot reports whether id is the root locale.
func (id ID) IsRoot() bool {
	return id == Root
}
