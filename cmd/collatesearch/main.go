// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command collatesearch finds one string inside another the way a given
// locale's collation order says two strings are equivalent, instead of
// comparing raw bytes or runes.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/textsearch/collate/locale"
	"github.com/textsearch/collate/search"
)

var (
	localeFlag = flag.String("locale", "", "BCP 47 locale tag, e.g. de or cs (default: root)")
	loose      = flag.Bool("loose", false, "ignore case, diacritics and width")
	ignoreCase = flag.Bool("ignore-case", false, "ignore case only")
	backwards  = flag.Bool("backwards", false, "report the last match instead of the first")
	anchor     = flag.Bool("anchor", false, "require the match at the edge the search started from")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <pattern> <text>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	pat, text := flag.Arg(0), flag.Arg(1)

	loc := locale.Root
	if *localeFlag != "" {
		loc = locale.Make(*localeFlag)
	}

	var opts []search.Option
	if *loose {
		opts = append(opts, search.Loose)
	} else if *ignoreCase {
		opts = append(opts, search.IgnoreCase)
	}

	m := search.New(loc, opts...)

	p, err := m.CompileString(pat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "collatesearch: %v\n", err)
		os.Exit(1)
	}

	var idxOpts []search.IndexOption
	if *backwards {
		idxOpts = append(idxOpts, search.Backwards)
	}
	if *anchor {
		idxOpts = append(idxOpts, search.Anchor)
	}

	start, end := p.IndexString(text, idxOpts...)
	if start < 0 {
		fmt.Println("no match")
		os.Exit(1)
	}
	fmt.Printf("match at [%d:%d): %q\n", start, end, text[start:end])
}
