// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package normalize exposes the normalizer "sum type" the search core treats
// as an external capability (see colltab.Weighter and search's design notes):
// a normalizer is fully described by two operations, QuickCheck and
// Normalize. The core never calls these directly — it relies on the
// assumption that collation elements are produced as if the input were
// already normalized, which search's element stream enforces internally —
// but callers normalizing text before handing it to a Matcher, or composing
// normalization into an I/O pipeline with transform.Reader, use this package.
//
// The actual normalization tables are owned by golang.org/x/text/unicode/norm
// and golang.org/x/text/cases; this package only dispatches to them by Form.
package normalize

import (
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Form selects a normalizer variant.
type Form byte

const (
	NFC Form = iota
	NFD
	NFKC
	NFKCCF // NFKC_CF: NFKC followed by full case folding, as used by UTS #46.
	FCD    // Fast C or D form: approximated here as NFD (see Get).
	FCC    // Fast C contiguous form: approximated here as NFC.
	NoOp
)

func (f Form) String() string {
	switch f {
	case NFC:
		return "NFC"
	case NFD:
		return "NFD"
	case NFKC:
		return "NFKC"
	case NFKCCF:
		return "NFKC_CF"
	case FCD:
		return "FCD"
	case FCC:
		return "FCC"
	case NoOp:
		return "NoOp"
	default:
		return "Form(?)"
	}
}

// Normalizer is the two-operation interface the original source's
// normalizer hierarchy collapses to: quick-check a prefix for whether it is
// already in normalized form, or produce the normalized form outright. Every
// Normalizer also implements transform.Transformer so it composes with
// transform.Reader the same way the collate package composes unicode/norm
// forms.
type Normalizer interface {
	// QuickCheck returns the length of the longest prefix of src that is
	// already known to be in normalized form. Callers may treat a result
	// equal to len(src) as "no normalization necessary".
	QuickCheck(src []byte) (accepted int)

	// Normalize appends the normalized form of src to dst and returns the
	// extended buffer.
	Normalize(dst, src []byte) []byte

	transform.Transformer
}

// Get returns the Normalizer for f.
func Get(f Form) Normalizer {
	switch f {
	case NFC:
		return formNormalizer{norm.NFC}
	case NFD:
		return formNormalizer{norm.NFD}
	case NFKC:
		return formNormalizer{norm.NFKC}
	case NFKCCF:
		return nfkcCF{}
	case FCD:
		return formNormalizer{norm.NFD}
	case FCC:
		return formNormalizer{norm.NFC}
	default:
		return noOp{}
	}
}

// formNormalizer adapts a golang.org/x/text/unicode/norm.Form, which already
// implements transform.Transformer, to the Normalizer interface above.
type formNormalizer struct {
	f norm.Form
}

func (n formNormalizer) QuickCheck(src []byte) int {
	return n.f.QuickSpan(src)
}

func (n formNormalizer) Normalize(dst, src []byte) []byte {
	return n.f.Append(dst, src...)
}

func (n formNormalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	return n.f.Transform(dst, src, atEOF)
}

// nfkcCF composes case.Fold with NFKC, matching UTS #46's NFKC_Casefold.
type nfkcCF struct{}

var caseFold = cases.Fold()

func (nfkcCF) QuickCheck(src []byte) int {
	// Case folding can change a prefix's length and content, so the only
	// sound quick-check answer is "nothing is guaranteed normalized" unless
	// src is empty.
	if len(src) == 0 {
		return 0
	}
	return 0
}

func (nfkcCF) Normalize(dst, src []byte) []byte {
	folded := caseFold.Bytes(src)
	return norm.NFKC.Append(dst, folded...)
}

func (n nfkcCF) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !atEOF {
		// Case folding needs full context to be safe near a chunk boundary;
		// this toy sum type only supports whole-buffer transforms for the
		// composed NFKC_CF variant.
		return 0, 0, transform.ErrShortSrc
	}
	out := n.Normalize(dst[:0], src)
	if len(out) > len(dst) {
		return 0, 0, transform.ErrShortDst
	}
	return copy(dst, out), len(src), nil
}

// noOp implements Normalizer by passing bytes through unchanged, used for
// colltab.Weighter configurations where normalization has been turned off
// (spec's "set normalization mode in {On, Off}").
type noOp struct{}

func (noOp) QuickCheck(src []byte) int { return len(src) }
func (noOp) Normalize(dst, src []byte) []byte {
	return append(dst, src...)
}
func (noOp) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	n := copy(dst, src)
	if n < len(src) {
		return n, n, transform.ErrShortDst
	}
	return n, n, nil
}

// Bytes is a convenience wrapper equivalent to Get(f).Normalize(nil, b).
func Bytes(f Form, b []byte) []byte {
	return Get(f).Normalize(nil, b)
}

// Reader wraps r to normalize bytes read through it according to f.
func Reader(f Form, r io.Reader) *transform.Reader {
	return transform.NewReader(r, Get(f))
}
