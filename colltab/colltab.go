// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colltab contains the lowest-level collation types: the weight
// representation produced by a collator for a rune or contraction, and the
// Weighter interface used to obtain them. It corresponds to the "Collator
// handle" and "Collation-element iterator" consumed interfaces described in
// the search engine's design: this package does not build collation tables,
// it only defines how they are consumed.
package colltab

import "fmt"

// Level identifies the collation comparison strength, i.e. the deepest
// weight field that participates in a comparison.
type Level int

const (
	Primary Level = iota
	Secondary
	Tertiary
	Quaternary
	Identical
)

func (l Level) String() string {
	switch l {
	case Primary:
		return "Primary"
	case Secondary:
		return "Secondary"
	case Tertiary:
		return "Tertiary"
	case Quaternary:
		return "Quaternary"
	case Identical:
		return "Identical"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// bit layout of Elem: a 32-bit weight carrying up to three independent
// fields, masked at construction to the collator's configured strength.
//
//	bit 31 .......... 16 15 ...... 8 7 ...... 0
//	    primary (16)      secondary(8) tertiary(8)
const (
	primaryShift   = 16
	secondaryShift = 8
	tertiaryShift  = 0

	primaryMask   = 0xFFFF << primaryShift
	secondaryMask = 0xFF << secondaryShift
	tertiaryMask  = 0xFF << tertiaryShift

	// cccShift packs the canonical combining class alongside the weight so
	// that CollationElementStream can reorder combining runs without a
	// second lookup. Mask keeps the CCC, so Elem equality includes it.
	cccShift = 32
)

// Elem is a single collation element: a weight with up to three fields plus
// the canonical combining class of the rune(s) it was derived from. It is
// stored as a uint64 so the CCC can ride alongside the 32-bit weight without
// a second array.
type Elem uint64

// NULLORDER is the sentinel Elem returned past the end of an element stream.
const NULLORDER Elem = 1<<64 - 1

// Ignorable is an Elem with every field zero. It is dropped from every
// WeightList, per the data-model invariant.
const Ignorable Elem = 0

// MakeElem builds an Elem from its three weight fields and combining class.
func MakeElem(primary uint32, secondary, tertiary, ccc uint8) Elem {
	w := uint64(primary&0xFFFF)<<primaryShift | uint64(secondary)<<secondaryShift | uint64(tertiary)<<tertiaryShift
	return Elem(w | uint64(ccc)<<cccShift)
}

// Primary returns the primary weight field.
func (e Elem) Primary() uint32 { return uint32(e) >> primaryShift & 0xFFFF }

// Secondary returns the secondary weight field.
func (e Elem) Secondary() uint8 { return uint8(uint32(e) >> secondaryShift & 0xFF) }

// Tertiary returns the tertiary weight field.
func (e Elem) Tertiary() uint8 { return uint8(uint32(e) & 0xFF) }

// CCC returns the canonical combining class of the rune(s) that produced e.
func (e Elem) CCC() uint8 { return uint8(e >> cccShift) }

// Mask returns e with only the fields up to and including level retained;
// higher fields are cleared, so equality under this strength no longer
// depends on them.
func (e Elem) Mask(level Level) Elem {
	ccc := uint64(e.CCC()) << cccShift
	switch level {
	case Primary:
		return Elem(uint64(e.Primary())<<primaryShift) | Elem(ccc)
	case Secondary:
		return Elem(uint64(e.Primary())<<primaryShift|uint64(e.Secondary())<<secondaryShift) | Elem(ccc)
	default:
		return e&(primaryMask|secondaryMask|tertiaryMask) | Elem(ccc)
	}
}

// IsIgnorable reports whether e carries no weight at all at or below level.
func (e Elem) IsIgnorable(level Level) bool {
	m := e.Mask(level)
	return m.Primary() == 0 && m.Secondary() == 0 && m.Tertiary() == 0
}

// Weighter produces the collation elements for runes and contractions of a
// string. Implementations own the collation tailoring data; colltab only
// consumes them. AppendNext(String) must consume at least one byte (rune)
// per call and may consume more when the source begins a contraction; it
// must return every Elem an expansion produces, in order.
type Weighter interface {
	// AppendNext appends the weights for the first rune or contraction in s
	// to buf and returns the extended buffer along with the number of
	// source bytes consumed.
	AppendNext(buf []Elem, s []byte) (res []Elem, n int)

	// AppendNextString is the string equivalent of AppendNext.
	AppendNextString(buf []Elem, s string) (res []Elem, n int)

	// Start returns the largest rune boundary <= p, so that weighing can
	// begin there without starting in the middle of a rune.
	Start(p int, b []byte) int
	StartString(p int, s string) int

	// Domain returns every string (runes, contractions) this Weighter has
	// a distinct mapping for, i.e. the character set that InverseWeightIndex
	// should be built over for patterns compiled against this Weighter.
	Domain() []string

	// Top returns the largest primary weight considered variable.
	Top() uint32
}
