// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import "errors"

// Kind classifies the ways engine or pattern construction can fail.
type Kind int

const (
	// InvalidArgument is returned for a pattern that collates to nothing
	// (ErrEmptyPattern).
	InvalidArgument Kind = iota

	// OutOfMemory names an allocation failure during table construction.
	// No function in this package returns it.
	OutOfMemory

	// Unsupported names a strength outside the enumerated levels, a
	// normalization mode outside {On, Off}, or a collator lacking the
	// tables a requested strength needs. No function in this package
	// checks for these cases or returns it.
	Unsupported

	// DataDependency means a pattern weight has no decomposition in the
	// InverseWeightIndex: the solver hit a dead end. The caller may rebuild
	// the index over a richer character set, or fall back to a direct
	// weight-list comparison (see reference_test.go's simpleSearch).
	DataDependency
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case OutOfMemory:
		return "out of memory"
	case Unsupported:
		return "unsupported"
	case DataDependency:
		return "data dependency"
	default:
		return "unknown error"
	}
}

// Error reports a construction failure together with the Kind a caller can
// switch on and, where applicable, a sentinel a caller can compare with
// errors.Is without inspecting Kind at all.
type Error struct {
	Kind    Kind
	Msg     string
	wrapped error
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.Msg }

func (e *Error) Unwrap() error { return e.wrapped }

// Sentinel errors for the common construction failures.
var (
	ErrEmptyPattern    = errors.New("search: empty pattern is refused")
	ErrNoDecomposition = errors.New("search: pattern weight has no decomposition under this collator")
)

func newError(k Kind, sentinel error) *Error {
	return &Error{Kind: k, Msg: sentinel.Error(), wrapped: sentinel}
}
