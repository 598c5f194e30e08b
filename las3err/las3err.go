// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package las3err defines the error kinds shared by the las3 engine and
// its internal packages, so that a caller can switch on Kind without
// importing every internal package that can produce one.
package las3err

import (
	"errors"
	"fmt"
)

// Kind discriminates the failure modes documented in the LAS engine's
// design: grid decomposition, the two dense factorizations, argument
// validation, and the one non-fatal numerical warning.
type Kind int

const (
	// IncompatibleGrid: (N1, N2, N3) cannot be expressed as
	// (k1*2^m, k2*2^m, k3*2^m) with k1*k2*k3 <= KMax and m <= MMax.
	IncompatibleGrid Kind = iota
	// SingularMatrix: the symmetric indefinite factorization hit an
	// exact zero pivot.
	SingularMatrix
	// NotPositiveDefinite: the Cholesky factorization hit a
	// non-positive pivot before completion.
	NotPositiveDefinite
	// InvalidArgument: a nonsensical size, nil kernel, or negative
	// physical extent.
	InvalidArgument
	// NumericalWarning: the Cholesky relative error exceeded the
	// configured tolerance. Non-fatal: the field is still emitted.
	NumericalWarning
)

func (k Kind) String() string {
	switch k {
	case IncompatibleGrid:
		return "incompatible grid"
	case SingularMatrix:
		return "singular matrix"
	case NotPositiveDefinite:
		return "not positive definite"
	case InvalidArgument:
		return "invalid argument"
	case NumericalWarning:
		return "numerical warning"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by las3 and its internal
// packages. Kind lets a caller recover the failure class without
// string matching; Op names the operation that failed (e.g. "las3i",
// "dsifa"); Err, when non-nil, wraps an underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("las3: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("las3: %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error with no wrapped cause.
func New(op string, kind Kind) *Error { return &Error{Op: op, Kind: kind} }

// Wrap builds an *Error around an existing cause.
func Wrap(op string, kind Kind, err error) *Error { return &Error{Op: op, Kind: kind, Err: err} }

// Is reports whether err is an *Error of the given kind, so callers
// (and internal code) can write `las3err.Is(err, las3err.SingularMatrix)`.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
