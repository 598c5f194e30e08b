// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package las3

import "github.com/gonum-community/las3/las3err"

// Kind discriminates the failure modes the engine can surface.
type Kind = las3err.Kind

// Error is the concrete error type returned by this package.
type Error = las3err.Error

const (
	IncompatibleGrid    = las3err.IncompatibleGrid
	SingularMatrix      = las3err.SingularMatrix
	NotPositiveDefinite = las3err.NotPositiveDefinite
	InvalidArgument     = las3err.InvalidArgument
	NumericalWarning    = las3err.NumericalWarning
)

// IsKind reports whether err is a *las3.Error of the given Kind.
func IsKind(err error, kind Kind) bool { return las3err.Is(err, kind) }

func newErr(op string, kind Kind) error { return las3err.New(op, kind) }

func wrapErr(op string, kind Kind, err error) error { return las3err.Wrap(op, kind, err) }
