// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linalg implements the dense linear algebra kernels the LAS
// engine builds its neighborhood parameter tables and stage-0 field
// on: a symmetric indefinite factorization/solver with Bunch-Kaufman
// diagonal pivoting (Dsifa/Dsisl) and a Cholesky factorization that
// reports its relative residual (Dchol2), both ported in the style of
// gonum's own hand-translated LAPACK routines (see e.g.
// lapack/gonum's Dgetc2: plain column-major []float64, explicit lda,
// a returned/out-param pivot vector), layered on
// gonum.org/v1/gonum/blas/blas64 rather than raw loops.
package linalg

import "gonum.org/v1/gonum/blas/blas64"

// vec wraps a strided slice as a blas64.Vector with unit increment,
// the shape every BLAS-1 call in this package needs.
func vec(x []float64) blas64.Vector { return blas64.Vector{N: len(x), Data: x, Inc: 1} }

// Swap exchanges x and y element-wise.
func Swap(x, y []float64) { blas64.Swap(vec(x), vec(y)) }

// Axpy computes y += alpha*x.
func Axpy(alpha float64, x, y []float64) { blas64.Axpy(alpha, vec(x), vec(y)) }

// Dot returns the inner product of x and y.
func Dot(x, y []float64) float64 { return blas64.Dot(vec(x), vec(y)) }

// Argmax returns the index of the element of largest magnitude in x,
// or -1 if x is empty. Ties keep the first occurrence, matching
// IDAMAX's "first of the maxima" convention.
func Argmax(x []float64) int {
	if len(x) == 0 {
		return -1
	}
	best := 0
	bestAbs := abs(x[0])
	for i := 1; i < len(x); i++ {
		if a := abs(x[i]); a > bestAbs {
			best, bestAbs = i, a
		}
	}
	return best
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
