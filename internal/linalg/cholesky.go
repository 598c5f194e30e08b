// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"math"

	"github.com/gonum-community/las3/las3err"
)

// packedIndex returns the offset of element (i,j), i>=j, 0-based, in
// row-major packed lower-triangular storage: row i starts right after
// row i-1's i entries, so the offset is the triangular number i(i+1)/2
// plus j.
func packedIndex(i, j int) int { return i*(i+1)/2 + j }

// PackedLen returns the number of entries in an n×n packed
// lower-triangular matrix.
func PackedLen(n int) int { return n * (n + 1) / 2 }

// Dchol2 factorizes the symmetric positive-definite matrix held in
// packed lower-triangular storage a (length PackedLen(n)) into L,
// packed the same way, such that L*L^T == A. Unlike a textbook
// Cholesky it does not insist the trailing pivot stay strictly
// positive: only a non-positive pivot before the last row is fatal
// (NotPositiveDefinite). The final pivot is clamped to zero if it
// would otherwise be non-positive, and the returned rerr is the
// relative discrepancy between the reconstructed and original
// lower-right element -- the caller logs a NumericalWarning when
// rerr exceeds its tolerance but still emits the factor.
func Dchol2(n int, a []float64) (l []float64, rerr float64, err error) {
	l = make([]float64, PackedLen(n))
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := a[packedIndex(i, j)]
			for k := 0; k < j; k++ {
				sum -= l[packedIndex(i, k)] * l[packedIndex(j, k)]
			}
			if i == j {
				if sum <= 0 {
					if i != n-1 {
						return nil, 0, las3err.New("dchol2", las3err.NotPositiveDefinite)
					}
					sum = 0
				}
				l[packedIndex(i, i)] = math.Sqrt(sum)
				continue
			}
			diag := l[packedIndex(j, j)]
			if diag == 0 {
				return nil, 0, las3err.New("dchol2", las3err.NotPositiveDefinite)
			}
			l[packedIndex(i, j)] = sum / diag
		}
	}

	var recon float64
	for k := 0; k < n; k++ {
		v := l[packedIndex(n-1, k)]
		recon += v * v
	}
	orig := a[packedIndex(n-1, n-1)]
	if orig == 0 {
		rerr = math.Abs(recon)
	} else {
		rerr = math.Abs(recon-orig) / math.Abs(orig)
	}
	return l, rerr, nil
}

// Downcast converts a packed double-precision factor to single
// precision for storage, the mixed-precision convention the engine
// uses throughout: factorizations run in float64, the stored (A, C)
// tables are float32, because the field output is itself
// single-precision and subdivision noise already dominates the
// precision loss of the downcast.
func Downcast(x []float64) []float32 {
	y := make([]float32, len(x))
	for i, v := range x {
		y[i] = float32(v)
	}
	return y
}
