// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neighbor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/gonum-community/las3/internal/linalg"
)

// Params is one neighborhood variant's precomputed BLUE projection:
// A maps the masked parent neighborhood (len(Mask) values) to the
// first 7 children of a 2x2x2 octet (row-major, 7 columns); C is the
// packed lower-triangular Cholesky factor (28 entries) of the
// 7-child residual covariance. Both are stored in single precision:
// the factorization runs in float64, but the field output is
// single-precision and subdivision noise already swamps the downcast
// error, so there is nothing to gain from keeping A and C wide.
type Params struct {
	Mask []int
	A    []float32 // len(Mask)*7, row-major: A[i*7+j]
	C    []float32 // 28 entries, packed lower-triangular
}

const numChildren = 8
const numDirect = 7 // children 0..6; child 7 is the upward-averaging closure

// Build computes the BLUE projection for one neighborhood variant
// given the 27x27 parent-neighborhood covariance r, the 8x8 child
// covariance b, and the 27x8 parent-child cross-covariance s (all
// dense row-major, as covar.FillNeighborTemplate/FillChildCovariance/
// FillCross produce them).
//
// It extracts the submatrix of r indexed by mask, factorizes it by
// symmetric indefinite (Bunch-Kaufman) elimination, solves for the 7
// projection columns, forms the 7x7 residual b - s^T*a, and Cholesky
// factors that residual into C.
func Build(mask []int, r, b, s []float64) (params Params, rerr float64, err error) {
	n := len(mask)
	rr := linalg.Dense{N: n, A: make([]float64, n*n), Lda: n}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := r[mask[i]*27+mask[j]]
			rr.A[i+j*n] = v
		}
	}
	ipiv, err := linalg.Dsifa(rr)
	if err != nil {
		return Params{}, 0, err
	}

	a := make([]float64, n*numDirect)
	for child := 0; child < numDirect; child++ {
		rhs := make([]float64, n)
		for i := 0; i < n; i++ {
			rhs[i] = s[mask[i]*numChildren+child]
		}
		linalg.Dsisl(rr, ipiv, rhs)
		for i := 0; i < n; i++ {
			a[i*numDirect+child] = rhs[i]
		}
	}

	// The residual covariance B - S^T*A is ordinary dense matrix
	// algebra (no pivoting/factorization semantics involved), so it is
	// formed with gonum/mat rather than a hand-rolled loop.
	sMasked := mat.NewDense(n, numDirect, nil)
	for i := 0; i < n; i++ {
		for child := 0; child < numDirect; child++ {
			sMasked.Set(i, child, s[mask[i]*numChildren+child])
		}
	}
	aMat := mat.NewDense(n, numDirect, a)
	var prod mat.Dense
	prod.Mul(sMasked.T(), aMat)

	bb := make([]float64, linalg.PackedLen(numDirect))
	for i := 0; i < numDirect; i++ {
		for j := 0; j <= i; j++ {
			bb[i*(i+1)/2+j] = b[i*numChildren+j] - prod.At(i, j)
		}
	}
	c, rerr, err := linalg.Dchol2(numDirect, bb)
	if err != nil {
		return Params{}, 0, err
	}

	return Params{
		Mask: mask,
		A:    linalg.Downcast(a),
		C:    linalg.Downcast(c),
	}, rerr, nil
}
