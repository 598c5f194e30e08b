// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"math"

	"github.com/gonum-community/las3/las3err"
)

// alpha is the Bunch-Kaufman pivoting threshold (1+sqrt(17))/8, chosen
// so that the element growth of the factorization is bounded.
var alpha = (1 + math.Sqrt(17)) / 8

// Dense is a column-major dense matrix view with leading dimension
// Lda, the same convention lapack/gonum's ported routines use
// (Dgetc2(n int, a []float64, lda int, ...)) in place of gonum/mat's
// row-major Dense — the factorizations here only ever touch small,
// stack-sized matrices and never need mat.Dense's broader API.
type Dense struct {
	N   int
	A   []float64 // length >= Lda*N
	Lda int
}

func (d Dense) at(i, j int) float64    { return d.A[i+j*d.Lda] }
func (d Dense) set(i, j int, v float64) { d.A[i+j*d.Lda] = v }

// Dsifa factorizes the symmetric matrix held in the upper triangle of
// a (the lower triangle is never read) into U*D*U^T via Bunch-Kaufman
// diagonal pivoting with 1x1 and 2x2 blocks, overwriting a's upper
// triangle with U and D's off-diagonal-free entries packed alongside
// it exactly as LINPACK's DSIFA does. It returns the pivot vector
// (1-based index in ipiv[k] for a 1x1 pivot at k; a negative index
// shared by k and k-1 for a 2x2 pivot) and a SingularMatrix error if
// an exact zero pivot is encountered.
func Dsifa(a Dense) (ipiv []int, err error) {
	n := a.N
	ipiv = make([]int, n)
	if n == 0 {
		return ipiv, nil
	}

	k := n
	for k >= 1 {
		if k == 1 {
			ipiv[0] = 1
			if a.at(0, 0) == 0 {
				return ipiv, las3err.New("dsifa", las3err.SingularMatrix)
			}
			break
		}

		km1 := k - 1
		absakk := math.Abs(a.at(k-1, k-1))

		// column k, rows 1..k-1 (1-based) -> 0-based rows 0..k-2
		imax := argmaxAbsCol(a, k-1, km1) // 0-based row index
		colmax := math.Abs(a.at(imax, k-1))

		var kstep int
		var swap bool
		var pivotCol int // 0-based row/col index used as the pivot row (imax)

		if absakk >= alpha*colmax {
			kstep = 1
			swap = false
		} else {
			rowmax := 0.0
			for j := imax + 1; j < k; j++ {
				if v := math.Abs(a.at(imax, j)); v > rowmax {
					rowmax = v
				}
			}
			var jmax int
			if imax > 0 {
				jmax = argmaxAbsCol(a, imax, imax)
				if v := math.Abs(a.at(jmax, imax)); v > rowmax {
					rowmax = v
				}
			}
			switch {
			case math.Abs(a.at(imax, imax)) >= alpha*rowmax:
				kstep = 1
				swap = true
			case absakk >= alpha*colmax*(colmax/rowmax):
				kstep = 1
				swap = false
			default:
				kstep = 2
				swap = imax != km1-1
			}
		}
		pivotCol = imax

		if math.Max(absakk, colmax) == 0 {
			ipiv[k-1] = k
			return ipiv, las3err.New("dsifa", las3err.SingularMatrix)
		}

		if kstep == 1 {
			if swap {
				swapCols1Based(a, pivotCol+1, k, k-1)
			}
			for jj := 1; jj <= km1; jj++ {
				j := k - jj // 1-based column being eliminated, j in [1, km1]
				mulk := -a.at(j-1, k-1) / a.at(k-1, k-1)
				Axpy(mulk, a.A[0+(k-1)*a.Lda:j+(k-1)*a.Lda], a.A[0+(j-1)*a.Lda:j+(j-1)*a.Lda])
				a.set(j-1, k-1, mulk)
			}
			ipiv[k-1] = k
			if swap {
				ipiv[k-1] = pivotCol + 1
			}
			k -= 1
		} else {
			if swap {
				swapCols1Based(a, pivotCol+1, k-1, k-2)
				t := a.at(k-2, k-1)
				a.set(k-2, k-1, a.at(pivotCol, k-1))
				a.set(pivotCol, k-1, t)
			}
			if k-2 != 0 {
				ak := a.at(k-1, k-1) / a.at(k-2, k-1)
				akm1 := a.at(k-2, k-2) / a.at(k-2, k-1)
				denom := 1 - ak*akm1
				for jj := 1; jj <= km1-1; jj++ {
					j := km1 - jj // 1-based, j in [1, km1-1]
					bk := a.at(j-1, k-1) / a.at(k-2, k-1)
					bkm1 := a.at(j-1, k-2) / a.at(k-2, k-1)
					mulk := (akm1*bk - bkm1) / denom
					mulkm1 := (ak*bkm1 - bk) / denom
					Axpy(mulk, a.A[0+(k-1)*a.Lda:j+(k-1)*a.Lda], a.A[0+(j-1)*a.Lda:j+(j-1)*a.Lda])
					Axpy(mulkm1, a.A[0+(k-2)*a.Lda:j+(k-2)*a.Lda], a.A[0+(j-1)*a.Lda:j+(j-1)*a.Lda])
					a.set(j-1, k-1, mulk)
					a.set(j-1, k-2, mulkm1)
				}
			}
			ipiv[k-1] = 1 - k
			if swap {
				ipiv[k-1] = -(pivotCol + 1)
			}
			ipiv[k-2] = ipiv[k-1]
			k -= 2
		}
	}
	return ipiv, nil
}

// swapCols1Based swaps the leading imax entries of columns imax and k
// (1-based column indices, imax <= k), then swaps the remainder of
// row imax against column k above the diagonal, reproducing DSIFA's
// symmetric interchange of rows/columns imax and k.
func swapCols1Based(a Dense, imax, k, unused int) {
	_ = unused
	Swap(a.A[0+(imax-1)*a.Lda:imax+(imax-1)*a.Lda], a.A[0+(k-1)*a.Lda:imax+(k-1)*a.Lda])
	for jj := imax; jj <= k; jj++ {
		j := k + imax - jj
		t := a.at(j-1, k-1)
		a.set(j-1, k-1, a.at(imax-1, j-1))
		a.set(imax-1, j-1, t)
	}
}

// argmaxAbsCol returns the 0-based row index of the largest-magnitude
// entry among a's first length rows of 0-based column col.
func argmaxAbsCol(a Dense, col, length int) int {
	best := 0
	bestAbs := math.Abs(a.at(0, col))
	for i := 1; i < length; i++ {
		if v := math.Abs(a.at(i, col)); v > bestAbs {
			best, bestAbs = i, v
		}
	}
	return best
}

// Dsisl solves a*x = b in place given the U*D*U^T factorization and
// pivot vector produced by Dsifa, applying D^-1*U^-T then U^-1 as
// LINPACK's DSISL does.
func Dsisl(a Dense, ipiv []int, b []float64) {
	n := a.N
	k := n
	for k >= 1 {
		if ipiv[k-1] >= 0 {
			// 1x1 pivot block.
			if k != 1 {
				kp := ipiv[k-1]
				if kp != k {
					b[k-1], b[kp-1] = b[kp-1], b[k-1]
				}
				Axpy(b[k-1], a.A[0+(k-1)*a.Lda:(k-1)+(k-1)*a.Lda], b[0:k-1])
			}
			b[k-1] /= a.at(k-1, k-1)
			k--
		} else {
			// 2x2 pivot block.
			if k != 2 {
				kp := int(math.Abs(float64(ipiv[k-1])))
				if kp != k-1 {
					b[k-2], b[kp-1] = b[kp-1], b[k-2]
				}
				Axpy(b[k-1], a.A[0+(k-1)*a.Lda:(k-2)+(k-1)*a.Lda], b[0:k-2])
				Axpy(b[k-2], a.A[0+(k-2)*a.Lda:(k-2)+(k-2)*a.Lda], b[0:k-2])
			}
			ak := a.at(k-1, k-1) / a.at(k-2, k-1)
			akm1 := a.at(k-2, k-2) / a.at(k-2, k-1)
			bk := b[k-1] / a.at(k-2, k-1)
			bkm1 := b[k-2] / a.at(k-2, k-1)
			denom := ak*akm1 - 1
			b[k-1] = (akm1*bk - bkm1) / denom
			b[k-2] = (ak*bkm1 - bk) / denom
			k -= 2
		}
	}

	k = 1
	for k <= n {
		if ipiv[k-1] >= 0 {
			if k != 1 {
				b[k-1] += Dot(a.A[0+(k-1)*a.Lda:(k-1)+(k-1)*a.Lda], b[0:k-1])
				kp := ipiv[k-1]
				if kp != k {
					b[k-1], b[kp-1] = b[kp-1], b[k-1]
				}
			}
			k++
		} else {
			if k != 1 {
				b[k-1] += Dot(a.A[0+(k-1)*a.Lda:(k-1)+(k-1)*a.Lda], b[0:k-1])
				b[k] += Dot(a.A[0+k*a.Lda:(k-1)+k*a.Lda], b[0:k-1])
				kp := int(math.Abs(float64(ipiv[k-1])))
				if kp != k {
					b[k-1], b[kp-1] = b[kp-1], b[k-1]
				}
			}
			k += 2
		}
	}
}
