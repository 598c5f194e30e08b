// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

// symmetrize fills the lower triangle of a column-major n x n matrix
// from its upper triangle, the layout Dense/Dsifa expect.
func symmetrize(n int, upper []float64) Dense {
	d := Dense{N: n, A: make([]float64, n*n), Lda: n}
	copy(d.A, upper)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			d.set(i, j, d.at(j, i))
		}
	}
	return d
}

func TestDsifaDsislSolves(t *testing.T) {
	// A well-conditioned symmetric 3x3 system,
	// [[4,1,2],[1,3,1],[2,1,5]]; each line of the literal below is one
	// column of its upper triangle.
	n := 3
	a := symmetrize(n, []float64{
		4, 0, 0,
		1, 3, 0,
		2, 1, 5,
	})
	want := []float64{1, -2, 0.5}
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += a.at(i, j) * want[j]
		}
		b[i] = sum
	}

	ipiv, err := Dsifa(a)
	if err != nil {
		t.Fatalf("Dsifa: %v", err)
	}
	Dsisl(a, ipiv, b)
	for i := range want {
		if !floats.EqualWithinAbsOrRel(b[i], want[i], 1e-8, 1e-8) {
			t.Errorf("x[%d] = %v, want %v", i, b[i], want[i])
		}
	}
}

// TestDsifaDsisl2x2Pivot forces a bare 2x2 Bunch-Kaufman pivot block
// (kstep==2): the diagonal entries are both zero and the off-diagonal
// neighbor is the largest entry in the matrix, so no 1x1 pivot test
// can succeed and Dsifa must fall through to a 2x2 block.
func TestDsifaDsisl2x2Pivot(t *testing.T) {
	a := Dense{N: 2, A: []float64{0, 1, 1, 0}, Lda: 2}
	want := []float64{3, -2}
	b := make([]float64, 2)
	for i := 0; i < 2; i++ {
		var sum float64
		for j := 0; j < 2; j++ {
			sum += a.at(i, j) * want[j]
		}
		b[i] = sum
	}

	ipiv, err := Dsifa(a)
	if err != nil {
		t.Fatalf("Dsifa: %v", err)
	}
	if ipiv[0] >= 0 || ipiv[1] >= 0 {
		t.Fatalf("ipiv = %v, want a 2x2 (negative) pivot", ipiv)
	}
	Dsisl(a, ipiv, b)
	for i := range want {
		if !floats.EqualWithinAbsOrRel(b[i], want[i], 1e-8, 1e-8) {
			t.Errorf("x[%d] = %v, want %v", i, b[i], want[i])
		}
	}
}

// TestDsifaDsisl2x2PivotWithElimination forces a 2x2 pivot at the last
// two rows/columns preceded by a 1x1 pivot, so the k-2!=0 elimination
// branch inside the kstep==2 path of Dsifa (and the k!=2 branch of
// Dsisl) run as well, not just the degenerate n==2 case.
func TestDsifaDsisl2x2PivotWithElimination(t *testing.T) {
	// Column-major for the block-diagonal matrix diag(5, [[0,1],[1,0]]).
	n := 3
	a := Dense{N: n, A: []float64{5, 0, 0, 0, 0, 1, 0, 1, 0}, Lda: n}
	want := []float64{2, 3, -1}
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += a.at(i, j) * want[j]
		}
		b[i] = sum
	}

	ipiv, err := Dsifa(a)
	if err != nil {
		t.Fatalf("Dsifa: %v", err)
	}
	if ipiv[0] < 0 || ipiv[1] >= 0 || ipiv[2] >= 0 {
		t.Fatalf("ipiv = %v, want a trailing 1x1 pivot and a leading 2x2 pivot", ipiv)
	}
	Dsisl(a, ipiv, b)
	for i := range want {
		if !floats.EqualWithinAbsOrRel(b[i], want[i], 1e-8, 1e-8) {
			t.Errorf("x[%d] = %v, want %v", i, b[i], want[i])
		}
	}
}

func TestDsifaSingular(t *testing.T) {
	a := Dense{N: 1, A: []float64{0}, Lda: 1}
	if _, err := Dsifa(a); err == nil {
		t.Fatal("Dsifa: want SingularMatrix error, got nil")
	}
}

func TestVecOps(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}
	Axpy(2, x, y)
	want := []float64{6, 9, 12}
	if !floats.Equal(y, want) {
		t.Errorf("Axpy result = %v, want %v", y, want)
	}

	if got := Dot([]float64{1, 2}, []float64{3, 4}); got != 11 {
		t.Errorf("Dot = %v, want 11", got)
	}

	if got := Argmax([]float64{1, -5, 3}); got != 1 {
		t.Errorf("Argmax = %v, want 1", got)
	}
	if got := Argmax(nil); got != -1 {
		t.Errorf("Argmax(nil) = %v, want -1", got)
	}
}
