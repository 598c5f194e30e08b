// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package covar

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// exponential is a minimal octant/quadrant-symmetric test kernel.
type exponential struct {
	sigma2, l float64
}

func (e exponential) Cov(x, y, z float64) float64 {
	return e.sigma2 * math.Exp(-(math.Abs(x)+math.Abs(y)+math.Abs(z))/e.l)
}

func (e exponential) Var(v1, v2, v3 float64) float64 {
	f := func(v float64) float64 {
		if v <= 0 {
			return 1
		}
		return (2 / (v * v)) * (v*e.l - e.l*e.l*(1-math.Exp(-v/e.l)))
	}
	return e.sigma2 * f(v1) * f(v2) * f(v3)
}

func TestAxisIntegratesPolynomialsExactly(t *testing.T) {
	// A 16-point Gauss-Legendre rule is exact up to degree 2*16-1 = 31.
	x, w := axis(-1, 1)
	for deg := 0; deg <= 31; deg++ {
		var got float64
		for i, xi := range x {
			got += w[i] * math.Pow(xi, float64(deg))
		}
		var want float64
		if deg%2 == 0 {
			want = 2.0 / float64(deg+1)
		}
		if !floats.EqualWithinAbs(got, want, 1e-9) {
			t.Errorf("degree %d: got=%v want=%v", deg, got, want)
		}
	}
}

func TestDcvaa3ZeroLagMatchesVar(t *testing.T) {
	cov := exponential{sigma2: 2, l: 3}
	d1, d2, d3 := 1.5, 2.0, 0.8
	got := Dcvaa3(cov, d1, d2, d3, 0, 0, 0)
	want := cov.Var(d1, d2, d3)
	// Zero lag is taken directly from Var, not quadrature, so this is
	// an exact equality rather than an approximate one.
	if got != want {
		t.Errorf("Dcvaa3(zero lag) = %v, want Var(...) = %v", got, want)
	}
}

// degenerate is a kernel whose point covariance is identically zero:
// Dcvaa3 at zero lag must still report its variance, even though
// quadrature of Cov alone would report zero.
type degenerate struct{}

func (degenerate) Cov(x, y, z float64) float64    { return 0 }
func (degenerate) Var(v1, v2, v3 float64) float64 { return 1 }

func TestDcvaa3ZeroLagIgnoresCov(t *testing.T) {
	got := Dcvaa3(degenerate{}, 1, 1, 1, 0, 0, 0)
	if got != 1 {
		t.Errorf("Dcvaa3(degenerate, zero lag) = %v, want 1", got)
	}
	got = Dcvaa3(degenerate{}, 1, 1, 1, 1, 0, 0)
	if got != 0 {
		t.Errorf("Dcvaa3(degenerate, lag=1) = %v, want 0", got)
	}
}

func TestDcvaa3SymmetricInLag(t *testing.T) {
	cov := exponential{sigma2: 1, l: 2}
	a := Dcvaa3(cov, 1, 1, 1, 1, 0, 0)
	b := Dcvaa3(cov, 1, 1, 1, -1, 0, 0)
	if !floats.EqualWithinAbs(a, b, 1e-9) {
		t.Errorf("Dcvaa3 not symmetric in lag sign: %v vs %v", a, b)
	}
}

func TestFillStage0PositiveDiagonal(t *testing.T) {
	cov := exponential{sigma2: 1, l: 2}
	k1, k2, k3 := 2, 2, 2
	kk := k1 * k2 * k3
	r0 := make([]float64, kk*(kk+1)/2)
	FillStage0(cov, r0, k1, k2, k3, 1, 1, 1)
	for i := 0; i < kk; i++ {
		diag := r0[i*(i+1)/2+i]
		if diag <= 0 {
			t.Errorf("diagonal %d = %v, want > 0", i, diag)
		}
	}
}

func TestNeighborAndChildIndex(t *testing.T) {
	if NeighborIndex(0, 0, 0) != 13 {
		t.Errorf("NeighborIndex(0,0,0) = %d, want 13", NeighborIndex(0, 0, 0))
	}
	seen := make(map[int]bool)
	for dk := -1; dk <= 1; dk++ {
		for dj := -1; dj <= 1; dj++ {
			for di := -1; di <= 1; di++ {
				idx := NeighborIndex(di, dj, dk)
				if idx < 0 || idx > 26 || seen[idx] {
					t.Fatalf("NeighborIndex(%d,%d,%d) = %d not a unique 0..26 index", di, dj, dk, idx)
				}
				seen[idx] = true
			}
		}
	}

	if ChildIndex(1, 1, 1) != 7 {
		t.Errorf("ChildIndex(1,1,1) = %d, want 7", ChildIndex(1, 1, 1))
	}
}
