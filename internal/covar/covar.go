// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package covar assembles the small covariance matrices the LAS
// engine conditions on at each subdivision stage, by numerical
// quadrature of a user-supplied point covariance or variance
// function. It reduces every local-average covariance to a 3-D
// integral -- regardless of how many points the two averaging volumes
// contain -- using the identity that integrating a box average
// against another box average, axis by axis, collapses to a 1-D
// integral weighted by the two boxes' overlap (their convolution
// kernel); tensor-producting that reduction over x, y, z turns the
// general 6-D double integral into the 3-D one 16-point
// Gauss-Legendre quadrature evaluates.
package covar

import "gonum.org/v1/gonum/integrate/quad"

// Kernel is the contract a caller's covariance model must satisfy.
// Cov is the point covariance function of a lag (X, Y, Z); it must be
// octant-symmetric (Cov(x,y,z) == Cov(|x|,|y|,|z|)). Var is the
// variance of the point process averaged over a V1xV2xV3 volume; it
// must be quadrant-symmetric in the same sense. These are the only
// properties the quadrature routines below rely on.
type Kernel interface {
	Cov(x, y, z float64) float64
	Var(v1, v2, v3 float64) float64
}

// points is the fixed quadrature order used throughout: enough to
// integrate the low-order polynomials a smooth covariance kernel
// locally resembles, without the cost of an adaptive rule.
const points = 16

var legendreRule quad.Legendre

// axis returns the points-point Gauss-Legendre nodes and weights for
// [lo, hi].
func axis(lo, hi float64) (x, w []float64) {
	x = make([]float64, points)
	w = make([]float64, points)
	legendreRule.FixedLocations(x, w, lo, hi)
	return x, w
}

// boxWeight is the convolution kernel of two centered intervals of
// half-width a and b: the length of the overlap between [-a,a] and
// [v-b,v+b], i.e. the measure of y1 in [-a,a] such that y1-v lies in
// [-b,b]. It is the classic tent function (D-|v|, D=2a) when a==b.
func boxWeight(v, a, b float64) float64 {
	lo := v - b
	if -a > lo {
		lo = -a
	}
	hi := v + b
	if a < hi {
		hi = a
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// axisTerms returns the quadrature nodes (raw separations v, before
// subtracting the center-to-center lag) and their combined
// quadrature*overlap weights for one axis of the box-box integral
// between half-widths a and b. When fold is true it assumes the
// integrand is even about v=0 (valid whenever a==b and this axis'
// lag is zero, since Kernel.Cov is required to be even in each
// coordinate independently) and integrates [0,2a] instead of
// [-(a+b),a+b], doubling the weights.
func axisTerms(a, b float64, fold bool) (v, w []float64) {
	half := a + b
	if fold {
		v, w = axis(0, 2*a)
		for i := range w {
			w[i] *= 2
		}
	} else {
		v, w = axis(-half, half)
	}
	for i, vi := range v {
		w[i] *= boxWeight(vi, a, b)
	}
	return v, w
}

// boxCov integrates cov over the product of three axisTerms grids,
// evaluating cov at (v_x-lag_x, v_y-lag_y, v_z-lag_z), and normalizes
// by the product of the two cells' volumes (2a)(2b) per axis.
func boxCov(cov Kernel, a, b, lag [3]float64, fold [3]bool) float64 {
	var v, w [3][]float64
	vol := 1.0
	for i := 0; i < 3; i++ {
		v[i], w[i] = axisTerms(a[i], b[i], fold[i])
		vol *= (2 * a[i]) * (2 * b[i])
	}
	var sum float64
	for i := 0; i < points; i++ {
		wi := w[0][i]
		if wi == 0 {
			continue
		}
		xi := v[0][i] - lag[0]
		for j := 0; j < points; j++ {
			wj := wi * w[1][j]
			if wj == 0 {
				continue
			}
			yj := v[1][j] - lag[1]
			for k := 0; k < points; k++ {
				wk := wj * w[2][k]
				if wk == 0 {
					continue
				}
				zk := v[2][k] - lag[2]
				sum += wk * cov.Cov(xi, yj, zk)
			}
		}
	}
	return sum / vol
}

// Dcvaa3 returns the covariance between two equal-size cells of side
// (D1,D2,D3) whose centers are separated by (C1*D1, C2*D2, C3*D3).
// When the two cells coincide (zero lag on every axis), this is by
// definition the variance of a single D1xD2xD3 average, so it is
// taken directly from cov.Var rather than by quadrature. Otherwise,
// any axis with zero lag still folds its quadrature range in half,
// exploiting cov's per-coordinate evenness on that axis alone.
func Dcvaa3(cov Kernel, d1, d2, d3, c1, c2, c3 float64) float64 {
	if c1 == 0 && c2 == 0 && c3 == 0 {
		return cov.Var(d1, d2, d3)
	}
	a := [3]float64{d1 / 2, d2 / 2, d3 / 2}
	lag := [3]float64{c1 * d1, c2 * d2, c3 * d3}
	fold := [3]bool{c1 == 0, c2 == 0, c3 == 0}
	return boxCov(cov, a, a, lag, fold)
}

// Dcvab3 returns the cross-covariance between a parent cell of side
// (D1,D2,D3) and a child cell of side (D1/2,D2/2,D3/2) whose center
// is offset from the parent's by (C1,C2,C3) child-cell-widths.
func Dcvab3(cov Kernel, d1, d2, d3, c1, c2, c3 float64) float64 {
	a := [3]float64{d1 / 2, d2 / 2, d3 / 2}
	b := [3]float64{d1 / 4, d2 / 4, d3 / 4}
	lag := [3]float64{c1 * (d1 / 2), c2 * (d2 / 2), c3 * (d3 / 2)}
	return boxCov(cov, a, b, lag, [3]bool{})
}
