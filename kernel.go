// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package las3

import "math"

// Kernel is the point covariance model a caller supplies. Cov(x, y, z)
// is the covariance of the field between two points separated by lag
// (x, y, z); it must be octant-symmetric (Cov(x,y,z) == Cov(|x|,|y|,|z|)).
// Var(v1, v2, v3) is the variance of the field averaged over a
// v1 x v2 x v3 volume; it must be quadrant-symmetric in the same sense.
// Every covariance the engine needs, at any subdivision stage, is
// obtained from these two functions alone -- Var directly for a single
// cell's variance, quadrature of Cov for every other covariance -- so a
// caller never needs to supply a local-average covariance directly.
//
// Kernel is structurally identical to internal/covar.Kernel; the two
// are kept as separate declarations (rather than one exported from
// internal/covar) so this package's public surface does not leak an
// internal import path, and so a caller's Kernel implementation never
// needs to import an internal package to satisfy it.
type Kernel interface {
	Cov(x, y, z float64) float64
	Var(v1, v2, v3 float64) float64
}

// Exponential is a separable exponential covariance kernel,
// Cov(x,y,z) = sigma2 * exp(-(|x|/Lx + |y|/Ly + |z|/Lz)), a common
// default for geotechnical and geostatistical random fields. Var is
// obtained by the closed form for the 1-D exponential average,
// tensor-producted across axes.
type Exponential struct {
	Sigma2     float64
	Lx, Ly, Lz float64
}

func (e Exponential) Cov(x, y, z float64) float64 {
	return e.Sigma2 * absExp(x, e.Lx) * absExp(y, e.Ly) * absExp(z, e.Lz)
}

func absExp(d, l float64) float64 {
	if d < 0 {
		d = -d
	}
	if l <= 0 {
		if d == 0 {
			return 1
		}
		return 0
	}
	return math.Exp(-d / l)
}

func (e Exponential) Var(v1, v2, v3 float64) float64 {
	return e.Sigma2 * avgExp1D(v1, e.Lx) * avgExp1D(v2, e.Ly) * avgExp1D(v3, e.Lz)
}

// avgExp1D is the variance of an exponentially-correlated 1-D process
// of scale l averaged over an interval of length v:
// (2/v^2) * (v*l - l^2*(1 - exp(-v/l))).
func avgExp1D(v, l float64) float64 {
	if v <= 0 {
		return 1
	}
	if l <= 0 {
		return 0
	}
	return (2 / (v * v)) * (v*l - l*l*(1-math.Exp(-v/l)))
}
