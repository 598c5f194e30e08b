// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package las3

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/gonum-community/las3/internal/covar"
)

// unitKernel is the degenerate covariance model of the Gaussian
// marginals property: every volume has unit variance, and every pair
// of distinct points has zero covariance, regardless of separation.
// Under this kernel the stage-0 neighborhood covariance matrix is
// exactly the identity, so a single-stage field (m=0) is a set of
// i.i.d. standard normal draws.
type unitKernel struct{}

func (unitKernel) Cov(x, y, z float64) float64    { return 0 }
func (unitKernel) Var(v1, v2, v3 float64) float64 { return 1 }

// normalDecileZ are the standard normal quantiles at p = 0.1, 0.2, ...,
// 0.9, the boundaries of ten equal-probability bins.
var normalDecileZ = [9]float64{
	-1.2815515655446008, -0.8416212335729143, -0.5244005127080409,
	-0.2533471031357997, 0,
	0.2533471031357997, 0.5244005127080409, 0.8416212335729143,
	1.2815515655446008,
}

// TestGaussianMarginalsChiSquare is property 5: for the degenerate
// kernel above, the output cells of a single-stage field are i.i.d.
// standard normal. It draws 2^18 samples (512 realizations of a
// 512-cell grid) and runs a chi-square goodness-of-fit test against
// ten equal-probability standard normal bins.
func TestGaussianMarginalsChiSquare(t *testing.T) {
	cfg := Config{
		N1: 8, N2: 8, N3: 8,
		L1: 8, L2: 8, L3: 8,
		Cov:  unitKernel{},
		Seed: 12345,
	}
	h, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if h.m != 0 {
		t.Fatalf("m = %d, want 0 (single-stage scenario)", h.m)
	}

	const realizations = 512
	var counts [10]float64
	total := 0
	for r := 0; r < realizations; r++ {
		f, err := h.Sample()
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		for _, v := range f.Data {
			bin := 0
			for bin < len(normalDecileZ) && float64(v) > normalDecileZ[bin] {
				bin++
			}
			counts[bin]++
			total++
		}
	}
	if want := 1 << 18; total != want {
		t.Fatalf("total samples = %d, want %d", total, want)
	}

	expected := make([]float64, len(counts))
	observed := make([]float64, len(counts))
	for i := range counts {
		observed[i] = counts[i]
		expected[i] = float64(total) / float64(len(counts))
	}
	chi2 := stat.ChiSquare(observed, expected)
	// Critical value of the chi-square distribution at 9 degrees of
	// freedom (10 bins - 1) and alpha=0.01, from the standard table.
	const critical = 21.666
	if chi2 > critical {
		t.Errorf("chi-square statistic = %v, want <= %v (alpha=0.01, df=9)", chi2, critical)
	}
}

// TestCovarianceReproduction is property 6: for an isotropic
// exponential kernel, the empirical covariance between cell (1,1,1)
// and cell (1+d,1,1), estimated over 10^4 realizations, matches the
// analytical local-average covariance (internal/covar.Dcvaa3 at a
// lag of d cell-widths) within 5%, for d in {1,2,4,8}.
func TestCovarianceReproduction(t *testing.T) {
	cov := Exponential{Sigma2: 1, Lx: 4, Ly: 4, Lz: 4}
	cfg := Config{
		N1: 16, N2: 16, N3: 16,
		L1: 16, L2: 16, L3: 16,
		Cov:  cov,
		Seed: 2024,
	}
	h, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	const realizations = 10000
	const d1 = 1
	lags := [4]int{1, 2, 4, 8}
	var sumX, sumY [4]float64
	var sumXY [4]float64

	for r := 0; r < realizations; r++ {
		f, err := h.Sample()
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		x := float64(f.At(d1-1, d1-1, d1-1))
		for li, d := range lags {
			y := float64(f.At(d1-1+d, d1-1, d1-1))
			sumX[li] += x
			sumY[li] += y
			sumXY[li] += x * y
		}
	}

	n := float64(realizations)
	for li, d := range lags {
		meanX := sumX[li] / n
		meanY := sumY[li] / n
		empirical := sumXY[li]/n - meanX*meanY

		want := covar.Dcvaa3(cov, 1, 1, 1, float64(d), 0, 0)
		tol := 0.05 * math.Abs(want)
		if tol < 0.01 {
			tol = 0.01
		}
		if math.Abs(empirical-want) > tol {
			t.Errorf("d=%d: empirical covariance = %v, want %v (+/- %v)", d, empirical, want, tol)
		}
	}
}
