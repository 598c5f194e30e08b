// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package las3

import (
	"github.com/gonum-community/las3/internal/covar"
	"github.com/gonum-community/las3/internal/neighbor"
)

// stageTable holds the precomputed BLUE projections for every
// neighborhood variant a cell can present at one subdivision stage,
// keyed by the encoded per-axis Mode tuple (see encodeAxes). It is
// immutable once built and safe for concurrent reads.
type stageTable struct {
	byAxes  map[int]*neighbor.Params
	maxRerr float64
}

// encodeAxes packs a 3-axis Mode tuple (each in [0,3]) into a single
// lookup key.
func encodeAxes(axes [3]neighbor.Mode) int {
	return int(axes[0]) + 4*int(axes[1]) + 16*int(axes[2])
}

// buildStageTable assembles every neighborhood variant's BLUE
// projection for one subdivision stage, given the parent cell size
// (p1,p2,p3) entering that stage (the 27-cell neighborhood covariance
// is among cells of that size) and which axes are degenerate (a single
// parent cell thick, k_i == 1) there. Degeneracy only ever holds at stage 1;
// every later stage passes deg as all-false. The child covariance and
// parent-child cross-covariance are both expressed in terms of the
// post-subdivision child size, p/2.
func buildStageTable(cov Kernel, p1, p2, p3 float64, deg [3]bool) (*stageTable, error) {
	adapter := kernelAdapter{cov}
	c1, c2, c3 := p1/2, p2/2, p3/2

	r := make([]float64, 27*27)
	b := make([]float64, 8*8)
	s := make([]float64, 27*8)
	covar.FillNeighborTemplate(adapter, r, p1, p2, p3)
	covar.FillChildCovariance(adapter, b, c1, c2, c3)
	covar.FillCross(adapter, s, c1, c2, c3)

	table := &stageTable{byAxes: make(map[int]*neighbor.Params)}
	for _, spec := range neighbor.AllSpecs(deg) {
		key := encodeAxes(spec.Axes)
		if _, ok := table.byAxes[key]; ok {
			continue
		}
		params, rerr, err := neighbor.Build(spec.Mask(), r, b, s)
		if err != nil {
			return nil, err
		}
		if rerr > table.maxRerr {
			table.maxRerr = rerr
		}
		table.byAxes[key] = &params
	}
	return table, nil
}

// kernelAdapter satisfies internal/covar.Kernel structurally from a
// Kernel, so the root package never needs to export covar.Kernel
// itself or ask a caller to import an internal path.
type kernelAdapter struct{ k Kernel }

func (a kernelAdapter) Cov(x, y, z float64) float64    { return a.k.Cov(x, y, z) }
func (a kernelAdapter) Var(v1, v2, v3 float64) float64 { return a.k.Var(v1, v2, v3) }

// modeFor classifies one axis of a parent cell at index i (0-based)
// among n cells along that axis.
func modeFor(i, n int) neighbor.Mode {
	switch {
	case n == 1:
		return neighbor.Degenerate
	case i == 0:
		return neighbor.Plus
	case i == n-1:
		return neighbor.Minus
	default:
		return neighbor.Free
	}
}
