// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package las3

import (
	"time"

	"github.com/gonum-community/las3/internal/neighbor"
)

// Sample draws one realization of the field: a stage-0 direct
// simulation of the k1*k2*k3 coarse grid, followed by m subdivision
// stages that each condition a 2x2x2 child octet on its precomputed
// BLUE neighborhood projection, closing the eighth child by
// upward-averaging (parent == mean of its 8 children, exactly).
func (h *Handle) Sample() (*Field, error) {
	start := time.Now()

	h.mu.Lock()
	defer h.mu.Unlock()

	n1, n2, n3 := h.k1, h.k2, h.k3
	front := make([]float32, n1*n2*n3)

	z0 := make([]float64, n1*n2*n3)
	if err := h.rng.Vnorm(z0); err != nil {
		return nil, wrapErr("las3g", InvalidArgument, err)
	}
	for i := range front {
		var sum float64
		for j := 0; j <= i; j++ {
			sum += float64(h.c0[packedIdx(i, j)]) * z0[j]
		}
		front[i] = float32(sum)
	}

	for s := 1; s <= h.m; s++ {
		table := h.tables[s-1]
		cn1, cn2, cn3 := 2*n1, 2*n2, 2*n3
		back := make([]float32, cn1*cn2*cn3)

		var gathered [27]float64
		var mean [7]float64
		var z [7]float64
		var child [8]float64

		for k := 0; k < n3; k++ {
			for j := 0; j < n2; j++ {
				for i := 0; i < n1; i++ {
					parentIdx := i + n1*j + n1*n2*k
					parentVal := float64(front[parentIdx])

					axes := [3]neighbor.Mode{modeFor(i, n1), modeFor(j, n2), modeFor(k, n3)}
					params := table.byAxes[encodeAxes(axes)]

					for gi, mIdx := range params.Mask {
						di := mIdx%3 - 1
						dj := (mIdx/3)%3 - 1
						dk := mIdx/9 - 1
						ni, nj, nk := i+di, j+dj, k+dk
						gathered[gi] = float64(front[ni+n1*nj+n1*n2*nk])
					}
					n := len(params.Mask)

					for c := 0; c < 7; c++ {
						var sum float64
						for gi := 0; gi < n; gi++ {
							sum += gathered[gi] * float64(params.A[gi*7+c])
						}
						mean[c] = sum
					}

					if err := h.rng.Vnorm(z[:]); err != nil {
						return nil, wrapErr("las3g", InvalidArgument, err)
					}
					var childSum float64
					for c := 0; c < 7; c++ {
						var resid float64
						for jj := 0; jj <= c; jj++ {
							resid += float64(params.C[packedIdx(c, jj)]) * z[jj]
						}
						child[c] = mean[c] + resid
						childSum += child[c]
					}
					child[7] = 8*parentVal - childSum

					for c := 0; c < 8; c++ {
						// Inverse of covar.ChildIndex(ci,cj,ck).
						ci, cj, ck := c%2, (c/2)%2, c/4
						I, J, K := 2*i+ci, 2*j+cj, 2*k+ck
						back[I+cn1*J+cn1*cn2*K] = float32(child[c])
					}
				}
			}
		}

		front = back
		n1, n2, n3 = cn1, cn2, cn3
	}

	field := &Field{
		N1: h.cfg.N1, N2: h.cfg.N2, N3: h.cfg.N3,
		L1: h.cfg.L1, L2: h.cfg.L2, L3: h.cfg.L3,
		Data: front,
	}

	h.stats.SampleCount++
	h.stats.SampleDuration += time.Since(start).Nanoseconds()
	return field, nil
}

// packedIdx returns the offset of element (i,j), i>=j, in row-major
// packed lower-triangular storage -- the same convention
// internal/linalg.Dchol2 and internal/neighbor.Params.C use.
func packedIdx(i, j int) int { return i*(i+1)/2 + j }
