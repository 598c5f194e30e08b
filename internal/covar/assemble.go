// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package covar

// NeighborIndex returns the linear index, 0..26, of a cell at offset
// (di,dj,dk), di,dj,dk in {-1,0,1}, within a 3x3x3 neighborhood, with
// x varying fastest. Index 13 is always the center cell (0,0,0).
func NeighborIndex(di, dj, dk int) int { return (di + 1) + 3*(dj+1) + 9*(dk+1) }

// ChildIndex returns the linear index, 0..7, of a child at offset
// (ci,cj,ck), ci,cj,ck in {0,1}, within a 2x2x2 octet, with x varying
// fastest. Index 7 (1,1,1) is the child the driver always derives by
// upward-averaging closure rather than by direct conditioning.
func ChildIndex(ci, cj, ck int) int { return ci + 2*cj + 4*ck }

// Stage0Index returns the linear index of stage-0 cell (i,j,k) within
// a k1 x k2 x k3 grid, x varying fastest -- the same layout the field
// buffer itself uses.
func Stage0Index(i, j, k, k1, k2 int) int { return i + k1*j + k1*k2*k }

// FillStage0 fills the kk x kk (kk = k1*k2*k3) symmetric covariance
// matrix r0 of the direct-simulation stage among every pair of
// stage-0 cells of side (t1,t2,t3), packed lower-triangular
// (r0[i*(i+1)/2+j], i>=j), as dchol2 expects it.
func FillStage0(cov Kernel, r0 []float64, k1, k2, k3 int, t1, t2, t3 float64) {
	kk := k1 * k2 * k3
	coord := make([][3]int, kk)
	for k := 0; k < k3; k++ {
		for j := 0; j < k2; j++ {
			for i := 0; i < k1; i++ {
				coord[Stage0Index(i, j, k, k1, k2)] = [3]int{i, j, k}
			}
		}
	}
	for bi := 0; bi < kk; bi++ {
		b := coord[bi]
		for ai := 0; ai <= bi; ai++ {
			a := coord[ai]
			c := Dcvaa3(cov, t1, t2, t3,
				float64(b[0]-a[0]), float64(b[1]-a[1]), float64(b[2]-a[2]))
			r0[bi*(bi+1)/2+ai] = c
		}
	}
}

// FillNeighborTemplate fills the 27x27 symmetric covariance template
// r among a 3x3x3 neighborhood of cells of side (t1,t2,t3), in plain
// row-major order (r[i*27+j] == r[j*27+i]).
func FillNeighborTemplate(cov Kernel, r []float64, t1, t2, t3 float64) {
	for bdk := -1; bdk <= 1; bdk++ {
		for bdj := -1; bdj <= 1; bdj++ {
			for bdi := -1; bdi <= 1; bdi++ {
				bi := NeighborIndex(bdi, bdj, bdk)
				for adk := -1; adk <= 1; adk++ {
					for adj := -1; adj <= 1; adj++ {
						for adi := -1; adi <= 1; adi++ {
							ai := NeighborIndex(adi, adj, adk)
							if ai > bi {
								continue
							}
							c := Dcvaa3(cov, t1, t2, t3, float64(bdi-adi), float64(bdj-adj), float64(bdk-adk))
							r[bi*27+ai] = c
							r[ai*27+bi] = c
						}
					}
				}
			}
		}
	}
}

// FillChildCovariance fills the 8x8 symmetric covariance b among the
// 2x2x2 children of a single cell, each child of side (t1,t2,t3) (the
// post-subdivision, i.e. already-halved, size).
func FillChildCovariance(cov Kernel, b []float64, t1, t2, t3 float64) {
	for bck := 0; bck <= 1; bck++ {
		for bcj := 0; bcj <= 1; bcj++ {
			for bci := 0; bci <= 1; bci++ {
				bi := ChildIndex(bci, bcj, bck)
				for ack := 0; ack <= 1; ack++ {
					for acj := 0; acj <= 1; acj++ {
						for aci := 0; aci <= 1; aci++ {
							ai := ChildIndex(aci, acj, ack)
							if ai > bi {
								continue
							}
							c := Dcvaa3(cov, t1, t2, t3, float64(bci-aci), float64(bcj-acj), float64(bck-ack))
							b[bi*8+ai] = c
							b[ai*8+bi] = c
						}
					}
				}
			}
		}
	}
}

// FillCross fills the 27x8 parent-child cross-covariance s between
// each of the 27 cells of a 3x3x3 neighborhood of side (2*t1,2*t2,2*t3)
// (the pre-subdivision parent size) and each of the 8 children, of
// side (t1,t2,t3), of the neighborhood's central cell.
func FillCross(cov Kernel, s []float64, t1, t2, t3 float64) {
	d1, d2, d3 := 2*t1, 2*t2, 2*t3
	for pdk := -1; pdk <= 1; pdk++ {
		for pdj := -1; pdj <= 1; pdj++ {
			for pdi := -1; pdi <= 1; pdi++ {
				pi := NeighborIndex(pdi, pdj, pdk)
				for ck := 0; ck <= 1; ck++ {
					for cj := 0; cj <= 1; cj++ {
						for ci := 0; ci <= 1; ci++ {
							chIdx := ChildIndex(ci, cj, ck)
							// Child center offset from its parent
							// center is +-0.5 child-cell-widths;
							// neighbor cell pdi sits 2*pdi
							// child-cell-widths from the parent
							// center (its own size is 2x the child
							// size), so the child center lies
							// (ci-0.5) - 2*pdi widths from it.
							c1 := (float64(ci) - 0.5) - 2*float64(pdi)
							c2 := (float64(cj) - 0.5) - 2*float64(pdj)
							c3 := (float64(ck) - 0.5) - 2*float64(pdk)
							s[pi*8+chIdx] = Dcvab3(cov, d1, d2, d3, c1, c2, c3)
						}
					}
				}
			}
		}
	}
}
