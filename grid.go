// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package las3

// decompose finds a stage-0 cell count (k1,k2,k3) and subdivision
// depth m such that N_i = k_i * 2^m for every axis and k1*k2*k3 <=
// kMax, preferring the smallest such m. It tries m = 0, 1, ..., mMax
// in order: at each step, if the current (k1,k2,k3) already fits
// under kMax it stops there; otherwise every k_i must be even (so it
// can be halved for the next m) or the grid has no valid
// decomposition and the caller must fail with IncompatibleGrid.
func decompose(n1, n2, n3, mMax, kMax int) (k1, k2, k3, m int, err error) {
	k1, k2, k3 = n1, n2, n3
	for m = 0; m <= mMax; m++ {
		if k1*k2*k3 <= kMax {
			return k1, k2, k3, m, nil
		}
		if k1%2 != 0 || k2%2 != 0 || k3%2 != 0 {
			return 0, 0, 0, 0, newErr("las3i", IncompatibleGrid)
		}
		k1, k2, k3 = k1/2, k2/2, k3/2
	}
	return 0, 0, 0, 0, newErr("las3i", IncompatibleGrid)
}
