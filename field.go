// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package las3

// Field is one realization of the random field, on an N1 x N2 x N3
// grid covering an L1 x L2 x L3 physical domain. Data is laid out with
// x fastest, then y, then z: Data[Index(i,j,k)].
type Field struct {
	N1, N2, N3 int
	L1, L2, L3 float64
	Data       []float32
}

// Index returns the offset of cell (i,j,k), 0-based, into Data.
func (f *Field) Index(i, j, k int) int { return i + f.N1*j + f.N1*f.N2*k }

// At returns the value of cell (i,j,k).
func (f *Field) At(i, j, k int) float32 { return f.Data[f.Index(i, j, k)] }
