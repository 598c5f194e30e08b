// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package neighbor builds the per-stage BLUE (best linear unbiased
// estimator) parameter tables -- the parent-to-child projection
// matrix A and the conditional Cholesky factor C -- for every
// neighborhood class a cell can fall into: corner, edge, side, or
// interior in full 3-D, and their degenerate 2-D-in-3-D counterparts
// when the parent grid is a single cell thick along an axis (k_i == 1,
// at the first subdivision stage).
package neighbor

import (
	"github.com/gonum-community/las3/internal/covar"
)

// Mode is the per-axis availability of neighbor cells around a
// subdivision-stage parent cell.
type Mode int

const (
	// Free means both neighbors (offset -1 and +1) exist along this
	// axis, as they do away from any grid boundary.
	Free Mode = iota
	// Plus means only the +1 neighbor exists (the cell sits at the
	// axis's low boundary).
	Plus
	// Minus means only the -1 neighbor exists (the cell sits at the
	// axis's high boundary).
	Minus
	// Degenerate means the parent grid is a single cell thick along
	// this axis (k_i == 1 at the first subdivision stage): there is no
	// neighbor along it, so the offset is always 0.
	Degenerate
)

func (m Mode) offsets() []int {
	switch m {
	case Free:
		return []int{-1, 0, 1}
	case Plus:
		return []int{0, 1}
	case Minus:
		return []int{0, -1}
	default: // Degenerate
		return []int{0}
	}
}

// Class names the four (or, degenerate, three) neighborhood
// categories a parent cell can belong to.
type Class int

const (
	Interior Class = iota
	Side
	Edge
	Corner
)

func (c Class) String() string {
	switch c {
	case Interior:
		return "interior"
	case Side:
		return "side"
	case Edge:
		return "edge"
	case Corner:
		return "corner"
	default:
		return "unknown"
	}
}

// Spec is one neighborhood variant: the per-axis mode that produced
// it, and its class.
type Spec struct {
	Axes  [3]Mode
	Class Class
}

// Mask returns the linear indices, into the 27-cell neighborhood
// covar.NeighborIndex enumerates, that this variant selects.
func (s Spec) Mask() []int {
	var mask []int
	for _, dk := range s.Axes[2].offsets() {
		for _, dj := range s.Axes[1].offsets() {
			for _, di := range s.Axes[0].offsets() {
				mask = append(mask, covar.NeighborIndex(di, dj, dk))
			}
		}
	}
	return mask
}

// degenAxes records, per axis, whether the parent grid is a single
// cell thick along it.
type degenAxes [3]bool

// AllSpecs enumerates every neighborhood variant for a grid whose
// axes are degenerate as given by deg. A fully 3-D grid (deg all
// false) yields the textbook 8 corner + 12 edge + 6 side + 1 interior
// variants. A grid degenerate in one axis (k_i == 1) yields the
// reduced 2-D-in-3-D set: 4 corner + 4 side + 1 interior, with no
// edge class (there is no intermediate constraint level with only
// two free axes to draw from).
func AllSpecs(deg [3]bool) []Spec {
	modesFor := func(axis int) []Mode {
		if deg[axis] {
			return []Mode{Degenerate}
		}
		return []Mode{Free, Plus, Minus}
	}
	numNonDeg := 0
	for _, d := range deg {
		if !d {
			numNonDeg++
		}
	}

	var specs []Spec
	for _, mx := range modesFor(0) {
		for _, my := range modesFor(1) {
			for _, mz := range modesFor(2) {
				axes := [3]Mode{mx, my, mz}
				free := 0
				for i, m := range axes {
					if !deg[i] && m == Free {
						free++
					}
				}
				specs = append(specs, Spec{Axes: axes, Class: classify(free, numNonDeg)})
			}
		}
	}
	return specs
}

// classify maps the number of non-degenerate axes left unconstrained
// (free) against the number of non-degenerate axes available
// (numNonDeg) to a Class, per the ladder described in AllSpecs' doc
// comment: interior at the top, corner at the bottom, and (in full
// 3-D only) side and edge as the two intermediate rungs.
func classify(free, numNonDeg int) Class {
	switch {
	case free == numNonDeg:
		return Interior
	case free == 0:
		return Corner
	case numNonDeg == 3 && free == 2:
		return Side
	case numNonDeg == 3 && free == 1:
		return Edge
	default:
		// numNonDeg == 2: the only intermediate rung merges what
		// would be "edge" and "side" in full 3-D into one class.
		return Side
	}
}

// BySpecClass partitions specs (as returned by AllSpecs) by class.
func BySpecClass(specs []Spec) (corners, edges, sides []Spec, interior Spec) {
	for _, s := range specs {
		switch s.Class {
		case Corner:
			corners = append(corners, s)
		case Edge:
			edges = append(edges, s)
		case Side:
			sides = append(sides, s)
		case Interior:
			interior = s
		}
	}
	return corners, edges, sides, interior
}
