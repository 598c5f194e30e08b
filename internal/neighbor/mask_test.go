// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neighbor

import "testing"

func TestAllSpecsFull3D(t *testing.T) {
	specs := AllSpecs([3]bool{})
	if len(specs) != 27 {
		t.Fatalf("len(specs) = %d, want 27", len(specs))
	}
	corners, edges, sides, interior := BySpecClass(specs)
	if len(corners) != 8 {
		t.Errorf("corners = %d, want 8", len(corners))
	}
	if len(edges) != 12 {
		t.Errorf("edges = %d, want 12", len(edges))
	}
	if len(sides) != 6 {
		t.Errorf("sides = %d, want 6", len(sides))
	}
	if interior.Class != Interior {
		t.Errorf("interior.Class = %v, want Interior", interior.Class)
	}
	if len(interior.Mask()) != 27 {
		t.Errorf("len(interior.Mask()) = %d, want 27", len(interior.Mask()))
	}
}

func TestAllSpecsDegenerateAxis(t *testing.T) {
	specs := AllSpecs([3]bool{false, false, true})
	if len(specs) != 9 {
		t.Fatalf("len(specs) = %d, want 9", len(specs))
	}
	corners, edges, sides, interior := BySpecClass(specs)
	if len(corners) != 4 {
		t.Errorf("corners = %d, want 4", len(corners))
	}
	if len(edges) != 0 {
		t.Errorf("edges = %d, want 0 (degenerate grids have no edge class)", len(edges))
	}
	if len(sides) != 4 {
		t.Errorf("sides = %d, want 4", len(sides))
	}
	if interior.Class != Interior {
		t.Errorf("interior.Class = %v, want Interior", interior.Class)
	}
	for _, s := range append(append(corners, sides...), interior) {
		if s.Axes[2] != Degenerate {
			t.Errorf("spec %+v: degenerate axis not forced to Degenerate", s)
		}
	}
}

func TestMaskCenterAlwaysIncluded(t *testing.T) {
	for _, s := range AllSpecs([3]bool{}) {
		mask := s.Mask()
		found := false
		for _, idx := range mask {
			if idx == 13 {
				found = true
			}
		}
		if !found {
			t.Errorf("spec %+v: mask %v does not include center index 13", s, mask)
		}
	}
}
