// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rng implements the uniform and Gaussian variate generators
// used by the LAS engine. It is deliberately independent of
// math/rand: the engine's reproducibility contract (bit-identical
// fields for identical seeds, across Go versions and releases)
// requires a fixed, self-contained algorithm rather than the
// standard library's generator, whose output is only guaranteed
// stable within a single Go version.
//
// The generator is L'Ecuyer's combined multiplicative congruential
// generator with a Bays-Durham shuffle (the classic "ran2"), producing
// uniform variates in the open interval (0,1).
package rng

import (
	"math"

	"github.com/gonum-community/las3/las3err"
)

const (
	im1  = 2147483563
	im2  = 2147483399
	am   = 1.0 / im1
	imm1 = im1 - 1
	ia1  = 40014
	ia2  = 40692
	iq1  = 53668
	iq2  = 52774
	ir1  = 12211
	ir2  = 3791
	ntab = 32
	ndiv = 1 + imm1/ntab
	eps  = 1.2e-7
	rnmx = 1 - eps
)

// Source holds the L'Ecuyer combined generator state: two congruential
// streams and the Bays-Durham shuffle table that decorrelates their
// low-order serial structure. The zero value is not ready to use;
// call Seed, or simply call Float64/Vnorm, which seed with 1 on
// first use the way the Fortran original falls back to a default
// seed rather than failing.
type Source struct {
	idum, idum2, iy int64
	iv              [ntab]int64
	ready           bool
}

// New returns an unseeded Source.
func New() *Source { return &Source{} }

// Seed re-initializes the generator with max(seed, 1), then advances
// it through NTAB+8 warm-up draws to load the shuffle table, exactly
// as the Fortran RANDU/ran2 lineage this generator descends from.
// It returns the seed actually used.
func (s *Source) Seed(seed int64) int64 {
	if seed < 1 {
		seed = 1
	}
	s.idum = seed
	s.idum2 = seed
	for j := ntab + 7; j >= 0; j-- {
		k := s.idum / iq1
		s.idum = ia1*(s.idum-k*iq1) - k*ir1
		if s.idum < 0 {
			s.idum += im1
		}
		if j < ntab {
			s.iv[j] = s.idum
		}
	}
	s.iy = s.iv[0]
	s.ready = true
	return seed
}

// Float64 returns the next uniform variate, strictly inside (0,1).
func (s *Source) Float64() float64 {
	if !s.ready {
		s.Seed(1)
	}
	k := s.idum / iq1
	s.idum = ia1*(s.idum-k*iq1) - k*ir1
	if s.idum < 0 {
		s.idum += im1
	}
	k = s.idum2 / iq2
	s.idum2 = ia2*(s.idum2-k*iq2) - k*ir2
	if s.idum2 < 0 {
		s.idum2 += im2
	}
	j := s.iy / ndiv
	s.iy = s.iv[j] - s.idum2
	s.iv[j] = s.idum
	if s.iy < 1 {
		s.iy += imm1
	}
	if v := am * float64(s.iy); v < rnmx {
		return v
	}
	return rnmx
}

// Vnorm fills u with len(u) i.i.d. standard normal variates using a
// Box-Muller transform of pairs of Float64 draws. Variates are
// generated and consumed two at a time so a pair is never split
// across separate Vnorm calls; when len(u) is odd, the second variate
// of the final pair is drawn and discarded rather than carried over,
// matching the reference implementation's behavior.
func (s *Source) Vnorm(u []float64) error {
	n := len(u)
	if n <= 0 {
		return las3err.New("vnorm", las3err.InvalidArgument)
	}
	i := 0
	for i+1 < n {
		v1, v2 := s.boxMullerPair()
		u[i], u[i+1] = v1, v2
		i += 2
	}
	if i < n {
		v1, _ := s.boxMullerPair()
		u[i] = v1
	}
	return nil
}

// boxMullerPair draws two independent standard normal variates from
// two uniform draws via rejection sampling inside the unit disk
// (Marsaglia's polar variant of Box-Muller), avoiding the trig calls
// of the basic form.
func (s *Source) boxMullerPair() (float64, float64) {
	for {
		v1 := 2*s.Float64() - 1
		v2 := 2*s.Float64() - 1
		rsq := v1*v1 + v2*v2
		if rsq > 0 && rsq < 1 {
			fac := math.Sqrt(-2 * math.Log(rsq) / rsq)
			return v1 * fac, v2 * fac
		}
	}
}
