// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package las3

// Config parameterizes one LAS engine instance. N1, N2, N3 are the
// target grid dimensions (cell counts along x, y, z); L1, L2, L3 are
// the corresponding physical domain lengths. Cov is the point
// covariance model; Seed, if non-zero, makes the realization stream
// reproducible (see Handle.Seed).
type Config struct {
	N1, N2, N3 int
	L1, L2, L3 float64
	Cov        Kernel
	Seed       int64
	Log        Logger

	// MMax and KMax override the default subdivision-depth and
	// stage-0 cell-count caps (6 and 512 respectively). Zero means
	// "use the default".
	MMax, KMax int

	// RerrTol is the relative-residual threshold above which a
	// stage's Cholesky conditioning is logged as a NumericalWarning
	// rather than silently accepted. Zero means "use the default"
	// (1e-3).
	RerrTol float64
}

const (
	defaultMMax    = 6
	defaultKMax    = 512
	defaultRerrTol = 1e-3
)

func (c Config) mMax() int {
	if c.MMax > 0 {
		return c.MMax
	}
	return defaultMMax
}

func (c Config) kMax() int {
	if c.KMax > 0 {
		return c.KMax
	}
	return defaultKMax
}

func (c Config) rerrTol() float64 {
	if c.RerrTol > 0 {
		return c.RerrTol
	}
	return defaultRerrTol
}

func (c Config) logger() Logger {
	if c.Log == nil {
		return nopLogger{}
	}
	return c.Log
}

// Stats reports cumulative timing and conditioning information for a
// Handle, for diagnostics and capacity planning.
type Stats struct {
	// InitDuration is how long the last Init took, in nanoseconds.
	InitDuration int64
	// SampleCount is the number of realizations Sample has produced.
	SampleCount int64
	// SampleDuration is the cumulative nanoseconds spent in Sample.
	SampleDuration int64
	// MaxRerr is the largest Cholesky relative residual observed
	// while Init built the stage-0 factor and the stage tables.
	MaxRerr float64
	// Stages is the number of subdivision stages (m from the grid
	// decomposition).
	Stages int
	// K1, K2, K3 are the stage-0 cell counts along each axis.
	K1, K2, K3 int
}
