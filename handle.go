// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package las3

import (
	"os"
	"sync"
	"time"

	"github.com/gonum-community/las3/internal/covar"
	"github.com/gonum-community/las3/internal/linalg"
	"github.com/gonum-community/las3/internal/rng"
)

// Handle is an initialized LAS engine instance: the grid decomposition,
// the stage-0 Cholesky factor, and every subdivision stage's
// neighborhood BLUE tables, built once and reused across any number of
// Sample calls. A Handle is safe for concurrent use; Sample calls
// serialize on the underlying PRNG.
type Handle struct {
	cfg Config

	k1, k2, k3 int
	m          int
	t0         [3]float64 // stage-0 cell size, L_i/k_i

	c0 []float32 // packed lower-triangular stage-0 Cholesky factor

	tables []*stageTable // tables[s-1] applies going from stage s-1 to s

	mu  sync.Mutex
	rng *rng.Source

	log   Logger
	stats Stats
}

// Init decomposes cfg's grid and precomputes every table Sample needs.
// It is the only operation whose cost scales with the neighborhood
// factorizations rather than the field size, so a caller normally
// builds one Handle and calls Sample many times against it. On failure
// it returns no Handle and writes the error to cfg.Log as an "Error:"
// line.
func Init(cfg Config) (h *Handle, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			cfg.logger().Printf("Error: %v", err)
		}
	}()

	if cfg.Cov == nil {
		return nil, newErr("las3i", InvalidArgument)
	}
	if cfg.N1 <= 0 || cfg.N2 <= 0 || cfg.N3 <= 0 {
		return nil, newErr("las3i", InvalidArgument)
	}
	if cfg.L1 <= 0 || cfg.L2 <= 0 || cfg.L3 <= 0 {
		return nil, newErr("las3i", InvalidArgument)
	}

	k1, k2, k3, m, err := decompose(cfg.N1, cfg.N2, cfg.N3, cfg.mMax(), cfg.kMax())
	if err != nil {
		return nil, err
	}

	h = &Handle{
		cfg: cfg,
		k1:  k1, k2: k2, k3: k3, m: m,
		t0:  [3]float64{cfg.L1 / float64(k1), cfg.L2 / float64(k2), cfg.L3 / float64(k3)},
		log: cfg.logger(),
		rng: rng.New(),
	}

	if cfg.Seed != 0 {
		h.rng.Seed(cfg.Seed)
	} else {
		h.rng.Seed(clockSeed())
	}

	kk := k1 * k2 * k3
	r0 := make([]float64, linalg.PackedLen(kk))
	adapter := kernelAdapter{cfg.Cov}
	covar.FillStage0(adapter, r0, k1, k2, k3, h.t0[0], h.t0[1], h.t0[2])
	c0, rerr, err := linalg.Dchol2(kk, r0)
	if err != nil {
		return nil, wrapErr("las3i", NotPositiveDefinite, err)
	}
	h.noteRerr(rerr, "stage 0")
	h.c0 = linalg.Downcast(c0)

	h.tables = make([]*stageTable, m)
	deg := [3]bool{k1 == 1, k2 == 1, k3 == 1}
	for s := 1; s <= m; s++ {
		scale := 1.0 / float64(int(1)<<uint(s-1))
		t1 := h.t0[0] * scale
		t2 := h.t0[1] * scale
		t3 := h.t0[2] * scale
		stageDeg := deg
		if s > 1 {
			stageDeg = [3]bool{}
		}
		table, err := buildStageTable(cfg.Cov, t1, t2, t3, stageDeg)
		if err != nil {
			return nil, wrapErr("las3i", err2kind(err), err)
		}
		h.noteRerr(table.maxRerr, "stage table")
		h.tables[s-1] = table
	}

	h.stats.InitDuration = time.Since(start).Nanoseconds()
	h.stats.Stages = m
	h.stats.K1, h.stats.K2, h.stats.K3 = k1, k2, k3
	h.log.Printf("las3: init complete: k=(%d,%d,%d) m=%d duration=%s", k1, k2, k3, m, time.Since(start))
	return h, nil
}

func err2kind(err error) Kind {
	if IsKind(err, SingularMatrix) {
		return SingularMatrix
	}
	return NotPositiveDefinite
}

func (h *Handle) noteRerr(rerr float64, where string) {
	if rerr > h.stats.MaxRerr {
		h.stats.MaxRerr = rerr
	}
	if rerr > h.cfg.rerrTol() {
		h.log.Printf("Warning: las3: %s relative Cholesky residual %.3g exceeds tolerance %.3g",
			where, rerr, h.cfg.rerrTol())
	}
}

// Seed reseeds the realization stream and returns the seed actually
// used. Subsequent Sample calls are reproducible from this point: two
// Handles built from the same Config and reseeded with the same value
// produce bit-identical fields. A non-positive seed is replaced by one
// derived from the wall clock (see clockSeed), the same fallback Init
// itself uses for Config.Seed == 0.
func (h *Handle) Seed(seed int64) int64 {
	if seed <= 0 {
		seed = clockSeed()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rng.Seed(seed)
	return seed
}

// Stats returns a snapshot of this Handle's cumulative timing and
// conditioning statistics.
func (h *Handle) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stats
}

// Destroy releases a Handle's precomputed tables. A Handle is normal
// Go heap memory and needs no explicit teardown to avoid a leak;
// Destroy exists so callers translating a fixed-resource workflow from
// the reference engine's explicit init/destroy pairing have a place to
// put that symmetry, and so a Handle cannot be accidentally reused
// once a caller has decided it is done with it.
func (h *Handle) Destroy() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tables = nil
	h.c0 = nil
}

// clockSeed derives a seed from the wall clock folded with the process
// ID, so that a Config leaving Seed at zero still gets a distinct
// stream per run without requiring a caller to invent one. The result
// is reduced into [1, 2147483562], inside the range of the generator's
// congruential state.
func clockSeed() int64 {
	n := time.Now().UnixNano()
	p := int64(os.Getpid())
	return (n^(p*2654435761))%2147483562 + 1
}
