// SPDX-License-Identifier: MIT

package svd

import (
	"fmt"
	"math"
	"sort"
)

// Worker truncates bond spectra and remembers the retained weights.
// It implements Summary.
//
// A Worker is owned by a single sweep driver and is not safe for
// concurrent use.
type Worker struct {
	sites       int
	opts        Options
	kept        [][]float64 // kept[b] for bond b; index 0 unused
	maxRank     int
	maxTruncErr float64
}

var _ Summary = (*Worker)(nil)

// NewWorker creates a Worker for a lattice of the given number of sites.
// Returns ErrBadSites if sites < 2.
func NewWorker(sites int, opts ...Option) (*Worker, error) {
	if sites < 2 {
		return nil, fmt.Errorf("NewWorker: sites=%d: %w", sites, ErrBadSites)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Worker{
		sites: sites,
		opts:  o,
		kept:  make([][]float64, sites),
	}, nil
}

// Sites returns the lattice size.
func (w *Worker) Sites() int { return w.sites }

// MaxRank returns the largest retained dimension since the last ResetStats.
func (w *Worker) MaxRank() int { return w.maxRank }

// MaxTruncErr returns the largest truncation error since the last ResetStats.
func (w *Worker) MaxTruncErr() float64 { return w.maxTruncErr }

// Options returns the truncation options in effect.
func (w *Worker) Options() Options { return w.opts }

// KeptEigs returns a copy of the weights retained at bond, largest first.
// Returns nil for an out-of-range or not yet truncated bond.
func (w *Worker) KeptEigs(bond int) []float64 {
	if bond < 1 || bond >= w.sites || w.kept[bond] == nil {
		return nil
	}
	out := make([]float64, len(w.kept[bond]))
	copy(out, w.kept[bond])

	return out
}

// ResetStats clears the running MaxRank and MaxTruncErr.
// Spectra already recorded per bond are kept.
func (w *Worker) ResetStats() {
	w.maxRank = 0
	w.maxTruncErr = 0
}

// Truncate sorts weights in descending order, drops the smallest ones
// according to the Worker's Options and records the result for bond.
// It returns the kept weights and the truncation error, the discarded
// fraction of the total weight.
//
// Round-off negatives no smaller than -DefaultEpsilon are treated as 0.
// The input slice is not modified.
//
// Errors: ErrBondOutOfRange, ErrEmptySpectrum, ErrNaN, ErrNegativeWeight.
func (w *Worker) Truncate(bond int, weights []float64) ([]float64, float64, error) {
	if err := w.checkBond(bond); err != nil {
		return nil, 0, err
	}
	if len(weights) == 0 {
		return nil, 0, ErrEmptySpectrum
	}

	ws := make([]float64, len(weights))
	for i, v := range weights {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			return nil, 0, fmt.Errorf("Truncate: weight[%d]=%v: %w", i, v, ErrNaN)
		case v < -DefaultEpsilon:
			return nil, 0, fmt.Errorf("Truncate: weight[%d]=%g: %w", i, v, ErrNegativeWeight)
		case v < 0:
			v = 0
		}
		ws[i] = v
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(ws)))

	m := len(ws)
	if m > w.opts.MaxDim {
		m = w.opts.MaxDim
	}

	// accumulate smallest first
	var total, discarded float64
	for i := len(ws) - 1; i >= 0; i-- {
		total += ws[i]
		if i >= m {
			discarded += ws[i]
		}
	}

	var truncErr float64
	if total == 0 {
		if m > w.opts.MinDim {
			m = w.opts.MinDim
		}
	} else {
		for m > w.opts.MinDim {
			next := discarded + ws[m-1]
			if next/total > w.opts.Cutoff {
				break
			}
			discarded = next
			m--
		}
		truncErr = discarded / total
	}

	kept := ws[:m:m]
	w.store(bond, kept, truncErr)

	return w.KeptEigs(bond), truncErr, nil
}

// Record stores a spectrum truncated elsewhere. kept is copied as given;
// callers supply it largest first.
func (w *Worker) Record(bond int, kept []float64, truncErr float64) error {
	if err := w.checkBond(bond); err != nil {
		return err
	}
	cp := make([]float64, len(kept))
	copy(cp, kept)
	w.store(bond, cp, truncErr)

	return nil
}

func (w *Worker) store(bond int, kept []float64, truncErr float64) {
	w.kept[bond] = kept
	if len(kept) > w.maxRank {
		w.maxRank = len(kept)
	}
	if truncErr > w.maxTruncErr {
		w.maxTruncErr = truncErr
	}
}

func (w *Worker) checkBond(bond int) error {
	if bond < 1 || bond >= w.sites {
		return fmt.Errorf("bond=%d sites=%d: %w", bond, w.sites, ErrBondOutOfRange)
	}

	return nil
}
