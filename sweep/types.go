// SPDX-License-Identifier: MIT

package sweep

import "errors"

// Step is one local optimization recorded by a sweep driver.
type Step struct {
	Sweep   int       `yaml:"sweep"`
	Half    int       `yaml:"half"`
	Bond    int       `yaml:"bond"`
	Weights []float64 `yaml:"weights"`
	Energy  float64   `yaml:"energy"`
}

// Trace is a recorded run on a lattice of Sites sites.
type Trace struct {
	Sites int    `yaml:"sites"`
	Steps []Step `yaml:"steps"`
}

// SweepEnergy is the energy at the end of one sweep.
type SweepEnergy struct {
	Sweep  int
	Energy float64
}

// Result summarizes a Replay.
//
//   - Sweeps:    number of sweeps handed to CheckDone.
//   - Energy:    energy at the last checked sweep.
//   - Converged: whether CheckDone returned true.
//   - Energies:  end-of-sweep energies in order.
type Result struct {
	Sweeps    int
	Energy    float64
	Converged bool
	Energies  []SweepEnergy
}

// Sentinel errors.
var (
	// ErrNilTrace indicates a nil *Trace.
	ErrNilTrace = errors.New("sweep: trace is nil")

	// ErrNilObserver indicates a nil observer.
	ErrNilObserver = errors.New("sweep: observer is nil")

	// ErrNilWorker indicates a nil *svd.Worker.
	ErrNilWorker = errors.New("sweep: worker is nil")

	// ErrNoSteps indicates a trace without steps.
	ErrNoSteps = errors.New("sweep: trace has no steps")

	// ErrBadSweep indicates a sweep index below 1.
	ErrBadSweep = errors.New("sweep: sweep index must be >= 1")

	// ErrBadHalf indicates a half-sweep pass other than 1 or 2.
	ErrBadHalf = errors.New("sweep: half-sweep pass must be 1 or 2")

	// ErrSweepOrder indicates a sweep index smaller than the previous step's.
	ErrSweepOrder = errors.New("sweep: sweep indices must not decrease")

	// ErrSitesMismatch indicates a worker built for another lattice size.
	ErrSitesMismatch = errors.New("sweep: worker and trace disagree on lattice size")

	// ErrNoPoints indicates nothing to plot.
	ErrNoPoints = errors.New("sweep: no energies to plot")
)
