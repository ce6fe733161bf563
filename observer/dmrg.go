// SPDX-License-Identifier: MIT

package observer

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/dmrgwatch/svd"
)

// DMRGObserver is the default Observer: it prints the center-bond
// spectrum once per sweep and stops on energy convergence.
//
// The previous energy used by CheckDone lives in the instance. It is
// reset to ResetEnergy whenever CheckDone sees sweep 1, or explicitly by
// Reset.
type DMRGObserver struct {
	energyErrGoal float64
	orthWeight    float64
	printEigs     bool
	out           io.Writer

	lastEnergy float64
}

var _ Observer = (*DMRGObserver)(nil)

// New returns a DMRGObserver configured by DefaultOptions and opts.
func New(opts ...Option) *DMRGObserver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &DMRGObserver{
		energyErrGoal: o.EnergyErrGoal,
		orthWeight:    o.OrthWeight,
		printEigs:     o.PrintEigs,
		out:           o.Out,
		lastEnergy:    ResetEnergy,
	}
}

// EnergyErrGoal returns the convergence tolerance.
func (o *DMRGObserver) EnergyErrGoal() float64 { return o.energyErrGoal }

// SetEnergyErrGoal sets the convergence tolerance; non-positive disables it.
func (o *DMRGObserver) SetEnergyErrGoal(v float64) { o.energyErrGoal = v }

// OrthWeight returns the orthogonality penalty weight.
func (o *DMRGObserver) OrthWeight() float64 { return o.orthWeight }

// SetOrthWeight sets the orthogonality penalty weight.
func (o *DMRGObserver) SetOrthWeight(v float64) { o.orthWeight = v }

// PrintEigs reports whether the spectrum report is enabled.
func (o *DMRGObserver) PrintEigs() bool { return o.printEigs }

// SetPrintEigs toggles the spectrum report.
func (o *DMRGObserver) SetPrintEigs(v bool) { o.printEigs = v }

// LastEnergy returns the energy CheckDone will compare against next.
func (o *DMRGObserver) LastEnergy() float64 { return o.lastEnergy }

// Reset restores the previous energy to ResetEnergy, as sweep 1 does.
func (o *DMRGObserver) Reset() { o.lastEnergy = ResetEnergy }

// Measure prints the sweep report when PrintEigs is on and the driver is
// at bond 1 of the second half-sweep. Otherwise it does nothing.
// Measure never changes the observer's state.
func (o *DMRGObserver) Measure(sw, half, b int, s svd.Summary, energy float64, _ Args) {
	if !o.printEigs || b != 1 || half != 2 {
		return
	}

	center := s.KeptEigs(s.Sites() / 2)

	// output errors are ignored; the report is best effort
	_, _ = fmt.Fprintf(o.out, "\n    Largest m during sweep %d was %d\n", sw, s.MaxRank())
	_, _ = fmt.Fprintf(o.out, "    Largest truncation error: %g\n", s.MaxTruncErr())
	_, _ = fmt.Fprintf(o.out, "    Eigs at center bond: %s\n", formatEigs(center, MaxPrintedEigs))
	_, _ = fmt.Fprintf(o.out, "    Energy after sweep %d is %f\n", sw, energy)
}

// CheckDone reports whether the run has converged.
//
// Sweep 1 resets the previous energy to ResetEnergy. On even sweeps with
// a positive EnergyErrGoal, it returns true once |energy - previous| is
// below the goal, leaving the previous energy untouched. In every other
// case the previous energy becomes energy and it returns false.
func (o *DMRGObserver) CheckDone(sw int, _ svd.Summary, energy float64, _ Args) bool {
	if sw == 1 {
		o.lastEnergy = ResetEnergy
	}
	if o.energyErrGoal > 0 && sw%2 == 0 {
		dE := math.Abs(energy - o.lastEnergy)
		if dE < o.energyErrGoal {
			_, _ = fmt.Fprintf(o.out, "    Energy error goal met (dE = %E); returning after %d sweeps.\n", dE, sw)

			return true
		}
	}
	o.lastEnergy = energy

	return false
}
