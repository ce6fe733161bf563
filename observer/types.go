// SPDX-License-Identifier: MIT

package observer

import "github.com/katalvlaran/dmrgwatch/svd"

// Observer is called by a sweep driver.
//
//   - Measure is called after every local step with the sweep index sw,
//     the half-sweep pass half (1 or 2) and the bond index b.
//   - CheckDone is called once per sweep; the driver stops when it
//     returns true.
//
// args carries optional, driver-defined entries and may be nil.
type Observer interface {
	Measure(sw, half, b int, s svd.Summary, energy float64, args Args)
	CheckDone(sw int, s svd.Summary, energy float64, args Args) bool
}

// Defaults.
const (
	// DefaultEnergyErrGoal disables the energy criterion.
	DefaultEnergyErrGoal = -1.0

	// DefaultOrthWeight is the excited-state orthogonality penalty.
	DefaultOrthWeight = 1.0

	// DefaultPrintEigs enables the per-sweep spectrum report.
	DefaultPrintEigs = true

	// ResetEnergy is the previous energy assumed at sweep 1. It is far
	// from any physical energy so sweep 2 cannot converge spuriously.
	ResetEnergy = 1000.0

	// MaxPrintedEigs caps the number of center-bond weights printed.
	MaxPrintedEigs = 10
)
