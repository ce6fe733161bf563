// SPDX-License-Identifier: MIT

// Package sweep replays a recorded DMRG sweep through an observer.
//
// A Trace lists every local step of a run in the order the driver
// performed it: the sweep index, the half-sweep pass, the bond, the
// untruncated density-matrix weights at that bond and the energy after
// the step. Replay truncates each step with an svd.Worker, calls
// Observer.Measure, and calls Observer.CheckDone after the last step of
// each sweep, stopping early on convergence.
//
// Trace files are YAML:
//
//	sites: 4
//	steps:
//	  - {sweep: 1, half: 1, bond: 1, weights: [0.9, 0.1], energy: -1.2}
//	  - {sweep: 1, half: 1, bond: 2, weights: [0.8, 0.2], energy: -1.4}
//	  ...
//
// PlotEnergies renders the per-sweep energies of a replay.
package sweep
