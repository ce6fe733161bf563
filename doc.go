// SPDX-License-Identifier: MIT

// Package dmrgwatch watches DMRG runs: it reports how the retained
// spectrum evolves sweep after sweep and tells the sweep driver when the
// ground-state energy has converged.
//
// What is in the box?
//
//	A small, dependency-light toolkit around one idea, the convergence
//	observer that a DMRG sweep driver calls after every local step:
//		• observer/  Observer interface, the default DMRGObserver
//		  (per-sweep spectrum report + even-sweep energy criterion),
//		  Recorder, and YAML config loading
//		• svd/       truncation bookkeeping, kept weights per bond,
//		  largest retained dimension and truncation error (Summary)
//		• sweep/     replay of recorded sweep traces through an
//		  observer, plus an energy-per-sweep plot
//		• cmd/dmrgwatch  command-line replay tool
//
// Sweep anatomy on a 6-site chain (bonds 1..5):
//
//	half 1:  1 → 2 → 3 → 4 → 5
//	half 2:  5 → 4 → 3 → 2 → 1   ◀ report fires here, at bond 1
//
// Quick start:
//
//	w, _ := svd.NewWorker(sites)
//	obs := observer.New(observer.WithEnergyErrGoal(1e-8))
//	for sw := 1; ; sw++ {
//		// ... optimize, w.Truncate(b, weights), obs.Measure(sw, half, b, w, E, nil) ...
//		if obs.CheckDone(sw, w, E, nil) {
//			break
//		}
//	}
package dmrgwatch
