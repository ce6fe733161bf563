// SPDX-License-Identifier: MIT

// Package observer monitors a DMRG run: after every local optimization
// step it may print statistics of the retained spectrum, and once per
// sweep it decides whether the ground-state energy has settled.
//
// Data flow:
//
//	driver ──Measure(sw, half, b, summary, E)──▶ observer   (every step)
//	driver ──CheckDone(sw, summary, E)─────────▶ observer   (every sweep)
//	driver ◀──────────────── true ───────────── stop sweeping
//
// Reporting:
//
//	Measure prints once per sweep, at bond 1 on the second half-sweep,
//	i.e. when the sweep has just returned to the left edge:
//
//	    Largest m during sweep 4 was 32
//	    Largest truncation error: 1.2e-09
//	    Eigs at center bond: 0.73, 0.21, 0.05, 3.1E-03
//	    Energy after sweep 4 is -10.502318
//
// Convergence:
//
//	CheckDone compares the energy with the one seen on the previous call,
//	on even sweeps only, and stops once |ΔE| < EnergyErrGoal. A sweep
//	index of 1 resets the comparison so an observer can be reused across
//	runs. The comparison state is mutated on every call that does not
//	converge, so CheckDone must be called exactly once per sweep, in
//	increasing sweep order.
//
// Customization:
//
//	Observer is an interface; DMRGObserver is the default policy and
//	Recorder wraps any Observer to keep the energy history.
//
// None of the types here are safe for concurrent use.
package observer
