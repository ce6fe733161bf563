// SPDX-License-Identifier: MIT

package observer

import (
	"io"
	"os"
)

// Options configures a DMRGObserver at construction time. Every field can
// also be changed later through the observer's accessors.
//
//   - EnergyErrGoal: stop once |ΔE| between even sweeps drops below it;
//     non-positive disables the criterion.
//   - OrthWeight:    orthogonality penalty read by multi-state drivers.
//   - PrintEigs:     emit the per-sweep spectrum report.
//   - Out:           destination of all printed text.
type Options struct {
	EnergyErrGoal float64
	OrthWeight    float64
	PrintEigs     bool
	Out           io.Writer
}

// Option represents a functional option for configuring a DMRGObserver.
type Option func(*Options)

// DefaultOptions returns the documented defaults, writing to os.Stdout.
func DefaultOptions() Options {
	return Options{
		EnergyErrGoal: DefaultEnergyErrGoal,
		OrthWeight:    DefaultOrthWeight,
		PrintEigs:     DefaultPrintEigs,
		Out:           os.Stdout,
	}
}

// WithEnergyErrGoal sets the convergence tolerance. No validation.
func WithEnergyErrGoal(goal float64) Option {
	return func(o *Options) {
		o.EnergyErrGoal = goal
	}
}

// WithOrthWeight sets the orthogonality penalty weight. No validation.
func WithOrthWeight(weight float64) Option {
	return func(o *Options) {
		o.OrthWeight = weight
	}
}

// WithPrintEigs toggles the spectrum report.
func WithPrintEigs(on bool) Option {
	return func(o *Options) {
		o.PrintEigs = on
	}
}

// WithOutput redirects printed text. Panics on a nil writer.
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic("observer: WithOutput: writer must not be nil")
	}

	return func(o *Options) {
		o.Out = w
	}
}
