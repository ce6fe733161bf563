// SPDX-License-Identifier: MIT

package svd

import "math"

// Options configures truncation.
//
//   - Cutoff: largest discarded weight fraction (sum of dropped / total).
//   - MaxDim: hard cap on the number of retained weights.
//   - MinDim: the cutoff never leaves fewer than MinDim weights.
type Options struct {
	Cutoff float64
	MaxDim int
	MinDim int
}

// Option represents a functional option for configuring a Worker.
type Option func(*Options)

// DefaultOptions returns Options with DefaultCutoff, DefaultMaxDim and DefaultMinDim.
func DefaultOptions() Options {
	return Options{
		Cutoff: DefaultCutoff,
		MaxDim: DefaultMaxDim,
		MinDim: DefaultMinDim,
	}
}

// WithCutoff sets the truncation cutoff. Panics on a negative or non-finite value.
func WithCutoff(cutoff float64) Option {
	if cutoff < 0 || math.IsNaN(cutoff) || math.IsInf(cutoff, 0) {
		panic("svd: WithCutoff: cutoff must be finite, non-negative")
	}

	return func(o *Options) {
		o.Cutoff = cutoff
	}
}

// WithMaxDim caps the retained dimension. Panics if maxDim < 1.
func WithMaxDim(maxDim int) Option {
	if maxDim < 1 {
		panic("svd: WithMaxDim: maxDim must be >= 1")
	}

	return func(o *Options) {
		o.MaxDim = maxDim
	}
}

// WithMinDim sets the smallest dimension the cutoff may leave. Panics if minDim < 1.
func WithMinDim(minDim int) Option {
	if minDim < 1 {
		panic("svd: WithMinDim: minDim must be >= 1")
	}

	return func(o *Options) {
		o.MinDim = minDim
	}
}
