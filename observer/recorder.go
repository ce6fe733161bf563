// SPDX-License-Identifier: MIT

package observer

import "github.com/katalvlaran/dmrgwatch/svd"

// Checkpoint is one CheckDone call seen by a Recorder.
type Checkpoint struct {
	Sweep  int
	Energy float64
	Done   bool
}

// Recorder forwards every call to an inner Observer and keeps the energy
// seen at each CheckDone. The inner observer's decision is returned as is.
type Recorder struct {
	inner  Observer
	points []Checkpoint
}

var _ Observer = (*Recorder)(nil)

// NewRecorder wraps inner. Panics on a nil inner observer.
func NewRecorder(inner Observer) *Recorder {
	if inner == nil {
		panic("observer: NewRecorder: inner observer must not be nil")
	}

	return &Recorder{inner: inner}
}

// Measure forwards to the inner observer.
func (r *Recorder) Measure(sw, half, b int, s svd.Summary, energy float64, args Args) {
	r.inner.Measure(sw, half, b, s, energy, args)
}

// CheckDone forwards to the inner observer and records the outcome.
func (r *Recorder) CheckDone(sw int, s svd.Summary, energy float64, args Args) bool {
	done := r.inner.CheckDone(sw, s, energy, args)
	r.points = append(r.points, Checkpoint{Sweep: sw, Energy: energy, Done: done})

	return done
}

// Checkpoints returns a copy of the recorded history, oldest first.
func (r *Recorder) Checkpoints() []Checkpoint {
	out := make([]Checkpoint, len(r.points))
	copy(out, r.points)

	return out
}

// Inner returns the wrapped observer.
func (r *Recorder) Inner() Observer { return r.inner }
