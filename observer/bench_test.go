// SPDX-License-Identifier: MIT

package observer_test

import (
	"io"
	"testing"

	"github.com/katalvlaran/dmrgwatch/observer"
	"github.com/katalvlaran/dmrgwatch/svd"
)

// BenchmarkMeasure_Report measures one full report on a 100-site chain.
func BenchmarkMeasure_Report(b *testing.B) {
	w, err := svd.NewWorker(100)
	if err != nil {
		b.Fatalf("NewWorker failed: %v", err)
	}
	center := make([]float64, 64)
	for i := range center {
		center[i] = 1.0 / float64(i+2)
	}
	_ = w.Record(50, center, 1e-10)
	o := observer.New(observer.WithOutput(io.Discard))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		o.Measure(2, 2, 1, w, -42.0, nil)
	}
}

// BenchmarkCheckDone measures the convergence check alone.
func BenchmarkCheckDone(b *testing.B) {
	o := observer.New(observer.WithEnergyErrGoal(1e-12), observer.WithOutput(io.Discard))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		o.CheckDone(i%8+1, nil, float64(i), nil)
	}
}
