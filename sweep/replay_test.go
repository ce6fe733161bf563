// SPDX-License-Identifier: MIT

package sweep_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/dmrgwatch/observer"
	"github.com/katalvlaran/dmrgwatch/svd"
	"github.com/katalvlaran/dmrgwatch/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainTrace builds a four-site trace: each sweep visits bonds 1,2,3 on the
// first pass and 3,2,1 on the second, ending with energies[sw-1].
func chainTrace(energies ...float64) *sweep.Trace {
	tr := &sweep.Trace{Sites: 4}
	for i, e := range energies {
		sw := i + 1
		for _, b := range []int{1, 2, 3} {
			tr.Steps = append(tr.Steps, sweep.Step{Sweep: sw, Half: 1, Bond: b, Weights: []float64{0.9, 0.1}, Energy: e})
		}
		for _, b := range []int{3, 2, 1} {
			weights := []float64{0.8, 0.15, 0.05}
			if sw > 1 {
				weights = []float64{0.8, 0.15, 0.05, 0.0}
			}
			tr.Steps = append(tr.Steps, sweep.Step{Sweep: sw, Half: 2, Bond: b, Weights: weights, Energy: e})
		}
	}

	return tr
}

// TestReplay_Converges stops at the first even sweep within the goal.
func TestReplay_Converges(t *testing.T) {
	var buf bytes.Buffer
	obs := observer.New(observer.WithEnergyErrGoal(1e-3), observer.WithOutput(&buf))
	rec := observer.NewRecorder(obs)
	w, err := svd.NewWorker(4)
	require.NoError(t, err)

	res, err := sweep.Replay(chainTrace(-1.0, -1.5, -1.6, -1.6005, -1.6006), rec, w, nil)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 4, res.Sweeps)
	assert.Equal(t, -1.6005, res.Energy)
	assert.Equal(t, []sweep.SweepEnergy{
		{Sweep: 1, Energy: -1.0}, {Sweep: 2, Energy: -1.5}, {Sweep: 3, Energy: -1.6}, {Sweep: 4, Energy: -1.6005},
	}, res.Energies)
	assert.Len(t, rec.Checkpoints(), 4)

	out := buf.String()
	assert.Equal(t, 4, bytes.Count(buf.Bytes(), []byte("Largest m during sweep")), "one report per sweep")
	assert.Contains(t, out, "Largest m during sweep 4 was 3")
	assert.Contains(t, out, "returning after 4 sweeps.")
	assert.Contains(t, out, "Eigs at center bond: 0.80, 0.15, 0.05")
	assert.Equal(t, []float64{0.8, 0.15, 0.05}, w.KeptEigs(2))
}

// TestReplay_NotConverged runs every sweep when the goal is disabled.
func TestReplay_NotConverged(t *testing.T) {
	obs := observer.New(observer.WithOutput(&bytes.Buffer{}), observer.WithPrintEigs(false))
	w, err := svd.NewWorker(4)
	require.NoError(t, err)

	res, err := sweep.Replay(chainTrace(-1, -1, -1), obs, w, observer.Args{"Quiet": true})
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 3, res.Sweeps)
}

// TestReplay_Errors covers argument validation and truncation failures.
func TestReplay_Errors(t *testing.T) {
	obs := observer.New(observer.WithOutput(&bytes.Buffer{}))
	w, err := svd.NewWorker(4)
	require.NoError(t, err)

	_, err = sweep.Replay(nil, obs, w, nil)
	assert.ErrorIs(t, err, sweep.ErrNilTrace)
	_, err = sweep.Replay(chainTrace(-1), nil, w, nil)
	assert.ErrorIs(t, err, sweep.ErrNilObserver)
	_, err = sweep.Replay(chainTrace(-1), obs, nil, nil)
	assert.ErrorIs(t, err, sweep.ErrNilWorker)

	w5, err := svd.NewWorker(5)
	require.NoError(t, err)
	_, err = sweep.Replay(chainTrace(-1), obs, w5, nil)
	assert.ErrorIs(t, err, sweep.ErrSitesMismatch)

	bad := chainTrace(-1)
	bad.Steps[2].Bond = 9
	_, err = sweep.Replay(bad, obs, w, nil)
	assert.ErrorIs(t, err, svd.ErrBondOutOfRange)
}
