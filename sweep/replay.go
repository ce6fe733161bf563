// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"

	"github.com/katalvlaran/dmrgwatch/observer"
	"github.com/katalvlaran/dmrgwatch/svd"
)

// Replay drives obs through tr in recorded order.
//
// For every step the weights are truncated by w and obs.Measure is
// called. After the last step of a sweep obs.CheckDone is called once
// with that step's energy; replay stops as soon as it returns true.
// w's running statistics are cleared at the start of every sweep so
// MaxRank and MaxTruncErr describe the current sweep.
//
// args is passed through unchanged and may be nil.
func Replay(tr *Trace, obs observer.Observer, w *svd.Worker, args observer.Args) (Result, error) {
	switch {
	case obs == nil:
		return Result{}, ErrNilObserver
	case w == nil:
		return Result{}, ErrNilWorker
	}
	if err := tr.Validate(); err != nil {
		return Result{}, err
	}
	if w.Sites() != tr.Sites {
		return Result{}, fmt.Errorf("worker=%d trace=%d: %w", w.Sites(), tr.Sites, ErrSitesMismatch)
	}

	var res Result
	for i, st := range tr.Steps {
		if i == 0 || tr.Steps[i-1].Sweep != st.Sweep {
			w.ResetStats()
		}
		if _, _, err := w.Truncate(st.Bond, st.Weights); err != nil {
			return res, fmt.Errorf("sweep: step %d: %w", i, err)
		}
		obs.Measure(st.Sweep, st.Half, st.Bond, w, st.Energy, args)

		if i+1 < len(tr.Steps) && tr.Steps[i+1].Sweep == st.Sweep {
			continue
		}
		res.Sweeps++
		res.Energy = st.Energy
		res.Energies = append(res.Energies, SweepEnergy{Sweep: st.Sweep, Energy: st.Energy})
		if obs.CheckDone(st.Sweep, w, st.Energy, args) {
			res.Converged = true
			break
		}
	}

	return res, nil
}
