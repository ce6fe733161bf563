// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dmrgwatch/observer"
	"github.com/katalvlaran/dmrgwatch/svd"
	"github.com/katalvlaran/dmrgwatch/sweep"
)

type replayFlags struct {
	config string
	goal   float64
	quiet  bool
	plot   string
	cutoff float64
	maxDim int
}

func newReplayCmd() *cobra.Command {
	var f replayFlags
	cmd := &cobra.Command{
		Use:   "replay <trace.yaml>",
		Short: "Replay a recorded sweep trace",
		Long: `Replays every step of a YAML sweep trace through the convergence
observer and reports whether the run converged.

Observer settings come from --config (YAML with energy_err_goal,
orth_weight and print_eigs); --goal and --quiet override it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, args[0], f)
		},
	}
	cmd.Flags().StringVar(&f.config, "config", "", "observer config file (YAML)")
	cmd.Flags().Float64Var(&f.goal, "goal", observer.DefaultEnergyErrGoal, "energy error goal; non-positive disables")
	cmd.Flags().BoolVar(&f.quiet, "quiet", false, "do not print the per-sweep spectrum report")
	cmd.Flags().StringVar(&f.plot, "plot", "", "write an energy-per-sweep plot to this file (.png, .svg, .pdf)")
	cmd.Flags().Float64Var(&f.cutoff, "cutoff", svd.DefaultCutoff, "truncation cutoff")
	cmd.Flags().IntVar(&f.maxDim, "maxdim", svd.DefaultMaxDim, "maximum retained dimension")

	return cmd
}

func runReplay(cmd *cobra.Command, tracePath string, f replayFlags) error {
	cfg := observer.DefaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = observer.ReadConfig(f.config); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("goal") {
		cfg.EnergyErrGoal = f.goal
	}
	if f.quiet {
		cfg.PrintEigs = false
	}
	if f.cutoff < 0 || math.IsNaN(f.cutoff) || math.IsInf(f.cutoff, 0) {
		return fmt.Errorf("--cutoff must be finite and non-negative, got %g", f.cutoff)
	}
	if f.maxDim < 1 {
		return fmt.Errorf("--maxdim must be >= 1, got %d", f.maxDim)
	}

	tr, err := sweep.LoadTrace(tracePath)
	if err != nil {
		return err
	}
	w, err := svd.NewWorker(tr.Sites, svd.WithCutoff(f.cutoff), svd.WithMaxDim(f.maxDim))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	obs := observer.New(append(cfg.Options(), observer.WithOutput(out))...)
	res, err := sweep.Replay(tr, obs, w, nil)
	if err != nil {
		return err
	}

	if res.Converged {
		fmt.Fprintf(out, "converged after %d sweeps, E = %f\n", res.Sweeps, res.Energy)
	} else {
		fmt.Fprintf(out, "not converged after %d sweeps, E = %f\n", res.Sweeps, res.Energy)
	}

	if f.plot != "" {
		if err := sweep.PlotEnergies(res.Energies, f.plot); err != nil {
			return err
		}
		fmt.Fprintf(out, "energy plot written to %s\n", f.plot)
	}

	return nil
}
