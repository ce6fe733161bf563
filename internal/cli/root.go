// SPDX-License-Identifier: MIT

// Package cli implements the dmrgwatch command line.
package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

// NewRootCmd builds the dmrgwatch command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dmrgwatch",
		Short: "Replay DMRG sweep traces through a convergence observer",
		Long: `dmrgwatch feeds a recorded DMRG run, step by step, through the
convergence observer: it prints the per-sweep spectrum report and stops
once the energy between even sweeps changes by less than the goal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Version = Version
	root.SetVersionTemplate("dmrgwatch version {{.Version}}\n")
	root.AddCommand(newReplayCmd())

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
