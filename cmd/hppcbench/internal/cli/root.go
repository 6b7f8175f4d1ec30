// Package cli wires the hppcbench cobra command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/vsonnier/hppc/config"
)

// NewRootCmd builds the hppcbench command tree: `bench set`, `bench
// heap`, and `bench mix` subcommands, plus a shared --profile flag
// that points config.Load at a custom (distribution × size × step)
// grid.
func NewRootCmd() *cobra.Command {
	var profilePath string

	root := &cobra.Command{
		Use:   "hppcbench",
		Short: "Drive the hash set and heap containers under synthetic load",
		Long: `hppcbench exercises the hashset/intset open-addressing sets and the
heap priority queue against synthetic input distributions and reports
throughput. It exists because this is otherwise a pure library with no
process-boundary surface to demonstrate its own performance claims.`,
	}
	root.PersistentFlags().StringVar(&profilePath, "profile", "", "path to a benchmark-profile YAML file (default: built-in profile)")

	loadProfile := func() (config.Profile, error) {
		if profilePath == "" {
			return config.DefaultProfile(), nil
		}
		return config.Load(profilePath)
	}

	bench := &cobra.Command{
		Use:   "bench",
		Short: "Run a benchmark subcommand",
	}
	bench.AddCommand(newBenchSetCmd(loadProfile))
	bench.AddCommand(newBenchHeapCmd(loadProfile))
	bench.AddCommand(newBenchMixCmd())

	root.AddCommand(bench)
	return root
}
