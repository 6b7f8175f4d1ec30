package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vsonnier/hppc/hash"
)

func newBenchMixCmd() *cobra.Command {
	var iterations int

	cmd := &cobra.Command{
		Use:   "mix",
		Short: "Benchmark the 32-bit and 64-bit avalanche mixers",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			var acc32 uint32
			for i := 0; i < iterations; i++ {
				acc32 += hash.Mix32(uint32(i))
			}
			elapsed32 := time.Since(start)

			start = time.Now()
			var acc64 uint64
			for i := 0; i < iterations; i++ {
				acc64 += hash.Mix64(uint64(i))
			}
			elapsed64 := time.Since(start)

			fmt.Fprintf(cmd.OutOrStdout(), "mix32 iterations=%d acc=%d elapsed=%s\n", iterations, acc32, elapsed32)
			fmt.Fprintf(cmd.OutOrStdout(), "mix64 iterations=%d acc=%d elapsed=%s\n", iterations, acc64, elapsed64)
			return nil
		},
	}
	cmd.Flags().IntVar(&iterations, "iterations", 1_000_000, "number of mix calls to run")
	return cmd
}
