package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vsonnier/hppc/config"
	"github.com/vsonnier/hppc/intset"
	"github.com/vsonnier/hppc/internal/xlog"
)

func newBenchSetCmd(loadProfile func() (config.Profile, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "set",
		Short: "Benchmark intset.Set insert/contains throughput across the profile grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := loadProfile()
			if err != nil {
				return err
			}
			xlog.Infof("bench set: %d distributions x %d sizes x %d steps", len(profile.Distributions), len(profile.Sizes), len(profile.Steps))
			rng := rand.New(rand.NewSource(1))
			for _, dist := range profile.Distributions {
				for _, size := range profile.Sizes {
					for _, step := range profile.Steps {
						input := generate(dist, size, step, rng)
						start := time.Now()
						s, err := intset.New[int](size, profile.LoadFactor)
						if err != nil {
							return err
						}
						for _, v := range input {
							s.Add(v)
						}
						hits := 0
						for _, v := range input {
							if s.Contains(v) {
								hits++
							}
						}
						elapsed := time.Since(start)
						fmt.Fprintf(cmd.OutOrStdout(), "set dist=%s size=%d step=%d len=%d hits=%d elapsed=%s\n",
							dist, size, step, s.Len(), hits, elapsed)
					}
				}
			}
			return nil
		},
	}
}
