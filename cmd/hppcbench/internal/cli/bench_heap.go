package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vsonnier/hppc/config"
	"github.com/vsonnier/hppc/heap"
	"github.com/vsonnier/hppc/internal/xlog"
)

func newBenchHeapCmd(loadProfile func() (config.Profile, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "heap",
		Short: "Benchmark heap.Heap insert/popTop throughput across the profile grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := loadProfile()
			if err != nil {
				return err
			}
			xlog.Infof("bench heap: %d distributions x %d sizes x %d steps", len(profile.Distributions), len(profile.Sizes), len(profile.Steps))
			rng := rand.New(rand.NewSource(1))
			for _, dist := range profile.Distributions {
				for _, size := range profile.Sizes {
					for _, step := range profile.Steps {
						input := generate(dist, size, step, rng)
						start := time.Now()
						h, err := heap.NewOrdered[int](nil, size)
						if err != nil {
							return err
						}
						for _, v := range input {
							h.Insert(v)
						}
						popped := 0
						for h.Len() > 0 {
							h.PopTop()
							popped++
						}
						elapsed := time.Since(start)
						fmt.Fprintf(cmd.OutOrStdout(), "heap dist=%s size=%d step=%d popped=%d elapsed=%s\n",
							dist, size, step, popped, elapsed)
					}
				}
			}
			return nil
		},
	}
}
