// Command hppcbench drives the hash set, sentinel set, and heap
// implementations under synthetic load and reports throughput. It is
// the module's only process-boundary surface (spec.md §6: "CLI /
// environment / wire protocol: None; this is a library" — supplemented
// here because a complete repo of this shape ships a way to exercise
// its own performance claims, the way the teacher's Maps/benchmarks
// and Maps/comparisons packages did as in-repo test code rather than a
// standalone binary).
package main

import (
	"fmt"
	"os"

	"github.com/vsonnier/hppc/cmd/hppcbench/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
