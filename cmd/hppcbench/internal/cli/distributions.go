package cli

import (
	"math/rand"

	"github.com/vsonnier/hppc/config"
)

// generate produces a slice of length n following dist, the input
// shapes named in spec.md §8's sort-certification scenario (ordered,
// sawtooth, random, stagger, plateau, shuffle), parameterized by step
// m the way the spec's grid does.
func generate(dist config.Distribution, n, step int, rng *rand.Rand) []int {
	out := make([]int, n)
	switch dist {
	case config.DistributionOrdered:
		for i := range out {
			out[i] = i
		}
	case config.DistributionSawtooth:
		for i := range out {
			out[i] = i % (step + 1)
		}
	case config.DistributionRandom:
		for i := range out {
			out[i] = rng.Intn(n)
		}
	case config.DistributionStagger:
		for i := range out {
			out[i] = (i*step + i) % n
		}
	case config.DistributionPlateau:
		for i := range out {
			if i < step {
				out[i] = i
			} else {
				out[i] = step
			}
		}
	case config.DistributionShuffle:
		for i := range out {
			if rng.Intn(2) == 0 {
				out[i] = i
			} else {
				out[i] = rng.Intn(step + 1)
			}
		}
	default:
		for i := range out {
			out[i] = i
		}
	}
	return out
}
