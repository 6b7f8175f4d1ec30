// Package config decodes the benchmark-profile file cmd/hppcbench
// reads to drive synthetic load against the hash set and heap
// implementations. The profile format is the (distribution × size ×
// step) parameter grid spec.md §8's sort-certification scenario names
// directly, so a custom profile can reproduce or narrow that grid
// without a rebuild.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Distribution names one of the input shapes spec.md §8's sort
// certification scenario enumerates.
type Distribution string

const (
	DistributionOrdered  Distribution = "ordered"
	DistributionSawtooth Distribution = "sawtooth"
	DistributionRandom   Distribution = "random"
	DistributionStagger  Distribution = "stagger"
	DistributionPlateau  Distribution = "plateau"
	DistributionShuffle  Distribution = "shuffle"
)

// Profile is the decoded shape of a benchmark-profile YAML file.
type Profile struct {
	// Distributions to exercise; defaults to all six from spec.md §8 if empty.
	Distributions []Distribution `yaml:"distributions"`
	// Sizes is the list of input lengths to exercise.
	Sizes []int `yaml:"sizes"`
	// Steps is the list of stride parameters (the "step m" of §8).
	Steps []int `yaml:"steps"`
	// LoadFactor is the hash set load factor used by the set benchmarks.
	LoadFactor float64 `yaml:"loadFactor"`
}

// DefaultProfile mirrors spec.md §8's sort-certification grid at a
// tractable scale for an interactive `hppcbench` run: lengths stop at
// 1025. Larger lengths (up to 32768) run only from a profile file
// passed with --profile.
func DefaultProfile() Profile {
	return Profile{
		Distributions: []Distribution{
			DistributionOrdered, DistributionSawtooth, DistributionRandom,
			DistributionStagger, DistributionPlateau, DistributionShuffle,
		},
		Sizes:      []int{100, 1023, 1024, 1025},
		Steps:      []int{1, 2, 4, 8},
		LoadFactor: 0.75,
	}
}

// Load reads and decodes a Profile from the YAML file at path.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if len(p.Distributions) == 0 {
		p.Distributions = DefaultProfile().Distributions
	}
	if len(p.Sizes) == 0 {
		p.Sizes = DefaultProfile().Sizes
	}
	if len(p.Steps) == 0 {
		p.Steps = DefaultProfile().Steps
	}
	if p.LoadFactor <= 0 || p.LoadFactor > 1 {
		p.LoadFactor = DefaultProfile().LoadFactor
	}
	return p, nil
}
