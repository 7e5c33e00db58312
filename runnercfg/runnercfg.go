// Copyright 2025 Zintix Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package runnercfg loads the YAML configuration for the harness-facing
// runner package. None of this is part of the core fuzzer/shrinker
// algebra — Generate, Examples, and Shrink always take explicit Go
// values, never a config file. This is ambient tooling around them.
package runnercfg

import (
	"fmt"

	"github.com/zintix-labs/fuzzlab/errs"
	"gopkg.in/yaml.v3"
)

// defaultRunMax mirrors choice.RunMax; duplicated here (rather than
// imported) so this package has no dependency on the core run loop, only
// on the plain integer the core exposes as a constant elsewhere.
const defaultRunMax = 16384

// RunConfig configures a single harness run: how many examples to pull,
// the seed to start from, and the shrink-round cap (MaxShrink). RunMax
// and ShrinkPasses are parsed and validated (ShrinkPasses must keep the
// order spec.md §4.9 gives), but no caller reads them: a Live PRNG always
// uses choice.RunMax, and the shrinker always runs all six passes.
type RunConfig struct {
	Seed         int64    `yaml:"seed"          json:"seed"`
	Examples     int      `yaml:"examples"      json:"examples"`
	RunMax       int      `yaml:"run_max"       json:"run_max"`
	MaxShrink    int      `yaml:"max_shrink"    json:"max_shrink"`
	ShrinkPasses []string `yaml:"shrink_passes" json:"shrink_passes"`
}

// allPasses is the full fixed pass list in spec order; ShrinkPasses may
// only be a subset of this, in this relative order.
var allPasses = []string{
	"delete-slices",
	"zero-slices",
	"bulk-subtract",
	"single-element-minimize",
	"swap-adjacent",
	"redistribute",
}

// Default returns the out-of-the-box RunConfig: seed 0, 100 examples,
// RUN_MAX as specified, unlimited shrink steps, all six passes enabled.
func Default() RunConfig {
	return RunConfig{
		Seed:         0,
		Examples:     100,
		RunMax:       defaultRunMax,
		MaxShrink:    0,
		ShrinkPasses: append([]string(nil), allPasses...),
	}
}

// Load parses YAML bytes into a RunConfig, filling unset fields from
// Default() and validating the result.
func Load(data []byte) (RunConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, errs.Wrap(errs.InvalidFuzzer, err, "runnercfg: failed to unmarshal yaml")
	}
	if err := cfg.validate(); err != nil {
		return RunConfig{}, err
	}
	return cfg, nil
}

func (c RunConfig) validate() error {
	if c.Examples < 0 {
		return errs.New(errs.InvalidFuzzer, "runnercfg: examples must be >= 0, got %d", c.Examples)
	}
	if c.RunMax <= 0 {
		return errs.New(errs.InvalidFuzzer, "runnercfg: run_max must be > 0, got %d", c.RunMax)
	}
	if c.MaxShrink < 0 {
		return errs.New(errs.InvalidFuzzer, "runnercfg: max_shrink must be >= 0, got %d", c.MaxShrink)
	}
	seen := map[string]bool{}
	last := -1
	for _, p := range c.ShrinkPasses {
		if !isKnownPass(p) {
			return errs.New(errs.InvalidFuzzer, "runnercfg: unknown shrink pass %q", p)
		}
		if seen[p] {
			return errs.New(errs.InvalidFuzzer, "runnercfg: duplicate shrink pass %q", p)
		}
		seen[p] = true
		idx := 0
		for allPasses[idx] != p {
			idx++
		}
		if idx < last {
			return errs.New(errs.InvalidFuzzer, "runnercfg: shrink pass %q is out of order", p)
		}
		last = idx
	}
	return nil
}

func isKnownPass(name string) bool {
	for _, p := range allPasses {
		if p == name {
			return true
		}
	}
	return false
}

func (c RunConfig) String() string {
	return fmt.Sprintf("RunConfig{seed=%d examples=%d run_max=%d max_shrink=%d passes=%v}",
		c.Seed, c.Examples, c.RunMax, c.MaxShrink, c.ShrinkPasses)
}
