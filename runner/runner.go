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

// Package runner is the harness-side layer around the core fuzzer and
// shrinker: it is explicitly NOT the "outer test runner" spec.md §1
// excludes from the core, but a demo/reference caller showing how a real
// harness would drive Generate/Examples/Shrink — seed and replay
// reporting, run-log archival, and example formatting. The core packages
// (choice, prng, genresult, fuzz, shrink) never import this.
package runner

import (
	"fmt"
	"log/slog"

	"github.com/zintix-labs/fuzzlab/choice"
	"github.com/zintix-labs/fuzzlab/fuzz"
	"github.com/zintix-labs/fuzzlab/prng"
	"github.com/zintix-labs/fuzzlab/shrink"
)

// Result summarizes one Run: either the property held for every example,
// or a minimized counterexample plus the seed/choice trail needed to
// reproduce the original failure.
type Result[A any] struct {
	Seed           int64
	ExamplesRun    int
	Failed         bool
	Counterexample A
	FailingRun     *choice.Sequence
	MinimalRun     *choice.Sequence
}

// ReplayInstruction renders a one-line, ready-to-paste description of how
// to reproduce a failing run — analogous to rapidx's
// "-rapidx.seed=%d" flag hint, adapted to this engine's
// Live(seed)/Replay(sequence) model instead of a single numeric seed
// driving *rand.Rand directly.
func (r Result[A]) ReplayInstruction() string {
	if !r.Failed {
		return ""
	}
	return fmt.Sprintf("replay with prng.NewLive(%d), example #%d (minimal run: %s)",
		uint32(r.Seed)+uint32(r.ExamplesRun-1), r.ExamplesRun, r.MinimalRun)
}

// Run pulls examples one at a time from a Live PRNG seeded with seed,
// running pred against each. On the first example pred rejects, it
// shrinks the failing run (capped at maxShrinkRounds passes over
// shrink.ShrinkWithLimit's six strategies when maxShrinkRounds > 0, the
// way rapidx's Config.MaxShrink bounds its shrink loop) and returns the
// minimized counterexample. log may be nil, in which case Run stays
// silent.
func Run[A any](log *slog.Logger, seed int64, examples int, maxShrinkRounds int, f fuzz.Fuzzer[A], pred func(A) bool) Result[A] {
	if log != nil {
		log.Info("runner: starting run", "seed", seed, "examples", examples)
	}
	for i := 0; i < examples; i++ {
		live := prng.NewLive(uint32(seed) + uint32(i))
		r := fuzz.Generate(live, f)
		if r.IsRejected() {
			continue
		}
		if pred(r.Value()) {
			continue
		}

		failingRun := live.Recorded()
		minimalRun, minimalVal := shrink.ShrinkWithLimit(failingRun, f, func(v A) bool { return !pred(v) }, maxShrinkRounds)
		result := Result[A]{
			Seed:           seed,
			ExamplesRun:    i + 1,
			Failed:         true,
			Counterexample: minimalVal,
			FailingRun:     failingRun,
			MinimalRun:     minimalRun,
		}
		if log != nil {
			log.Warn("runner: property failed",
				"seed", seed, "example", i+1, "counterexample", fmt.Sprintf("%+v", minimalVal),
				"replay", result.ReplayInstruction())
		}
		return result
	}
	if log != nil {
		log.Info("runner: run completed with no failures", "seed", seed, "examples", examples)
	}
	return Result[A]{Seed: seed, ExamplesRun: examples, Failed: false}
}
