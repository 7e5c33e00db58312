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

// cmd/shrinkdemo runs one of the two scenarios from spec.md §8 end to
// end — search for a counterexample, then shrink it — and prints the
// failing run alongside the minimized one so the effect of shrinking is
// visible on the command line.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/cheggaaa/pb/v3"
	"github.com/zintix-labs/fuzzlab/fuzz"
	"github.com/zintix-labs/fuzzlab/internal/obslog"
	"github.com/zintix-labs/fuzzlab/runner"
)

var cfg = new(config)

type config struct {
	scenario  string
	examples  int
	seed      int64
	showPB    bool
	maxShrink int
}

func bindVar() {
	flag.StringVar(&cfg.scenario, "scenario", "negative-int", "negative-int or long-list")
	flag.IntVar(&cfg.examples, "examples", 5000, "examples to search before giving up")
	flag.Int64Var(&cfg.seed, "seed", 0, "starting seed")
	flag.BoolVar(&cfg.showPB, "progress", true, "show a progress bar while searching")
	flag.IntVar(&cfg.maxShrink, "max-shrink", 0, "cap on shrink rounds, 0 means unlimited")
	flag.Parse()
}

func main() {
	bindVar()
	logger := obslog.New(obslog.ModeDev)

	bar := pb.StartNew(cfg.examples)
	if !cfg.showPB {
		bar.SetWriter(io.Discard)
	}

	switch cfg.scenario {
	case "negative-int":
		runScenario(logger, bar, fuzz.Int(), func(n int) bool { return n >= 0 })
	case "long-list":
		runScenario(logger, bar, fuzz.List(fuzz.Int()), func(xs []int) bool { return len(xs) <= 3 })
	default:
		logger.Error("shrinkdemo: unknown scenario", "scenario", cfg.scenario)
		return
	}
	bar.Finish()
}

func runScenario[A any](logger *slog.Logger, bar *pb.ProgressBar, f fuzz.Fuzzer[A], pred func(A) bool) {
	result := runner.Run(logger, cfg.seed, cfg.examples, cfg.maxShrink, f, pred)
	bar.SetCurrent(int64(result.ExamplesRun))
	if !result.Failed {
		fmt.Println("no counterexample found within the example budget")
		return
	}
	fmt.Printf("counterexample: %+v\n", result.Counterexample)
	fmt.Printf("failing run:    %v\n", result.FailingRun)
	fmt.Printf("minimal run:    %v\n", result.MinimalRun)
	fmt.Println(result.ReplayInstruction())
	logger.Info("shrinkdemo: done", "result", fmt.Sprintf("%+v", result.Counterexample))
}
