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

// Package fuzzlab is the assembler / runtime entry point over the core
// engine split across choice, prng, genresult, fuzz, and shrink: it
// bundles a RunConfig and a logger into a Lab, then exposes the entry
// points a harness actually calls (Generate, Examples, Shrink, and the
// higher-level RunProperty) without requiring callers to wire the
// pieces together themselves.
//
// Lab itself carries no required external resources (no config-file
// source, no registry of builders) — the only "assembly" this engine
// needs is a RunConfig plus an optional logger, so New never fails.
package fuzzlab

import (
	"log/slog"

	"github.com/zintix-labs/fuzzlab/choice"
	"github.com/zintix-labs/fuzzlab/fuzz"
	"github.com/zintix-labs/fuzzlab/genresult"
	"github.com/zintix-labs/fuzzlab/prng"
	"github.com/zintix-labs/fuzzlab/runner"
	"github.com/zintix-labs/fuzzlab/runnercfg"
	"github.com/zintix-labs/fuzzlab/shrink"
)

// Lab bundles a RunConfig with a logger, the one pair of ambient
// resources the runner layer actually consumes.
type Lab struct {
	Config runnercfg.RunConfig
	Log    *slog.Logger
}

// New assembles a Lab from a RunConfig and an optional logger (nil
// disables logging entirely).
func New(cfg runnercfg.RunConfig, log *slog.Logger) *Lab {
	return &Lab{Config: cfg, Log: log}
}

// NewDefault assembles a Lab from runnercfg.Default() and a silent
// logger, the quickest path to a usable Lab for ad hoc use.
func NewDefault() *Lab {
	return New(runnercfg.Default(), nil)
}

// RunProperty runs f against pred starting from the Lab's configured
// seed and example count, shrinking and reporting any failure the way
// package runner documents. Methods cannot carry their own type
// parameters in Go, so this stays a free function taking *Lab instead of
// a Lab method.
func RunProperty[A any](lab *Lab, f fuzz.Fuzzer[A], pred func(A) bool) runner.Result[A] {
	return runner.Run(lab.Log, lab.Config.Seed, lab.Config.Examples, lab.Config.MaxShrink, f, pred)
}

// Generate re-exports fuzz.Generate for callers that only need the core
// algebra without a Lab.
func Generate[A any](p prng.PRNG, f fuzz.Fuzzer[A]) genresult.Result[A] {
	return fuzz.Generate(p, f)
}

// Examples re-exports fuzz.Examples.
func Examples[A any](n int, f fuzz.Fuzzer[A]) ([]A, error) {
	return fuzz.Examples(n, f)
}

// Shrink re-exports shrink.Shrink.
func Shrink[A any](initial *choice.Sequence, f fuzz.Fuzzer[A], pred func(A) bool) (*choice.Sequence, A) {
	return shrink.Shrink(initial, f, pred)
}
