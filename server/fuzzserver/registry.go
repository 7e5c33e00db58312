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

package fuzzserver

import (
	"log/slog"

	"github.com/zintix-labs/fuzzlab/errs"
	"github.com/zintix-labs/fuzzlab/fuzz"
	"github.com/zintix-labs/fuzzlab/runner"
)

// generateNamed samples n examples from one of the built-in fuzzers a
// request can ask for by name. It is the JSON-over-HTTP analogue of
// cmd/examples's switch on cfg.fuzzerName.
func generateNamed(name string, n int) ([]any, error) {
	switch name {
	case "int":
		return collect(fuzz.Examples(n, fuzz.Int()))
	case "float":
		return collect(fuzz.Examples(n, fuzz.Float()))
	case "string":
		return collect(fuzz.Examples(n, fuzz.String()))
	case "bool":
		return collect(fuzz.Examples(n, fuzz.Bool()))
	case "int-list":
		return collect(fuzz.Examples(n, fuzz.List(fuzz.Int())))
	default:
		return nil, errs.New(errs.InvalidFuzzer, "unknown fuzzer %q", name)
	}
}

func collect[A any](vals []A, err error) ([]any, error) {
	if err != nil {
		return nil, err
	}
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out, nil
}

// runNamed runs a named built-in fuzzer against a named predicate, the
// same way cmd/shrinkdemo dispatches on cfg.scenario, but over HTTP
// request fields instead of flags.
func runNamed(log *slog.Logger, fuzzerName, predicateName string, seed int64, examples, maxShrink int) (shrinkResponse, error) {
	switch fuzzerName {
	case "int":
		pred, err := intPredicate(predicateName)
		if err != nil {
			return shrinkResponse{}, err
		}
		return toResponse(runner.Run(log, seed, examples, maxShrink, fuzz.Int(), pred)), nil
	case "float":
		pred, err := floatPredicate(predicateName)
		if err != nil {
			return shrinkResponse{}, err
		}
		return toResponse(runner.Run(log, seed, examples, maxShrink, fuzz.Float(), pred)), nil
	case "string":
		pred, err := stringPredicate(predicateName)
		if err != nil {
			return shrinkResponse{}, err
		}
		return toResponse(runner.Run(log, seed, examples, maxShrink, fuzz.String(), pred)), nil
	case "int-list":
		pred, err := intListPredicate(predicateName)
		if err != nil {
			return shrinkResponse{}, err
		}
		return toResponse(runner.Run(log, seed, examples, maxShrink, fuzz.List(fuzz.Int()), pred)), nil
	default:
		return shrinkResponse{}, errs.New(errs.InvalidFuzzer, "unknown fuzzer %q", fuzzerName)
	}
}

func intPredicate(name string) (func(int) bool, error) {
	switch name {
	case "non-negative":
		return func(n int) bool { return n >= 0 }, nil
	case "below-thousand":
		return func(n int) bool { return n < 1000 }, nil
	default:
		return nil, errs.New(errs.InvalidFuzzer, "unknown predicate %q for fuzzer int", name)
	}
}

func floatPredicate(name string) (func(float64) bool, error) {
	switch name {
	case "non-negative":
		return func(f float64) bool { return f >= 0 }, nil
	default:
		return nil, errs.New(errs.InvalidFuzzer, "unknown predicate %q for fuzzer float", name)
	}
}

func stringPredicate(name string) (func(string) bool, error) {
	switch name {
	case "short":
		return func(s string) bool { return len(s) <= 16 }, nil
	default:
		return nil, errs.New(errs.InvalidFuzzer, "unknown predicate %q for fuzzer string", name)
	}
}

func intListPredicate(name string) (func([]int) bool, error) {
	switch name {
	case "short-list":
		return func(xs []int) bool { return len(xs) <= 3 }, nil
	case "sorted":
		return func(xs []int) bool {
			for i := 1; i < len(xs); i++ {
				if xs[i-1] > xs[i] {
					return false
				}
			}
			return true
		}, nil
	default:
		return nil, errs.New(errs.InvalidFuzzer, "unknown predicate %q for fuzzer int-list", name)
	}
}

func toResponse[A any](r runner.Result[A]) shrinkResponse {
	resp := shrinkResponse{Failed: r.Failed}
	if !r.Failed {
		return resp
	}
	resp.Counterexample = r.Counterexample
	resp.FailingRun = r.FailingRun.Values()
	resp.MinimalRun = r.MinimalRun.Values()
	resp.Replay = r.ReplayInstruction()
	return resp
}
