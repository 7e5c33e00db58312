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

package runner

import (
	"testing"

	"github.com/zintix-labs/fuzzlab/fuzz"
)

func TestRunFindsAndShrinksFailure(t *testing.T) {
	isNegative := func(n int) bool { return n < 0 }
	holds := func(n int) bool { return !isNegative(n) }

	result := Run(nil, 0, 2000, 0, fuzz.Int(), holds)
	if !result.Failed {
		t.Fatalf("expected a negative Int to be found within 2000 examples")
	}
	if result.Counterexample != -1 {
		t.Fatalf("expected minimized counterexample -1, got %d", result.Counterexample)
	}
	if result.ReplayInstruction() == "" {
		t.Fatalf("expected a non-empty replay instruction on failure")
	}
}

func TestRunReportsSuccessWhenPropertyHolds(t *testing.T) {
	alwaysTrue := func(int) bool { return true }
	result := Run(nil, 0, 50, 0, fuzz.IntRange(0, 10), alwaysTrue)
	if result.Failed {
		t.Fatalf("expected no failure for a property that always holds")
	}
	if result.ReplayInstruction() != "" {
		t.Fatalf("expected empty replay instruction on success")
	}
}

func TestFormatExamplePadsAndTruncates(t *testing.T) {
	if got := FormatExample("hi", 5); len(got) < 5 {
		t.Fatalf("expected padded output of at least width 5, got %q", got)
	}
	if got := FormatExample("a very long example string", 5); got == "" {
		t.Fatalf("expected non-empty truncated output")
	}
}

func TestSummarizeAndFormat(t *testing.T) {
	s := Summarize([]float64{1, 2, 3})
	line := FormatSummary(s)
	if line == "" || line == "no examples" {
		t.Fatalf("expected a non-trivial summary line, got %q", line)
	}
}
