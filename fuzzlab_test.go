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

package fuzzlab

import (
	"testing"

	"github.com/zintix-labs/fuzzlab/fuzz"
	"github.com/zintix-labs/fuzzlab/runnercfg"
)

func TestNewDefaultLabIsUsable(t *testing.T) {
	lab := NewDefault()
	if lab.Config.Examples == 0 {
		t.Fatalf("expected NewDefault to carry non-zero examples")
	}
}

func TestRunPropertyFindsFailure(t *testing.T) {
	cfg := runnercfg.Default()
	cfg.Examples = 2000
	lab := New(cfg, nil)

	result := RunProperty(lab, fuzz.Int(), func(n int) bool { return n >= 0 })
	if !result.Failed {
		t.Fatalf("expected to find a negative Int within 2000 examples")
	}
	if result.Counterexample != -1 {
		t.Fatalf("expected minimized counterexample -1, got %d", result.Counterexample)
	}
}

func TestExamplesReexport(t *testing.T) {
	vals, err := Examples(10, fuzz.IntRange(0, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vals) != 10 {
		t.Fatalf("expected 10 examples, got %d", len(vals))
	}
}
