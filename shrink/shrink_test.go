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

package shrink

import (
	"testing"

	"github.com/zintix-labs/fuzzlab/choice"
	"github.com/zintix-labs/fuzzlab/fuzz"
	"github.com/zintix-labs/fuzzlab/prng"
)

// findCounterexample runs f under a sequence of seeded Live PRNGs until
// pred reports the draw as interesting, returning the recorded choices
// that produced it.
func findCounterexample[A any](f fuzz.Fuzzer[A], pred func(A) bool) (*choice.Sequence, A) {
	for seed := uint32(0); seed < 10000; seed++ {
		live := prng.NewLive(seed)
		r := fuzz.Generate(live, f)
		if r.IsRejected() {
			continue
		}
		if pred(r.Value()) {
			return live.Recorded(), r.Value()
		}
	}
	panic("no counterexample found in search budget")
}

// TestShrinkIntBelowZero is scenario #4: the property "n >= 0" fails for
// some generated Int, and shrinking the failing run must land on -1, the
// shortlex-smallest (and numerically closest-to-zero) choice sequence
// that still produces a negative number.
func TestShrinkIntBelowZero(t *testing.T) {
	isNegative := func(n int) bool { return n < 0 }
	initial, _ := findCounterexample(fuzz.Int(), isNegative)
	_, shrunk := Shrink(initial, fuzz.Int(), isNegative)
	if shrunk != -1 {
		t.Fatalf("expected shrink to -1, got %d", shrunk)
	}
}

// TestShrinkListLongerThanThree is scenario #5: the property "len(list)
// <= 3" fails for some generated list, and shrinking must land on a
// 4-element list (the shortest list that still violates the bound).
func TestShrinkListLongerThanThree(t *testing.T) {
	tooLong := func(xs []int) bool { return len(xs) > 3 }
	f := fuzz.List(fuzz.Int())
	initial, _ := findCounterexample(f, tooLong)
	_, shrunk := Shrink(initial, f, tooLong)
	if len(shrunk) != 4 {
		t.Fatalf("expected shrink to a 4-element list, got %v (len %d)", shrunk, len(shrunk))
	}
}

// TestShrinkResultIsShortlexNoLarger checks the core monotonicity
// invariant: the shrunk sequence is never shortlex-larger than the
// sequence Shrink started from.
func TestShrinkResultIsShortlexNoLarger(t *testing.T) {
	pred := func(n int) bool { return n > 1000 }
	initial, _ := findCounterexample(fuzz.IntRange(0, 100000), pred)
	final, value := Shrink(initial, fuzz.IntRange(0, 100000), pred)
	if !pred(value) {
		t.Fatalf("shrunk value %d no longer satisfies predicate", value)
	}
	if choice.Compare(final, initial) > 0 {
		t.Fatalf("shrink result %v is shortlex-larger than initial %v", final, initial)
	}
}

// TestShrinkIsFixpoint re-running Shrink on its own output must not find
// anything smaller: the output is already a local fixpoint of all six
// passes.
func TestShrinkIsFixpoint(t *testing.T) {
	pred := func(n int) bool { return n < 0 }
	initial, _ := findCounterexample(fuzz.Int(), pred)
	once, onceVal := Shrink(initial, fuzz.Int(), pred)
	twice, twiceVal := Shrink(once, fuzz.Int(), pred)
	if choice.Compare(once, twice) != 0 {
		t.Fatalf("re-shrinking changed the result: %v -> %v", once, twice)
	}
	if onceVal != twiceVal {
		t.Fatalf("re-shrinking changed the value: %v -> %v", onceVal, twiceVal)
	}
}

// TestShrinkPreservesBoolCounterexample exercises a tiny, single-choice
// fuzzer to make sure Shrink doesn't over-shrink away the counterexample
// entirely (it must always end on a sequence satisfying pred).
func TestShrinkPreservesBoolCounterexample(t *testing.T) {
	pred := func(b bool) bool { return b }
	initial, _ := findCounterexample(fuzz.Bool(), pred)
	_, value := Shrink(initial, fuzz.Bool(), pred)
	if !value {
		t.Fatalf("shrunk value no longer satisfies predicate")
	}
}

// TestShrinkWithLimitStopsEarly checks that a round cap of 1 produces a
// result no better (shortlex) than an unlimited Shrink, and typically
// worse on a fuzzer with enough passes to need several rounds.
func TestShrinkWithLimitStopsEarly(t *testing.T) {
	tooLong := func(xs []int) bool { return len(xs) > 3 }
	f := fuzz.List(fuzz.Int())
	initial, _ := findCounterexample(f, tooLong)

	capped, cappedVal := ShrinkWithLimit(initial, f, tooLong, 1)
	if !tooLong(cappedVal) {
		t.Fatalf("capped shrink result %v no longer satisfies predicate", cappedVal)
	}

	full, _ := Shrink(initial, f, tooLong)
	if choice.Compare(full, capped) > 0 {
		t.Fatalf("unlimited shrink %v is shortlex-larger than 1-round-capped shrink %v", full, capped)
	}
}

// TestShrinkWithLimitZeroMeansUnlimited checks that a round cap of 0
// produces the same result as Shrink (no cap).
func TestShrinkWithLimitZeroMeansUnlimited(t *testing.T) {
	pred := func(n int) bool { return n < 0 }
	initial, _ := findCounterexample(fuzz.Int(), pred)
	viaShrink, viaShrinkVal := Shrink(initial, fuzz.Int(), pred)
	viaLimit, viaLimitVal := ShrinkWithLimit(initial, fuzz.Int(), pred, 0)
	if choice.Compare(viaShrink, viaLimit) != 0 || viaShrinkVal != viaLimitVal {
		t.Fatalf("ShrinkWithLimit(0) diverged from Shrink: %v/%v vs %v/%v",
			viaLimit, viaLimitVal, viaShrink, viaShrinkVal)
	}
}
