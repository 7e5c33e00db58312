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

// Package shrink implements choice-sequence shrinking: given a
// ChoiceSequence that replays to an "interesting" (failing) value, search
// for a shortlex-smaller sequence that still replays to a value the
// caller's predicate calls interesting.
//
// The shrinker never inspects the value's type. It only ever rewrites the
// integer sequence and re-runs the fuzzer under Replay, which is what lets
// one shrinker implementation work over every fuzzer built from the
// combinator algebra in package fuzz.
package shrink

import (
	"github.com/zintix-labs/fuzzlab/choice"
	"github.com/zintix-labs/fuzzlab/fuzz"
	"github.com/zintix-labs/fuzzlab/prng"
)

// pass is one fixed shrink strategy. It is given the current best
// sequence plus a tryFunc to test candidates, and returns the sequence it
// ends on (possibly unchanged) along with whether it improved anything.
type pass[A any] func(seq *choice.Sequence, try tryFunc[A]) (*choice.Sequence, A, bool)

// tryFunc replays candidate against the fuzzer and reports whether the
// replay succeeded (consumed the candidate faithfully, with no leftover
// choices) and produced a value the caller's predicate still calls
// interesting. On success it also returns the produced value.
type tryFunc[A any] func(candidate *choice.Sequence) (A, bool)

// Shrink searches for the shortlex-smallest ChoiceSequence, reachable from
// initial by the six fixed passes below, that still replays through f to a
// value for which pred returns true. initial itself must already satisfy
// this (it is the seed counterexample); Shrink always returns a sequence
// that does, falling back to initial if no pass ever improves on it. The
// outer loop runs until a full round over all six passes makes no further
// progress, with no round cap.
func Shrink[A any](initial *choice.Sequence, f fuzz.Fuzzer[A], pred func(A) bool) (*choice.Sequence, A) {
	return ShrinkWithLimit(initial, f, pred, 0)
}

// ShrinkWithLimit is Shrink with an outer round cap supplied by the
// harness: maxRounds > 0 stops after that many passes over all six
// strategies even if a round still made progress, the way rapidx's
// Config.MaxShrink bounds its own shrink loop. maxRounds <= 0 means no
// cap, matching Shrink.
func ShrinkWithLimit[A any](initial *choice.Sequence, f fuzz.Fuzzer[A], pred func(A) bool, maxRounds int) (*choice.Sequence, A) {
	try := func(candidate *choice.Sequence) (A, bool) {
		var zero A
		replay := prng.NewReplay(candidate)
		r := f(replay)
		if r.IsRejected() {
			return zero, false
		}
		// A faithful replay consumes every recorded choice; leftover
		// choices mean the candidate sequence doesn't correspond to a
		// value this fuzzer can actually produce on its own, so the
		// trailing tail is dead weight we must not credit as "smaller".
		if replay.Consumed().Len() != candidate.Len() {
			return zero, false
		}
		if !pred(r.Value()) {
			return zero, false
		}
		return r.Value(), true
	}

	currentValue, ok := try(initial)
	current := initial
	if !ok {
		var zero A
		return current, zero
	}

	passes := []pass[A]{
		deleteSlices[A],
		zeroSlices[A],
		bulkSubtract[A],
		singleElementMinimize[A],
		swapAdjacent[A],
		redistribute[A],
	}

	for round := 0; maxRounds <= 0 || round < maxRounds; round++ {
		improvedThisRound := false
		for _, p := range passes {
			newSeq, newVal, changed := p(current, try)
			if changed {
				current = newSeq
				currentValue = newVal
				improvedThisRound = true
			}
		}
		if !improvedThisRound {
			break
		}
	}
	return current, currentValue
}
