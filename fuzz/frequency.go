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

package fuzz

import (
	"math"

	"github.com/zintix-labs/fuzzlab/errs"
	"github.com/zintix-labs/fuzzlab/genresult"
	"github.com/zintix-labs/fuzzlab/prng"
)

// WeightedFuzzer pairs an integer weight with the fuzzer it selects.
// Callers must place the "simplest" alternative first: IntFrequency draws
// a smaller index more often under shrinking, so shrinking biases toward
// whichever entry comes first in the list.
type WeightedFuzzer[A any] struct {
	Weight int
	Fuzzer Fuzzer[A]
}

// IntFrequency draws one index in [0, sum(weights)-1] via a single
// RollDice call and runs the entry whose weighted slot contains it. All
// weights must be non-negative integers summing to more than zero; violations
// produce an Invalid fuzzer carrying a descriptive reason.
func IntFrequency[A any](entries []WeightedFuzzer[A]) Fuzzer[A] {
	if len(entries) == 0 {
		return Invalid[A](errs.New(errs.InvalidFuzzer, "Fuzz.frequency: empty list of alternatives").Error())
	}
	total := 0
	for _, e := range entries {
		if e.Weight < 0 {
			return Invalid[A](errs.New(errs.InvalidFuzzer, "Fuzz.frequency: weight less than 0").Error())
		}
		total += e.Weight
	}
	if total <= 0 {
		return Invalid[A](errs.New(errs.InvalidFuzzer, "Fuzz.frequency: all weights are 0").Error())
	}
	return func(p prng.PRNG) genresult.Result[A] {
		r := RollDice(uint32(total - 1))(p)
		if r.IsRejected() {
			return genresult.Rejected[A](r.Reason(), r.PRNG())
		}
		i := int(r.Value())
		cumulative := 0
		for _, e := range entries {
			cumulative += e.Weight
			if i < cumulative {
				return e.Fuzzer(r.PRNG())
			}
		}
		return genresult.Rejected[A](errs.Internal("Fuzz.frequency: index out of range").Error(), r.PRNG())
	}
}

// FreqEntry pairs a float weight with the fuzzer it selects, for Frequency.
type FreqEntry[A any] struct {
	Weight float64
	Fuzzer Fuzzer[A]
}

// Frequency chooses among entries proportional to their (possibly
// fractional) weights. When every weight is a whole number it delegates
// to IntFrequency — one small integer choice, which shrinks better than
// the percentage draw the general case needs.
func Frequency[A any](entries []FreqEntry[A]) Fuzzer[A] {
	allWhole := true
	for _, e := range entries {
		if e.Weight != math.Trunc(e.Weight) {
			allWhole = false
			break
		}
	}
	if allWhole {
		intEntries := make([]WeightedFuzzer[A], len(entries))
		for i, e := range entries {
			intEntries[i] = WeightedFuzzer[A]{Weight: int(e.Weight), Fuzzer: e.Fuzzer}
		}
		return IntFrequency(intEntries)
	}

	if len(entries) == 0 {
		return Invalid[A](errs.New(errs.InvalidFuzzer, "Fuzz.frequency: empty list of alternatives").Error())
	}
	total := 0.0
	for _, e := range entries {
		if e.Weight < 0 {
			return Invalid[A](errs.New(errs.InvalidFuzzer, "Fuzz.frequency: weight less than 0").Error())
		}
		total += e.Weight
	}
	if total <= 0 {
		return Invalid[A](errs.New(errs.InvalidFuzzer, "Fuzz.frequency: all weights are 0").Error())
	}
	return func(p prng.PRNG) genresult.Result[A] {
		r := Percentage()(p)
		if r.IsRejected() {
			return genresult.Rejected[A](r.Reason(), r.PRNG())
		}
		target := r.Value() * total
		cumulative := 0.0
		for _, e := range entries {
			cumulative += e.Weight
			if target < cumulative {
				return e.Fuzzer(r.PRNG())
			}
		}
		return entries[len(entries)-1].Fuzzer(r.PRNG())
	}
}

// OneOf chooses uniformly (equal weight 1) among the given fuzzers.
// Rejects with Fuzz.oneOf if the list is empty.
func OneOf[A any](fuzzers ...Fuzzer[A]) Fuzzer[A] {
	if len(fuzzers) == 0 {
		return Invalid[A](errs.New(errs.InvalidFuzzer, "Fuzz.oneOf: empty list of alternatives").Error())
	}
	entries := make([]WeightedFuzzer[A], len(fuzzers))
	for i, f := range fuzzers {
		entries[i] = WeightedFuzzer[A]{Weight: 1, Fuzzer: f}
	}
	return IntFrequency(entries)
}

// OneOfValues is OneOf over constant values.
func OneOfValues[A any](values ...A) Fuzzer[A] {
	fuzzers := make([]Fuzzer[A], len(values))
	for i, v := range values {
		fuzzers[i] = Const(v)
	}
	return OneOf(fuzzers...)
}

// ValueEntry pairs a float weight with a constant value, for FrequencyValues.
type ValueEntry[A any] struct {
	Weight float64
	Value  A
}

// FrequencyValues is Frequency over constant values.
func FrequencyValues[A any](entries []ValueEntry[A]) Fuzzer[A] {
	freqEntries := make([]FreqEntry[A], len(entries))
	for i, e := range entries {
		freqEntries[i] = FreqEntry[A]{Weight: e.Weight, Fuzzer: Const(e.Value)}
	}
	return Frequency(freqEntries)
}
