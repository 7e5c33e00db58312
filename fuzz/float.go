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

	"github.com/zintix-labs/fuzzlab/floatcodec"
)

// maxHiBitsForPercentage is 2^20-1: the top 12 bits of the hi draw are
// intentionally never generated, saving ChoiceSequence capacity (spec §4.4).
const maxHiBitsForPercentage = (1 << 20) - 1

// NiceFloat draws only "nice" floats — integers and simple binary
// fractions — via the well-shrinking float codec. Never NaN or +/-Inf.
func NiceFloat() Fuzzer[float64] {
	return Map2(floatcodec.WellShrinkingFloat, UniformInt(MaxRangeMagnitude), UniformInt(MaxRangeMagnitude))
}

// Percentage draws a float64 in [0, 1), weighted toward the two boundary
// shortcuts (exactly 0, and the largest representable fraction) with the
// bulk of mass on an arbitrary mantissa-packed fraction.
func Percentage() Fuzzer[float64] {
	entries := []WeightedFuzzer[float64]{
		{Weight: 1, Fuzzer: Const(0.0)},
		{Weight: 1, Fuzzer: Const(floatcodec.MaxFractionalFloat())},
		{Weight: 4, Fuzzer: Map2(floatcodec.FractionalFloat, UniformInt(maxHiBitsForPercentage), UniformInt(MaxRangeMagnitude))},
	}
	return IntFrequency(entries)
}

// ScaledFloat linearly rescales Percentage into [lo, hi]. Unlike
// FloatRange it does not shrink toward "nice" fractions — only use it
// where that is acceptable.
func ScaledFloat(lo, hi float64) Fuzzer[float64] {
	return Map(func(p float64) float64 { return p*(hi-lo) + lo }, Percentage())
}

// Float is the general-purpose float fuzzer: mostly nice floats, plus
// small-probability shortcuts to 0, +Inf, -Inf, and NaN so properties
// that don't special-case those values get exercised against them.
func Float() Fuzzer[float64] {
	entries := []WeightedFuzzer[float64]{
		{Weight: 1, Fuzzer: Const(0.0)},
		{Weight: 5, Fuzzer: NiceFloat()},
		{Weight: 1, Fuzzer: Const(math.Inf(1))},
		{Weight: 1, Fuzzer: Const(math.Inf(-1))},
		{Weight: 1, Fuzzer: Const(math.NaN())},
	}
	return IntFrequency(entries)
}

// FloatRange draws a float64 in [lo, hi]. When the range straddles zero it
// picks the positive half, the negative half, or a zero shortcut with
// weights 2:2:1, positive first — mirroring IntRange's sign preference.
func FloatRange(lo, hi float64) Fuzzer[float64] {
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		return Const(lo)
	}
	switch {
	case lo >= 0:
		return ScaledFloat(lo, hi)
	case hi <= 0:
		return Map(func(p float64) float64 { return hi - p*(hi-lo) }, Percentage())
	default:
		positive := ScaledFloat(0, hi)
		negative := Map(func(v float64) float64 { return -v }, ScaledFloat(0, -lo))
		entries := []WeightedFuzzer[float64]{
			{Weight: 2, Fuzzer: positive},
			{Weight: 2, Fuzzer: negative},
			{Weight: 1, Fuzzer: Const(0.0)},
		}
		return IntFrequency(entries)
	}
}

// FloatAtLeast draws a float64 in [n, math.MaxFloat64].
func FloatAtLeast(n float64) Fuzzer[float64] {
	return FloatRange(n, math.MaxFloat64)
}

// FloatAtMost draws a float64 in [-math.MaxFloat64, n].
func FloatAtMost(n float64) Fuzzer[float64] {
	return FloatRange(-math.MaxFloat64, n)
}
