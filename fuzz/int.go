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

// MaxRangeMagnitude is 2^32-1, the bound IntAtLeast/IntAtMost extend a
// range to.
const MaxRangeMagnitude = (1 << 32) - 1

// intBucket is one size class in the bucketed signed-integer distribution:
// smaller buckets are both more frequent and shrink-smaller.
type intBucket struct {
	weight int
	bits   uint
}

// intBuckets is the fixed bucket table from spec §4.3. 0 is the most
// preferred value, small positives next, then small negatives, with large
// negatives least frequent — achieved by pairing each bucket's bit width
// with a sign bit carved out of the same draw.
var intBuckets = []intBucket{
	{weight: 4, bits: 4},
	{weight: 8, bits: 8},
	{weight: 2, bits: 16},
	{weight: 1, bits: 32},
}

// UniformInt draws a uniform integer in [0, n].
func UniformInt(n uint32) Fuzzer[uint32] {
	return RollDice(n)
}

// IntBits draws a uniform unsigned integer using exactly k bits, i.e. a
// value in [0, 2^k-1].
func IntBits(k uint) Fuzzer[uint32] {
	var max uint32
	if k >= 32 {
		max = MaxRangeMagnitude
	} else {
		max = uint32(1<<k) - 1
	}
	return UniformInt(max)
}

// splitSigned decodes a bucketed draw n into a signed int: the low bit is
// the sign (1 = negative), the remaining bits are the magnitude.
func splitSigned(n uint32) int {
	sign := n & 1
	magnitude := int(n >> 1)
	if sign == 1 {
		return -magnitude
	}
	return magnitude
}

// Int is the bucketed signed integer fuzzer: pick a bucket via
// IntFrequency, draw that many bits, then split sign/magnitude. Shrinks
// toward 0 because both the bucket index and the magnitude shrink toward
// 0 under shortlex.
func Int() Fuzzer[int] {
	entries := make([]WeightedFuzzer[uint32], len(intBuckets))
	for i, b := range intBuckets {
		entries[i] = WeightedFuzzer[uint32]{Weight: b.weight, Fuzzer: IntBits(b.bits)}
	}
	return Map(splitSigned, IntFrequency(entries))
}

// bitsNeeded returns the smallest power-of-two bit width in {4,8,16,32}
// that can represent values up to upper, per spec §4.3's intRange
// "maxBits = next power-of-2 >= ceil(log2(upper+1))".
func bitsNeeded(upper uint32) uint {
	need := uint(0)
	for v := upper; v > 0; v >>= 1 {
		need++
	}
	if need == 0 {
		need = 1
	}
	for _, k := range []uint{4, 8, 16, 32} {
		if k >= need {
			return k
		}
	}
	return 32
}

// intUpper is int_(upper) from spec §4.3: a uniform integer in [0, upper].
func intUpper(upper uint32) Fuzzer[uint32] {
	if upper <= 255 {
		return UniformInt(upper)
	}
	maxBits := bitsNeeded(upper)
	var filtered []intBucket
	for _, b := range intBuckets {
		if b.bits <= maxBits {
			filtered = append(filtered, b)
		}
	}
	if len(filtered) == 0 {
		filtered = []intBucket{intBuckets[0]}
	}
	entries := make([]WeightedFuzzer[uint32], len(filtered))
	for i, b := range filtered {
		entries[i] = WeightedFuzzer[uint32]{Weight: b.weight, Fuzzer: IntBits(b.bits)}
	}
	bucketPick := IntFrequency(entries)
	if upper == MaxRangeMagnitude {
		return bucketPick
	}
	modulus := upper + 1
	return Map(func(n uint32) uint32 { return n % modulus }, bucketPick)
}

// IntRange draws an integer in [lo, hi] (inclusive), swapping lo/hi if
// inverted and short-circuiting to a constant when lo == hi. A range
// straddling zero picks the positive half, the negative half, or a
// shortcut straight to 0 with weights 2:2:1; the positive half comes first,
// so shrinking prefers it — this preference is observable through shrinking
// (spec §9): failing properties on mixed-sign ranges typically minimize to
// non-negative witnesses when a negative one isn't required.
func IntRange(lo, hi int) Fuzzer[int] {
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		return Const(lo)
	}
	switch {
	case lo >= 0:
		span := uint32(hi - lo)
		return Map(func(u uint32) int { return int(u) + lo }, intUpper(span))
	case hi <= 0:
		span := uint32(hi - lo)
		return Map(func(u uint32) int { return hi - int(u) }, intUpper(span))
	default:
		positive := Map(func(u uint32) int { return int(u) }, intUpper(uint32(hi)))
		negative := Map(func(u uint32) int { return -int(u) }, intUpper(uint32(-lo)))
		entries := []WeightedFuzzer[int]{
			{Weight: 2, Fuzzer: positive},
			{Weight: 2, Fuzzer: negative},
			{Weight: 1, Fuzzer: Const(0)},
		}
		return IntFrequency(entries)
	}
}

// IntAtLeast draws an integer in [n, 2^32-1].
func IntAtLeast(n int) Fuzzer[int] {
	return IntRange(n, MaxRangeMagnitude)
}

// IntAtMost draws an integer in [-(2^32-1), n].
func IntAtMost(n int) Fuzzer[int] {
	return IntRange(-MaxRangeMagnitude, n)
}
