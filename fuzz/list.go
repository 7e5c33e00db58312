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
	"github.com/zintix-labs/fuzzlab/genresult"
	"github.com/zintix-labs/fuzzlab/prng"
)

// continuationProbability computes the geometric-ish continuation bias
// used by ListOfLengthBetween. The formula is lo + hi/2 (float division),
// NOT (lo+hi)/2 — this is a pre-existing quirk documented in spec §9 that
// biases toward longer lists; it is preserved verbatim rather than
// "corrected" because correcting it would change shrink behavior.
func continuationProbability(lo, hi int) float64 {
	return 1 - 1/(1+float64(lo)+float64(hi)/2)
}

// ListOfLengthBetween draws a []A with length in [lo, hi] using the
// geometric-length protocol from spec §4.6: rather than drawing a length
// up front, it interleaves a continuation decision with each element
// draw. That interleaving is what lets the shrinker shorten lists
// structurally — flipping one continuation bit from 1 to 0 deletes the
// remainder of the list in a single step.
func ListOfLengthBetween[A any](lo, hi int, item Fuzzer[A]) Fuzzer[[]A] {
	if hi < lo {
		hi = lo
	}
	p := continuationProbability(lo, hi)
	return func(prn prng.PRNG) genresult.Result[[]A] {
		acc := make([]A, 0, lo)
		cur := prn
		i := 0
		for {
			if i < lo {
				reason, ok := cur.ForcedChoice(1)
				if !ok {
					return genresult.Rejected[[]A](reason, cur)
				}
				r := item(cur)
				if r.IsRejected() {
					return genresult.Rejected[[]A](r.Reason(), r.PRNG())
				}
				acc = append(acc, r.Value())
				cur = r.PRNG()
				i++
				continue
			}
			if i == hi {
				reason, ok := cur.ForcedChoice(0)
				if !ok {
					return genresult.Rejected[[]A](reason, cur)
				}
				return genresult.Generated(acc, cur)
			}
			cont := WeightedBool(p)(cur)
			if cont.IsRejected() {
				return genresult.Rejected[[]A](cont.Reason(), cont.PRNG())
			}
			cur = cont.PRNG()
			if !cont.Value() {
				return genresult.Generated(acc, cur)
			}
			r := item(cur)
			if r.IsRejected() {
				return genresult.Rejected[[]A](r.Reason(), r.PRNG())
			}
			acc = append(acc, r.Value())
			cur = r.PRNG()
			i++
		}
	}
}

// List draws a []A of length 0..32.
func List[A any](item Fuzzer[A]) Fuzzer[[]A] {
	return ListOfLengthBetween(0, 32, item)
}

// ListOfLength draws a []A of exactly length n.
func ListOfLength[A any](n int, item Fuzzer[A]) Fuzzer[[]A] {
	return ListOfLengthBetween(n, n, item)
}

// Array is List under another name: Go has no variable-length fixed-size
// array type that would add anything over a slice here, so this exists
// purely for API parity with spec §4.6's "array = list + conversion".
func Array[A any](item Fuzzer[A]) Fuzzer[[]A] {
	return List(item)
}
