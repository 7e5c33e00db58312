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

import "github.com/zintix-labs/fuzzlab/choice"

// Each pass below is total (it always terminates) and idempotent at a
// local fixpoint (re-running it immediately after it reports no change
// would again report no change). Shrink's outer loop keeps cycling
// through all six until a full round makes no progress at all.

// deleteSlices removes contiguous runs of choices, starting from large
// runs and halving down to single elements. This is what collapses a
// list's length or drops whole unneeded sub-draws in one step instead of
// one element at a time.
func deleteSlices[A any](seq *choice.Sequence, try tryFunc[A]) (*choice.Sequence, A, bool) {
	var last A
	changedAny := false
	for {
		changedRound := false
		size := seq.Len()
		for size >= 1 {
			i := 0
			for i+size <= seq.Len() {
				candidate := seq.WithRemoved(i, i+size)
				if v, ok := try(candidate); ok {
					seq = candidate
					last = v
					changedRound = true
					changedAny = true
					continue
				}
				i++
			}
			size /= 2
		}
		if !changedRound {
			break
		}
	}
	return seq, last, changedAny
}

// zeroSlices drives contiguous runs of choices to 0 without changing the
// sequence length. Many fuzzers treat 0 as their simplest draw (e.g.
// RollDice(0) is always in range, and many combinators map 0 to the first
// listed alternative), so zeroing is often accepted even when deleting
// isn't.
func zeroSlices[A any](seq *choice.Sequence, try tryFunc[A]) (*choice.Sequence, A, bool) {
	var last A
	changedAny := false
	for {
		changedRound := false
		size := seq.Len()
		for size >= 1 {
			i := 0
			for i+size <= seq.Len() {
				if !rangeIsZero(seq, i, i+size) {
					candidate := withZeroRange(seq, i, i+size)
					if v, ok := try(candidate); ok {
						seq = candidate
						last = v
						changedRound = true
						changedAny = true
					}
				}
				i++
			}
			size /= 2
		}
		if !changedRound {
			break
		}
	}
	return seq, last, changedAny
}

// bulkSubtract subtracts a shrinking delta from every element in a
// contiguous window at once, halving the delta until it reaches zero.
// It lets several counters that must shrink together (e.g. the draws
// behind a handful of sibling IntRange calls) move in lockstep instead of
// getting stuck because shrinking any single one alone isn't accepted.
func bulkSubtract[A any](seq *choice.Sequence, try tryFunc[A]) (*choice.Sequence, A, bool) {
	var last A
	changedAny := false
	for {
		changedRound := false
		for windowSize := seq.Len(); windowSize >= 2; windowSize-- {
			for i := 0; i+windowSize <= seq.Len(); i++ {
				maxVal := uint32(0)
				for j := i; j < i+windowSize; j++ {
					if v := seq.At(j); v > maxVal {
						maxVal = v
					}
				}
				delta := maxVal
				for delta > 0 {
					candidate := withSubtracted(seq, i, i+windowSize, delta)
					if v, ok := try(candidate); ok {
						seq = candidate
						last = v
						changedRound = true
						changedAny = true
					}
					delta /= 2
				}
			}
		}
		if !changedRound {
			break
		}
	}
	return seq, last, changedAny
}

// singleElementMinimize binary-searches each element independently toward
// 0, the standard "shrink an integer" routine applied uniformly to every
// recorded choice regardless of what fuzzer consumed it.
func singleElementMinimize[A any](seq *choice.Sequence, try tryFunc[A]) (*choice.Sequence, A, bool) {
	var last A
	changedAny := false
	for {
		changedRound := false
		for i := 0; i < seq.Len(); i++ {
			orig := seq.At(i)
			if orig == 0 {
				continue
			}
			lo, hi := uint32(0), orig
			bestSeq := seq
			bestVal := last
			found := false
			for lo < hi {
				mid := lo + (hi-lo)/2
				candidate := seq.WithReplaced(i, mid)
				if v, ok := try(candidate); ok {
					hi = mid
					bestSeq = candidate
					bestVal = v
					found = true
				} else {
					lo = mid + 1
				}
			}
			if found {
				seq = bestSeq
				last = bestVal
				changedRound = true
				changedAny = true
			}
		}
		if !changedRound {
			break
		}
	}
	return seq, last, changedAny
}

// swapAdjacent exchanges neighboring choices whenever the earlier one is
// larger, nudging the sequence toward the shortlex-smaller of the two
// orderings when both replay to an equally interesting value. This
// mostly helps fuzzers whose output doesn't depend on draw order (e.g.
// PairOf of two otherwise-independent draws).
func swapAdjacent[A any](seq *choice.Sequence, try tryFunc[A]) (*choice.Sequence, A, bool) {
	var last A
	changedAny := false
	for {
		changedRound := false
		for i := 0; i+1 < seq.Len(); i++ {
			a, b := seq.At(i), seq.At(i+1)
			if a <= b {
				continue
			}
			candidate := seq.WithReplaced(i, b).WithReplaced(i+1, a)
			if v, ok := try(candidate); ok {
				seq = candidate
				last = v
				changedRound = true
				changedAny = true
			}
		}
		if !changedRound {
			break
		}
	}
	return seq, last, changedAny
}

// redistribute moves weight from an earlier choice to its immediate
// successor while holding their sum constant, shrinking whichever draw
// shortlex order weighs more heavily (the earlier one) at the expense of
// the later one. This is what lets e.g. a straddling IntRange's sign
// draw and magnitude draw trade mass without the total moving outside
// what downstream code expects.
func redistribute[A any](seq *choice.Sequence, try tryFunc[A]) (*choice.Sequence, A, bool) {
	var last A
	changedAny := false
	for {
		changedRound := false
		for i := 0; i+1 < seq.Len(); i++ {
			a := seq.At(i)
			if a == 0 {
				continue
			}
			b := seq.At(i + 1)
			delta := a
			for delta > 0 {
				if uint64(b)+uint64(delta) <= 0xFFFFFFFF {
					candidate := seq.WithReplaced(i, a-delta).WithReplaced(i+1, b+delta)
					if v, ok := try(candidate); ok {
						seq = candidate
						last = v
						changedRound = true
						changedAny = true
						break
					}
				}
				delta /= 2
			}
		}
		if !changedRound {
			break
		}
	}
	return seq, last, changedAny
}

func rangeIsZero(seq *choice.Sequence, lo, hi int) bool {
	for i := lo; i < hi; i++ {
		if seq.At(i) != 0 {
			return false
		}
	}
	return true
}

func withZeroRange(seq *choice.Sequence, lo, hi int) *choice.Sequence {
	vals := seq.Values()
	for i := lo; i < hi; i++ {
		vals[i] = 0
	}
	return choice.New(vals...)
}

func withSubtracted(seq *choice.Sequence, lo, hi int, delta uint32) *choice.Sequence {
	vals := seq.Values()
	for i := lo; i < hi; i++ {
		if vals[i] >= delta {
			vals[i] -= delta
		} else {
			vals[i] = 0
		}
	}
	return choice.New(vals...)
}
