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

// Package choice implements ChoiceSequence, the bounded growable sequence
// of non-negative 32-bit integers that a fuzzer run records its draws into.
//
// A ChoiceSequence is the one substrate the shrinker operates on: it never
// looks at the value a fuzzer produced, only at the sequence of integers
// that produced it, compared under shortlex order.
package choice

import "fmt"

// RunMax bounds the number of elements a Sequence may hold. A Live PRNG
// that tries to append past this bound rejects the current run with
// "run full" rather than growing without limit.
const RunMax = 16384

// Sequence is an ordered, finite sequence of uint32 values in
// [0, 2^32-1]. The zero value is an empty sequence ready to use.
type Sequence struct {
	values []uint32
}

// New returns a Sequence wrapping the given values (copied; the caller's
// slice is never aliased).
func New(values ...uint32) *Sequence {
	s := &Sequence{values: make([]uint32, len(values))}
	copy(s.values, values)
	return s
}

// Len returns the number of recorded choices.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// At returns the value at index i. Panics if i is out of range, mirroring
// slice indexing semantics — callers must check Len first.
func (s *Sequence) At(i int) uint32 {
	return s.values[i]
}

// Full reports whether the sequence has reached RunMax elements.
func (s *Sequence) Full() bool {
	return s.Len() >= RunMax
}

// Append records v as the next choice. Returns false without mutating the
// sequence if it is already Full.
func (s *Sequence) Append(v uint32) bool {
	if s.Full() {
		return false
	}
	s.values = append(s.values, v)
	return true
}

// Slice returns a new Sequence holding values[lo:hi]. Panics on an
// out-of-range or inverted range, matching Go slice semantics.
func (s *Sequence) Slice(lo, hi int) *Sequence {
	return New(s.values[lo:hi]...)
}

// Values returns a copy of the underlying values, safe for the caller to
// mutate.
func (s *Sequence) Values() []uint32 {
	out := make([]uint32, len(s.values))
	copy(out, s.values)
	return out
}

// Concat returns a new Sequence holding s's elements followed by other's.
func Concat(s, other *Sequence) *Sequence {
	out := make([]uint32, 0, s.Len()+other.Len())
	out = append(out, s.values...)
	out = append(out, other.values...)
	return New(out...)
}

// DropPrefix returns a new Sequence with the first n elements removed.
func (s *Sequence) DropPrefix(n int) *Sequence {
	if n <= 0 {
		return New(s.values...)
	}
	if n >= s.Len() {
		return New()
	}
	return New(s.values[n:]...)
}

// DropSuffix returns a new Sequence with the last n elements removed.
func (s *Sequence) DropSuffix(n int) *Sequence {
	if n <= 0 {
		return New(s.values...)
	}
	if n >= s.Len() {
		return New()
	}
	return New(s.values[:s.Len()-n]...)
}

// WithReplaced returns a copy of s with the element at index i set to v.
func (s *Sequence) WithReplaced(i int, v uint32) *Sequence {
	out := s.Values()
	out[i] = v
	return New(out...)
}

// WithRemoved returns a copy of s with the half-open range [lo,hi) deleted.
func (s *Sequence) WithRemoved(lo, hi int) *Sequence {
	if lo < 0 {
		lo = 0
	}
	if hi > s.Len() {
		hi = s.Len()
	}
	if lo >= hi {
		return New(s.values...)
	}
	out := make([]uint32, 0, s.Len()-(hi-lo))
	out = append(out, s.values[:lo]...)
	out = append(out, s.values[hi:]...)
	return New(out...)
}

// Compare implements the shortlex total order: strictly shorter sequences
// are smaller; equal-length sequences compare element-wise. Returns a
// negative number, zero, or a positive number, matching cmp.Compare.
func Compare(a, b *Sequence) int {
	if a.Len() != b.Len() {
		if a.Len() < b.Len() {
			return -1
		}
		return 1
	}
	for i := 0; i < a.Len(); i++ {
		if a.values[i] != b.values[i] {
			if a.values[i] < b.values[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether a is strictly shortlex-smaller than b.
func Less(a, b *Sequence) bool {
	return Compare(a, b) < 0
}

// Equal reports whether a and b hold identical values.
func Equal(a, b *Sequence) bool {
	return Compare(a, b) == 0
}

func (s *Sequence) String() string {
	return fmt.Sprintf("%v", s.values)
}
