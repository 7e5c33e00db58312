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

// Package genresult defines the outcome of running a Fuzzer against a
// PRNG: either a generated value, or a rejection with a reason.
package genresult

import "github.com/zintix-labs/fuzzlab/prng"

// Result is the outcome of one Fuzzer evaluation. Exactly one of the two
// constructors below produces a valid Result; the zero value is not
// meaningful.
type Result[A any] struct {
	value     A
	rejected  bool
	reason    string
	prngState prng.PRNG
}

// Generated builds a successful result carrying value and the PRNG state
// threaded after producing it.
func Generated[A any](value A, p prng.PRNG) Result[A] {
	return Result[A]{value: value, prngState: p}
}

// Rejected builds a failed result carrying the reason and the PRNG state
// at the point of rejection.
func Rejected[A any](reason string, p prng.PRNG) Result[A] {
	return Result[A]{rejected: true, reason: reason, prngState: p}
}

// IsGenerated reports whether this result is Generated.
func (r Result[A]) IsGenerated() bool { return !r.rejected }

// IsRejected reports whether this result is Rejected.
func (r Result[A]) IsRejected() bool { return r.rejected }

// Value returns the generated value. Only meaningful when IsGenerated.
func (r Result[A]) Value() A { return r.value }

// Reason returns the rejection reason. Only meaningful when IsRejected.
func (r Result[A]) Reason() string { return r.reason }

// PRNG returns the PRNG state threaded through this result.
func (r Result[A]) PRNG() prng.PRNG { return r.prngState }

// Map transforms a Generated value with f, propagating Rejected unchanged.
func Map[A, B any](r Result[A], f func(A) B) Result[B] {
	if r.rejected {
		return Rejected[B](r.reason, r.prngState)
	}
	return Generated(f(r.value), r.prngState)
}
