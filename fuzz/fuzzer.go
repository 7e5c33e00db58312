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

// Package fuzz implements the Fuzzer combinator algebra: the opaque
// Fuzzer[A] type, its combinator surface (Map, Map2..Map5, AndMap,
// AndThen, Filter, Const, Invalid), and the primitive fuzzers built
// from it (int.go, float.go, char.go, string.go, list.go, composite.go,
// frequency.go).
//
// Every fuzzer reduces, directly or through composition, to calls on
// RollDice, ForcedChoice and WeightedBit — the three PRNG primitives in
// package prng.
// Nothing in this package touches randomness directly; that keeps a
// Fuzzer's choice layout (and therefore its shrink behavior) entirely a
// property of how its combinators are composed.
package fuzz

import (
	"github.com/zintix-labs/fuzzlab/errs"
	"github.com/zintix-labs/fuzzlab/genresult"
	"github.com/zintix-labs/fuzzlab/prng"
)

// Fuzzer is a pure function from a PRNG to a GenResult. Two Fuzzer values
// are equal under extensional behavior only; there is no useful identity
// comparison, matching spec's "opaque value" framing.
type Fuzzer[A any] func(p prng.PRNG) genresult.Result[A]

// Generate runs f against p once. This is the one-shot evaluation entry
// point exposed to the harness.
func Generate[A any](p prng.PRNG, f Fuzzer[A]) genresult.Result[A] {
	return f(p)
}

// RollDice is the sole source of randomness in the system. Every
// nondeterministic fuzzer decomposes into one or more RollDice calls.
func RollDice(maxValue uint32) Fuzzer[uint32] {
	return func(p prng.PRNG) genresult.Result[uint32] {
		v, reason, ok := p.RollDice(maxValue)
		if !ok {
			return genresult.Rejected[uint32](reason, p)
		}
		return genresult.Generated(v, p)
	}
}

// ForcedChoice writes exactly n with no randomness. On Replay it verifies
// the peeled element equals n; this is how the shrinker validates
// candidate reductions that depend on exact recorded values (e.g. the
// list-length continuation protocol in list.go).
func ForcedChoice(n uint32) Fuzzer[struct{}] {
	return func(p prng.PRNG) genresult.Result[struct{}] {
		reason, ok := p.ForcedChoice(n)
		if !ok {
			return genresult.Rejected[struct{}](reason, p)
		}
		return genresult.Generated(struct{}{}, p)
	}
}

// Const consumes no choices and always returns x.
func Const[A any](x A) Fuzzer[A] {
	return func(p prng.PRNG) genresult.Result[A] {
		return genresult.Generated(x, p)
	}
}

// Invalid always rejects with reason, never writing to the ChoiceSequence.
func Invalid[A any](reason string) Fuzzer[A] {
	return func(p prng.PRNG) genresult.Result[A] {
		return genresult.Rejected[A](reason, p)
	}
}

// Map runs fa, applies f to its value, and threads the PRNG through.
// Rejection propagates unchanged.
func Map[A, B any](f func(A) B, fa Fuzzer[A]) Fuzzer[B] {
	return func(p prng.PRNG) genresult.Result[B] {
		ra := fa(p)
		if ra.IsRejected() {
			return genresult.Rejected[B](ra.Reason(), ra.PRNG())
		}
		return genresult.Generated(f(ra.Value()), ra.PRNG())
	}
}

// Map2 sequences fa then fb left to right, threading the PRNG so fb's
// choices immediately follow fa's. The sequencing order is observable: it
// defines the ChoiceSequence layout and therefore the shrink structure.
func Map2[A, B, C any](f func(A, B) C, fa Fuzzer[A], fb Fuzzer[B]) Fuzzer[C] {
	return func(p prng.PRNG) genresult.Result[C] {
		ra := fa(p)
		if ra.IsRejected() {
			return genresult.Rejected[C](ra.Reason(), ra.PRNG())
		}
		rb := fb(ra.PRNG())
		if rb.IsRejected() {
			return genresult.Rejected[C](rb.Reason(), rb.PRNG())
		}
		return genresult.Generated(f(ra.Value(), rb.Value()), rb.PRNG())
	}
}

// Map3 sequences three fuzzers left to right.
func Map3[A, B, C, D any](f func(A, B, C) D, fa Fuzzer[A], fb Fuzzer[B], fc Fuzzer[C]) Fuzzer[D] {
	return func(p prng.PRNG) genresult.Result[D] {
		ra := fa(p)
		if ra.IsRejected() {
			return genresult.Rejected[D](ra.Reason(), ra.PRNG())
		}
		rb := fb(ra.PRNG())
		if rb.IsRejected() {
			return genresult.Rejected[D](rb.Reason(), rb.PRNG())
		}
		rc := fc(rb.PRNG())
		if rc.IsRejected() {
			return genresult.Rejected[D](rc.Reason(), rc.PRNG())
		}
		return genresult.Generated(f(ra.Value(), rb.Value(), rc.Value()), rc.PRNG())
	}
}

// Map4 sequences four fuzzers left to right.
func Map4[A, B, C, D, E any](f func(A, B, C, D) E, fa Fuzzer[A], fb Fuzzer[B], fc Fuzzer[C], fd Fuzzer[D]) Fuzzer[E] {
	return func(p prng.PRNG) genresult.Result[E] {
		ra := fa(p)
		if ra.IsRejected() {
			return genresult.Rejected[E](ra.Reason(), ra.PRNG())
		}
		rb := fb(ra.PRNG())
		if rb.IsRejected() {
			return genresult.Rejected[E](rb.Reason(), rb.PRNG())
		}
		rc := fc(rb.PRNG())
		if rc.IsRejected() {
			return genresult.Rejected[E](rc.Reason(), rc.PRNG())
		}
		rd := fd(rc.PRNG())
		if rd.IsRejected() {
			return genresult.Rejected[E](rd.Reason(), rd.PRNG())
		}
		return genresult.Generated(f(ra.Value(), rb.Value(), rc.Value(), rd.Value()), rd.PRNG())
	}
}

// Map5 sequences five fuzzers left to right.
func Map5[A, B, C, D, E, F any](f func(A, B, C, D, E) F, fa Fuzzer[A], fb Fuzzer[B], fc Fuzzer[C], fd Fuzzer[D], fe Fuzzer[E]) Fuzzer[F] {
	return func(p prng.PRNG) genresult.Result[F] {
		ra := fa(p)
		if ra.IsRejected() {
			return genresult.Rejected[F](ra.Reason(), ra.PRNG())
		}
		rb := fb(ra.PRNG())
		if rb.IsRejected() {
			return genresult.Rejected[F](rb.Reason(), rb.PRNG())
		}
		rc := fc(rb.PRNG())
		if rc.IsRejected() {
			return genresult.Rejected[F](rc.Reason(), rc.PRNG())
		}
		rd := fd(rc.PRNG())
		if rd.IsRejected() {
			return genresult.Rejected[F](rd.Reason(), rd.PRNG())
		}
		re := fe(rd.PRNG())
		if re.IsRejected() {
			return genresult.Rejected[F](re.Reason(), re.PRNG())
		}
		return genresult.Generated(f(ra.Value(), rb.Value(), rc.Value(), rd.Value(), re.Value()), re.PRNG())
	}
}

// AndMap is the applicative apply: it runs ff then fa, in that order, and
// applies the function ff produced to fa's value.
func AndMap[A, B any](ff Fuzzer[func(A) B], fa Fuzzer[A]) Fuzzer[B] {
	return Map2(func(f func(A) B, a A) B { return f(a) }, ff, fa)
}

// AndThen (bind/flatMap) generates a from fa, then runs f(a) with the
// resulting PRNG, so f(a)'s choices immediately follow fa's.
func AndThen[A, B any](fa Fuzzer[A], f func(A) Fuzzer[B]) Fuzzer[B] {
	return func(p prng.PRNG) genresult.Result[B] {
		ra := fa(p)
		if ra.IsRejected() {
			return genresult.Rejected[B](ra.Reason(), ra.PRNG())
		}
		return f(ra.Value())(ra.PRNG())
	}
}

// maxFilterAttempts is the total number of draws Filter will try
// (including the first) before rejecting with filter-exhaustion.
const maxFilterAttempts = 16

// Filter retries fa until pred holds, up to maxFilterAttempts total draws;
// each retry consumes fresh choices with no backtracking of previous ones.
// On the final failure the run is Rejected with a "too many filtered"
// reason. Prefer Map onto a narrower domain over Filter where possible —
// Filter is a retry loop, not a domain restriction.
func Filter[A any](pred func(A) bool, fa Fuzzer[A]) Fuzzer[A] {
	return func(p prng.PRNG) genresult.Result[A] {
		cur := p
		for attempt := 0; attempt < maxFilterAttempts; attempt++ {
			r := fa(cur)
			if r.IsRejected() {
				return genresult.Rejected[A](r.Reason(), r.PRNG())
			}
			if pred(r.Value()) {
				return r
			}
			cur = r.PRNG()
		}
		reason := errs.New(errs.FilterExhaustion, "Fuzz.filter: too many filtered values, giving up").Error()
		return genresult.Rejected[A](reason, cur)
	}
}
