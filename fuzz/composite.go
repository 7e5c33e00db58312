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

// Unit is the fuzzer for the zero-information value, used wherever only
// the shape of a composite (e.g. list length) matters, not its payload.
func Unit() Fuzzer[struct{}] {
	return Const(struct{}{})
}

// Bool shrinks false before true.
func Bool() Fuzzer[bool] {
	return OneOfValues(false, true)
}

// weightedBit draws a single RollDice(1) whose live distribution favors 1
// with probability p instead of the uniform 50/50 — the one
// non-uniformly-distributed rollDice call in the system (spec §4.1).
func weightedBit(p float64) Fuzzer[uint32] {
	return func(prn prng.PRNG) genresult.Result[uint32] {
		v, reason, ok := prn.WeightedBit(p)
		if !ok {
			return genresult.Rejected[uint32](reason, prn)
		}
		return genresult.Generated(v, prn)
	}
}

// WeightedBool draws true with probability p (clamped to [0,1]). At the
// extremes it uses ForcedChoice instead of a weighted draw, since the
// outcome is then certain.
func WeightedBool(p float64) Fuzzer[bool] {
	clamped := p
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 1 {
		clamped = 1
	}
	if clamped <= 0 {
		return Map(func(struct{}) bool { return false }, ForcedChoice(0))
	}
	if clamped >= 1 {
		return Map(func(struct{}) bool { return true }, ForcedChoice(1))
	}
	return Map(func(n uint32) bool { return n == 1 }, weightedBit(clamped))
}

// Order mirrors a three-way comparison result; shrinks LT < EQ < GT.
type Order int

const (
	OrderLT Order = iota
	OrderEQ
	OrderGT
)

// OrderFuzzer draws one of LT, EQ, GT.
func OrderFuzzer() Fuzzer[Order] {
	return OneOfValues(OrderLT, OrderEQ, OrderGT)
}

// Pair is the output type of PairOf.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf draws a Pair by sequencing fa then fb.
func PairOf[A, B any](fa Fuzzer[A], fb Fuzzer[B]) Fuzzer[Pair[A, B]] {
	return Map2(func(a A, b B) Pair[A, B] { return Pair[A, B]{First: a, Second: b} }, fa, fb)
}

// Triple is the output type of TripleOf.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// TripleOf draws a Triple by sequencing fa, fb, fc.
func TripleOf[A, B, C any](fa Fuzzer[A], fb Fuzzer[B], fc Fuzzer[C]) Fuzzer[Triple[A, B, C]] {
	return Map3(func(a A, b B, c C) Triple[A, B, C] {
		return Triple[A, B, C]{First: a, Second: b, Third: c}
	}, fa, fb, fc)
}

// Maybe is the output type of MaybeOf: Present reports whether Value is
// meaningful, matching an Option/Maybe sum type without a generic enum.
type Maybe[A any] struct {
	Present bool
	Value   A
}

// MaybeOf draws None 1-in-4 and Some(inner) 3-in-4.
func MaybeOf[A any](inner Fuzzer[A]) Fuzzer[Maybe[A]] {
	var none Maybe[A]
	entries := []WeightedFuzzer[Maybe[A]]{
		{Weight: 1, Fuzzer: Const(none)},
		{Weight: 3, Fuzzer: Map(func(a A) Maybe[A] { return Maybe[A]{Present: true, Value: a} }, inner)},
	}
	return IntFrequency(entries)
}

// EitherResult is the output type of ResultOf: Ok reports whether Value or
// Err is meaningful.
type EitherResult[A any] struct {
	Ok    bool
	Value A
	Err   string
}

// ResultOf draws Err(errFuzzer) 1-in-4 and Ok(okFuzzer) 3-in-4.
func ResultOf[A any](errFuzzer Fuzzer[string], okFuzzer Fuzzer[A]) Fuzzer[EitherResult[A]] {
	entries := []WeightedFuzzer[EitherResult[A]]{
		{Weight: 1, Fuzzer: Map(func(e string) EitherResult[A] { return EitherResult[A]{Err: e} }, errFuzzer)},
		{Weight: 3, Fuzzer: Map(func(a A) EitherResult[A] { return EitherResult[A]{Ok: true, Value: a} }, okFuzzer)},
	}
	return IntFrequency(entries)
}
