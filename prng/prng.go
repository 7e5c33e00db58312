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

// Package prng implements the PRNG sum type: a Live generator backed by a
// RandomSource that records every draw into a ChoiceSequence, and a Replay
// generator that instead consumes a previously recorded ChoiceSequence.
//
// RollDice, ForcedChoice and WeightedBit are the only primitives either
// variant exposes; every fuzzer in package fuzz decomposes into calls to
// them, which is what makes shrinking
// possible without per-type shrinkers.
package prng

import (
	"github.com/zintix-labs/fuzzlab/choice"
	"github.com/zintix-labs/fuzzlab/internal/prngsrc"
)

// PRNG is implemented by Live and Replay. It is a closed sum type by
// convention (both variants live in this package); callers switch on the
// concrete type only when they need to, e.g. to inspect the recorded run.
type PRNG interface {
	// RollDice draws (Live) or peels (Replay) one value in [0, maxValue].
	// ok is false if the run should be Rejected — the caller must not use
	// the returned value or continue drawing from this PRNG afterwards.
	RollDice(maxValue uint32) (v uint32, reason string, ok bool)

	// ForcedChoice writes (Live) or verifies (Replay) the exact value n
	// with no randomness involved.
	ForcedChoice(n uint32) (reason string, ok bool)

	// WeightedBit draws (Live) or peels (Replay) a single 0/1 choice where
	// Live picks 1 with probability p instead of the uniform 50/50 that
	// RollDice(1) would give — this is rollDice(1, weighted[1-p,p]) from
	// the spec, the one rollDice call whose distribution is non-uniform.
	WeightedBit(p float64) (v uint32, reason string, ok bool)

	// Recorded returns the ChoiceSequence accumulated (Live) or remaining
	// to be consumed (Replay) so far.
	Recorded() *choice.Sequence
}

// Live wraps a RandomSource and an append-only ChoiceSequence being
// recorded. Each RollDice samples from source, appends the draw, and
// threads the new state — Live values are mutated in place because a run
// owns its PRNG exclusively (see spec §5 Concurrency & Resource Model).
type Live struct {
	source *prngsrc.RandomSource
	run    *choice.Sequence
}

// NewLive seeds a fresh Live PRNG from a 32-bit seed, starting from an
// empty ChoiceSequence.
func NewLive(seed uint32) *Live {
	return &Live{source: prngsrc.NewSeeded(seed), run: choice.New()}
}

// RollDice implements PRNG.
func (l *Live) RollDice(maxValue uint32) (uint32, string, bool) {
	if l.run.Full() {
		return 0, "run full", false
	}
	v := l.source.UniformUpTo(maxValue)
	l.run.Append(v)
	return v, "", true
}

// ForcedChoice implements PRNG.
func (l *Live) ForcedChoice(n uint32) (string, bool) {
	if l.run.Full() {
		return "run full", false
	}
	l.run.Append(n)
	return "", true
}

// WeightedBit implements PRNG.
func (l *Live) WeightedBit(p float64) (uint32, string, bool) {
	if l.run.Full() {
		return 0, "run full", false
	}
	v := uint32(0)
	if l.source.UniformFraction() < p {
		v = 1
	}
	l.run.Append(v)
	return v, "", true
}

// Recorded implements PRNG.
func (l *Live) Recorded() *choice.Sequence {
	return l.run
}

// Replay wraps a ChoiceSequence being consumed in order, with no
// randomness. Each RollDice/ForcedChoice peels the next element; running
// out, or a peeled element that disagrees with the request, rejects the
// run — this is how the shrinker validates candidate sequences.
type Replay struct {
	remaining *choice.Sequence
	pos       int
}

// NewReplay builds a Replay PRNG that will emit seq's elements in order.
func NewReplay(seq *choice.Sequence) *Replay {
	return &Replay{remaining: seq}
}

// RollDice implements PRNG.
func (r *Replay) RollDice(maxValue uint32) (uint32, string, bool) {
	if r.pos >= r.remaining.Len() {
		return 0, "replay exhausted", false
	}
	v := r.remaining.At(r.pos)
	if v > maxValue {
		return 0, "replay value exceeds maxValue", false
	}
	r.pos++
	return v, "", true
}

// ForcedChoice implements PRNG.
func (r *Replay) ForcedChoice(n uint32) (string, bool) {
	if r.pos >= r.remaining.Len() {
		return "replay exhausted", false
	}
	v := r.remaining.At(r.pos)
	if v != n {
		return "replay value disagrees with forced choice", false
	}
	r.pos++
	return "", true
}

// WeightedBit implements PRNG. Replay has no randomness: a weighted bit is
// just a bounded draw of 0 or 1, identical to RollDice(1).
func (r *Replay) WeightedBit(p float64) (uint32, string, bool) {
	return r.RollDice(1)
}

// Recorded returns the not-yet-consumed suffix of the original sequence.
func (r *Replay) Recorded() *choice.Sequence {
	return r.remaining.DropPrefix(r.pos)
}

// Consumed returns the prefix of the original sequence actually peeled so
// far — this is what a fuzzer run over a Replay PRNG "used", and is the
// sequence the shrinker compares candidates against.
func (r *Replay) Consumed() *choice.Sequence {
	return r.remaining.DropSuffix(r.remaining.Len() - r.pos)
}
