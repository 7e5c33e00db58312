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

const (
	highSurrogateLo = 0xD800
	highSurrogateHi = 0xDBFF
	maxCodePoint    = 0x10FFFF
)

// AsciiChar draws a printable ASCII rune in [32, 126].
func AsciiChar() Fuzzer[rune] {
	return Map(func(n int) rune { return rune(n) }, IntRange(32, 126))
}

var (
	whitespaceChars = []rune{' ', '\t', '\n'}
	diacriticChars  = []rune{0x302, 0x303, 0x308}
	emojiChars      = []rune{'\U0001F308', '❤', '\U0001F525'} // 🌈 ❤ 🔥
)

// isHighSurrogate reports whether r falls in the UTF-16 high-surrogate
// range, which is not a valid standalone code point.
func isHighSurrogate(r rune) bool {
	return r >= highSurrogateLo && r <= highSurrogateHi
}

// arbitraryUnicode draws any code point in [0, 0x10FFFF] excluding high
// surrogates.
func arbitraryUnicode() Fuzzer[rune] {
	return Filter(func(r rune) bool { return !isHighSurrogate(r) },
		Map(func(n int) rune { return rune(n) }, IntRange(0, maxCodePoint)))
}

// Char draws a rune biased toward printable ASCII, with smaller shares of
// whitespace, combining diacritics, emoji, and arbitrary Unicode. No
// output ever falls in the high-surrogate range.
func Char() Fuzzer[rune] {
	entries := []WeightedFuzzer[rune]{
		{Weight: 5, Fuzzer: AsciiChar()},
		{Weight: 2, Fuzzer: OneOfValues(whitespaceChars...)},
		{Weight: 1, Fuzzer: OneOfValues(diacriticChars...)},
		{Weight: 1, Fuzzer: OneOfValues(emojiChars...)},
		{Weight: 1, Fuzzer: arbitraryUnicode()},
	}
	return IntFrequency(entries)
}
