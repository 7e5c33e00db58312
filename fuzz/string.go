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

// StringOfLengthBetween draws a string of length lo..hi (in runes) built
// from item.
func StringOfLengthBetween(lo, hi int, item Fuzzer[rune]) Fuzzer[string] {
	return Map(func(rs []rune) string { return string(rs) }, ListOfLengthBetween(lo, hi, item))
}

// String draws a string of 0..10 runes from Char.
func String() Fuzzer[string] {
	return StringOfLengthBetween(0, 10, Char())
}

// AsciiString draws a string of 0..10 runes from AsciiChar.
func AsciiString() Fuzzer[string] {
	return StringOfLengthBetween(0, 10, AsciiChar())
}
