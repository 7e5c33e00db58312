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

// Package textwidth renders generated string/char examples for terminal
// display. fuzz.Char can draw combining diacritics, emoji, and arbitrary
// code points (spec.md §4.5); this package is what makes those printable
// in a fixed-width column without the generation logic itself needing to
// know about terminals. Only the example-printing path in package runner
// uses this — never package fuzz or package shrink.
package textwidth

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFC normalization so combining diacritics drawn by
// fuzz.Char compose onto their base rune instead of printing as two
// glyphs.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Pad right-pads s with spaces so its terminal display width (accounting
// for wide CJK runes and zero-width combining marks) equals width. If s
// already displays wider than width, it is returned unchanged.
func Pad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// DisplayWidth returns the terminal column width of s after NFC
// normalization.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(Normalize(s))
}

// Truncate clips s to at most width display columns, appending "…" when
// it had to cut, so a long generated string example still fits one line
// of a report.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	normalized := Normalize(s)
	if runewidth.StringWidth(normalized) <= width {
		return normalized
	}
	return runewidth.Truncate(normalized, width, "…")
}
