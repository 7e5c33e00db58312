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

package textwidth

import "testing"

func TestPadShortString(t *testing.T) {
	got := Pad("hi", 5)
	if got != "hi   " {
		t.Fatalf("expected padded string of width 5, got %q", got)
	}
}

func TestPadAlreadyWideEnough(t *testing.T) {
	got := Pad("hello", 3)
	if got != "hello" {
		t.Fatalf("expected unchanged string, got %q", got)
	}
}

func TestDisplayWidthASCII(t *testing.T) {
	if w := DisplayWidth("abc"); w != 3 {
		t.Fatalf("expected width 3, got %d", w)
	}
}

func TestTruncateShortString(t *testing.T) {
	if got := Truncate("abc", 10); got != "abc" {
		t.Fatalf("expected unchanged string, got %q", got)
	}
}

func TestTruncateLongString(t *testing.T) {
	got := Truncate("abcdefghij", 5)
	if DisplayWidth(got) > 5 {
		t.Fatalf("truncated string %q exceeds width 5", got)
	}
}

func TestNormalizeComposesCombiningMark(t *testing.T) {
	decomposed := "é" // e + combining acute accent, NFD form
	normalized := Normalize(decomposed)
	if len([]rune(normalized)) != 1 {
		t.Fatalf("expected NFC normalization to compose into a single rune, got %q", normalized)
	}
}
