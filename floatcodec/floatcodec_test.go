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

package floatcodec

import (
	"math"
	"testing"
)

func TestWellShrinkingFloatVectors(t *testing.T) {
	cases := []struct {
		hi, lo uint32
		want   float64
	}{
		{0, 0, 0.0},
		{2, 0, 1.0},   // hi=2 -> negate=false, whole=1, lo=0 -> 1.0
		{3, 0, -1.0},  // hi=3 -> negate=true, whole=1
		{4, 0, 2.0},   // whole=2
		{0, 1 << 31, 0.5}, // hi=0 -> whole=0, lo=2^31 -> frac=0.5
	}
	for _, c := range cases {
		got := WellShrinkingFloat(c.hi, c.lo)
		if got != c.want {
			t.Fatalf("WellShrinkingFloat(%d,%d) = %v, want %v", c.hi, c.lo, got, c.want)
		}
	}
}

func TestWellShrinkingFloatTotality(t *testing.T) {
	for _, hi := range []uint32{0, 1, 2, 3, 0xFFFFFFFF, 0x80000000} {
		for _, lo := range []uint32{0, 1, 0xFFFFFFFF, 0x80000000} {
			v := WellShrinkingFloat(hi, lo)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("WellShrinkingFloat(%d,%d) produced non-finite %v", hi, lo, v)
			}
		}
	}
}

func TestFractionalFloatRange(t *testing.T) {
	for _, hi := range []uint32{0, 1, 0xFFFFF, 0x12345} {
		for _, lo := range []uint32{0, 1, 0xFFFFFFFF} {
			v := FractionalFloat(hi, lo)
			if v < 0 || v >= 1 {
				t.Fatalf("FractionalFloat(%d,%d) = %v out of [0,1)", hi, lo, v)
			}
		}
	}
}

func TestMaxFractionalFloatIsLargest(t *testing.T) {
	maxV := MaxFractionalFloat()
	if maxV >= 1 || maxV <= 0.999 {
		t.Fatalf("MaxFractionalFloat = %v, want very close to 1", maxV)
	}
	if FractionalFloat(0, 0) >= maxV {
		t.Fatalf("expected MaxFractionalFloat to exceed FractionalFloat(0,0)")
	}
}
