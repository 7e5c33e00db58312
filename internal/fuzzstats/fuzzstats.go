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

// Package fuzzstats summarizes a batch of numeric examples pulled from a
// fuzzer, so a caller can sanity-check a distribution (e.g. "is IntRange
// actually uniform-ish over this range?") before spending a property run
// on it. This is reporting sugar over fuzz.Examples, not part of the
// core algebra — the core never imports this package.
package fuzzstats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary holds the headline numbers for a batch of float64 examples.
type Summary struct {
	Count   int
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
	Median  float64
	Buckets []Bucket
}

// Bucket is one histogram bar in an evenly spaced partition of [Min, Max].
type Bucket struct {
	Lo, Hi float64
	Count  int
}

// Summarize computes Summary over values. An empty slice yields a
// zero-value Summary with Count 0.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mean, std := stat.PopMeanStdDev(sorted, nil)

	s := Summary{
		Count:  len(sorted),
		Mean:   mean,
		StdDev: std,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
	}
	s.Buckets = histogram(sorted, 10)
	return s
}

// histogram partitions [min,max] into n evenly spaced buckets and counts
// how many (already sorted) values land in each.
func histogram(sorted []float64, n int) []Bucket {
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		return []Bucket{{Lo: lo, Hi: hi, Count: len(sorted)}}
	}
	width := (hi - lo) / float64(n)
	buckets := make([]Bucket, n)
	for i := range buckets {
		buckets[i] = Bucket{Lo: lo + float64(i)*width, Hi: lo + float64(i+1)*width}
	}
	for _, v := range sorted {
		idx := int((v - lo) / width)
		if idx >= n {
			idx = n - 1
		}
		buckets[idx].Count++
	}
	return buckets
}
