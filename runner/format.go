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

package runner

import (
	"fmt"

	"github.com/zintix-labs/fuzzlab/internal/fuzzstats"
	"github.com/zintix-labs/fuzzlab/internal/textwidth"
)

// FormatExample renders a generated string example for a terminal report:
// NFC-normalized so combining diacritics compose, padded to width
// columns, and truncated with an ellipsis if it's still too wide.
func FormatExample(s string, width int) string {
	return textwidth.Pad(textwidth.Truncate(s, width), width)
}

// Summarize computes summary statistics over a batch of numeric
// examples, for sanity-checking a distribution before spending a
// property run on it.
func Summarize(values []float64) fuzzstats.Summary {
	return fuzzstats.Summarize(values)
}

// FormatSummary renders a Summary as a short human-readable line.
func FormatSummary(s fuzzstats.Summary) string {
	if s.Count == 0 {
		return "no examples"
	}
	return fmt.Sprintf("n=%d mean=%.4g stddev=%.4g median=%.4g range=[%.4g, %.4g]",
		s.Count, s.Mean, s.StdDev, s.Median, s.Min, s.Max)
}
