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

// Package obslog builds the *slog.Logger used by package runner to report
// run progress and shrink results. The core packages (choice, prng, fuzz,
// shrink) never import this — they stay pure and silent, as required by
// spec.md §5.
package obslog

import (
	"io"
	"log/slog"
	"os"
)

// Mode selects a logging preset.
type Mode uint8

const (
	// ModeDev logs text to stderr at debug level, for local runner use.
	ModeDev Mode = iota
	// ModeProd logs JSON to stdout at info level, for CI log collection.
	ModeProd
	// ModeSilence discards everything.
	ModeSilence
)

// New returns a *slog.Logger built from a Mode preset.
func New(mode Mode) *slog.Logger {
	return slog.New(buildHandler(mode))
}

// NewWithHandler wraps an arbitrary slog.Handler, for callers that want
// to assemble their own (JSON/Text/ReplaceAttr/leveled) handler and still
// get a *slog.Logger compatible with package runner.
func NewWithHandler(h slog.Handler) *slog.Logger {
	if h == nil {
		h = buildHandler(ModeDev)
	}
	return slog.New(h)
}

func buildHandler(mode Mode) slog.Handler {
	switch mode {
	case ModeProd:
		return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	case ModeSilence:
		return slog.NewTextHandler(io.Discard, nil)
	case ModeDev:
		fallthrough
	default:
		return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
}
