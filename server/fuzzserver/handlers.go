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

package fuzzserver

import (
	"encoding/json"
	"net/http"

	"github.com/zintix-labs/fuzzlab/errs"
	"github.com/zintix-labs/fuzzlab/server/httperr"
)

type examplesRequest struct {
	Fuzzer string `json:"fuzzer"`
	Count  int    `json:"count"`
}

type examplesResponse struct {
	Fuzzer string `json:"fuzzer"`
	Values []any  `json:"values"`
}

// Examples handles POST /v1/examples: body names a built-in fuzzer and a
// count, response carries that many generated values as JSON.
func (h *Handler) Examples(w http.ResponseWriter, r *http.Request) {
	var req examplesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Errs(w, errs.New(errs.InvalidFuzzer, "malformed request body: %v", err))
		return
	}
	count := req.Count
	if count <= 0 {
		count = h.Cfg.Examples
	}

	values, err := generateNamed(req.Fuzzer, count)
	if err != nil {
		httperr.Log(h.Log, "fuzzserver: examples failed", err)
		httperr.Errs(w, err)
		return
	}
	writeJSON(w, examplesResponse{Fuzzer: req.Fuzzer, Values: values})
}

type shrinkRequest struct {
	Fuzzer    string `json:"fuzzer"`
	Predicate string `json:"predicate"`
	Seed      int64  `json:"seed"`
	Examples  int    `json:"examples"`
}

type shrinkResponse struct {
	Failed         bool     `json:"failed"`
	Counterexample any      `json:"counterexample,omitempty"`
	FailingRun     []uint32 `json:"failing_run,omitempty"`
	MinimalRun     []uint32 `json:"minimal_run,omitempty"`
	Replay         string   `json:"replay,omitempty"`
}

// Shrink handles POST /v1/shrink: body names a built-in fuzzer and one of
// its predicates, response carries the minimized counterexample (if the
// search found a failure within the example budget).
func (h *Handler) Shrink(w http.ResponseWriter, r *http.Request) {
	var req shrinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Errs(w, errs.New(errs.InvalidFuzzer, "malformed request body: %v", err))
		return
	}
	examples := req.Examples
	if examples <= 0 {
		examples = h.Cfg.Examples
	}
	seed := req.Seed
	if seed == 0 {
		seed = h.Cfg.Seed
	}

	resp, err := runNamed(h.Log, req.Fuzzer, req.Predicate, seed, examples, h.Cfg.MaxShrink)
	if err != nil {
		httperr.Log(h.Log, "fuzzserver: shrink failed", err)
		httperr.Errs(w, err)
		return
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
