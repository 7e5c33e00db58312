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
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zintix-labs/fuzzlab/runnercfg"
)

func TestExamplesReturnsRequestedCount(t *testing.T) {
	h := New(nil, runnercfg.Default())

	body := []byte(`{"fuzzer":"int","count":10}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/examples", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Examples(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp examplesResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if len(resp.Values) != 10 {
		t.Fatalf("expected 10 values, got %d", len(resp.Values))
	}
}

func TestExamplesRejectsUnknownFuzzer(t *testing.T) {
	h := New(nil, runnercfg.Default())

	body := []byte(`{"fuzzer":"not-a-fuzzer","count":5}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/examples", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Examples(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestShrinkFindsNegativeInt(t *testing.T) {
	cfg := runnercfg.Default()
	cfg.Examples = 5000
	h := New(nil, cfg)

	body := []byte(`{"fuzzer":"int","predicate":"non-negative","seed":0,"examples":5000}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/shrink", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Shrink(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp shrinkResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if !resp.Failed {
		t.Fatalf("expected a counterexample within 5000 examples")
	}
	if resp.Counterexample != float64(-1) {
		t.Fatalf("expected minimized counterexample -1, got %v", resp.Counterexample)
	}
}

func TestShrinkRejectsUnknownPredicate(t *testing.T) {
	h := New(nil, runnercfg.Default())

	body := []byte(`{"fuzzer":"int","predicate":"not-a-predicate"}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/shrink", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Shrink(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
