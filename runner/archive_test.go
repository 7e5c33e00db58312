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
	"testing"

	"github.com/zintix-labs/fuzzlab/choice"
)

func TestArchiveRoundTrip(t *testing.T) {
	failing := choice.New(1, 2, 3, 4)
	minimal := choice.New(1)

	data, err := ArchiveRun(7, failing, minimal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected non-empty archive")
	}

	seed, gotFailing, gotMinimal, err := LoadArchivedRun(data)
	if err != nil {
		t.Fatalf("unexpected error loading archive: %v", err)
	}
	if seed != 7 {
		t.Fatalf("expected seed 7, got %d", seed)
	}
	if !choice.Equal(gotFailing, failing) {
		t.Fatalf("failing run mismatch: got %v want %v", gotFailing, failing)
	}
	if !choice.Equal(gotMinimal, minimal) {
		t.Fatalf("minimal run mismatch: got %v want %v", gotMinimal, minimal)
	}
}

func TestLoadArchivedRunRejectsGarbage(t *testing.T) {
	_, _, _, err := LoadArchivedRun([]byte("not a gzip stream"))
	if err == nil {
		t.Fatalf("expected error for non-gzip input")
	}
}
