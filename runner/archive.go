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
	"bytes"
	"encoding/json"

	"github.com/klauspost/compress/gzip"
	"github.com/zintix-labs/fuzzlab/choice"
	"github.com/zintix-labs/fuzzlab/errs"
)

// archivedRun is the JSON payload embedded in a .run.gz artifact.
type archivedRun struct {
	Seed       int64    `json:"seed"`
	FailingRun []uint32 `json:"failing_run"`
	MinimalRun []uint32 `json:"minimal_run"`
}

// ArchiveRun gzips a JSON encoding of a failing run plus its minimized
// counterexample, for attaching to a bug report. A nil minimalRun is
// encoded as an empty sequence.
func ArchiveRun(seed int64, failingRun, minimalRun *choice.Sequence) ([]byte, error) {
	payload := archivedRun{
		Seed:       seed,
		FailingRun: failingRun.Values(),
	}
	if minimalRun != nil {
		payload.MinimalRun = minimalRun.Values()
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(errs.InvalidFuzzer, err, "runner: failed to encode run archive")
	}

	var buf bytes.Buffer
	gw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, errs.Wrap(errs.InternalInvariant, err, "internals: runner: failed to open gzip writer")
	}
	if _, err := gw.Write(encoded); err != nil {
		return nil, errs.Wrap(errs.InvalidFuzzer, err, "runner: failed to write run archive")
	}
	if err := gw.Close(); err != nil {
		return nil, errs.Wrap(errs.InvalidFuzzer, err, "runner: failed to close run archive")
	}
	return buf.Bytes(), nil
}

// LoadArchivedRun reverses ArchiveRun: it gunzips and decodes a .run.gz
// payload back into its seed and choice sequences.
func LoadArchivedRun(data []byte) (seed int64, failingRun, minimalRun *choice.Sequence, err error) {
	gr, gerr := gzip.NewReader(bytes.NewReader(data))
	if gerr != nil {
		return 0, nil, nil, errs.Wrap(errs.InvalidFuzzer, gerr, "runner: not a valid run archive")
	}
	defer gr.Close()

	var payload archivedRun
	if derr := json.NewDecoder(gr).Decode(&payload); derr != nil {
		return 0, nil, nil, errs.Wrap(errs.InvalidFuzzer, derr, "runner: failed to decode run archive")
	}
	return payload.Seed, choice.New(payload.FailingRun...), choice.New(payload.MinimalRun...), nil
}
