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

package fuzz

import (
	"github.com/zintix-labs/fuzzlab/errs"
	"github.com/zintix-labs/fuzzlab/prng"
)

// Examples runs ListOfLength(n, f) once against a Live PRNG seeded with 0
// and returns the resulting list. If the run is Rejected, the reason is
// surfaced to the caller as a fatal *errs.E — this is the one place the
// core treats a rejection as an error value rather than a GenResult.
func Examples[A any](n int, f Fuzzer[A]) ([]A, error) {
	live := prng.NewLive(0)
	r := ListOfLength(n, f)(live)
	if r.IsRejected() {
		return nil, errs.New(errs.None, "Fuzz.examples: %s", r.Reason())
	}
	return r.Value(), nil
}
