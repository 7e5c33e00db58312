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

// Package fuzzserver exposes the core engine over HTTP for remote/CI
// dashboards that want examples or a shrink run without a Go toolchain
// of their own: POST /v1/examples samples a named built-in fuzzer, POST
// /v1/shrink runs a named fuzzer against a named predicate and reports
// the minimized counterexample. This mirrors the teacher's
// server/api/v1/sim.go shape: a handler struct wrapping the engine,
// registered onto a netsvr.NetRouter, errors mapped through httperr.
package fuzzserver

import (
	"log/slog"

	"github.com/zintix-labs/fuzzlab/runnercfg"
	"github.com/zintix-labs/fuzzlab/server/netsvr"
)

// Handler wraps the engine config a request falls back on when the
// request body omits seed/examples, plus an optional logger.
type Handler struct {
	Log *slog.Logger
	Cfg runnercfg.RunConfig
}

// New builds a Handler. log may be nil to stay silent.
func New(log *slog.Logger, cfg runnercfg.RunConfig) *Handler {
	return &Handler{Log: log, Cfg: cfg}
}

// Register mounts this handler's routes under r, grouped at "/v1" the
// way the teacher's registerV1API groups its own endpoints.
func Register(r netsvr.NetRouter, h *Handler) {
	r.Group("/v1", func(v1 netsvr.NetRouter) {
		v1.Post("/examples", h.Examples)
		v1.Post("/shrink", h.Shrink)
	})
}
