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

// Package httperr maps the fuzzer engine's errs.Kind values onto HTTP
// status codes at the boundary layer, so the core errs package never
// has to know about net/http.
package httperr

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/zintix-labs/fuzzlab/errs"
)

// StatusCode maps err to an HTTP status code.
//
//   - context deadline/cancel -> 504/408 (request lifecycle)
//   - errs.InvalidFuzzer, errs.FilterExhaustion -> 400 (caller-caused)
//   - errs.RunExhaustion, errs.ReplayMismatch   -> 422 (request was well
//     formed, but the run could not reach a conclusion)
//   - errs.InternalInvariant, anything else     -> 500
func StatusCode(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	var e *errs.E
	if errors.As(err, &e) {
		switch e.Kind {
		case errs.InvalidFuzzer, errs.FilterExhaustion:
			return http.StatusBadRequest
		case errs.RunExhaustion, errs.ReplayMismatch:
			return http.StatusUnprocessableEntity
		case errs.InternalInvariant:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

// Errs writes err to w as a plain text body with the mapped status code.
func Errs(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	http.Error(w, err.Error(), StatusCode(err))
}

// Log logs err at a level derived from its mapped status code: 5xx is an
// error, everything else worth noting is a warning.
func Log(log *slog.Logger, msg string, err error) {
	if err == nil || log == nil {
		return
	}
	status := StatusCode(err)
	switch {
	case status >= 500:
		log.Error(msg, slog.Any("err", err))
	case status >= 400:
		log.Warn(msg, slog.Any("err", err))
	}
}
