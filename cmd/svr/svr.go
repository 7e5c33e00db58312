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

// cmd/svr runs the engine behind an HTTP surface (server/fuzzserver) for
// remote/CI dashboards that want examples or a shrink run without their
// own Go toolchain. It is a lab server in the same sense as the
// teacher's cmd/svr: all endpoints are open, there is no auth layer, and
// a real deployment should assemble its own production wiring.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/zintix-labs/fuzzlab/internal/obslog"
	"github.com/zintix-labs/fuzzlab/runnercfg"
	"github.com/zintix-labs/fuzzlab/server/app"
	"github.com/zintix-labs/fuzzlab/server/fuzzserver"
	"github.com/zintix-labs/fuzzlab/server/netsvr"
	"github.com/zintix-labs/fuzzlab/server/netsvr/middleware"
)

var cfg = new(config)

type config struct {
	addr       string
	logMode    string
	configPath string
}

func bindVar() {
	flag.StringVar(&cfg.addr, "addr", ":5808", "address to listen on")
	flag.StringVar(&cfg.logMode, "log-mode", "dev", "log mode: dev|prod|silence")
	flag.StringVar(&cfg.configPath, "config", "", "path to a runnercfg YAML file (optional)")
	flag.Parse()
}

func (cfg *config) logModeValue() obslog.Mode {
	switch cfg.logMode {
	case "prod":
		return obslog.ModeProd
	case "silence":
		return obslog.ModeSilence
	default:
		return obslog.ModeDev
	}
}

func loadConfig(log *slog.Logger) runnercfg.RunConfig {
	if cfg.configPath == "" {
		return runnercfg.Default()
	}
	data, err := os.ReadFile(cfg.configPath)
	if err != nil {
		log.Error("svr: failed to read config", "err", err)
		os.Exit(1)
	}
	rc, err := runnercfg.Load(data)
	if err != nil {
		log.Error("svr: invalid config", "err", err)
		os.Exit(1)
	}
	return rc
}

func main() {
	bindVar()
	log := obslog.New(cfg.logModeValue())
	rc := loadConfig(log)

	svr := netsvr.NewChiServer(cfg.addr)
	svr.Use(middleware.RequestID)
	svr.Use(middleware.AccessLog(log))
	svr.Use(middleware.Recover)
	svr.Use(middleware.Compression)

	h := fuzzserver.New(log, rc)
	fuzzserver.Register(svr, h)

	log.Info("svr: listening", "addr", cfg.addr)
	// svr satisfies app.Component (Run/Shutdown), so the lifecycle —
	// start, wait for SIGINT/SIGTERM or a Run error, shut down with a
	// timeout — is handled by app.App instead of being reimplemented here.
	if err := app.NewWith(svr).Run(); err != nil {
		log.Error("svr: stopped", "err", err)
		os.Exit(1)
	}
}
