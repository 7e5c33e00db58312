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

// cmd/examples is a small demo binary: it loads a runnercfg.RunConfig
// from an optional YAML file, pulls that many examples from one of a
// handful of built-in fuzzers, and prints them with a progress bar.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/zintix-labs/fuzzlab/fuzz"
	"github.com/zintix-labs/fuzzlab/runner"
	"github.com/zintix-labs/fuzzlab/runnercfg"
)

var cfg = new(config)

type config struct {
	configPath string
	fuzzerName string
	showPB     bool
}

func bindVar() {
	flag.StringVar(&cfg.configPath, "config", "", "path to a runnercfg YAML file (optional)")
	flag.StringVar(&cfg.fuzzerName, "fuzzer", "int", "built-in fuzzer to sample: int, float, string, bool")
	flag.BoolVar(&cfg.showPB, "progress", true, "show a progress bar while generating")
	flag.Parse()
}

func loadConfig() runnercfg.RunConfig {
	if cfg.configPath == "" {
		return runnercfg.Default()
	}
	data, err := os.ReadFile(cfg.configPath)
	if err != nil {
		log.Fatalf("examples: failed to read config: %v", err)
	}
	rc, err := runnercfg.Load(data)
	if err != nil {
		log.Fatalf("examples: invalid config: %v", err)
	}
	return rc
}

func main() {
	bindVar()
	rc := loadConfig()

	bar := pb.StartNew(rc.Examples)
	if !cfg.showPB {
		bar.SetWriter(io.Discard)
	}

	switch cfg.fuzzerName {
	case "int":
		printExamples(rc, fuzz.Int(), bar)
	case "float":
		printExamples(rc, fuzz.Float(), bar)
	case "string":
		printExamples(rc, fuzz.String(), bar)
	case "bool":
		printExamples(rc, fuzz.Bool(), bar)
	default:
		log.Fatalf("examples: unknown fuzzer %q", cfg.fuzzerName)
	}
	bar.Finish()
}

func printExamples[A any](rc runnercfg.RunConfig, f fuzz.Fuzzer[A], bar *pb.ProgressBar) {
	vals, err := fuzz.Examples(rc.Examples, f)
	if err != nil {
		log.Fatalf("examples: %v", err)
	}
	for _, v := range vals {
		if s, ok := any(v).(string); ok {
			fmt.Println(runner.FormatExample(s, 20))
		} else {
			fmt.Printf("%v\n", v)
		}
		bar.Increment()
	}
}
