// Copyright 2025 go-blocksort Authors
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

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// fileConfig is the TOML session description, e.g.
//
//	sizes = [1000, 100000]
//	distributions = ["random", "nearly_sorted"]
//	runs = 5
//	seed = 42
//	csv = "results.csv"
type fileConfig struct {
	Sizes         []int    `toml:"sizes"`
	Distributions []string `toml:"distributions"`
	Runs          int      `toml:"runs"`
	Seed          int64    `toml:"seed"`
	CSV           string   `toml:"csv"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config keys in %s: %v", path, undecoded)
	}
	return &fc, nil
}

// applyFileConfig merges config-file values into opts. Flags set explicitly
// on the command line keep their value; everything else the file mentions
// is taken from the file.
func applyFileConfig(cmd *cobra.Command, opts *options) error {
	fc, err := loadFileConfig(opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if len(fc.Sizes) > 0 && !flags.Changed("sizes") {
		opts.sizes = fc.Sizes
	}
	if len(fc.Distributions) > 0 && !flags.Changed("distributions") {
		opts.distributions = fc.Distributions
	}
	if fc.Runs > 0 && !flags.Changed("runs") {
		opts.runs = fc.Runs
	}
	if fc.Seed != 0 && !flags.Changed("seed") {
		opts.seed = fc.Seed
	}
	if fc.CSV != "" && !flags.Changed("csv") {
		opts.csvPath = fc.CSV
	}
	return nil
}
