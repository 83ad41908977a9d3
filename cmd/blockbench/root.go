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
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/blocksort/go-blocksort/bench"
)

type options struct {
	sizes         []int
	distributions []string
	runs          int
	seed          int64
	csvPath       string
	configPath    string
	verbose       bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "blockbench",
		Short:         "Benchmark adaptive block sort against standard algorithms",
		Long:          "Run the adaptive block sort and reference algorithms over generated inputs, measuring wall-clock time, allocation volume and correctness per run.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmarks(cmd, opts)
		},
	}

	cmd.Flags().IntSliceVar(&opts.sizes, "sizes", []int{1000, 10000, 100000}, "input sizes to benchmark")
	cmd.Flags().StringSliceVar(&opts.distributions, "distributions", distributionNames(bench.AllDistributions()), "input distributions to benchmark")
	cmd.Flags().IntVar(&opts.runs, "runs", 5, "runs per task, averaged")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "random seed for input generation")
	cmd.Flags().StringVar(&opts.csvPath, "csv", "", "write results to this CSV file")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML config file; flags override its values")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log per-task progress to stderr")

	return cmd
}

func runBenchmarks(cmd *cobra.Command, opts *options) error {
	logger, err := buildLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if opts.configPath != "" {
		if err := applyFileConfig(cmd, opts); err != nil {
			return err
		}
	}

	distributions := make([]bench.Distribution, 0, len(opts.distributions))
	for _, name := range opts.distributions {
		d, err := bench.ParseDistribution(name)
		if err != nil {
			return err
		}
		distributions = append(distributions, d)
	}

	cfg := bench.Config{
		Sizes:         opts.sizes,
		Distributions: distributions,
		Runs:          opts.runs,
		Seed:          opts.seed,
	}

	logger.Info("starting benchmark session",
		zap.Ints("sizes", cfg.Sizes),
		zap.Int("runs", cfg.Runs),
		zap.Int64("seed", cfg.Seed),
		zap.Int("tasks", cfg.TaskCount()),
	)

	bar := progressbar.NewOptions(cfg.TaskCount(),
		progressbar.OptionSetDescription("benchmarking"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	cfg.OnProgress = func(done, total int) {
		_ = bar.Set(done)
		logger.Debug("task finished", zap.Int("done", done), zap.Int("total", total))
	}

	results, err := cfg.Run()
	if err != nil {
		return err
	}
	_ = bar.Finish()

	out := cmd.OutOrStdout()
	writeHostHeader(out, bench.CollectHostInfo())
	renderTable(out, results)

	if opts.csvPath != "" {
		if err := writeCSV(opts.csvPath, results); err != nil {
			return err
		}
		logger.Info("results saved", zap.String("path", opts.csvPath))
		fmt.Fprintf(out, "\nResults saved to %s\n", opts.csvPath)
	}

	return nil
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}

func distributionNames(ds []bench.Distribution) []string {
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = string(d)
	}
	return names
}
