// Copyright (c) 2014, Kevin Walsh.  All rights reserved.
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

// Command tym compiles a Datalog program into an SMT-LIB2 theory and,
// optionally, drives an external SMT solver to enumerate query witnesses.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kevinawalsh/tym/internal/config"
	"github.com/kevinawalsh/tym/internal/telemetry"
)

const (
	exitOK = iota
	exitBadParameter
	exitNoInput
	exitInvalidInput
	exitSolverUnknown
	exitConfigStale
)

var (
	cfgFile string
	cfg     = config.Default()
)

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitBadParameter
	}
	return exitCode
}

// exitCode is set by runE on the way out, since cobra's RunE only reports
// success/failure and this CLI's exit codes are a larger closed set
// (spec.md §6).
var exitCode int

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tym",
		Short:         "Compile a Datalog program into an SMT-LIB2 theory",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = execute(cmd)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&cfg.InputFile, "input_file", "i", "", "Datalog program source (required)")
	flags.StringVarP(&cfg.Query, "query", "q", "", "Single-clause query")
	flags.StringVarP((*string)(&cfg.Function), "function", "f", string(config.FunctionNothing),
		"One of: nothing, test_parsing, smt_output, smt_solve, c_output, dump_hilbert_universe, dump_atoms")
	flags.StringVarP((*string)(&cfg.ModelOutput), "model_output", "m", string(config.ModelOutputValuation),
		"One of: valuation, fact, all")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose logging")
	flags.IntVar(&cfg.MaxVarWidth, "max_var_width", 0, "Max digits for fresh-variable suffixes")
	var timeoutMs int
	flags.IntVar(&timeoutMs, "solver_timeout", 10000, "Milliseconds; default 10000")
	flags.StringVar(&cfgFile, "config", "", "Optional YAML file holding any of the above flags")
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		cfg.SolverTimeout = time.Duration(timeoutMs) * time.Millisecond
		if cfgFile != "" {
			fromFile, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("input_file") && fromFile.InputFile != "" {
				cfg.InputFile = fromFile.InputFile
			}
			if !cmd.Flags().Changed("query") && fromFile.Query != "" {
				cfg.Query = fromFile.Query
			}
			if !cmd.Flags().Changed("verbose") && fromFile.Verbose {
				cfg.Verbose = fromFile.Verbose
			}
			if !cmd.Flags().Changed("function") && fromFile.Function != config.FunctionNothing {
				cfg.Function = fromFile.Function
			}
			if !cmd.Flags().Changed("model_output") && fromFile.ModelOutput != config.ModelOutputValuation {
				cfg.ModelOutput = fromFile.ModelOutput
			}
			if !cmd.Flags().Changed("max_var_width") && fromFile.MaxVarWidth != 0 {
				cfg.MaxVarWidth = fromFile.MaxVarWidth
			}
			if !cmd.Flags().Changed("solver_timeout") && fromFile.SolverTimeout != config.Default().SolverTimeout {
				cfg.SolverTimeout = fromFile.SolverTimeout
			}
		}
		return nil
	}
	return cmd
}

func execute(cmd *cobra.Command) int {
	log, err := telemetry.New(cfg.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitBadParameter
	}
	defer log.Sync()

	if cfgFile != "" {
		info, statErr := os.Stat(cfg.InputFile)
		if statErr == nil {
			if err := config.CheckFresh(cfgFile, info.ModTime()); err != nil {
				telemetry.Fatal(log, exitConfigStale, "config file is stale", err, zap.String("config", cfgFile))
				return exitConfigStale
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		telemetry.Fatal(log, exitBadParameter, "invalid configuration", err)
		return exitBadParameter
	}

	return runPipeline(log)
}
