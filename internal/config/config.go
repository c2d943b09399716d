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

// Package config holds the parsed result of cmd/tym's flags and optional
// YAML config file, and the validation that turns an unchecked string into
// one of the CLI's closed option sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Function selects what the CLI front end does with a parsed program,
// mirroring spec.md §6's --function options.
type Function string

const (
	FunctionNothing             Function = "nothing"
	FunctionTestParsing         Function = "test_parsing"
	FunctionSMTOutput           Function = "smt_output"
	FunctionSMTSolve            Function = "smt_solve"
	FunctionCOutput             Function = "c_output"
	FunctionDumpHerbrandUniverse Function = "dump_hilbert_universe"
	FunctionDumpAtoms           Function = "dump_atoms"
)

var validFunctions = map[Function]bool{
	FunctionNothing:              true,
	FunctionTestParsing:          true,
	FunctionSMTOutput:            true,
	FunctionSMTSolve:             true,
	FunctionCOutput:              true,
	FunctionDumpHerbrandUniverse: true,
	FunctionDumpAtoms:            true,
}

// ErrInvalidFunction is returned by Validate when --function names something
// outside spec.md §6's closed list.
var ErrInvalidFunction = errors.New("config: invalid --function value")

// ModelOutput selects which parts of a solved model get printed, mirroring
// spec.md §6's --model_output options.
type ModelOutput string

const (
	ModelOutputValuation ModelOutput = "valuation"
	ModelOutputFact      ModelOutput = "fact"
	ModelOutputAll       ModelOutput = "all"
)

var validModelOutputs = map[ModelOutput]bool{
	ModelOutputValuation: true,
	ModelOutputFact:      true,
	ModelOutputAll:       true,
}

// ErrInvalidModelOutput is returned by Validate when --model_output names
// something outside spec.md §6's closed list.
var ErrInvalidModelOutput = errors.New("config: invalid --model_output value")

// ErrMissingInputFile is returned by Validate when no --input_file was given.
var ErrMissingInputFile = errors.New("config: --input_file is required")

// Config holds one run's worth of resolved options, whether they came from
// flags or a --config YAML file (flags given explicitly win; cmd/tym's
// PreRunE does the merge).
type Config struct {
	InputFile     string      `yaml:"input_file"`
	Query         string      `yaml:"query"`
	Function      Function    `yaml:"function"`
	ModelOutput   ModelOutput `yaml:"model_output"`
	Verbose       bool        `yaml:"verbose"`
	MaxVarWidth   int         `yaml:"max_var_width"`
	SolverTimeout time.Duration `yaml:"solver_timeout"`
}

// Default returns the zero-value defaults spec.md §6 names explicitly:
// model_output=valuation, solver_timeout=10000ms.
func Default() Config {
	return Config{
		Function:      FunctionNothing,
		ModelOutput:   ModelOutputValuation,
		SolverTimeout: 10000 * time.Millisecond,
	}
}

// ErrConfigFileStale is returned by CheckFresh when the config file's mtime
// predates the reference time the caller supplies -- cmd/tym uses this to
// fill spec.md §6's exit code 5 ("timestamp error"), a slot the core itself
// never produces but the CLI front end needs a use for.
var ErrConfigFileStale = errors.New("config: config file is older than the input file")

// Load reads a YAML config file over top of Default, the same
// read-then-unmarshal-over-defaults shape the pack's own config loader
// uses. A missing file is not an error: Load silently returns the defaults,
// since --config is optional.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// CheckFresh returns ErrConfigFileStale if the config file at path is older
// than reference (typically the input file's mtime).
func CheckFresh(path string, reference time.Time) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if info.ModTime().Before(reference) {
		return ErrConfigFileStale
	}
	return nil
}

// Validate checks c against spec.md §6's closed option sets and required
// fields, returning the first violation found.
func (c Config) Validate() error {
	if c.InputFile == "" {
		return ErrMissingInputFile
	}
	if !validFunctions[c.Function] {
		return fmt.Errorf("%w: %q", ErrInvalidFunction, c.Function)
	}
	if !validModelOutputs[c.ModelOutput] {
		return fmt.Errorf("%w: %q", ErrInvalidModelOutput, c.ModelOutput)
	}
	return nil
}
