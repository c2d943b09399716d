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

// Package telemetry wraps go.uber.org/zap for the structured logging this
// module's CLI front end needs: one logger per run, verbosity controlled by
// a single flag, and a fatal-error path that logs a structured entry
// immediately before the process exits with a coded status.
package telemetry

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production-profile zap logger, raised to debug level when
// verbose is set. Mirrors the pack's own CLI-logger setup: one
// zap.NewProductionConfig, one level bump, one Build call.
func New(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// Fatal logs a structured error entry naming the offending symbol and the
// exit code the caller is about to return, then lets the caller perform the
// actual os.Exit -- telemetry never exits the process itself, so callers
// stay in control of cleanup (flushing the logger, closing the solver).
func Fatal(log *zap.Logger, code int, msg string, err error, fields ...zap.Field) {
	all := append([]zap.Field{zap.Int("exit_code", code), zap.Error(err)}, fields...)
	log.Error(msg, all...)
}
