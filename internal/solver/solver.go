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

// Package solver defines the narrow interface this module uses to drive an
// external SMT solver (spec.md §6), and the model-enumeration loop built on
// top of it (spec.md §4.10).
package solver

import "time"

// Result is the tri-valued outcome of one solver_check call.
type Result int

const (
	Sat Result = iota
	Unsat
	Unknown
)

func (r Result) String() string {
	switch r {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	case Unknown:
		return "unknown"
	default:
		return "?"
	}
}

// ConstInterpretation pairs a declared constant's symbol with the
// equivalence class of constants the solver reports it as interpreted to.
type ConstInterpretation struct {
	Symbol string
	Class  []string
}

// Solver is the abstract five-entry-point interface of spec.md §6: begin,
// assert-text, check, get-const-interpretations, end. Everything in this
// module that drives an SMT solver does so only through this interface, so
// the concrete solver (External, or a test double) is fully swappable.
type Solver interface {
	Begin(timeout time.Duration) error
	AssertText(smtlib2 string) error
	Check() (Result, error)
	GetConstInterpretations(symbols []string) ([]ConstInterpretation, error)
	End() error
}
