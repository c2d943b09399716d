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

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/kevinawalsh/tym/internal/ast"
	"github.com/kevinawalsh/tym/internal/config"
	"github.com/kevinawalsh/tym/internal/dlparse"
	"github.com/kevinawalsh/tym/internal/fresh"
	"github.com/kevinawalsh/tym/internal/gensrc"
	"github.com/kevinawalsh/tym/internal/herbrand"
	"github.com/kevinawalsh/tym/internal/model"
	"github.com/kevinawalsh/tym/internal/order"
	"github.com/kevinawalsh/tym/internal/query"
	"github.com/kevinawalsh/tym/internal/solver"
	"github.com/kevinawalsh/tym/internal/telemetry"
	"github.com/kevinawalsh/tym/internal/translate"
)

// runPipeline implements spec.md §4 end to end: read, parse, build the
// Herbrand database, translate predicates, build and (for the modes that
// need it) order the model, optionally translate a query, then dispatch on
// --function.
func runPipeline(log *zap.Logger) int {
	source, err := os.ReadFile(cfg.InputFile)
	if err != nil {
		telemetry.Fatal(log, exitNoInput, "cannot read input file", err, zap.String("input_file", cfg.InputFile))
		return exitNoInput
	}

	pgm, err := dlparse.Parse(cfg.InputFile, string(source))
	if err != nil {
		telemetry.Fatal(log, exitInvalidInput, "parse failed", err)
		return exitInvalidInput
	}

	db, err := herbrand.BuildFromProgram(pgm)
	if err != nil {
		telemetry.Fatal(log, exitInvalidInput, "failed to build term/atom database", err)
		return exitInvalidInput
	}

	if cfg.Function == config.FunctionTestParsing {
		fmt.Println(pgm.String())
		return exitOK
	}
	if cfg.Function == config.FunctionDumpAtoms {
		dumpAtoms(db)
		return exitOK
	}
	if cfg.Function == config.FunctionDumpHerbrandUniverse {
		dumpUniverse(db)
		return exitOK
	}

	gen := fresh.NewGeneratorWithWidth("V", cfg.MaxVarWidth)
	predStmts := translate.Translate(db, gen)
	mdl, err := model.Build(db, predStmts)
	if err != nil {
		telemetry.Fatal(log, exitInvalidInput, "failed to build model", err)
		return exitInvalidInput
	}

	var bindings []query.Binding
	var queryAtom *ast.Atom
	if cfg.Query != "" {
		qpgm, err := dlparse.Parse("<query>", cfg.Query+".")
		if err != nil {
			telemetry.Fatal(log, exitInvalidInput, "failed to parse query", err)
			return exitInvalidInput
		}
		if len(qpgm.Clauses) != 1 || !qpgm.Clauses[0].IsFact() {
			telemetry.Fatal(log, exitInvalidInput, "query must be a single atom", nil)
			return exitInvalidInput
		}
		queryAtom = qpgm.Clauses[0].Head
		bindings, err = query.Translate(queryAtom, db, mdl, gen)
		if err != nil {
			telemetry.Fatal(log, exitInvalidInput, "query translation failed", err)
			return exitInvalidInput
		}
	}

	ordered, err := order.Order(mdl.Statements)
	if err != nil {
		telemetry.Fatal(log, exitInvalidInput, "failed to order statements", err)
		return exitInvalidInput
	}
	mdl.Statements = ordered

	switch cfg.Function {
	case config.FunctionSMTOutput:
		fmt.Println(mdl.String())
		return exitOK
	case config.FunctionCOutput:
		fmt.Println(gensrc.Render("tymgen", mdl))
		return exitOK
	case config.FunctionSMTSolve:
		return runSolve(log, mdl, bindings, queryAtom)
	default:
		return exitOK
	}
}

func runSolve(log *zap.Logger, mdl *model.Model, bindings []query.Binding, queryAtom *ast.Atom) int {
	s := solver.NewExternal("z3")
	round := 0
	outcome, err := solver.Loop(s, mdl, bindings, cfg.SolverTimeout, func(r int, ws []solver.Witness) {
		round = r
		printWitnesses(r, ws, queryAtom)
	})
	if err != nil {
		telemetry.Fatal(log, exitInvalidInput, "solver loop failed", err)
		return exitInvalidInput
	}
	if outcome == solver.OutcomeUnknown {
		telemetry.Fatal(log, exitSolverUnknown, "solver gave up", errors.New("unknown"))
		return exitSolverUnknown
	}
	if round == 0 {
		fmt.Println("unsat")
	}
	return exitOK
}

// printWitnesses implements spec.md §6's three --model_output modes:
// "valuation" prints var = value per binding, "fact" instantiates the query
// clause with the found values and prints it as a Datalog fact, "all" does
// both.
func printWitnesses(round int, ws []solver.Witness, queryAtom *ast.Atom) {
	if cfg.ModelOutput == config.ModelOutputValuation || cfg.ModelOutput == config.ModelOutputAll {
		parts := make([]string, len(ws))
		for i, w := range ws {
			parts[i] = fmt.Sprintf("%s = %s", w.VarName, w.Value)
		}
		fmt.Printf("model %d: %s\n", round, strings.Join(parts, ", "))
	}
	if cfg.ModelOutput == config.ModelOutputFact || cfg.ModelOutput == config.ModelOutputAll {
		if queryAtom == nil {
			return
		}
		values := make(map[string]string, len(ws))
		for _, w := range ws {
			values[w.VarName] = w.Value
		}
		terms := make([]ast.Term, len(queryAtom.Terms))
		for i, t := range queryAtom.Terms {
			if t.Kind == ast.Var {
				if v, ok := values[t.Name()]; ok {
					terms[i] = ast.NewConst(v)
					continue
				}
			}
			terms[i] = t
		}
		fmt.Println(ast.NewAtom(queryAtom.Pred.String(), terms...).String() + ".")
	}
}

func dumpAtoms(db *herbrand.Database) {
	for _, e := range db.Predicates() {
		for _, c := range e.Clauses {
			fmt.Println(c.Head.String())
		}
	}
}

func dumpUniverse(db *herbrand.Database) {
	for _, t := range db.Universe() {
		fmt.Println(t.String())
	}
}
