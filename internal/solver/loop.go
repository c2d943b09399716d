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

package solver

import (
	"fmt"
	"time"

	"github.com/kevinawalsh/tym/internal/ast"
	"github.com/kevinawalsh/tym/internal/fol"
	"github.com/kevinawalsh/tym/internal/model"
	"github.com/kevinawalsh/tym/internal/order"
	"github.com/kevinawalsh/tym/internal/query"
)

// Outcome is the final, distinguished result of one Loop run. Unlike a
// plain error, OutcomeUnknown is not a failure: it is the "solver gave up"
// case of spec.md §7, which bubbles up as a dedicated exit code rather than
// being conflated with a genuine error. OutcomeSat is reserved for a query
// with no free variables (spec.md §8's "boundary behavior": single-shot
// invocation, no blocking clause), where the one round found is itself the
// whole answer rather than a step toward an eventual unsat.
type Outcome int

const (
	OutcomeUnsat Outcome = iota
	OutcomeUnknown
	OutcomeSat
)

// Witness is one round's binding of a query variable to a universe
// element.
type Witness struct {
	VarName   string
	ConstName string // the fresh query constant substituted for VarName
	Value     string // the universe element it was found to denote
}

// PrintFunc is called once per discovered model, in query-variable order.
type PrintFunc func(round int, witnesses []Witness)

// Loop runs the model-enumeration procedure of spec.md §4.10: feed the
// ordered statement list, then repeatedly check-sat, report a witness per
// query variable, and add a blocking clause, until the solver reports
// unsat or unknown.
func Loop(s Solver, mdl *model.Model, bindings []query.Binding, timeout time.Duration, print PrintFunc) (Outcome, error) {
	if err := s.Begin(timeout); err != nil {
		return OutcomeUnknown, fmt.Errorf("solver: begin: %w", err)
	}
	defer s.End()

	round := 0
	for {
		ordered, err := order.Order(mdl.Statements)
		if err != nil {
			return OutcomeUnknown, fmt.Errorf("solver: %w", err)
		}
		mdl.Statements = ordered
		if err := s.AssertText(mdl.String()); err != nil {
			return OutcomeUnknown, fmt.Errorf("solver: assert: %w", err)
		}

		result, err := s.Check()
		if err != nil {
			return OutcomeUnknown, fmt.Errorf("solver: check: %w", err)
		}

		switch result {
		case Unsat:
			return OutcomeUnsat, nil
		case Unknown:
			return OutcomeUnknown, nil
		case Sat:
			round++
			witnesses, err := witnessesFor(s, bindings)
			if err != nil {
				return OutcomeUnknown, fmt.Errorf("solver: witnesses: %w", err)
			}
			if print != nil {
				print(round, witnesses)
			}
			if len(bindings) == 0 {
				// A query with no free variables needs no blocking clause
				// and no further rounds: a single sat answer is the whole
				// story (spec.md §8, "boundary behavior").
				return OutcomeSat, nil
			}
			blocker := blockingClause(witnesses)
			mdl.Statements = append(mdl.Statements, model.NewAxiom(blocker))
		}
	}
}

// witnessesFor asks the solver for each binding's fresh constant's
// interpretation, filters out any class member that is itself a fresh
// query constant (spec.md §4.10 step 3.b), and falls back to the smallest
// element of the unfiltered class if filtering empties it -- resolving spec.md
// §9's open question about highly symmetric small universes.
func witnessesFor(s Solver, bindings []query.Binding) ([]Witness, error) {
	symbols := make([]string, len(bindings))
	isFresh := make(map[string]bool, len(bindings))
	for i, b := range bindings {
		symbols[i] = b.ConstName
		isFresh[b.ConstName] = true
	}
	interps, err := s.GetConstInterpretations(symbols)
	if err != nil {
		return nil, err
	}
	out := make([]Witness, len(bindings))
	for i, interp := range interps {
		out[i] = Witness{
			VarName:   bindings[i].VarName,
			ConstName: bindings[i].ConstName,
			Value:     pickWitness(interp.Class, isFresh),
		}
	}
	return out, nil
}

func pickWitness(class []string, isFresh map[string]bool) string {
	var candidates []string
	for _, c := range class {
		if !isFresh[c] {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		// Every class member is itself a fresh query constant: fall back to
		// the smallest element of the original class (spec.md §9).
		candidates = class
	}
	smallest := candidates[0]
	for _, c := range candidates[1:] {
		if c < smallest {
			smallest = c
		}
	}
	return smallest
}

// blockingClause builds ¬(c1 = v1 ∧ ... ∧ cn = vn) for the current round's
// witnesses, per spec.md §4.10 step 3.c.
func blockingClause(witnesses []Witness) fol.Fmla {
	eqs := make([]fol.Fmla, len(witnesses))
	for i, w := range witnesses {
		eqs[i] = fol.Atom(ast.NewAtom("=", ast.NewConst(w.ConstName), ast.NewConst(w.Value)))
	}
	return fol.Not(fol.Ands(eqs))
}
