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

// Package query abstracts a one-clause query's free variables into fresh
// constants, records the variable<->constant mapping, and asserts the
// query against a model (spec.md §4.9).
package query

import (
	"errors"
	"fmt"

	"github.com/kevinawalsh/tym/internal/ast"
	"github.com/kevinawalsh/tym/internal/fol"
	"github.com/kevinawalsh/tym/internal/fresh"
	"github.com/kevinawalsh/tym/internal/herbrand"
	"github.com/kevinawalsh/tym/internal/model"
)

// ErrUndeclaredConstant is returned when a query atom mentions a constant
// the program's Herbrand universe never introduced.
var ErrUndeclaredConstant = errors.New("query: constant not in universe")

// ErrExistentialInQuery is returned if the query formula contains an
// existential quantifier, which spec.md §4.9 forbids outright.
var ErrExistentialInQuery = errors.New("query: existential quantifier not allowed in a query")

// Binding maps one query variable's printable name to the fresh constant
// substituted for it.
type Binding struct {
	VarName   string
	ConstName string
}

// Translate implements spec.md §4.9 for the single-clause query q. It
// rejects queries mentioning undeclared constants or containing an
// existential quantifier, mints one fresh constant per free variable,
// appends the matching ConstDef declarations and the query axiom to mdl's
// statement list, and returns the variable<->constant bindings in
// first-occurrence order.
func Translate(q *ast.Atom, db *herbrand.Database, mdl *model.Model, gen *fresh.Generator) ([]Binding, error) {
	f := fol.Atom(q.Copy())

	if err := checkExistential(f); err != nil {
		return nil, err
	}
	for _, c := range fol.ConstsIn(f, false) {
		if !db.IsInUniverse(c.Name()) {
			return nil, fmt.Errorf("%w: %q", ErrUndeclaredConstant, c.Name())
		}
	}

	bindings := make([]Binding, 0)
	substituted := substituteVars(f, gen, &bindings)

	for _, b := range bindings {
		mdl.Statements = append(mdl.Statements, model.NewDeclareConst(b.ConstName))
	}
	mdl.Statements = append(mdl.Statements, model.NewAxiom(substituted))

	return bindings, nil
}

func checkExistential(f fol.Fmla) error {
	switch f := f.(type) {
	case fol.FQuant:
		if f.Kind == fol.Exists {
			return ErrExistentialInQuery
		}
		return checkExistential(f.Body)
	case fol.FNot:
		return checkExistential(f.Operand)
	case fol.FAnd:
		for _, o := range f.Operands {
			if err := checkExistential(o); err != nil {
				return err
			}
		}
	case fol.FOr:
		for _, o := range f.Operands {
			if err := checkExistential(o); err != nil {
				return err
			}
		}
	case fol.FIf:
		if err := checkExistential(f.Antecedent); err != nil {
			return err
		}
		return checkExistential(f.Consequent)
	case fol.FIff:
		if err := checkExistential(f.Left); err != nil {
			return err
		}
		return checkExistential(f.Right)
	}
	return nil
}

// substituteVars walks f and replaces every distinct Var-kind leaf with a
// fresh constant, recording the mapping into *bindings in first-occurrence
// order. Only FAtom leaves can contain Var terms in a query (existentials,
// the other place a Var could be bound, are already rejected above).
func substituteVars(f fol.Fmla, gen *fresh.Generator, bindings *[]Binding) fol.Fmla {
	switch f := f.(type) {
	case fol.FAtom:
		return substituteAtom(f, gen, bindings)
	case fol.FNot:
		return fol.Not(substituteVars(f.Operand, gen, bindings))
	case fol.FAnd:
		ops := make([]fol.Fmla, len(f.Operands))
		for i, o := range f.Operands {
			ops[i] = substituteVars(o, gen, bindings)
		}
		return fol.Ands(ops)
	case fol.FOr:
		ops := make([]fol.Fmla, len(f.Operands))
		for i, o := range f.Operands {
			ops[i] = substituteVars(o, gen, bindings)
		}
		return fol.Ors(ops)
	case fol.FIf:
		return fol.If(substituteVars(f.Antecedent, gen, bindings), substituteVars(f.Consequent, gen, bindings))
	case fol.FIff:
		return fol.Iff(substituteVars(f.Left, gen, bindings), substituteVars(f.Right, gen, bindings))
	default:
		return f
	}
}

func substituteAtom(f fol.FAtom, gen *fresh.Generator, bindings *[]Binding) fol.Fmla {
	alreadyBound := make(map[string]string, len(*bindings))
	for _, b := range *bindings {
		alreadyBound[b.VarName] = b.ConstName
	}
	newTerms := make([]ast.Term, len(f.Atom.Terms))
	for i, t := range f.Atom.Terms {
		if t.Kind != ast.Var {
			newTerms[i] = t
			continue
		}
		constName, ok := alreadyBound[t.Name()]
		if !ok {
			constName = gen.New()
			alreadyBound[t.Name()] = constName
			*bindings = append(*bindings, Binding{VarName: t.Name(), ConstName: constName})
		}
		newTerms[i] = ast.NewConst(constName)
	}
	return fol.Atom(&ast.Atom{Pred: f.Atom.Pred, Terms: newTerms})
}
