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

// Package model holds the Statement/Model types (spec.md §4.7) and the
// builder that assembles the universe declaration, per-constant
// declarations, predicate definitions and query axiom into one ordered
// statement list.
package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kevinawalsh/tym/internal/ast"
	"github.com/kevinawalsh/tym/internal/fol"
	"github.com/kevinawalsh/tym/internal/herbrand"
)

// ErrEmptyUniverse is returned by Build when the program defines no
// constants at all, even though it has clauses (spec.md §3: "Empty
// universe => nothing to compile; the core returns a null model").
var ErrEmptyUniverse = errors.New("model: Herbrand universe is empty, nothing to compile")

// StmtKind distinguishes a plain axiom from a constant/function
// definition.
type StmtKind int

const (
	Axiom StmtKind = iota
	ConstDef
)

// SortKind names the SMT-LIB2 sort a declaration/definition returns.
type SortKind int

const (
	Universe SortKind = iota
	Bool
)

func (s SortKind) String() string {
	if s == Bool {
		return "Bool"
	}
	return "Universe"
}

// Statement is either an Axiom(fmla) or a ConstDef, per spec.md §3:
// Params == nil and Body == nil yields a pure declaration;
// Params != nil yields a function definition; Body != nil, Params == nil
// yields an axiom-equivalent constant definition.
type Statement struct {
	Kind   StmtKind
	Name   string // unused for Axiom
	Params []ast.Term
	Body   fol.Fmla // nil for a pure declaration
	Type   SortKind
	Fmla   fol.Fmla // used only for Axiom
}

// NewDeclareSort returns the "(declare-sort Universe 0)" statement.
func NewDeclareSort() Statement {
	return Statement{Kind: ConstDef, Name: "__sort__", Type: Universe}
}

// NewDeclareConst returns a pure declaration for a Universe-sorted
// constant, e.g. "(declare-const alice Universe)".
func NewDeclareConst(name string) Statement {
	return Statement{Kind: ConstDef, Name: name, Type: Universe}
}

// NewAxiom wraps f as a bare assertion.
func NewAxiom(f fol.Fmla) Statement {
	return Statement{Kind: Axiom, Fmla: f}
}

// IsDeclareSort reports whether s is the sentinel sort declaration emitted
// by NewDeclareSort.
func (s Statement) IsDeclareSort() bool {
	return s.Kind == ConstDef && s.Name == "__sort__"
}

// IsPureDecl reports whether s declares a constant with no body and no
// parameters -- a bare "(declare-const name Type)".
func (s Statement) IsPureDecl() bool {
	return s.Kind == ConstDef && s.Body == nil && len(s.Params) == 0 && !s.IsDeclareSort()
}

// String renders s in SMT-LIB2 syntax (spec.md §6).
func (s Statement) String() string {
	switch s.Kind {
	case Axiom:
		return fmt.Sprintf("(assert %s)", s.Fmla.String())
	case ConstDef:
		if s.IsDeclareSort() {
			return "(declare-sort Universe 0)"
		}
		if s.Body == nil && len(s.Params) == 0 {
			return fmt.Sprintf("(declare-const %s %s)", s.Name, s.Type)
		}
		if len(s.Params) == 0 {
			// Axiom-equivalent constant definition.
			return fmt.Sprintf("(define-fun %s () %s %s)", s.Name, s.Type, s.Body.String())
		}
		parts := make([]string, len(s.Params))
		for i, p := range s.Params {
			parts[i] = fmt.Sprintf("(%s Universe)", p.Name())
		}
		return fmt.Sprintf("(define-fun %s (%s) %s %s)",
			s.Name, strings.Join(parts, " "), s.Type, s.Body.String())
	default:
		panic("model: unknown statement kind")
	}
}

// Model is the output of the statement builder: a universe plus an ordered
// statement list. Statement order is semantically significant (spec.md §3):
// a raw Model as built by Build has not yet been through the orderer
// (internal/order), which is a required step before serialization.
type Model struct {
	UniverseElems []ast.Term
	Statements    []Statement
}

// Build assembles the prologue (sort declaration, per-constant
// declarations, distinctness assertion) and the predicate axioms into one
// statement list, per spec.md §4.7:
//
//  1. (declare-sort Universe 0)
//  2. One (declare-const e Universe) per universe element, followed by one
//     (assert (distinct e1 ... en)).
//  3. The predicate axioms.
//
// The query axiom (spec.md §4.7 item 4) is added separately by
// internal/query, once a query is available.
func Build(db *herbrand.Database, predicateStmts []Statement) (*Model, error) {
	universe := db.Universe()
	if len(universe) == 0 {
		return nil, ErrEmptyUniverse
	}
	stmts := make([]Statement, 0, 2+len(universe)+len(predicateStmts))
	stmts = append(stmts, NewDeclareSort())
	for _, e := range universe {
		stmts = append(stmts, NewDeclareConst(e.Name()))
	}
	args := make([]ast.Term, len(universe))
	copy(args, universe)
	stmts = append(stmts, NewAxiom(fol.Atom(ast.NewAtom("distinct", args...))))
	stmts = append(stmts, predicateStmts...)
	return &Model{UniverseElems: universe, Statements: stmts}, nil
}

// String serializes every statement, one per line, in the model's current
// order.
func (m *Model) String() string {
	lines := make([]string, len(m.Statements))
	for i, s := range m.Statements {
		lines[i] = s.String()
	}
	return strings.Join(lines, "\n")
}
