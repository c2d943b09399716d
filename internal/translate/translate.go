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

// Package translate turns each predicate's clause bodies into one
// equivalent first-order definition with a universal head and
// existentially quantified body variables (spec.md §4.6).
package translate

import (
	"sort"

	"github.com/kevinawalsh/tym/internal/ast"
	"github.com/kevinawalsh/tym/internal/fol"
	"github.com/kevinawalsh/tym/internal/fresh"
	"github.com/kevinawalsh/tym/internal/herbrand"
	"github.com/kevinawalsh/tym/internal/model"
)

// Translate turns every predicate entry of db into one ConstDef statement,
// using gen for fresh head-parameter names (body atoms keep their own
// variable names). gen's counter
// advances monotonically across the whole translation: after each
// predicate's clauses are processed, gen is advanced to the last per-clause
// checkpoint (spec.md §4.6, final paragraph).
//
// Statements are returned sorted by predicate name then arity, for
// deterministic output; the statement orderer (internal/order) is what
// actually establishes a valid declaration order downstream.
func Translate(db *herbrand.Database, gen *fresh.Generator) []model.Statement {
	preds := db.Predicates()
	keys := make([]ast.PredKey, 0, len(preds))
	for _, e := range preds {
		keys = append(keys, e.Key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Name.String() != keys[j].Name.String() {
			return keys[i].Name.String() < keys[j].Name.String()
		}
		return keys[i].Arity < keys[j].Arity
	})

	stmts := make([]model.Statement, 0, len(keys))
	for _, k := range keys {
		e := lookup(preds, k)
		stmts = append(stmts, translatePredicate(e, gen))
	}
	return stmts
}

func lookup(preds map[string]*herbrand.PredEntry, k ast.PredKey) *herbrand.PredEntry {
	for _, e := range preds {
		if e.Key == k {
			return e
		}
	}
	return nil
}

// translatePredicate implements spec.md §4.6 steps 1-6 for one predicate.
func translatePredicate(e *herbrand.PredEntry, gen *fresh.Generator) model.Statement {
	name := e.Key.Name.String()
	arity := e.Key.Arity

	if len(e.Clauses) == 0 {
		// Bodyless predicate: never appears as a head. Emit
		// ConstDef{params = fresh [V1..Vn], body = false}.
		params := make([]ast.Term, arity)
		for i := range params {
			params[i] = ast.NewVar(gen.New())
		}
		return model.Statement{
			Kind:   model.ConstDef,
			Name:   name,
			Params: params,
			Body:   fol.False,
			Type:   model.Bool,
		}
	}

	disjuncts := make([]fol.Fmla, 0, len(e.Clauses))
	var headParams []ast.Term
	checkpoint := gen.Snapshot()
	var lastClauseGen *fresh.Generator

	for _, clause := range e.Clauses {
		// Every clause's head abstraction starts from the SAME checkpoint,
		// so every disjunct names the head parameters V1..Vn identically --
		// required since all disjuncts are folded under one shared ConstDef
		// parameter list. Each clause gets its own copy so its body-local
		// bookkeeping doesn't leak into the next clause's numbering.
		clauseGen := gen.Copy()
		clauseGen.Restore(checkpoint)
		clauseFmla, params := translateClause(clause, clauseGen)
		disjuncts = append(disjuncts, clauseFmla)
		if headParams == nil {
			headParams = params
		}
		lastClauseGen = clauseGen
	}
	// Swap the caller's generator with the last per-clause copy so that
	// variable numbering advances monotonically across the whole
	// translation (spec.md §4.6, final paragraph).
	if lastClauseGen != nil {
		gen.Restore(lastClauseGen.Snapshot())
	}

	return model.Statement{
		Kind:   model.ConstDef,
		Name:   name,
		Params: headParams,
		Body:   fol.Ors(disjuncts),
		Type:   model.Bool,
	}
}

// translateClause implements one clause's worth of spec.md §4.6 steps 1-4:
// body translation, head abstraction, unification-via-equality, and
// existential closure. It returns the clause's formula and the fresh head
// parameters used to abstract the head.
func translateClause(c *ast.Clause, gen *fresh.Generator) (fol.Fmla, []ast.Term) {
	// Step 1: body translation.
	bodyAtoms := make([]fol.Fmla, 0, len(c.Body))
	for _, b := range c.Body {
		bodyAtoms = append(bodyAtoms, fol.Atom(b.Copy()))
	}
	bodyFmla := fol.Ands(bodyAtoms)

	// Step 2: head abstraction, using a fresh variable per head argument.
	headArgs := c.Head.Terms
	params := make([]ast.Term, len(headArgs))
	equalities := make([]fol.Fmla, 0, len(headArgs))
	for i, arg := range headArgs {
		v := ast.NewVar(gen.New())
		params[i] = v
		equalities = append(equalities, fol.Atom(ast.NewAtom("=", v, arg)))
	}

	// Step 3: unification-via-equality.
	withEqualities := fol.Ands(append([]fol.Fmla{bodyFmla}, equalities...))

	// Step 4: existential closure over body-only (hidden) variables.
	hidden := c.HiddenVars()
	closed := fol.Quants(fol.Exists, hidden, withEqualities)

	return closed, params
}
