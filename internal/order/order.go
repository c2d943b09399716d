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

// Package order reorders a statement list so that every referenced
// constant/function symbol is declared before use, as SMT-LIB2 requires
// (spec.md §4.8).
package order

import (
	"errors"

	"bitbucket.org/creachadair/stringset"
	"github.com/kevinawalsh/tym/internal/fol"
	"github.com/kevinawalsh/tym/internal/model"
)

// ErrCyclicDependency is returned when a full pass over the waiting bucket
// places nothing -- the statement list has a cyclic dependency.
var ErrCyclicDependency = errors.New("order: cyclic statement dependency")

// Order performs the two-bucket topological pass of spec.md §4.8 and
// returns a reordered copy of stmts. declared starts as the built-in
// symbols "=" and "distinct".
func Order(stmts []model.Statement) ([]model.Statement, error) {
	declared := stringset.New("=", "distinct")
	cursor := append([]model.Statement(nil), stmts...)
	var out []model.Statement

	for len(cursor) > 0 {
		var waiting []model.Statement
		placedAny := false
		for _, s := range cursor {
			if refsOf(s).Diff(declared).Len() == 0 {
				out = append(out, s)
				declared.Add(introduces(s)...)
				placedAny = true
			} else {
				waiting = append(waiting, s)
			}
		}
		if !placedAny && len(waiting) > 0 {
			return nil, ErrCyclicDependency
		}
		cursor = waiting
	}
	return out, nil
}

// refsOf returns every Const-kind name referenced by s, including the
// pred-const of every atom in its formula.
func refsOf(s model.Statement) stringset.Set {
	names := stringset.New()
	add := func(f fol.Fmla) {
		if f == nil {
			return
		}
		for _, t := range fol.ConstsIn(f, true) {
			names.Add(t.Name())
		}
	}
	add(s.Body)
	add(s.Fmla)
	return names
}

// introduces returns the names s newly makes available for later
// statements to reference: a ConstDef's own Name. Axioms and the sort
// declaration introduce nothing.
func introduces(s model.Statement) []string {
	if s.Kind == model.ConstDef && !s.IsDeclareSort() {
		return []string{s.Name}
	}
	return nil
}
