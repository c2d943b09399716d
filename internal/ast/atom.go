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

package ast

import (
	"strings"

	"github.com/kevinawalsh/tym/internal/intern"
)

// Atom is a predicate name applied to an ordered list of terms. Arity is
// len(Terms); two atoms with the same Pred but different arity name
// different predicates (see PredKey).
type Atom struct {
	Pred  intern.Symbol
	Terms []Term
}

// NewAtom builds an atom, interning name.
func NewAtom(name string, terms ...Term) *Atom {
	return &Atom{Pred: intern.EncodeString(name), Terms: terms}
}

// Arity returns the number of arguments of a.
func (a *Atom) Arity() int { return len(a.Terms) }

// PredKey identifies a predicate by (name, arity); two atoms unify only if
// their PredKeys match.
type PredKey struct {
	Name  intern.Symbol
	Arity int
}

// Key returns a's (name, arity) predicate identity.
func (a *Atom) Key() PredKey { return PredKey{Name: a.Pred, Arity: a.Arity()} }

// String renders a in canonical Datalog surface syntax: "pred(a, b, c)",
// or just "pred" for arity 0.
func (a *Atom) String() string {
	if len(a.Terms) == 0 {
		return a.Pred.String()
	}
	parts := make([]string, len(a.Terms))
	for i, t := range a.Terms {
		parts[i] = t.String()
	}
	return a.Pred.String() + "(" + strings.Join(parts, ", ") + ")"
}

// Copy deep-copies a so the result is independent of a's backing array.
func (a *Atom) Copy() *Atom {
	terms := make([]Term, len(a.Terms))
	copy(terms, a.Terms)
	return &Atom{Pred: a.Pred, Terms: terms}
}

// Vars returns the distinct variables appearing in a, in first-occurrence
// order.
func (a *Atom) Vars() []Term {
	var out []Term
	seen := make(map[intern.Symbol]bool)
	for _, t := range a.Terms {
		if t.Kind == Var && !seen[t.ID] {
			seen[t.ID] = true
			out = append(out, t)
		}
	}
	return out
}

// Consts returns the distinct Const-kind terms appearing in a, in
// first-occurrence order. Str terms are not constants of the Herbrand
// universe and are excluded.
func (a *Atom) Consts() []Term {
	var out []Term
	seen := make(map[intern.Symbol]bool)
	for _, t := range a.Terms {
		if t.Kind == Const && !seen[t.ID] {
			seen[t.ID] = true
			out = append(out, t)
		}
	}
	return out
}
