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

// Clause is a head atom plus zero or more body atoms. Variable scope is
// clause-local: a Var term with a given identifier in one clause has no
// relation to a Var term with the same identifier in another clause beyond
// sharing a printable name.
type Clause struct {
	Head *Atom
	Body []*Atom
}

// NewClause builds a fact (no body) or a rule.
func NewClause(head *Atom, body ...*Atom) *Clause {
	return &Clause{Head: head, Body: body}
}

// IsFact reports whether c has an empty body.
func (c *Clause) IsFact() bool { return len(c.Body) == 0 }

// String renders c in canonical Datalog surface syntax, one clause,
// terminated with a period: "head :- a(), b()."
func (c *Clause) String() string {
	if c.IsFact() {
		return c.Head.String() + "."
	}
	parts := make([]string, len(c.Body))
	for i, b := range c.Body {
		parts[i] = b.String()
	}
	return c.Head.String() + " :- " + strings.Join(parts, ", ") + "."
}

// Copy deep-copies c.
func (c *Clause) Copy() *Clause {
	body := make([]*Atom, len(c.Body))
	for i, b := range c.Body {
		body[i] = b.Copy()
	}
	return &Clause{Head: c.Head.Copy(), Body: body}
}

// HeadVars returns the distinct variables appearing in c's head, in
// first-occurrence order.
func (c *Clause) HeadVars() []Term {
	return c.Head.Vars()
}

// HiddenVars returns the variables that appear somewhere in c's body but
// not in its head -- these are exactly the variables that the
// clause-to-formula translator (internal/translate) existentially
// quantifies (spec.md §4.6 step 4).
func (c *Clause) HiddenVars() []Term {
	inHead := make(map[intern.Symbol]bool)
	for _, v := range c.Head.Vars() {
		inHead[v.ID] = true
	}
	var out []Term
	seen := make(map[intern.Symbol]bool)
	for _, b := range c.Body {
		for _, v := range b.Vars() {
			if !inHead[v.ID] && !seen[v.ID] {
				seen[v.ID] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// Consts returns the distinct Const-kind terms appearing anywhere in c
// (head and body), in first-occurrence order.
func (c *Clause) Consts() []Term {
	var out []Term
	seen := make(map[intern.Symbol]bool)
	add := func(ts []Term) {
		for _, t := range ts {
			if !seen[t.ID] {
				seen[t.ID] = true
				out = append(out, t)
			}
		}
	}
	add(c.Head.Consts())
	for _, b := range c.Body {
		add(b.Consts())
	}
	return out
}

// Program is an ordered list of clauses, used only as an input container.
type Program struct {
	Clauses []*Clause
}

// NewProgram wraps clauses as a Program.
func NewProgram(clauses ...*Clause) *Program {
	return &Program{Clauses: clauses}
}

// String renders the program as one clause per line.
func (p *Program) String() string {
	lines := make([]string, len(p.Clauses))
	for i, c := range p.Clauses {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}

// Empty reports whether the program has no clauses at all.
func (p *Program) Empty() bool {
	return p == nil || len(p.Clauses) == 0
}
