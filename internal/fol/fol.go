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

// Package fol implements the first-order formula algebra this module
// compiles Datalog clauses into: a small closed sum type with smart
// constructors that fold Boolean constants away immediately, so that no
// later pass ever has to special-case a dead And/Or/If/Iff subtree.
package fol

import (
	"fmt"
	"strings"

	"github.com/kevinawalsh/tym/internal/ast"
	"github.com/kevinawalsh/tym/internal/intern"
)

// QuantKind distinguishes universal from existential quantification.
type QuantKind int

const (
	ForAll QuantKind = iota
	Exists
)

func (k QuantKind) smtlib2() string {
	if k == ForAll {
		return "forall"
	}
	return "exists"
}

// Fmla is the closed sum type of first-order formulas: FConst, FAtom,
// FNot, FAnd, FOr, FIf, FIff, FQuant. Construct values through the smart
// constructors below (And, Or, Not, If, Iff, Ands, Ors, Quants), never by
// composite literal, so the constant-folding invariant always holds.
type Fmla interface {
	fmt.Stringer
	fmlaTag()
	size() int
}

// FConst is a literal true/false.
type FConst struct{ Value bool }

func (FConst) fmlaTag()  {}
func (f FConst) size() int { return 1 }
func (f FConst) String() string {
	if f.Value {
		return "true"
	}
	return "false"
}

// True and False are the two FConst singletons.
var (
	True  Fmla = FConst{Value: true}
	False Fmla = FConst{Value: false}
)

// FAtom wraps a Datalog atom as an atomic formula. PredConst is a
// synthetic constant carrying the predicate's name, used by the statement
// orderer (internal/order) to see predicate references uniformly as
// constant references (spec.md §4.3, "pred-const").
type FAtom struct {
	Atom      *ast.Atom
	PredConst ast.Term
}

func (FAtom) fmlaTag() {}
func (f FAtom) size() int {
	return 1 + len(f.Atom.Terms)
}
// String renders the atom in SMT-LIB2 application syntax, "(name a1 a2)",
// which (unlike Datalog's "name(a1, a2)") is how the built-in "=" and
// "distinct" symbols are written too, so no special-casing is needed here:
// a size-1 (arity-0) atom is just its bare name, matching spec.md §9's
// "fmla_size special case".
func (f FAtom) String() string {
	if len(f.Atom.Terms) == 0 {
		return f.Atom.Pred.String()
	}
	parts := make([]string, len(f.Atom.Terms))
	for i, t := range f.Atom.Terms {
		parts[i] = t.String()
	}
	return "(" + f.Atom.Pred.String() + " " + strings.Join(parts, " ") + ")"
}

// Atom lifts a Datalog atom into an atomic formula.
func Atom(a *ast.Atom) Fmla {
	return FAtom{Atom: a, PredConst: ast.NewConst(a.Pred.String())}
}

// FNot is logical negation.
type FNot struct{ Operand Fmla }

func (FNot) fmlaTag()    {}
func (f FNot) size() int { return 1 + f.Operand.size() }
func (f FNot) String() string {
	return "(not " + f.Operand.String() + ")"
}

// FAnd is an n-ary, already-flattened conjunction of at least two operands.
type FAnd struct{ Operands []Fmla }

func (FAnd) fmlaTag() {}
func (f FAnd) size() int {
	n := 1
	for _, o := range f.Operands {
		n += o.size()
	}
	return n
}
func (f FAnd) String() string { return parenJoin("and", f.Operands) }

// FOr is an n-ary, already-flattened disjunction of at least two operands.
type FOr struct{ Operands []Fmla }

func (FOr) fmlaTag() {}
func (f FOr) size() int {
	n := 1
	for _, o := range f.Operands {
		n += o.size()
	}
	return n
}
func (f FOr) String() string { return parenJoin("or", f.Operands) }

// FIf is material implication, Antecedent => Consequent.
type FIf struct{ Antecedent, Consequent Fmla }

func (FIf) fmlaTag() {}
func (f FIf) size() int {
	return 1 + f.Antecedent.size() + f.Consequent.size()
}
func (f FIf) String() string {
	return "(=> " + f.Antecedent.String() + " " + f.Consequent.String() + ")"
}

// FIff is logical biconditional.
type FIff struct{ Left, Right Fmla }

func (FIff) fmlaTag() {}
func (f FIff) size() int {
	return 1 + f.Left.size() + f.Right.size()
}
func (f FIff) String() string {
	return "(= " + f.Left.String() + " " + f.Right.String() + ")"
}

// FQuant binds one variable with one quantifier kind over a body formula.
type FQuant struct {
	Kind QuantKind
	BV   ast.Term // must be Kind == ast.Var
	Body Fmla
}

func (FQuant) fmlaTag() {}
func (f FQuant) size() int {
	return 1 + f.Body.size()
}
func (f FQuant) String() string {
	return fmt.Sprintf("(%s ((%s Universe)) %s)", f.Kind.smtlib2(), f.BV.Name(), f.Body.String())
}

func parenJoin(op string, fs []Fmla) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}
	return "(" + op + " " + strings.Join(parts, " ") + ")"
}

// asConst reports f's Boolean value and true if f is an FConst, or
// (false, false) otherwise; used only by the smart constructors below for
// constant detection.
func asConst(f Fmla) (bool, bool) {
	c, ok := f.(FConst)
	if !ok {
		return false, false
	}
	return c.Value, true
}

// And folds constants per spec.md §4.3: And(true,f)=f, And(f,true)=f,
// And(false,_)=false, And(_,false)=false; otherwise flattens nested FAnds.
func And(a, b Fmla) Fmla {
	if v, ok := asConst(a); ok {
		if !v {
			return False
		}
		return b
	}
	if v, ok := asConst(b); ok {
		if !v {
			return False
		}
		return a
	}
	var ops []Fmla
	if af, ok := a.(FAnd); ok {
		ops = append(ops, af.Operands...)
	} else {
		ops = append(ops, a)
	}
	if bf, ok := b.(FAnd); ok {
		ops = append(ops, bf.Operands...)
	} else {
		ops = append(ops, b)
	}
	return FAnd{Operands: ops}
}

// Or folds constants per spec.md §4.3: Or(true,_)=true, Or(_,true)=true,
// Or(false,f)=f, Or(f,false)=f; otherwise flattens nested FOrs.
func Or(a, b Fmla) Fmla {
	if v, ok := asConst(a); ok {
		if v {
			return True
		}
		return b
	}
	if v, ok := asConst(b); ok {
		if v {
			return True
		}
		return a
	}
	var ops []Fmla
	if af, ok := a.(FOr); ok {
		ops = append(ops, af.Operands...)
	} else {
		ops = append(ops, a)
	}
	if bf, ok := b.(FOr); ok {
		ops = append(ops, bf.Operands...)
	} else {
		ops = append(ops, b)
	}
	return FOr{Operands: ops}
}

// Not folds the negation of a constant: Not(true)=false, Not(false)=true.
// Any other operand, including an FNot, is wrapped in a new FNot.
func Not(f Fmla) Fmla {
	if v, ok := asConst(f); ok {
		if v {
			return False
		}
		return True
	}
	return FNot{Operand: f}
}

// If folds constants per spec.md §4.3: If(true,f)=f, If(false,_)=true,
// If(f,true)=true, If(f,false)=Not(f).
func If(a, c Fmla) Fmla {
	if v, ok := asConst(a); ok {
		if !v {
			return True
		}
		return c
	}
	if v, ok := asConst(c); ok {
		if v {
			return True
		}
		return Not(a)
	}
	return FIf{Antecedent: a, Consequent: c}
}

// Imply is defined, per spec.md §4.3, as Or(Not(a), c).
func Imply(a, c Fmla) Fmla {
	return Or(Not(a), c)
}

// Iff folds constants per spec.md §4.3: Iff(true,f)=f, Iff(false,f)=Not(f).
func Iff(a, b Fmla) Fmla {
	if v, ok := asConst(a); ok {
		if v {
			return b
		}
		return Not(b)
	}
	if v, ok := asConst(b); ok {
		if v {
			return a
		}
		return Not(a)
	}
	return FIff{Left: a, Right: b}
}

// Ands filters constants from fs, folds the remainder with And from the
// left (And flattens, so the result is one FAnd), and
// returns True for an empty or all-true input (spec.md §4.3: Ands([])=true).
func Ands(fs []Fmla) Fmla {
	filtered := filterConstants(fs, true)
	if len(filtered) == 0 {
		return True
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	acc := filtered[0]
	for _, f := range filtered[1:] {
		acc = And(acc, f)
	}
	return acc
}

// Ors filters constants from fs, folds the remainder with Or from the left
// (Or flattens, so the result is one FOr), and
// returns False for an empty or all-false input (spec.md §4.3: Ors([])=false).
func Ors(fs []Fmla) Fmla {
	filtered := filterConstants(fs, false)
	if len(filtered) == 0 {
		return False
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	acc := filtered[0]
	for _, f := range filtered[1:] {
		acc = Or(acc, f)
	}
	return acc
}

// filterConstants drops every FConst == absorb from fs. For Ands, absorb is
// true ("drop the trues, a lone false still short-circuits via And's own
// folding on the next pass"); for Ors, absorb is false.
func filterConstants(fs []Fmla, absorb bool) []Fmla {
	out := make([]Fmla, 0, len(fs))
	for _, f := range fs {
		if v, ok := asConst(f); ok && v == absorb {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Quants right-folds one quantifier of kind k per variable in vars around
// body, innermost variable first (i.e. vars[len(vars)-1] binds tightest).
func Quants(k QuantKind, vars []ast.Term, body Fmla) Fmla {
	acc := body
	for i := len(vars) - 1; i >= 0; i-- {
		acc = FQuant{Kind: k, BV: vars[i], Body: acc}
	}
	return acc
}

// ConstsIn returns every Const-kind term appearing in f. When
// includePredConst is true, the synthetic pred-const of every FAtom
// encountered is also included -- this is what the statement orderer
// (internal/order) needs to see predicate references as constant
// references.
func ConstsIn(f Fmla, includePredConst bool) []ast.Term {
	acc := make([]ast.Term, 0)
	seen := make(map[intern.Symbol]bool)
	constsInto(f, includePredConst, &acc, seen)
	return acc
}

func constsInto(f Fmla, includePredConst bool, acc *[]ast.Term, seen map[intern.Symbol]bool) {
	add := func(t ast.Term) {
		if t.Kind == ast.Const && !seen[t.ID] {
			seen[t.ID] = true
			*acc = append(*acc, t)
		}
	}
	switch f := f.(type) {
	case FConst:
		return
	case FAtom:
		for _, t := range f.Atom.Terms {
			add(t)
		}
		if includePredConst {
			add(f.PredConst)
		}
	case FNot:
		constsInto(f.Operand, includePredConst, acc, seen)
	case FAnd:
		for _, o := range f.Operands {
			constsInto(o, includePredConst, acc, seen)
		}
	case FOr:
		for _, o := range f.Operands {
			constsInto(o, includePredConst, acc, seen)
		}
	case FIf:
		constsInto(f.Antecedent, includePredConst, acc, seen)
		constsInto(f.Consequent, includePredConst, acc, seen)
	case FIff:
		constsInto(f.Left, includePredConst, acc, seen)
		constsInto(f.Right, includePredConst, acc, seen)
	case FQuant:
		constsInto(f.Body, includePredConst, acc, seen)
	}
}

// Size returns the structural size of f: 1 for a constant or an arity-0
// atom, 1+arity for other atoms, and 1 plus the operands' sizes for a
// composite. The String methods above do not consult it: FAtom.String
// leaves an arity-0 atom bare and parenthesizes every other atom, and every
// composite formula is fully parenthesized by its own String method.
func Size(f Fmla) int { return f.size() }
