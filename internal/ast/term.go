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

// Package ast holds the Datalog abstract syntax this module compiles:
// terms, atoms, clauses and programs. The parser (internal/dlparse) builds
// them from source text; later passes also build atoms and terms of their
// own (head equalities, the distinctness atom, substituted query atoms,
// blocking clauses).
package ast

import (
	"errors"
	"fmt"

	"github.com/kevinawalsh/tym/internal/intern"
)

// Kind distinguishes the three flavors of Term.
type Kind int

const (
	Var Kind = iota
	Const
	Str
)

func (k Kind) String() string {
	switch k {
	case Var:
		return "Var"
	case Const:
		return "Const"
	case Str:
		return "Str"
	default:
		return "Kind(?)"
	}
}

// Term is a tagged Var/Const/Str leaf, identified by an interned string.
type Term struct {
	Kind Kind
	ID   intern.Symbol
}

// NewVar, NewConst and NewStr build terms of the matching kind from a raw
// name. Quoted string constants (Str) are kept distinct from bare
// identifier constants (Const) per spec.md's surface syntax.
func NewVar(name string) Term   { return Term{Kind: Var, ID: intern.EncodeString(name)} }
func NewConst(name string) Term { return Term{Kind: Const, ID: intern.EncodeString(name)} }
func NewStr(value string) Term  { return Term{Kind: Str, ID: intern.EncodeString(value)} }

// Name returns the decoded identifier or string contents of t.
func (t Term) Name() string { return t.ID.String() }

// String renders t in the canonical Datalog surface syntax: bare for
// Var/Const, quoted for Str.
func (t Term) String() string {
	switch t.Kind {
	case Str:
		return fmt.Sprintf("%q", t.Name())
	default:
		return t.Name()
	}
}

// ErrKindConflict is returned by Eq when two terms share an interned
// identifier but disagree on kind -- malformed input that callers must
// treat as fatal rather than silently resolving.
var ErrKindConflict = errors.New("ast: term-kind conflict: same identifier, different kinds")

// Eq compares two terms for structural equality. It returns (true, nil) if
// equal, (false, nil) if unequal, and (false, ErrKindConflict) if the two
// terms share an identifier but not a kind.
func Eq(a, b Term) (bool, error) {
	if a.ID == b.ID {
		if a.Kind != b.Kind {
			return false, ErrKindConflict
		}
		return true, nil
	}
	return false, nil
}

// Copy returns an independent copy of t. Since Term is a small value type
// (no owned pointers), this is just a value copy, but it is kept as an
// explicit operation so callers that deep-copy atoms/clauses don't need to
// special-case terms.
func (t Term) Copy() Term { return t }
