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

package dlparse

import (
	"errors"
	"fmt"

	"github.com/kevinawalsh/tym/internal/ast"
)

// ErrEmptyProgram is returned by Parse when the input holds no clauses at
// all (spec.md §3's "devoid of clauses" case), distinct from a syntax error.
var ErrEmptyProgram = errors.New("dlparse: program is devoid of clauses")

// SyntaxError reports a lexical or grammatical problem, with the 1-based
// source line it was found on.
type SyntaxError struct {
	Name string
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Name, e.Line, e.Msg)
}

type parser struct {
	name  string
	items []item
	pos   int
}

// Parse lexes and parses a complete Datalog program: zero or more clauses,
// each either a fact ("head.") or a rule ("head :- atom1, atom2.").
func Parse(name, input string) (*ast.Program, error) {
	l := lex(name, input)
	p := &parser{name: name, items: l.items}

	var clauses []*ast.Clause
	for {
		if p.peek().typ == itemEOF {
			break
		}
		c, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}
	if len(clauses) == 0 {
		return nil, ErrEmptyProgram
	}
	return ast.NewProgram(clauses...), nil
}

func (p *parser) peek() item {
	if p.pos >= len(p.items) {
		return item{typ: itemEOF}
	}
	return p.items[p.pos]
}

func (p *parser) next() item {
	it := p.peek()
	if p.pos < len(p.items) {
		p.pos++
	}
	return it
}

func (p *parser) expect(t itemType) (item, error) {
	it := p.next()
	if it.typ == itemError {
		return item{}, &SyntaxError{Name: p.name, Line: it.line, Msg: it.val}
	}
	if it.typ != t {
		return item{}, &SyntaxError{Name: p.name, Line: it.line,
			Msg: fmt.Sprintf("expected %s, got %s", t, it.typ)}
	}
	return it, nil
}

func (p *parser) parseClause() (*ast.Clause, error) {
	head, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.peek().typ == itemColonDash {
		p.next()
		var body []*ast.Atom
		for {
			a, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			body = append(body, a)
			if p.peek().typ != itemComma {
				break
			}
			p.next()
		}
		if _, err := p.expect(itemDot); err != nil {
			return nil, err
		}
		return ast.NewClause(head, body...), nil
	}
	if _, err := p.expect(itemDot); err != nil {
		return nil, err
	}
	return ast.NewClause(head), nil
}

func (p *parser) parseAtom() (*ast.Atom, error) {
	name, err := p.expect(itemIdent)
	if err != nil {
		return nil, err
	}
	if p.peek().typ != itemLParen {
		return ast.NewAtom(name.val), nil
	}
	p.next()
	var terms []ast.Term
	if p.peek().typ != itemRParen {
		for {
			t, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			terms = append(terms, t)
			if p.peek().typ != itemComma {
				break
			}
			p.next()
		}
	}
	if _, err := p.expect(itemRParen); err != nil {
		return nil, err
	}
	return ast.NewAtom(name.val, terms...), nil
}

func (p *parser) parseTerm() (ast.Term, error) {
	it := p.next()
	switch it.typ {
	case itemVariable:
		return ast.NewVar(it.val), nil
	case itemIdent:
		return ast.NewConst(it.val), nil
	case itemString:
		return ast.NewStr(it.val), nil
	case itemError:
		return ast.Term{}, &SyntaxError{Name: p.name, Line: it.line, Msg: it.val}
	default:
		return ast.Term{}, &SyntaxError{Name: p.name, Line: it.line,
			Msg: fmt.Sprintf("expected a term, got %s", it.typ)}
	}
}
