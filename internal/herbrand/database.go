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

// Package herbrand holds the term and atom database: the Herbrand
// universe (distinct Const terms, first-insertion order) plus a
// (name, arity)-keyed predicate table holding each predicate's clause
// bodies. This is the input the clause-to-formula translator
// (internal/translate) consumes.
package herbrand

import (
	"errors"
	"fmt"

	"bitbucket.org/creachadair/stringset"
	"github.com/kevinawalsh/tym/internal/ast"
)

// ErrArityConflict is returned when the same predicate name is used with
// two different arities -- spec.md treats this as fatal.
var ErrArityConflict = errors.New("herbrand: predicate arity conflict")

// ErrEmptyProgram is returned when a program has no clauses at all.
var ErrEmptyProgram = errors.New("herbrand: program is devoid of clauses")

// PredEntry holds a predicate's identity and the clauses whose head
// matches it, in assertion order.
type PredEntry struct {
	Key     ast.PredKey
	Clauses []*ast.Clause
}

// Database is the Term/Atom database of spec.md §4.5: a Herbrand universe
// (distinct Const terms, insertion order preserved) and a predicate table
// keyed by (name, arity).
type Database struct {
	universe    []ast.Term
	universeSet stringset.Set // decoded names already in the universe
	preds       map[string]*PredEntry
}

// NewDatabase returns an empty database.
func NewDatabase() *Database {
	return &Database{
		universeSet: stringset.New(),
		preds:       make(map[string]*PredEntry),
	}
}

// AddTerm registers t in the term database. Only Const terms are
// remembered; Var and Str terms are ignored (spec.md §4.5). Returns true if
// t was newly added to the Herbrand universe.
func (db *Database) AddTerm(t ast.Term) bool {
	if t.Kind != ast.Const {
		return false
	}
	name := t.Name()
	if db.universeSet.Contains(name) {
		return false
	}
	db.universeSet.Add(name)
	db.universe = append(db.universe, t)
	return true
}

func predMapKey(k ast.PredKey) string {
	return fmt.Sprintf("%s/%d", k.Name.String(), k.Arity)
}

// Lookup returns the predicate entry for (name, arity), or nil if absent.
// It does not detect arity conflicts by itself -- that is AddAtom's job,
// since Lookup has no atom to compare against.
func (db *Database) Lookup(name string, arity int) *PredEntry {
	for _, e := range db.preds {
		if e.Key.Name.String() == name && e.Key.Arity == arity {
			return e
		}
	}
	return nil
}

// entryFor returns the existing entry for a's (name, arity), or creates
// one. It returns ErrArityConflict if name is already registered at a
// different arity.
func (db *Database) entryFor(a *ast.Atom) (*PredEntry, error) {
	key := a.Key()
	mk := predMapKey(key)
	if e, ok := db.preds[mk]; ok {
		return e, nil
	}
	for _, e := range db.preds {
		if e.Key.Name == key.Name && e.Key.Arity != key.Arity {
			return nil, fmt.Errorf("%w: %s used with arity %d and %d",
				ErrArityConflict, key.Name.String(), e.Key.Arity, key.Arity)
		}
	}
	e := &PredEntry{Key: key}
	db.preds[mk] = e
	return e, nil
}

// AddAtom registers atom's predicate (creating its entry if needed) and
// every one of its argument terms into the term database.
func (db *Database) AddAtom(a *ast.Atom) (*PredEntry, error) {
	e, err := db.entryFor(a)
	if err != nil {
		return nil, err
	}
	for _, t := range a.Terms {
		db.AddTerm(t)
	}
	return e, nil
}

// AddClause inserts clause's head predicate, appends clause to that
// predicate's body list, and registers every argument term from the head
// and body into the term database.
func (db *Database) AddClause(c *ast.Clause) error {
	e, err := db.AddAtom(c.Head)
	if err != nil {
		return err
	}
	e.Clauses = append(e.Clauses, c)
	for _, b := range c.Body {
		if _, err := db.AddAtom(b); err != nil {
			return err
		}
	}
	return nil
}

// BuildFromProgram populates a fresh database from every clause of p, in
// order. Returns ErrEmptyProgram if p has no clauses.
func BuildFromProgram(p *ast.Program) (*Database, error) {
	if p.Empty() {
		return nil, ErrEmptyProgram
	}
	db := NewDatabase()
	for _, c := range p.Clauses {
		if err := db.AddClause(c); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Universe returns the distinct Const terms of the atom database, in
// first-insertion order. The returned slice must not be mutated.
func (db *Database) Universe() []ast.Term {
	return db.universe
}

// Predicates returns every predicate entry, keyed by its map key; callers
// that need a stable order should sort by (Key.Name, Key.Arity) or rely on
// PredEntry.Clauses' own assertion order within one predicate.
func (db *Database) Predicates() map[string]*PredEntry {
	return db.preds
}

// IsInUniverse reports whether name denotes a constant already present in
// the Herbrand universe -- used by internal/query to reject query atoms
// that mention a constant the program never introduced (spec.md §4.9 step 2).
func (db *Database) IsInUniverse(name string) bool {
	return db.universeSet.Contains(name)
}
