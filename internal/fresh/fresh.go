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

// Package fresh generates unique identifiers with a configurable prefix,
// and a snapshot/restore pair for the restart-at-checkpoint pattern the
// clause-to-formula translator needs (spec.md §4.6, §9).
package fresh

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator produces fresh names of the form prefix+decimal(counter).
type Generator struct {
	prefix   string
	counter  int
	maxWidth int
}

// NewGenerator returns a generator that emits prefix+"0", prefix+"1", ...
func NewGenerator(prefix string) *Generator {
	return &Generator{prefix: prefix}
}

// NewGeneratorWithWidth is like NewGenerator but zero-pads the numeric
// suffix out to maxWidth digits (spec.md §6's --max_var_width), so that
// emitted SMT-LIB2 identifiers sort and align consistently regardless of
// how many fresh names a given compile needs. maxWidth <= 0 means no
// padding, matching NewGenerator.
func NewGeneratorWithWidth(prefix string, maxWidth int) *Generator {
	return &Generator{prefix: prefix, maxWidth: maxWidth}
}

// New returns the next fresh name and advances the counter.
func (g *Generator) New() string {
	var name string
	if g.maxWidth > 0 {
		name = fmt.Sprintf("%s%0*d", g.prefix, g.maxWidth, g.counter)
	} else {
		name = fmt.Sprintf("%s%d", g.prefix, g.counter)
	}
	g.counter++
	return name
}

// Snapshot is an opaque checkpoint of a Generator's counter.
type Snapshot struct {
	counter int
}

// Snapshot captures g's current counter without affecting it.
func (g *Generator) Snapshot() Snapshot {
	return Snapshot{counter: g.counter}
}

// Restore resets g's counter to a previously captured Snapshot. This is the
// Go-native replacement for the original's "copy the generator, let the
// caller discard the copy to roll back" pattern (spec.md §9): rather than
// sharing a mutable generator through pointers, callers snapshot before a
// speculative sequence of New() calls and either keep going (discard the
// snapshot) or Restore it to roll back.
func (g *Generator) Restore(s Snapshot) {
	g.counter = s.counter
}

// Copy returns an independent Generator with the same prefix and counter,
// for callers that need a genuinely separate, speculatively-advanced
// generator rather than a snapshot of the same one (spec.md §4.6: each
// clause gets "a copy of the fresh-variable generator").
func (g *Generator) Copy() *Generator {
	return &Generator{prefix: g.prefix, counter: g.counter, maxWidth: g.maxWidth}
}

// SessionID returns a fresh random identifier suitable for tagging one
// compile-and-solve run. No other package in this module calls it.
func SessionID() string {
	return uuid.NewString()
}
