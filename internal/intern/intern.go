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

// Package intern implements hash-consing of byte strings. Two strings
// compare equal if and only if they were encoded to the same Symbol, so
// equality checks reduce to comparing small value types instead of byte
// slices.
package intern

import (
	"hash/fnv"
	"sync"
)

// Symbol is an opaque handle for an interned byte string; use Encode to
// obtain one. The zero Symbol is the handle of the empty string (Empty),
// since that is the first entry the table creates.
type Symbol struct {
	idx int
}

// Empty and Newline are the two sentinel symbols created at table
// initialization. They are exempt from any future table-compaction pass,
// mirroring the original's is_special check.
var (
	Empty   Symbol
	Newline Symbol
)

type entry struct {
	bytes []byte
	next  int // chained bucket, -1 if none
}

const modulus = 256

type table struct {
	mu      sync.RWMutex
	buckets [modulus]int // head index into entries, -1 if empty
	entries []entry
}

var t = newTable()

func newTable() *table {
	tb := &table{entries: make([]entry, 0, 64)}
	for i := range tb.buckets {
		tb.buckets[i] = -1
	}
	Empty = tb.encodeLocked(nil)
	Newline = tb.encodeLocked([]byte("\n"))
	return tb
}

func hashOf(b []byte) uint64 {
	h := fnv.New64a()
	h.Write(b)
	return h.Sum64()
}

// Encode interns b, returning the unique Symbol for its contents. The
// caller's slice is never retained; Encode copies it into the table the
// first time a given byte sequence is seen.
func Encode(b []byte) Symbol {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.encodeLocked(b)
}

func (tb *table) encodeLocked(b []byte) Symbol {
	h := hashOf(b) % modulus
	for i := tb.buckets[h]; i != -1; i = tb.entries[i].next {
		if string(tb.entries[i].bytes) == string(b) {
			return Symbol{idx: i}
		}
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	idx := len(tb.entries)
	tb.entries = append(tb.entries, entry{bytes: cp, next: tb.buckets[h]})
	tb.buckets[h] = idx
	return Symbol{idx: idx}
}

// EncodeString is a convenience wrapper around Encode.
func EncodeString(s string) Symbol {
	return Encode([]byte(s))
}

// Decode returns the byte sequence a Symbol was encoded from.
func Decode(s Symbol) []byte {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.entries[s.idx].bytes
}

// String returns the decoded contents of s as a string.
func (s Symbol) String() string {
	return string(Decode(s))
}

// Len returns the byte length of the decoded symbol.
func Len(s Symbol) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries[s.idx].bytes)
}

// Cmp orders two symbols lexicographically by decoded content. It does not
// assume a == b implies identical index ordering across processes; it only
// guarantees a total order within one process.
func Cmp(a, b Symbol) int {
	if a == b {
		return 0
	}
	sa, sb := Decode(a), Decode(b)
	switch {
	case string(sa) < string(sb):
		return -1
	case string(sa) > string(sb):
		return 1
	default:
		return 0
	}
}

// Append interns the concatenation of a and b's decoded contents as a new
// symbol. Unlike the C original, there is no destructive variant: Go's GC
// makes the distinction between freeing and non-freeing concatenation moot.
func Append(a, b Symbol) Symbol {
	sa, sb := Decode(a), Decode(b)
	out := make([]byte, 0, len(sa)+len(sb))
	out = append(out, sa...)
	out = append(out, sb...)
	return Encode(out)
}

// IsSpecial reports whether s is one of the sentinels created at table
// initialization.
func IsSpecial(s Symbol) bool {
	return s == Empty || s == Newline
}
