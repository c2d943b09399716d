package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomString(t *testing.T) {
	a := NewAtom("edge", NewConst("a"), NewConst("b"))
	assert.Equal(t, "edge(a, b)", a.String())

	zero := NewAtom("fact")
	assert.Equal(t, "fact", zero.String())
}

func TestClauseString(t *testing.T) {
	fact := NewClause(NewAtom("p", NewConst("a")))
	assert.Equal(t, "p(a).", fact.String())

	rule := NewClause(
		NewAtom("path", NewVar("X"), NewVar("Z")),
		NewAtom("edge", NewVar("X"), NewVar("Y")),
		NewAtom("path", NewVar("Y"), NewVar("Z")),
	)
	assert.Equal(t, "path(X, Z) :- edge(X, Y), path(Y, Z).", rule.String())
}

func TestHiddenVars(t *testing.T) {
	c := NewClause(
		NewAtom("path", NewVar("X"), NewVar("Z")),
		NewAtom("edge", NewVar("X"), NewVar("Y")),
		NewAtom("path", NewVar("Y"), NewVar("Z")),
	)
	hidden := c.HiddenVars()
	require.Len(t, hidden, 1)
	assert.Equal(t, "Y", hidden[0].Name())
}

func TestFactHasNoHiddenVars(t *testing.T) {
	c := NewClause(NewAtom("p", NewConst("a")))
	assert.Empty(t, c.HiddenVars())
}

func TestEqKindConflict(t *testing.T) {
	// Two terms sharing an identifier but not a kind: construct by hand
	// since NewVar/NewConst on the same text share the interned symbol.
	v := NewVar("a")
	c := NewConst("a")
	require.Equal(t, v.ID, c.ID)
	eq, err := Eq(v, c)
	assert.False(t, eq)
	assert.ErrorIs(t, err, ErrKindConflict)
}

func TestEqOrdinary(t *testing.T) {
	eq, err := Eq(NewConst("a"), NewConst("a"))
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = Eq(NewConst("a"), NewConst("b"))
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestCopyIsIndependent(t *testing.T) {
	orig := NewAtom("p", NewConst("a"), NewConst("b"))
	cp := orig.Copy()
	cp.Terms[0] = NewConst("z")
	if diff := cmp.Diff(orig.Terms[0], NewConst("a")); diff != "" {
		t.Fatalf("mutating the copy affected the original (-orig +want):\n%s", diff)
	}
}

func TestProgramEmpty(t *testing.T) {
	assert.True(t, (&Program{}).Empty())
	assert.True(t, (*Program)(nil).Empty())
	assert.False(t, NewProgram(NewClause(NewAtom("p"))).Empty())
}
