package herbrand

import (
	"testing"

	"github.com/kevinawalsh/tym/internal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prog(clauses ...*ast.Clause) *ast.Program { return ast.NewProgram(clauses...) }

func TestUniverseDedupAndOrder(t *testing.T) {
	p := prog(
		ast.NewClause(ast.NewAtom("p", ast.NewConst("b"))),
		ast.NewClause(ast.NewAtom("p", ast.NewConst("a"))),
		ast.NewClause(ast.NewAtom("p", ast.NewConst("b"))),
	)
	db, err := BuildFromProgram(p)
	require.NoError(t, err)
	names := make([]string, len(db.Universe()))
	for i, term := range db.Universe() {
		names[i] = term.Name()
	}
	assert.Equal(t, []string{"b", "a"}, names)
}

func TestEmptyProgram(t *testing.T) {
	_, err := BuildFromProgram(&ast.Program{})
	assert.ErrorIs(t, err, ErrEmptyProgram)
}

func TestArityConflictIsFatal(t *testing.T) {
	p := prog(
		ast.NewClause(ast.NewAtom("p", ast.NewConst("a"))),
		ast.NewClause(ast.NewAtom("p", ast.NewConst("a"), ast.NewConst("b"))),
	)
	_, err := BuildFromProgram(p)
	assert.ErrorIs(t, err, ErrArityConflict)
}

func TestPredicateClausesAccumulate(t *testing.T) {
	p := prog(
		ast.NewClause(ast.NewAtom("p", ast.NewConst("a"))),
		ast.NewClause(ast.NewAtom("p", ast.NewConst("b"))),
	)
	db, err := BuildFromProgram(p)
	require.NoError(t, err)
	e := db.Lookup("p", 1)
	require.NotNil(t, e)
	assert.Len(t, e.Clauses, 2)
}

func TestBodyTermsAreTracked(t *testing.T) {
	p := prog(
		ast.NewClause(ast.NewAtom("edge", ast.NewConst("a"), ast.NewConst("b"))),
		ast.NewClause(
			ast.NewAtom("path", ast.NewVar("X"), ast.NewVar("Y")),
			ast.NewAtom("edge", ast.NewVar("X"), ast.NewVar("Y")),
		),
	)
	db, err := BuildFromProgram(p)
	require.NoError(t, err)
	assert.True(t, db.IsInUniverse("a"))
	assert.True(t, db.IsInUniverse("b"))
	assert.False(t, db.IsInUniverse("c"))
}
