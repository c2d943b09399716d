package model

import (
	"testing"

	"github.com/kevinawalsh/tym/internal/ast"
	"github.com/kevinawalsh/tym/internal/fol"
	"github.com/kevinawalsh/tym/internal/herbrand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrologue(t *testing.T) {
	db, err := herbrand.BuildFromProgram(ast.NewProgram(
		ast.NewClause(ast.NewAtom("r", ast.NewConst("a"))),
		ast.NewClause(ast.NewAtom("r", ast.NewConst("b"))),
	))
	require.NoError(t, err)

	m, err := Build(db, nil)
	require.NoError(t, err)
	require.Len(t, m.Statements, 4) // sort, 2 consts, 1 distinct
	assert.Equal(t, "(declare-sort Universe 0)", m.Statements[0].String())
	assert.Contains(t, []string{"(declare-const a Universe)", "(declare-const b Universe)"}, m.Statements[1].String())
	assert.Contains(t, m.Statements[3].String(), "distinct")
}

func TestBuildEmptyUniverseIsNullModel(t *testing.T) {
	db, err := herbrand.BuildFromProgram(ast.NewProgram(
		ast.NewClause(ast.NewAtom("p", ast.NewVar("X")), ast.NewAtom("q", ast.NewVar("X"))),
	))
	require.NoError(t, err)
	_, err = Build(db, nil)
	assert.ErrorIs(t, err, ErrEmptyUniverse)
}

func TestArityZeroDeclareConst(t *testing.T) {
	s := Statement{Kind: ConstDef, Name: "p", Body: fol.False, Type: Bool}
	assert.Equal(t, "(define-fun p () Bool false)", s.String())
}

func TestDefineFunWithParams(t *testing.T) {
	v := ast.NewVar("V0")
	s := Statement{Kind: ConstDef, Name: "p", Params: []ast.Term{v}, Body: fol.True, Type: Bool}
	assert.Equal(t, "(define-fun p ((V0 Universe)) Bool true)", s.String())
}
