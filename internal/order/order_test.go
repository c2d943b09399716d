package order

import (
	"testing"

	"github.com/kevinawalsh/tym/internal/ast"
	"github.com/kevinawalsh/tym/internal/fol"
	"github.com/kevinawalsh/tym/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPlacesDependenciesFirst(t *testing.T) {
	// axiom referencing p must come after p's own definition, even if given
	// out of order.
	pDef := model.Statement{Kind: model.ConstDef, Name: "p", Body: fol.False, Type: model.Bool}
	axiom := model.NewAxiom(fol.Atom(ast.NewAtom("p")))

	ordered, err := Order([]model.Statement{axiom, pDef})
	require.NoError(t, err)
	require.Len(t, ordered, 2)
	assert.Equal(t, pDef, ordered[0])
	assert.Equal(t, axiom, ordered[1])
}

func TestOrderDetectsCycle(t *testing.T) {
	// p's body mentions q, q's body mentions p: neither can ever be placed.
	pDef := model.Statement{Kind: model.ConstDef, Name: "p", Body: fol.Atom(ast.NewAtom("q")), Type: model.Bool}
	qDef := model.Statement{Kind: model.ConstDef, Name: "q", Body: fol.Atom(ast.NewAtom("p")), Type: model.Bool}

	_, err := Order([]model.Statement{pDef, qDef})
	assert.ErrorIs(t, err, ErrCyclicDependency)
}

func TestOrderStableWithinBucket(t *testing.T) {
	a := model.NewDeclareConst("a")
	b := model.NewDeclareConst("b")
	ordered, err := Order([]model.Statement{a, b})
	require.NoError(t, err)
	assert.Equal(t, []model.Statement{a, b}, ordered)
}

func TestOrderAllowsBuiltins(t *testing.T) {
	distinctAxiom := model.NewAxiom(fol.Atom(ast.NewAtom("distinct", ast.NewConst("a"), ast.NewConst("b"))))
	a := model.NewDeclareConst("a")
	b := model.NewDeclareConst("b")
	ordered, err := Order([]model.Statement{distinctAxiom, a, b})
	require.NoError(t, err)
	require.Len(t, ordered, 3)
	assert.Equal(t, a, ordered[0])
	assert.Equal(t, b, ordered[1])
	assert.Equal(t, distinctAxiom, ordered[2])
}
