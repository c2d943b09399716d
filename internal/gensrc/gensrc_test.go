package gensrc

import (
	"strings"
	"testing"

	"github.com/kevinawalsh/tym/internal/ast"
	"github.com/kevinawalsh/tym/internal/fol"
	"github.com/kevinawalsh/tym/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRenderIncludesPackageAndFunc(t *testing.T) {
	mdl := &model.Model{Statements: []model.Statement{
		model.NewDeclareSort(),
		model.NewDeclareConst("alice"),
	}}
	src := Render("tymgen", mdl)
	assert.Contains(t, src, "package tymgen")
	assert.Contains(t, src, "func Model() *model.Model {")
	assert.Contains(t, src, "model.NewDeclareSort()")
	assert.Contains(t, src, `model.NewDeclareConst("alice")`)
}

func TestRenderAxiomWithAtomAndQuantifier(t *testing.T) {
	x := ast.NewVar("X")
	atom := fol.Atom(ast.NewAtom("p", x))
	f := fol.Quants(fol.ForAll, []ast.Term{x}, atom)
	mdl := &model.Model{Statements: []model.Statement{model.NewAxiom(f)}}

	src := Render("tymgen", mdl)
	assert.Contains(t, src, "model.NewAxiom(")
	assert.Contains(t, src, "fol.Quants(fol.ForAll")
	assert.Contains(t, src, `ast.NewAtom("p", ast.NewVar("X"))`)
}

func TestRenderConstDefWithParams(t *testing.T) {
	v0 := ast.NewVar("V0")
	body := fol.Atom(ast.NewAtom("q", v0))
	mdl := &model.Model{Statements: []model.Statement{
		{Kind: model.ConstDef, Name: "p", Params: []ast.Term{v0}, Type: model.Bool, Body: body},
	}}
	src := Render("tymgen", mdl)
	assert.True(t, strings.Contains(src, `Name: "p"`))
	assert.Contains(t, src, "model.Bool")
}
