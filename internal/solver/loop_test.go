package solver

import (
	"testing"
	"time"

	"github.com/kevinawalsh/tym/internal/ast"
	"github.com/kevinawalsh/tym/internal/fol"
	"github.com/kevinawalsh/tym/internal/model"
	"github.com/kevinawalsh/tym/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSolver scripts a fixed sequence of Check results and const
// interpretations, so the enumeration loop can be tested without a real
// SMT solver subprocess.
type fakeSolver struct {
	checks      []Result
	checkIdx    int
	interps     [][]ConstInterpretation
	interpIdx   int
	beginCalled bool
	endCalled   bool
	asserted    []string
}

func (f *fakeSolver) Begin(time.Duration) error { f.beginCalled = true; return nil }
func (f *fakeSolver) AssertText(s string) error {
	f.asserted = append(f.asserted, s)
	return nil
}
func (f *fakeSolver) Check() (Result, error) {
	r := f.checks[f.checkIdx]
	f.checkIdx++
	return r, nil
}
func (f *fakeSolver) GetConstInterpretations(symbols []string) ([]ConstInterpretation, error) {
	r := f.interps[f.interpIdx]
	f.interpIdx++
	return r, nil
}
func (f *fakeSolver) End() error { f.endCalled = true; return nil }

func TestLoopEnumeratesUntilUnsat(t *testing.T) {
	mdl := &model.Model{Statements: []model.Statement{
		model.NewDeclareConst("a"),
		model.NewDeclareConst("b"),
		model.NewDeclareConst("q0"),
	}}
	bindings := []query.Binding{{VarName: "X", ConstName: "q0"}}

	fs := &fakeSolver{
		checks: []Result{Sat, Sat, Unsat},
		interps: [][]ConstInterpretation{
			{{Symbol: "q0", Class: []string{"a"}}},
			{{Symbol: "q0", Class: []string{"b"}}},
		},
	}

	var rounds [][]Witness
	outcome, err := Loop(fs, mdl, bindings, 10*time.Second, func(round int, ws []Witness) {
		rounds = append(rounds, ws)
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnsat, outcome)
	require.Len(t, rounds, 2)
	assert.Equal(t, "a", rounds[0][0].Value)
	assert.Equal(t, "b", rounds[1][0].Value)
	assert.True(t, fs.beginCalled)
	assert.True(t, fs.endCalled)
}

func TestLoopStopsOnUnknown(t *testing.T) {
	mdl := &model.Model{}
	fs := &fakeSolver{checks: []Result{Unknown}}
	outcome, err := Loop(fs, mdl, nil, time.Second, nil)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnknown, outcome)
}

func TestLoopNoVariablesSingleShot(t *testing.T) {
	mdl := &model.Model{}
	fs := &fakeSolver{checks: []Result{Sat}}
	outcome, err := Loop(fs, mdl, nil, time.Second, nil)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSat, outcome)
	assert.Equal(t, 1, fs.checkIdx) // never loops back for a second check
}

func TestPickWitnessFiltersFreshConstants(t *testing.T) {
	fresh := map[string]bool{"q0": true, "q1": true}
	got := pickWitness([]string{"q0", "a", "b"}, fresh)
	assert.Equal(t, "a", got)
}

func TestPickWitnessFallsBackWhenClassIsAllFresh(t *testing.T) {
	fresh := map[string]bool{"q0": true, "q1": true}
	got := pickWitness([]string{"q1", "q0"}, fresh)
	assert.Equal(t, "q0", got)
}

func TestBlockingClauseShape(t *testing.T) {
	f := blockingClause([]Witness{{VarName: "X", ConstName: "q0", Value: "a"}})
	assert.Equal(t, "(not (= q0 a))", f.String())
	_ = ast.NewConst
	_ = fol.True
}
