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

// Package gensrc renders a *model.Model as Go source that reconstructs the
// same statement tree via this module's own constructors. It supplements
// the core's SMT-LIB2 back end the way original_source/src/interface_c.c
// and output_c.c supplement the original's SMT-LIB2 back end with a
// "-f c_output" mode that emits the translated formulas as C source rather
// than text: same idea, Go source instead of C.
package gensrc

import (
	"fmt"
	"strings"

	"github.com/kevinawalsh/tym/internal/ast"
	"github.com/kevinawalsh/tym/internal/fol"
	"github.com/kevinawalsh/tym/internal/model"
)

// Render emits a standalone Go source file defining a func Model() that
// rebuilds mdl's statement list via ast/fol/model constructors.
func Render(pkg string, mdl *model.Model) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by tym -f c_output. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import (\n")
	fmt.Fprintf(&b, "\t\"github.com/kevinawalsh/tym/internal/ast\"\n")
	fmt.Fprintf(&b, "\t\"github.com/kevinawalsh/tym/internal/fol\"\n")
	fmt.Fprintf(&b, "\t\"github.com/kevinawalsh/tym/internal/model\"\n")
	fmt.Fprintf(&b, ")\n\n")
	fmt.Fprintf(&b, "func Model() *model.Model {\n")
	fmt.Fprintf(&b, "\treturn &model.Model{\n")
	fmt.Fprintf(&b, "\t\tStatements: []model.Statement{\n")
	for _, s := range mdl.Statements {
		fmt.Fprintf(&b, "\t\t\t%s,\n", statementExpr(s))
	}
	fmt.Fprintf(&b, "\t\t},\n")
	fmt.Fprintf(&b, "\t}\n")
	fmt.Fprintf(&b, "}\n")
	return b.String()
}

func statementExpr(s model.Statement) string {
	switch s.Kind {
	case model.Axiom:
		return fmt.Sprintf("model.NewAxiom(%s)", fmlaExpr(s.Fmla))
	case model.ConstDef:
		if s.IsDeclareSort() {
			return "model.NewDeclareSort()"
		}
		if s.Body == nil && len(s.Params) == 0 {
			return fmt.Sprintf("model.NewDeclareConst(%q)", s.Name)
		}
		return fmt.Sprintf("model.Statement{Kind: model.ConstDef, Name: %q, Params: %s, Type: %s, Body: %s}",
			s.Name, termsExpr(s.Params), sortExpr(s.Type), fmlaExpr(s.Body))
	default:
		return "model.Statement{}"
	}
}

func sortExpr(k model.SortKind) string {
	if k == model.Bool {
		return "model.Bool"
	}
	return "model.Universe"
}

func fmlaExpr(f fol.Fmla) string {
	switch f := f.(type) {
	case fol.FConst:
		if f.Value {
			return "fol.True"
		}
		return "fol.False"
	case fol.FAtom:
		return fmt.Sprintf("fol.Atom(%s)", atomExpr(f.Atom))
	case fol.FNot:
		return fmt.Sprintf("fol.Not(%s)", fmlaExpr(f.Operand))
	case fol.FAnd:
		return fmt.Sprintf("fol.Ands(%s)", fmlaSliceExpr(f.Operands))
	case fol.FOr:
		return fmt.Sprintf("fol.Ors(%s)", fmlaSliceExpr(f.Operands))
	case fol.FIf:
		return fmt.Sprintf("fol.If(%s, %s)", fmlaExpr(f.Antecedent), fmlaExpr(f.Consequent))
	case fol.FIff:
		return fmt.Sprintf("fol.Iff(%s, %s)", fmlaExpr(f.Left), fmlaExpr(f.Right))
	case fol.FQuant:
		kind := "fol.ForAll"
		if f.Kind == fol.Exists {
			kind = "fol.Exists"
		}
		return fmt.Sprintf("fol.Quants(%s, []ast.Term{%s}, %s)", kind, termExpr(f.BV), fmlaExpr(f.Body))
	default:
		return "nil"
	}
}

func fmlaSliceExpr(fs []fol.Fmla) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = fmlaExpr(f)
	}
	return "[]fol.Fmla{" + strings.Join(parts, ", ") + "}"
}

func atomExpr(a *ast.Atom) string {
	parts := make([]string, len(a.Terms))
	for i, t := range a.Terms {
		parts[i] = termExpr(t)
	}
	if len(parts) == 0 {
		return fmt.Sprintf("ast.NewAtom(%q)", a.Pred.String())
	}
	return fmt.Sprintf("ast.NewAtom(%q, %s)", a.Pred.String(), strings.Join(parts, ", "))
}

func termExpr(t ast.Term) string {
	switch t.Kind {
	case ast.Var:
		return fmt.Sprintf("ast.NewVar(%q)", t.Name())
	case ast.Str:
		return fmt.Sprintf("ast.NewStr(%q)", t.Name())
	default:
		return fmt.Sprintf("ast.NewConst(%q)", t.Name())
	}
}

func termsExpr(ts []ast.Term) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = termExpr(t)
	}
	return "[]ast.Term{" + strings.Join(parts, ", ") + "}"
}
