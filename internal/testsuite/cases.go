package testsuite

import (
	"github.com/MangoIV/polarity/internal/ast"
	"github.com/MangoIV/polarity/internal/decls"
	"github.com/MangoIV/polarity/internal/env"
	"github.com/MangoIV/polarity/internal/eval"
)

// Case is one runnable unit: a self-contained module plus an entry
// expression to evaluate against it. There is no discovery mechanism
// (§1 Non-goal: "full CLI test-runner discovery mechanics") — new cases
// are registered in Cases below, the nearest analog to the teacher's
// testdata directories now that there is no file format to discover.
type Case struct {
	Name  string
	Build func() (*ast.Module, *decls.Table, ast.Exp)
}

// Run evaluates c's entry expression under c's module's declaration
// table and returns the resulting value's printed form, or an error.
func (c Case) Run() (string, error) {
	_, tbl, entry := c.Build()
	v, err := eval.Eval(entry, env.Empty(), tbl)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// Cases is the static registry the runner iterates, matched against
// --filter. Each is grounded in a §8 worked example.
var Cases = []Case{
	{Name: "bool/not-true", Build: boolNotTrue},
	{Name: "bool/not-false", Build: boolNotFalse},
	{Name: "pair/fst", Build: pairFst},
	{Name: "pair/snd", Build: pairSnd},
}

func boolModule() (*ast.Module, *decls.Table) {
	data := &ast.Data{Name: "Bool", Ctors: []*ast.Ctor{
		{Name: "True", Arity: 0},
		{Name: "False", Arity: 0},
	}}
	not := &ast.Def{
		Name:  "not",
		NArgs: 0,
		Body: &ast.Match{Cases: []ast.Case{
			{Name: "True", ParamCount: 0, Body: ast.NewCall(nil, "False", ast.CallCtor, nil)},
			{Name: "False", ParamCount: 0, Body: ast.NewCall(nil, "True", ast.CallCtor, nil)},
		}},
	}
	mod := &ast.Module{URI: "case://bool", Decls: []ast.Decl{data, not}}
	return mod, decls.New(mod)
}

func boolNotTrue() (*ast.Module, *decls.Table, ast.Exp) {
	mod, tbl := boolModule()
	entry := ast.NewDotCall(nil, ast.NewCall(nil, "True", ast.CallCtor, nil), "not", nil)
	return mod, tbl, entry
}

func boolNotFalse() (*ast.Module, *decls.Table, ast.Exp) {
	mod, tbl := boolModule()
	entry := ast.NewDotCall(nil, ast.NewCall(nil, "False", ast.CallCtor, nil), "not", nil)
	return mod, tbl, entry
}

func pairModule() (*ast.Module, *decls.Table) {
	nat := &ast.Data{Name: "Nat", Ctors: []*ast.Ctor{
		{Name: "Zero", Arity: 0},
		{Name: "Succ", Arity: 1},
	}}
	one := ast.NewCall(nil, "Succ", ast.CallCtor, []ast.Exp{ast.NewCall(nil, "Zero", ast.CallCtor, nil)})
	two := ast.NewCall(nil, "Succ", ast.CallCtor, []ast.Exp{one})

	pair := &ast.Codata{Name: "Pair", Dtors: []*ast.Dtor{
		{Name: "fst", Arity: 0},
		{Name: "snd", Arity: 0},
	}}
	mkPair := &ast.Codef{
		Name:  "MkPair",
		NArgs: 0,
		Body: &ast.Comatch{Cases: []ast.Case{
			{Name: "fst", ParamCount: 0, Body: one},
			{Name: "snd", ParamCount: 0, Body: two},
		}},
	}
	mod := &ast.Module{URI: "case://pair", Decls: []ast.Decl{nat, pair, mkPair}}
	return mod, decls.New(mod)
}

func pairFst() (*ast.Module, *decls.Table, ast.Exp) {
	mod, tbl := pairModule()
	entry := ast.NewDotCall(nil, ast.NewCall(nil, "MkPair", ast.CallCodef, nil), "fst", nil)
	return mod, tbl, entry
}

func pairSnd() (*ast.Module, *decls.Table, ast.Exp) {
	mod, tbl := pairModule()
	entry := ast.NewDotCall(nil, ast.NewCall(nil, "MkPair", ast.CallCodef, nil), "snd", nil)
	return mod, tbl, entry
}
