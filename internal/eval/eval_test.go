package eval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MangoIV/polarity/internal/ast"
	"github.com/MangoIV/polarity/internal/decls"
	"github.com/MangoIV/polarity/internal/env"
	"github.com/MangoIV/polarity/internal/value"
)

// pairModule builds codef MkPair { fst := 1, snd := 2 } of codata Pair,
// using Nat's usual
// zero/succ encoding so fst/snd evaluate to closed values without
// needing literal integers (§8, scenario 1).
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
	pairCodef := &ast.Codef{
		Name:  "MkPair",
		NArgs: 0,
		Body: &ast.Comatch{Cases: []ast.Case{
			{Name: "fst", ParamCount: 0, Body: one},
			{Name: "snd", ParamCount: 0, Body: two},
		}},
	}
	mod := &ast.Module{URI: "test://pair", Decls: []ast.Decl{nat, pair, pairCodef}}
	return mod, decls.New(mod)
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
	mod := &ast.Module{URI: "test://bool", Decls: []ast.Decl{data, not}}
	return mod, decls.New(mod)
}

func TestEvalConstantCodefDestructor(t *testing.T) {
	mod, tbl := pairModule()
	_ = mod

	pairVal := ast.NewCall(nil, "MkPair", ast.CallCodef, nil)
	fstCall := ast.NewDotCall(nil, pairVal, "fst", nil)
	sndCall := ast.NewDotCall(nil, pairVal, "snd", nil)

	fst, err := Eval(fstCall, env.Empty(), tbl)
	require.Nil(t, err)
	require.Equal(t, "Succ(Zero())", fst.String())

	snd, err := Eval(sndCall, env.Empty(), tbl)
	require.Nil(t, err)
	require.Equal(t, "Succ(Succ(Zero()))", snd.String())
}

func TestEvalDefOnData(t *testing.T) {
	_, tbl := boolModule()

	trueVal := ast.NewCall(nil, "True", ast.CallCtor, nil)
	notCall := ast.NewDotCall(nil, trueVal, "not", nil)

	v, err := Eval(notCall, env.Empty(), tbl)
	require.Nil(t, err)
	require.Equal(t, "False()", v.String())
}

func TestEvalNeutralPropagation(t *testing.T) {
	_, tbl := boolModule()

	// x.not where x is a free variable (de Bruijn index 0 bound to a
	// neutral variable reference) must not reduce.
	e := env.Bound([]value.Value{&value.Neu{Inner: &value.NeuVar{Idx: 0}}})
	notCall := ast.NewDotCall(nil, ast.NewVariable(nil, 0), "not", nil)

	v, err := Eval(notCall, e, tbl)
	require.Nil(t, err)
	neu, ok := v.(*value.Neu)
	require.True(t, ok, "expected a neutral value, got %T", v)
	dtor, ok := neu.Inner.(*value.NeuDtor)
	require.True(t, ok)
	require.Equal(t, "not", dtor.Name)
	require.Empty(t, dtor.Args)
}

func TestEvalHoleIsNeutral(t *testing.T) {
	_, tbl := boolModule()
	v, err := Eval(ast.NewHole(nil), env.Empty(), tbl)
	require.Nil(t, err)
	neu, ok := v.(*value.Neu)
	require.True(t, ok)
	_, ok = neu.Inner.(*value.NeuHole)
	require.True(t, ok)
}

func TestEvalEmptyArgCallProducesEmptyArgVector(t *testing.T) {
	_, tbl := boolModule()
	v, err := Eval(ast.NewCall(nil, "True", ast.CallCtor, nil), env.Empty(), tbl)
	require.Nil(t, err)
	ctor, ok := v.(*value.Ctor)
	require.True(t, ok)
	require.NotNil(t, ctor.Args)
	require.Len(t, ctor.Args, 0)
}

func TestEvalAbsurdCaseSelectedIsImpossible(t *testing.T) {
	data := &ast.Data{Name: "Void", Ctors: []*ast.Ctor{{Name: "Absurd", Arity: 0}}}
	absurdDef := &ast.Def{
		Name:  "elim",
		NArgs: 0,
		Body:  &ast.Match{Cases: []ast.Case{{Name: "Absurd", Body: nil}}},
	}
	mod := &ast.Module{URI: "test://void", Decls: []ast.Decl{data, absurdDef}}
	tbl := decls.New(mod)

	v := ast.NewCall(nil, "Absurd", ast.CallCtor, nil)
	call := ast.NewDotCall(nil, v, "elim", nil)

	_, err := Eval(call, env.Empty(), tbl)
	require.NotNil(t, err)
}
