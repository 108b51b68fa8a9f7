package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintDeclData(t *testing.T) {
	data := &Data{Name: "Bool", Ctors: []*Ctor{
		{Name: "True", Arity: 0},
		{Name: "False", Arity: 0},
	}}
	require.Equal(t, "data Bool { True(), False() }", PrintDecl(data))
}

func TestPrintDeclCodata(t *testing.T) {
	codata := &Codata{Name: "Pair", Dtors: []*Dtor{
		{Name: "fst", Arity: 0},
		{Name: "snd", Arity: 0},
	}}
	require.Equal(t, "codata Pair { fst(), snd() }", PrintDecl(codata))
}

func TestPrintDeclDataWithArity(t *testing.T) {
	data := &Data{Name: "Nat", Ctors: []*Ctor{
		{Name: "Zero", Arity: 0},
		{Name: "Succ", Arity: 1},
	}}
	require.Equal(t, "data Nat { Zero(), Succ(x0) }", PrintDecl(data))
}

func TestPrintDeclDef(t *testing.T) {
	def := &Def{
		Name:  "not",
		NArgs: 0,
		Body: &Match{Cases: []Case{
			{Name: "True", ParamCount: 0, Body: NewCall(nil, "False", CallCtor, nil)},
			{Name: "False", ParamCount: 0, Body: NewCall(nil, "True", CallCtor, nil)},
		}},
	}
	require.Equal(t, "def not() { True => False(), False => True() }", PrintDecl(def))
}

func TestPrintDeclCodefWithAbsurdCase(t *testing.T) {
	codef := &Codef{
		Name:  "elim",
		NArgs: 1,
		Body: &Comatch{Cases: []Case{
			{Name: "fst", ParamCount: 0, Body: nil},
		}},
	}
	require.Equal(t, "codef elim(x0) { fst => absurd }", PrintDecl(codef))
}
