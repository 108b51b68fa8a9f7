package decls

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MangoIV/polarity/internal/ast"
	"github.com/MangoIV/polarity/internal/perr"
)

func boolModule() *ast.Module {
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
	return &ast.Module{URI: "test://bool", Decls: []ast.Decl{data, not}}
}

func TestNewIndexesXtorsAndXdefsOfType(t *testing.T) {
	tbl := New(boolModule())

	require.Equal(t, []string{"True", "False"}, tbl.XtorsForType("Bool"))
	require.Equal(t, []string{"not"}, tbl.XdefsForType("Bool"))
}

func TestDataLookupMismatchYieldsInvalidDeclarationKind(t *testing.T) {
	tbl := New(boolModule())

	_, err := tbl.Data("not")
	require.NotNil(t, err)

	kindErr, ok := err.(*perr.InvalidDeclarationKind)
	require.True(t, ok, "expected *perr.InvalidDeclarationKind, got %T", err)
	require.Equal(t, "not", kindErr.Name)
	require.Equal(t, ast.KindDef, kindErr.Actual)
	require.Equal(t, []ast.DeclKind{ast.KindData}, kindErr.Expected)
}

func TestDefLookupMismatchYieldsInvalidDeclarationKind(t *testing.T) {
	tbl := New(boolModule())

	_, err := tbl.Def("Bool")
	require.NotNil(t, err)

	kindErr, ok := err.(*perr.InvalidDeclarationKind)
	require.True(t, ok, "expected *perr.InvalidDeclarationKind, got %T", err)
	require.Equal(t, ast.KindData, kindErr.Actual)
}

func TestUndefinedDeclarationLookup(t *testing.T) {
	tbl := New(boolModule())

	_, err := tbl.Decl("Nonexistent")
	require.NotNil(t, err)
	_, ok := err.(*perr.UndefinedDeclaration)
	require.True(t, ok, "expected *perr.UndefinedDeclaration, got %T", err)
}

func TestTypeDeclForMemberResolvesThroughXtorThenXdef(t *testing.T) {
	tbl := New(boolModule())

	viaXtor, err := tbl.TypeDeclForMember("True")
	require.Nil(t, err)
	require.Equal(t, "Bool", viaXtor.DeclName())

	viaXdef, err := tbl.TypeDeclForMember("not")
	require.Nil(t, err)
	require.Equal(t, "Bool", viaXdef.DeclName())
}

func TestTypeDeclForMemberMissingIsMissingTypeDeclaration(t *testing.T) {
	tbl := New(boolModule())

	_, err := tbl.TypeDeclForMember("nope")
	require.NotNil(t, err)
	_, ok := err.(*perr.MissingTypeDeclaration)
	require.True(t, ok, "expected *perr.MissingTypeDeclaration, got %T", err)
}

func TestCtorOrCodefUnifiesConstructorsAndCodefs(t *testing.T) {
	mod := boolModule()
	pair := &ast.Codata{Name: "Pair", Dtors: []*ast.Dtor{{Name: "fst", Arity: 0}}}
	mkPair := &ast.Codef{
		Name:  "MkPair",
		NArgs: 2,
		Body:  &ast.Comatch{Cases: []ast.Case{{Name: "fst", ParamCount: 0, Body: ast.NewVariable(nil, 0)}}},
	}
	mod.Decls = append(mod.Decls, pair, mkPair)
	tbl := New(mod)

	arity, err := tbl.CtorOrCodef("True")
	require.Nil(t, err)
	require.Equal(t, 0, arity)

	arity, err = tbl.CtorOrCodef("MkPair")
	require.Nil(t, err)
	require.Equal(t, 2, arity)
}

func TestCtorOrCodefRejectsUnrelatedKind(t *testing.T) {
	tbl := New(boolModule())

	_, err := tbl.CtorOrCodef("not")
	require.NotNil(t, err)
	_, ok := err.(*perr.InvalidDeclarationKind)
	require.True(t, ok, "expected *perr.InvalidDeclarationKind, got %T", err)
}
