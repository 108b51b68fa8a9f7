package lspcore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MangoIV/polarity/internal/ast"
	"github.com/MangoIV/polarity/internal/decls"
)

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

func TestCapabilitiesMatchesExpectedShape(t *testing.T) {
	caps := Capabilities()
	require.True(t, caps.DocumentSymbolProvider)
	require.True(t, caps.HoverProvider)
	require.True(t, caps.CodeActionProvider)
	require.Equal(t, SyncFull, caps.TextDocumentSync.Change)
}

func TestXfunctionalizeActionWiresXfuncEdits(t *testing.T) {
	mod, tbl := boolModule()

	action, err := XfunctionalizeAction(mod, tbl, "Bool")
	require.NoError(t, err)
	require.NotEmpty(t, action.Id)
	require.Equal(t, "Refunctionalize Bool", action.Title)
	require.NotEmpty(t, action.Edits)
}

func TestXfunctionalizeActionUnknownTypeErrors(t *testing.T) {
	mod, tbl := boolModule()

	_, err := XfunctionalizeAction(mod, tbl, "Nope")
	require.Error(t, err)
}
