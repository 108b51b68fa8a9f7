package xfunc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MangoIV/polarity/internal/ast"
	"github.com/MangoIV/polarity/internal/decls"
)

// boolModule builds data Bool { True, False }; def not { True => False,
// False => True }, the worked example of §8.
func boolModule() *ast.Module {
	data := &ast.Data{
		Name: "Bool",
		Ctors: []*ast.Ctor{
			{Name: "True", Arity: 0},
			{Name: "False", Arity: 0},
		},
	}
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

func TestRunRefunctionalizeBool(t *testing.T) {
	mod := boolModule()
	tbl := decls.New(mod)

	result, err := Run(mod, tbl, "Bool")
	require.Nil(t, err)
	require.Equal(t, "Refunctionalize Bool", result.Title)

	var typeEdit, deleteEdit *Edit
	for i := range result.Edits {
		e := &result.Edits[i]
		if e.Text == "" {
			deleteEdit = e
		} else if strings.Contains(e.Text, "codata") {
			typeEdit = e
		}
	}
	require.NotNil(t, typeEdit)
	require.NotNil(t, deleteEdit, "the absorbed def not must be deleted")

	require.Contains(t, typeEdit.Text, "codata Bool")
	require.Contains(t, typeEdit.Text, "not(")
	require.Contains(t, typeEdit.Text, "codef True")
	require.Contains(t, typeEdit.Text, "codef False")
	// The transposed cocase bodies: True.not => False, False.not => True.
	require.Contains(t, typeEdit.Text, "False()")
	require.Contains(t, typeEdit.Text, "True()")
}

func TestRunDefunctionalizeIsInverse(t *testing.T) {
	mod := boolModule()
	tbl := decls.New(mod)

	mat, err := AsMatrix(mod, tbl)
	require.Nil(t, err)

	codata, codefs, perr2 := asCodata(mat, "Bool")
	require.Nil(t, perr2)
	require.Equal(t, "Bool", codata.Name)
	require.Len(t, codata.Dtors, 1)
	require.Equal(t, "not", codata.Dtors[0].Name)

	codataMod := &ast.Module{URI: "test://bool-codata", Decls: []ast.Decl{codata}}
	for _, cd := range codefs {
		codataMod.Decls = append(codataMod.Decls, cd)
	}
	tbl2 := decls.New(codataMod)
	mat2, err := AsMatrix(codataMod, tbl2)
	require.Nil(t, err)

	data, defs, perr3 := asData(mat2, "Bool")
	require.Nil(t, perr3)
	require.Equal(t, "Bool", data.Name)
	require.Len(t, data.Ctors, 2)
	require.Len(t, defs, 1)
	require.Equal(t, "not", defs[0].Name)

	// Round-tripping through refunctionalize then defunctionalize should
	// recover a def alpha-equivalent to the original: same case names,
	// same transposed bodies.
	byName := map[string]ast.Case{}
	for _, c := range defs[0].Body.Cases {
		byName[c.Name] = c
	}
	require.Contains(t, byName, "True")
	require.Contains(t, byName, "False")
	require.Equal(t, "False()", byName["True"].Body.String())
	require.Equal(t, "True()", byName["False"].Body.String())
}

func TestRunUnknownTypeIsImpossible(t *testing.T) {
	mod := boolModule()
	tbl := decls.New(mod)

	_, err := Run(mod, tbl, "Nonexistent")
	require.NotNil(t, err)
}
