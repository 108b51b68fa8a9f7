package xfunc

import (
	"github.com/MangoIV/polarity/internal/ast"
	"github.com/MangoIV/polarity/internal/perr"
)

// rotate renumbers the de Bruijn indices of a cell body being pivoted
// from one representation to the other. A cell body is evaluated under
// two binding groups stacked on top of each other: the xdef's own
// formal parameters (bound first, so farther from the body — "outer")
// and the xtor's own fields (bound second, so closer — "inner"). Pivoting
// swaps which one introduces a value: the xtor's fields become the new
// declaration's own parameters (bound first) and the xdef's parameters
// become the new destructor/constructor's own arguments (bound second),
// so the two groups trade places. rotate walks exp and, for every
// variable that is free with respect to d nested local binders already
// descended into, swaps its group by rotating the combined [inner,outer)
// block: what was in the inner group of size `inner` moves to the outer
// position (indices [outer, outer+inner)), and what was in the outer
// group of size `outer` moves to the inner position (indices [0, outer)).
func rotate(exp ast.Exp, d, outer, inner int) ast.Exp {
	if exp == nil {
		return nil
	}
	switch t := exp.(type) {
	case *ast.Variable:
		if t.Idx < d {
			return t
		}
		local := t.Idx - d
		return ast.NewVariable(t.Span(), d+rotateIdx(local, outer, inner))

	case *ast.TypeConstructor:
		return ast.NewTypeConstructor(t.Span(), t.Name, rotateArgs(t.Args, d, outer, inner))

	case *ast.Call:
		return ast.NewCall(t.Span(), t.Name, t.Kind, rotateArgs(t.Args, d, outer, inner))

	case *ast.DotCall:
		return ast.NewDotCall(t.Span(), rotate(t.Receiver, d, outer, inner), t.Name, rotateArgs(t.Args, d, outer, inner))

	case *ast.Annotation:
		return ast.NewAnnotation(t.Span(), rotate(t.Exp, d, outer, inner), rotate(t.Typ, d, outer, inner))

	case *ast.TypeUniverse:
		return t

	case *ast.LocalMatch:
		return ast.NewLocalMatch(t.Span(), t.Name, rotate(t.Scrutinee, d, outer, inner), rotateMatch(t.Body, d, outer, inner))

	case *ast.LocalComatch:
		return ast.NewLocalComatch(t.Span(), t.Name, t.IsLambdaSugar, rotateComatch(t.Body, d, outer, inner))

	case *ast.Hole:
		return t

	default:
		return t
	}
}

// rotateIdx swaps a local (d already subtracted) index between the
// two-group block of size outer+inner.
func rotateIdx(local, outer, inner int) int {
	if local < inner {
		return local + outer
	}
	return local - inner
}

func rotateArgs(args []ast.Exp, d, outer, inner int) []ast.Exp {
	out := make([]ast.Exp, len(args))
	for i, a := range args {
		out[i] = rotate(a, d, outer, inner)
	}
	return out
}

func rotateCases(cases []ast.Case, d, outer, inner int) []ast.Case {
	out := make([]ast.Case, len(cases))
	for i, c := range cases {
		nc := c
		if !c.IsAbsurd() {
			nc.Body = rotate(c.Body, d+c.ParamCount, outer, inner)
		}
		out[i] = nc
	}
	return out
}

func rotateMatch(m *ast.Match, d, outer, inner int) *ast.Match {
	if m == nil {
		return nil
	}
	return &ast.Match{Sp: m.Sp, Cases: rotateCases(m.Cases, d, outer, inner)}
}

func rotateComatch(c *ast.Comatch, d, outer, inner int) *ast.Comatch {
	if c == nil {
		return nil
	}
	return &ast.Comatch{Sp: c.Sp, Cases: rotateCases(c.Cases, d, outer, inner)}
}

// asCodata builds the codata type and codefs that refunctionalize
// typeName's data representation: one destructor per old def, one codef
// per old constructor, cell bodies rotated so the constructor's fields
// become the codef's own parameters and each def's own arguments become
// its corresponding destructor's arguments.
//
// In the pre-pivot cell body, the def's own NArgs were bound first
// (original-outer) and the constructor's fields were bound last,
// closest to the body (original-inner): see evalDotCall's Data branch
// in the evaluator, which binds def args via env.Bound before binding
// ctor fields through betaMatch's Apply.
func asCodata(mat *Matrix, typeName string) (*ast.Codata, []*ast.Codef, *perr.XfuncError) {
	row, err := mat.Row(typeName)
	if err != nil {
		return nil, nil, err
	}

	dtors := make([]*ast.Dtor, len(row.Xdefs))
	for i, defName := range row.Xdefs {
		dtors[i] = &ast.Dtor{Name: defName, Arity: mat.XdefArity(defName)}
	}
	codata := &ast.Codata{Sp: row.Span, Name: typeName, Dtors: dtors}

	codefs := make([]*ast.Codef, len(row.Xtors))
	for i, ctorName := range row.Xtors {
		ctorArity := mat.XtorArity(ctorName) // original-inner; new codef's own NArgs
		cases := make([]ast.Case, len(row.Xdefs))
		for j, defName := range row.Xdefs {
			defNArgs := mat.XdefArity(defName) // original-outer; new cocase's ParamCount
			body := mat.Cell(typeName, defName, ctorName)
			cases[j] = pivotedCase(defName, defNArgs, body, defNArgs, ctorArity)
		}
		codefs[i] = &ast.Codef{
			Name:  ctorName,
			NArgs: ctorArity,
			Body:  &ast.Comatch{Cases: cases},
		}
	}

	return codata, codefs, nil
}

// asData is the symmetric defunctionalization: typeName's codata
// representation becomes a data type with one constructor per old
// codef, one def per old destructor. The pre-pivot cell body binds a
// codef's own NArgs first (original-outer) and the destructor's own
// args last, closest to the body (original-inner).
func asData(mat *Matrix, typeName string) (*ast.Data, []*ast.Def, *perr.XfuncError) {
	row, err := mat.Row(typeName)
	if err != nil {
		return nil, nil, err
	}

	ctors := make([]*ast.Ctor, len(row.Xdefs))
	for i, codefName := range row.Xdefs {
		ctors[i] = &ast.Ctor{Name: codefName, Arity: mat.XdefArity(codefName)}
	}
	data := &ast.Data{Sp: row.Span, Name: typeName, Ctors: ctors}

	defs := make([]*ast.Def, len(row.Xtors))
	for i, dtorName := range row.Xtors {
		dtorArity := mat.XtorArity(dtorName) // original-inner; new def's own NArgs
		cases := make([]ast.Case, len(row.Xdefs))
		for j, codefName := range row.Xdefs {
			codefNArgs := mat.XdefArity(codefName) // original-outer; new case's ParamCount
			body := mat.Cell(typeName, codefName, dtorName)
			cases[j] = pivotedCase(codefName, codefNArgs, body, codefNArgs, dtorArity)
		}
		defs[i] = &ast.Def{
			Name:  dtorName,
			NArgs: dtorArity,
			Body:  &ast.Match{Cases: cases},
		}
	}

	return data, defs, nil
}

// pivotedCase builds one rotated case named colName, with ParamCount
// equal to the new binder size it introduces, from a cell body whose
// original layout had origOuter (bound first) stacked under origInner
// (bound last, closest to the body).
func pivotedCase(colName string, paramCount int, body ast.Exp, origOuter, origInner int) ast.Case {
	c := ast.Case{Name: colName, ParamCount: paramCount}
	if body != nil {
		c.Body = rotate(body, 0, origOuter, origInner)
	}
	return c
}
