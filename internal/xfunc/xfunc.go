package xfunc

import (
	"fmt"
	"sort"

	"github.com/MangoIV/polarity/internal/ast"
	"github.com/MangoIV/polarity/internal/decls"
	"github.com/MangoIV/polarity/internal/perr"
	"github.com/MangoIV/polarity/internal/rename"
)

// Edit is one textual replacement against the module's source: the
// bytes covered by Span are to be replaced with Text (an empty Text
// deletes the span). Edits never overlap; a caller applies them in
// descending start-offset order so earlier edits don't invalidate
// later spans.
type Edit struct {
	Span ast.Span
	Text string
}

// Xfunc is the result of pivoting one type: a human-readable title for
// the transformation plus the edit set that realizes it.
type Xfunc struct {
	Title string
	Edits []Edit
}

// Run xfunctionalizes typeName within mod: refunctionalizing it if it is
// data, defunctionalizing it if it is codata. tbl must have been built
// from mod. It fails Impossible only if typeName cannot be located; all
// other structural guarantees (coverage, well-typedness) are the
// type-checker's responsibility and are assumed to already hold (§4.3).
func Run(mod *ast.Module, tbl *decls.Table, typeName string) (*Xfunc, *perr.XfuncError) {
	mat, err := AsMatrix(mod, tbl)
	if err != nil {
		return nil, err
	}

	row, err := mat.Row(typeName)
	if err != nil {
		return nil, err
	}

	repr, err := mat.Repr(typeName)
	if err != nil {
		return nil, err
	}

	filterOut := map[string]bool{}
	for _, x := range row.Xtors {
		filterOut[x] = true
	}
	for _, x := range row.Xdefs {
		filterOut[x] = true
	}

	var title string
	var newDecls []ast.Decl
	var flippedKind map[string]ast.CallKind

	switch repr {
	case ReprData:
		codata, codefs, perr2 := asCodata(mat, typeName)
		if perr2 != nil {
			return nil, perr2
		}
		newDecls = append(newDecls, rename.Rename(codata))
		for _, cd := range codefs {
			newDecls = append(newDecls, rename.Rename(cd))
		}
		title = fmt.Sprintf("Refunctionalize %s", typeName)
		flippedKind = map[string]ast.CallKind{}
		for _, x := range row.Xtors {
			flippedKind[x] = ast.CallCodef
		}

	case ReprCodata:
		data, defs, perr2 := asData(mat, typeName)
		if perr2 != nil {
			return nil, perr2
		}
		newDecls = append(newDecls, rename.Rename(data))
		for _, d := range defs {
			newDecls = append(newDecls, rename.Rename(d))
		}
		title = fmt.Sprintf("Defunctionalize %s", typeName)
		flippedKind = map[string]ast.CallKind{}
		for _, x := range row.Xtors {
			flippedKind[x] = ast.CallCtor
		}
	}

	dirty := dirtyDecls(mod, filterOut, flippedKind)

	return generateEdits(mod, row.Span, row.Xdefs, dirty, flippedKind, title, newDecls), nil
}

// flipDecl rewrites a Def or Codef's body to use the post-pivot call
// kinds; Data and Codata declarations carry no expressions and pass
// through unchanged.
func flipDecl(d ast.Decl, flippedKind map[string]ast.CallKind) ast.Decl {
	switch decl := d.(type) {
	case *ast.Def:
		return &ast.Def{Sp: decl.Sp, Name: decl.Name, NArgs: decl.NArgs, Body: flipCasesKind(decl.Body, flippedKind)}
	case *ast.Codef:
		return &ast.Codef{Sp: decl.Sp, Name: decl.Name, NArgs: decl.NArgs, Body: flipComatchKind(decl.Body, flippedKind)}
	default:
		return d
	}
}

// dirtyDecls finds every declaration outside the pivoted type whose
// body applies one of the type's former constructors/codefs by bare
// Call — those call sites' CallKind must flip (ctor↔codef) now that the
// xtor's introduction form changed, even though arity and behavior are
// unaffected (§4.3 "dirty... declaration whose internal references
// needed renaming").
func dirtyDecls(mod *ast.Module, filterOut map[string]bool, flippedKind map[string]ast.CallKind) []string {
	var dirty []string
	for _, d := range mod.Decls {
		if filterOut[d.DeclName()] {
			continue
		}
		switch decl := d.(type) {
		case *ast.Def:
			if referencesFlippedCall(decl.Body.Cases, flippedKind) {
				dirty = append(dirty, decl.Name)
			}
		case *ast.Codef:
			if referencesFlippedCall(decl.Body.Cases, flippedKind) {
				dirty = append(dirty, decl.Name)
			}
		}
	}
	sort.Strings(dirty)
	return dirty
}

func referencesFlippedCall(cases []ast.Case, flippedKind map[string]ast.CallKind) bool {
	for _, c := range cases {
		if !c.IsAbsurd() && containsFlippedCall(c.Body, flippedKind) {
			return true
		}
	}
	return false
}

func containsFlippedCall(exp ast.Exp, flippedKind map[string]ast.CallKind) bool {
	if exp == nil {
		return false
	}
	switch t := exp.(type) {
	case *ast.Call:
		if newKind, ok := flippedKind[t.Name]; ok && t.Kind != newKind {
			return true
		}
		for _, a := range t.Args {
			if containsFlippedCall(a, flippedKind) {
				return true
			}
		}
	case *ast.TypeConstructor:
		for _, a := range t.Args {
			if containsFlippedCall(a, flippedKind) {
				return true
			}
		}
	case *ast.DotCall:
		if containsFlippedCall(t.Receiver, flippedKind) {
			return true
		}
		for _, a := range t.Args {
			if containsFlippedCall(a, flippedKind) {
				return true
			}
		}
	case *ast.Annotation:
		return containsFlippedCall(t.Exp, flippedKind) || containsFlippedCall(t.Typ, flippedKind)
	case *ast.LocalMatch:
		if containsFlippedCall(t.Scrutinee, flippedKind) {
			return true
		}
		return referencesFlippedCall(t.Body.Cases, flippedKind)
	case *ast.LocalComatch:
		return referencesFlippedCall(t.Body.Cases, flippedKind)
	}
	return false
}

// flipCallKinds rewrites every Call in exp whose name is in flippedKind
// to carry its new kind, leaving everything else untouched.
func flipCallKinds(exp ast.Exp, flippedKind map[string]ast.CallKind) ast.Exp {
	if exp == nil {
		return nil
	}
	switch t := exp.(type) {
	case *ast.Call:
		kind := t.Kind
		if newKind, ok := flippedKind[t.Name]; ok {
			kind = newKind
		}
		args := make([]ast.Exp, len(t.Args))
		for i, a := range t.Args {
			args[i] = flipCallKinds(a, flippedKind)
		}
		return ast.NewCall(t.Span(), t.Name, kind, args)
	case *ast.TypeConstructor:
		args := make([]ast.Exp, len(t.Args))
		for i, a := range t.Args {
			args[i] = flipCallKinds(a, flippedKind)
		}
		return ast.NewTypeConstructor(t.Span(), t.Name, args)
	case *ast.DotCall:
		args := make([]ast.Exp, len(t.Args))
		for i, a := range t.Args {
			args[i] = flipCallKinds(a, flippedKind)
		}
		return ast.NewDotCall(t.Span(), flipCallKinds(t.Receiver, flippedKind), t.Name, args)
	case *ast.Annotation:
		return ast.NewAnnotation(t.Span(), flipCallKinds(t.Exp, flippedKind), flipCallKinds(t.Typ, flippedKind))
	case *ast.LocalMatch:
		return ast.NewLocalMatch(t.Span(), t.Name, flipCallKinds(t.Scrutinee, flippedKind), flipCasesKind(t.Body, flippedKind))
	case *ast.LocalComatch:
		return ast.NewLocalComatch(t.Span(), t.Name, t.IsLambdaSugar, flipComatchKind(t.Body, flippedKind))
	default:
		return exp
	}
}

func flipCasesKind(m *ast.Match, flippedKind map[string]ast.CallKind) *ast.Match {
	cases := make([]ast.Case, len(m.Cases))
	for i, c := range m.Cases {
		nc := c
		if !c.IsAbsurd() {
			nc.Body = flipCallKinds(c.Body, flippedKind)
		}
		cases[i] = nc
	}
	return &ast.Match{Sp: m.Sp, Cases: cases}
}

func flipComatchKind(m *ast.Comatch, flippedKind map[string]ast.CallKind) *ast.Comatch {
	cases := make([]ast.Case, len(m.Cases))
	for i, c := range m.Cases {
		nc := c
		if !c.IsAbsurd() {
			nc.Body = flipCallKinds(c.Body, flippedKind)
		}
		cases[i] = nc
	}
	return &ast.Comatch{Sp: m.Sp, Cases: cases}
}

// generateEdits assembles the final edit set: one full rewrite of the
// pivoted type's span, one surgical rewrite per dirty declaration, and
// one deleting edit per xdef absorbed into the new form (§4.3). Spans
// are used exactly as the declarations carry them; whitespace next to a
// replaced or deleted span is left as it is, for the caller to handle.
func generateEdits(mod *ast.Module, typeSpan ast.Span, oldXdefs, dirty []string, flippedKind map[string]ast.CallKind, title string, newDecls []ast.Decl) *Xfunc {
	var b string
	for i, d := range newDecls {
		if i > 0 {
			b += "\n"
		}
		b += ast.PrintDecl(d)
	}

	edits := []Edit{{Span: typeSpan, Text: b}}

	for _, name := range dirty {
		decl := mod.DeclByName(name)
		if decl == nil {
			continue
		}
		flipped := rename.Rename(flipDecl(decl, flippedKind))
		edits = append(edits, Edit{Span: decl.DeclSpan(), Text: ast.PrintDecl(flipped)})
	}

	for _, name := range oldXdefs {
		decl := mod.DeclByName(name)
		if decl == nil {
			continue
		}
		edits = append(edits, Edit{Span: decl.DeclSpan(), Text: ""})
	}

	return &Xfunc{Title: title, Edits: edits}
}
