// Package xfunc implements xfunctionalization: the bidirectional,
// structure-preserving data↔codata transform. A module is projected
// into a program matrix (one row per type, one column per def/codef,
// cells holding specialized case bodies), the matrix is pivoted, and
// the result is serialized back into a set of textual edits against
// the module's source spans.
package xfunc

import (
	"github.com/MangoIV/polarity/internal/ast"
	"github.com/MangoIV/polarity/internal/decls"
	"github.com/MangoIV/polarity/internal/perr"
)

// Repr is the representation a type uses to introduce its values:
// constructors (Data) or destructors (Codata).
type Repr int

const (
	ReprData Repr = iota
	ReprCodata
)

func (r Repr) String() string {
	if r == ReprCodata {
		return "codata"
	}
	return "data"
}

// Row is one type's projection onto the matrix: its xtors and xdefs, in
// declaration order, plus the span of the type declaration itself.
type Row struct {
	Span  ast.Span
	Xtors []string
	Xdefs []string
}

// Matrix is the rows/columns projection built by AsMatrix. Cell bodies
// are the case bodies found in each xdef's match/comatch, specialized
// to one xtor, exactly as written in the source (§4.3).
type Matrix struct {
	rows  map[string]*Row
	repr  map[string]Repr
	cells map[string]map[string]map[string]ast.Exp

	xtorArity map[string]int
	xdefArity map[string]int
}

// AsMatrix reconstructs the program matrix of mod, using tbl to resolve
// each xdef's owning type and each type's xtor/xdef membership.
func AsMatrix(mod *ast.Module, tbl *decls.Table) (*Matrix, *perr.XfuncError) {
	m := &Matrix{
		rows:      map[string]*Row{},
		repr:      map[string]Repr{},
		cells:     map[string]map[string]map[string]ast.Exp{},
		xtorArity: map[string]int{},
		xdefArity: map[string]int{},
	}

	for _, d := range mod.Decls {
		switch decl := d.(type) {
		case *ast.Data:
			m.rows[decl.Name] = &Row{
				Span:  decl.Sp,
				Xtors: tbl.XtorsForType(decl.Name),
				Xdefs: tbl.XdefsForType(decl.Name),
			}
			m.repr[decl.Name] = ReprData
			for _, c := range decl.Ctors {
				m.xtorArity[c.Name] = c.Arity
			}
		case *ast.Codata:
			m.rows[decl.Name] = &Row{
				Span:  decl.Sp,
				Xtors: tbl.XtorsForType(decl.Name),
				Xdefs: tbl.XdefsForType(decl.Name),
			}
			m.repr[decl.Name] = ReprCodata
			for _, dt := range decl.Dtors {
				m.xtorArity[dt.Name] = dt.Arity
			}
		}
	}

	for _, d := range mod.Decls {
		switch decl := d.(type) {
		case *ast.Def:
			m.xdefArity[decl.Name] = decl.NArgs
			m.addCells(tbl, decl.Name, decl.Body.Cases)
		case *ast.Codef:
			m.xdefArity[decl.Name] = decl.NArgs
			m.addCells(tbl, decl.Name, decl.Body.Cases)
		}
	}

	return m, nil
}

func (m *Matrix) addCells(tbl *decls.Table, xdefName string, cases []ast.Case) {
	typeDecl, lookErr := tbl.TypeDeclForMember(xdefName)
	if lookErr != nil {
		return
	}
	typeName := typeDecl.DeclName()
	if m.cells[typeName] == nil {
		m.cells[typeName] = map[string]map[string]ast.Exp{}
	}
	byXtor := map[string]ast.Exp{}
	for _, c := range cases {
		if !c.IsAbsurd() {
			byXtor[c.Name] = c.Body
		}
	}
	m.cells[typeName][xdefName] = byXtor
}

// Repr reports whether typeName is data or codata, failing Impossible
// if typeName cannot be located.
func (m *Matrix) Repr(typeName string) (Repr, *perr.XfuncError) {
	r, ok := m.repr[typeName]
	if !ok {
		return 0, perr.ImpossibleXfunc(nil, "could not resolve %s", typeName)
	}
	return r, nil
}

// Row returns typeName's row, failing Impossible if it cannot be found.
func (m *Matrix) Row(typeName string) (*Row, *perr.XfuncError) {
	row, ok := m.rows[typeName]
	if !ok {
		return nil, perr.ImpossibleXfunc(nil, "could not resolve %s", typeName)
	}
	return row, nil
}

// Cell returns the body specialized to xtorName within xdefName, or nil
// if that combination has no case (an absurd or omitted arm).
func (m *Matrix) Cell(typeName, xdefName, xtorName string) ast.Exp {
	return m.cells[typeName][xdefName][xtorName]
}

// XtorArity returns the declared arity of a constructor or destructor.
func (m *Matrix) XtorArity(name string) int { return m.xtorArity[name] }

// XdefArity returns the declared NArgs of a def or codef.
func (m *Matrix) XdefArity(name string) int { return m.xdefArity[name] }
