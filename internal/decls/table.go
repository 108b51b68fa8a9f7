// Package decls implements the declaration table: a name→declaration map
// for a module, paired with a lookup table maintaining two reverse
// indices (xtor→type, xdef→type) populated once at load time and read
// only thereafter.
package decls

import (
	"github.com/MangoIV/polarity/internal/ast"
	"github.com/MangoIV/polarity/internal/perr"
)

// Table is a module's declaration table: the name→declaration map plus
// the reverse indices needed to resolve a constructor/destructor or a
// def/codef back to the type it belongs to.
type Table struct {
	decls map[string]ast.Decl

	// xtorToType maps a constructor or destructor name to its owning
	// type's name.
	xtorToType map[string]string
	// xdefToType maps a def or codef name to the type it eliminates or
	// introduces.
	xdefToType map[string]string

	// xtorsOfType/xdefsOfType preserve declaration order for xtors_for_type /
	// xdefs_for_type, and for matrix column ordering (§5 Ordering
	// guarantees: "fixed by the lookup table's insertion order").
	xtorsOfType map[string][]string
	xdefsOfType map[string][]string
}

// New builds a Table from a module's declarations. Invariants (i)-(iii)
// of §3 (every xtor belongs to exactly one type, every xdef targets
// exactly one type, names are globally unique) are established here by
// construction: each Data/Codata's child xtors and each Def/Codef are
// indexed exactly once, keyed by their own unique name.
func New(mod *ast.Module) *Table {
	t := &Table{
		decls:       make(map[string]ast.Decl),
		xtorToType:  make(map[string]string),
		xdefToType:  make(map[string]string),
		xtorsOfType: make(map[string][]string),
		xdefsOfType: make(map[string][]string),
	}
	for _, d := range mod.Decls {
		t.decls[d.DeclName()] = d
		switch decl := d.(type) {
		case *ast.Data:
			for _, c := range decl.Ctors {
				t.xtorToType[c.Name] = decl.Name
				t.xtorsOfType[decl.Name] = append(t.xtorsOfType[decl.Name], c.Name)
			}
		case *ast.Codata:
			for _, dt := range decl.Dtors {
				t.xtorToType[dt.Name] = decl.Name
				t.xtorsOfType[decl.Name] = append(t.xtorsOfType[decl.Name], dt.Name)
			}
		case *ast.Def:
			// A def's target type is resolved once all decls are
			// indexed (it's whatever type its first-dispatched
			// constructor belongs to); defer to xdefToType population
			// below via resolveTarget.
		case *ast.Codef:
			// likewise
		}
	}
	// Second pass: defs/codefs name the type they eliminate/introduce by
	// the cases their body mentions (every well-typed body's case names
	// are all xtors of exactly one type, by invariant (ii)).
	for _, d := range mod.Decls {
		switch decl := d.(type) {
		case *ast.Def:
			if typ := t.resolveTarget(decl.Body.Cases); typ != "" {
				t.xdefToType[decl.Name] = typ
				t.xdefsOfType[typ] = append(t.xdefsOfType[typ], decl.Name)
			}
		case *ast.Codef:
			if typ := t.resolveTarget(decl.Body.Cases); typ != "" {
				t.xdefToType[decl.Name] = typ
				t.xdefsOfType[typ] = append(t.xdefsOfType[typ], decl.Name)
			}
		}
	}
	return t
}

func (t *Table) resolveTarget(cases []ast.Case) string {
	for _, c := range cases {
		if typ, ok := t.xtorToType[c.Name]; ok {
			return typ
		}
	}
	return ""
}

func (t *Table) decl(name string, span *ast.Span) (ast.Decl, perr.LookupError) {
	d, ok := t.decls[name]
	if !ok {
		return nil, &perr.UndefinedDeclaration{Name: name, Span: span}
	}
	return d, nil
}

// Decl returns the declaration named name, of whatever kind it is.
func (t *Table) Decl(name string) (ast.Decl, perr.LookupError) { return t.decl(name, nil) }

// Typ returns name's Data or Codata declaration.
func (t *Table) Typ(name string) (ast.Decl, perr.LookupError) {
	d, err := t.decl(name, nil)
	if err != nil {
		return nil, err
	}
	switch d.(type) {
	case *ast.Data, *ast.Codata:
		return d, nil
	default:
		return nil, kindErr(name, d, ast.KindData, ast.KindCodata)
	}
}

// Data returns name's Data declaration.
func (t *Table) Data(name string) (*ast.Data, perr.LookupError) {
	d, err := t.decl(name, nil)
	if err != nil {
		return nil, err
	}
	if data, ok := d.(*ast.Data); ok {
		return data, nil
	}
	return nil, kindErr(name, d, ast.KindData)
}

// Codata returns name's Codata declaration.
func (t *Table) Codata(name string) (*ast.Codata, perr.LookupError) {
	d, err := t.decl(name, nil)
	if err != nil {
		return nil, err
	}
	if codata, ok := d.(*ast.Codata); ok {
		return codata, nil
	}
	return nil, kindErr(name, d, ast.KindCodata)
}

// Def returns name's Def declaration.
func (t *Table) Def(name string) (*ast.Def, perr.LookupError) {
	d, err := t.decl(name, nil)
	if err != nil {
		return nil, err
	}
	if def, ok := d.(*ast.Def); ok {
		return def, nil
	}
	return nil, kindErr(name, d, ast.KindDef)
}

// Codef returns name's Codef declaration.
func (t *Table) Codef(name string) (*ast.Codef, perr.LookupError) {
	d, err := t.decl(name, nil)
	if err != nil {
		return nil, err
	}
	if codef, ok := d.(*ast.Codef); ok {
		return codef, nil
	}
	return nil, kindErr(name, d, ast.KindCodef)
}

// Ctor returns the Ctor named name and the Data it belongs to.
func (t *Table) Ctor(name string) (*ast.Ctor, *ast.Data, perr.LookupError) {
	typeName, ok := t.xtorToType[name]
	if !ok {
		return nil, nil, &perr.UndefinedDeclaration{Name: name}
	}
	data, isData := t.decls[typeName].(*ast.Data)
	if !isData {
		return nil, nil, &perr.InvalidDeclarationKind{Name: name, Expected: []ast.DeclKind{ast.KindCtor}, Actual: ast.KindDtor}
	}
	for _, c := range data.Ctors {
		if c.Name == name {
			return c, data, nil
		}
	}
	return nil, nil, &perr.UndefinedDeclaration{Name: name}
}

// Dtor returns the Dtor named name and the Codata it belongs to.
func (t *Table) Dtor(name string) (*ast.Dtor, *ast.Codata, perr.LookupError) {
	typeName, ok := t.xtorToType[name]
	if !ok {
		return nil, nil, &perr.UndefinedDeclaration{Name: name}
	}
	codata, isCodata := t.decls[typeName].(*ast.Codata)
	if !isCodata {
		return nil, nil, &perr.InvalidDeclarationKind{Name: name, Expected: []ast.DeclKind{ast.KindDtor}, Actual: ast.KindCtor}
	}
	for _, d := range codata.Dtors {
		if d.Name == name {
			return d, codata, nil
		}
	}
	return nil, nil, &perr.UndefinedDeclaration{Name: name}
}

// CtorOrCodef unifies constructors with codefs viewed as constructors:
// during evaluation a codef call produces a constructor-shaped value
// (value.Ctor) that is, in its introduction role, indistinguishable from
// a user-written constructor (§4.1). It returns the declared arity either
// way.
func (t *Table) CtorOrCodef(name string) (arity int, err perr.LookupError) {
	if _, isXtor := t.xtorToType[name]; isXtor {
		ctor, _, err := t.Ctor(name)
		if err != nil {
			return 0, err
		}
		return ctor.Arity, nil
	}
	d, lookErr := t.decl(name, nil)
	if lookErr != nil {
		return 0, lookErr
	}
	if codef, ok := d.(*ast.Codef); ok {
		return codef.NArgs, nil
	}
	return 0, &perr.InvalidDeclarationKind{Name: name, Expected: []ast.DeclKind{ast.KindCtor, ast.KindCodef}, Actual: d.DeclKind()}
}

// DtorOrDef unifies destructors with defs viewed as destructors,
// symmetrically to CtorOrCodef.
func (t *Table) DtorOrDef(name string) (arity int, err perr.LookupError) {
	if _, isXtor := t.xtorToType[name]; isXtor {
		dtor, _, err := t.Dtor(name)
		if err != nil {
			return 0, err
		}
		return dtor.Arity, nil
	}
	d, lookErr := t.decl(name, nil)
	if lookErr != nil {
		return 0, lookErr
	}
	if def, ok := d.(*ast.Def); ok {
		return def.NArgs, nil
	}
	return 0, &perr.InvalidDeclarationKind{Name: name, Expected: []ast.DeclKind{ast.KindDtor, ast.KindDef}, Actual: d.DeclKind()}
}

// TypeDeclForMember resolves a name to its owning type declaration. It
// first consults the xtor index; on miss it consults the xdef index; on
// miss it fails with MissingTypeDeclaration (§4.1).
func (t *Table) TypeDeclForMember(name string) (ast.Decl, perr.LookupError) {
	if typeName, ok := t.xtorToType[name]; ok {
		return t.decl(typeName, nil)
	}
	if typeName, ok := t.xdefToType[name]; ok {
		return t.decl(typeName, nil)
	}
	return nil, &perr.MissingTypeDeclaration{Name: name}
}

// XtorsForType returns the constructors (for data) or destructors (for
// codata) of typeName, in declaration order.
func (t *Table) XtorsForType(typeName string) []string {
	return append([]string(nil), t.xtorsOfType[typeName]...)
}

// XdefsForType returns the defs (for data) or codefs (for codata) of
// typeName, in declaration order — the order that fixes matrix column
// order (§5).
func (t *Table) XdefsForType(typeName string) []string {
	return append([]string(nil), t.xdefsOfType[typeName]...)
}

func kindErr(name string, actual ast.Decl, expected ...ast.DeclKind) perr.LookupError {
	return &perr.InvalidDeclarationKind{Name: name, Expected: expected, Actual: actual.DeclKind()}
}
