package ast

// DeclKind identifies the shape of a top-level declaration, used by the
// declaration table to report InvalidDeclarationKind with a precise
// expected/actual pair.
type DeclKind int

const (
	KindData DeclKind = iota
	KindCodata
	KindDef
	KindCodef
	KindCtor
	KindDtor
)

func (k DeclKind) String() string {
	switch k {
	case KindData:
		return "data"
	case KindCodata:
		return "codata"
	case KindDef:
		return "def"
	case KindCodef:
		return "codef"
	case KindCtor:
		return "constructor"
	case KindDtor:
		return "destructor"
	default:
		return "unknown"
	}
}

// Ctor is one constructor of a data type.
type Ctor struct {
	Sp     Span
	Name   string
	Arity  int
}

// Dtor is one destructor of a codata type.
type Dtor struct {
	Sp    Span
	Name  string
	Arity int
}

// Data is a data type: introduced by constructors, eliminated by def/match.
type Data struct {
	Sp    Span
	Name  string
	Ctors []*Ctor
}

// Codata is a codata type: introduced by codef/comatch, eliminated by
// destructors.
type Codata struct {
	Sp    Span
	Name  string
	Dtors []*Dtor
}

// Def is a top-level function pattern-matching on a data scrutinee. Body
// has one case per constructor of the type it eliminates.
type Def struct {
	Sp     Span
	Name   string
	NArgs  int
	Body   *Match
}

// Codef is a top-level co-pattern-matching definition introducing a value
// of a codata type. Body has one cocase per destructor of that type.
type Codef struct {
	Sp    Span
	Name  string
	NArgs int
	Body  *Comatch
}

// Decl is any top-level declaration.
type Decl interface {
	DeclName() string
	DeclSpan() Span
	DeclKind() DeclKind
}

func (d *Data) DeclName() string    { return d.Name }
func (d *Data) DeclSpan() Span      { return d.Sp }
func (d *Data) DeclKind() DeclKind  { return KindData }

func (d *Codata) DeclName() string   { return d.Name }
func (d *Codata) DeclSpan() Span     { return d.Sp }
func (d *Codata) DeclKind() DeclKind { return KindCodata }

func (d *Def) DeclName() string   { return d.Name }
func (d *Def) DeclSpan() Span     { return d.Sp }
func (d *Def) DeclKind() DeclKind { return KindDef }

func (d *Codef) DeclName() string   { return d.Name }
func (d *Codef) DeclSpan() Span     { return d.Sp }
func (d *Codef) DeclKind() DeclKind { return KindCodef }

// Module is a parsed collection of top-level declarations plus the raw
// source text, which the xfunctionalizer edits by span.
type Module struct {
	URI    string
	Source string
	Decls  []Decl
}

// DeclByName returns the declaration named name, or nil.
func (m *Module) DeclByName(name string) Decl {
	for _, d := range m.Decls {
		if d.DeclName() == name {
			return d
		}
	}
	return nil
}
