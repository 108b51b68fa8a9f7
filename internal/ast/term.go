package ast

import (
	"fmt"
	"strings"
)

// CallKind distinguishes the three things a bare name-application can mean:
// a data constructor, a codef invocation, or a top-level def call.
type CallKind int

const (
	CallCtor CallKind = iota
	CallCodef
	CallDef
)

func (k CallKind) String() string {
	switch k {
	case CallCtor:
		return "ctor"
	case CallCodef:
		return "codef"
	case CallDef:
		return "def"
	default:
		return "unknown"
	}
}

// Exp is the surface/desugared expression sum. Every variant carries an
// optional Span; Span returns nil when the node was synthesized rather
// than parsed (e.g. by the xfunctionalizer).
type Exp interface {
	Span() *Span
	String() string
	isExp()
}

// node is embedded by every Exp variant to share the Span field.
type node struct {
	Sp *Span
}

func (n node) Span() *Span { return n.Sp }

// Variable is a de Bruijn index reference: distance from the innermost
// binder.
type Variable struct {
	node
	Idx int
}

func (*Variable) isExp() {}
func (v *Variable) String() string { return fmt.Sprintf("#%d", v.Idx) }

// TypeConstructor is a fully applied type former, e.g. `List(Nat)`.
type TypeConstructor struct {
	node
	Name string
	Args []Exp
}

func (*TypeConstructor) isExp() {}
func (t *TypeConstructor) String() string {
	return t.Name + argsString(t.Args)
}

// Call is a constructor, codef, or top-level def invocation by name.
type Call struct {
	node
	Name string
	Kind CallKind
	Args []Exp
}

func (*Call) isExp() {}
func (c *Call) String() string { return c.Name + argsString(c.Args) }

// DotCall is destructor application or a `def` invocation written in
// dot-call style: `recv.name(args)`.
type DotCall struct {
	node
	Receiver Exp
	Name     string
	Args     []Exp
}

func (*DotCall) isExp() {}
func (d *DotCall) String() string {
	return fmt.Sprintf("%s.%s%s", d.Receiver, d.Name, argsString(d.Args))
}

// Annotation is erased at evaluation time; it exists for the type checker.
type Annotation struct {
	node
	Exp Exp
	Typ Exp
}

func (*Annotation) isExp() {}
func (a *Annotation) String() string { return fmt.Sprintf("%s : %s", a.Exp, a.Typ) }

// TypeUniverse is the sort of types, `Type`.
type TypeUniverse struct{ node }

func (*TypeUniverse) isExp()      {}
func (*TypeUniverse) String() string { return "Type" }

// LocalMatch is an inline `match` expression eliminating a data scrutinee.
type LocalMatch struct {
	node
	Name      string
	Scrutinee Exp
	Body      *Match
}

func (*LocalMatch) isExp() {}
func (m *LocalMatch) String() string {
	return fmt.Sprintf("%s.match %s { %s }", m.Scrutinee, m.Name, m.Body)
}

// LocalComatch is an inline `comatch` expression introducing a codata
// value. IsLambdaSugar records whether the surface syntax was a `\x -> e`
// lambda desugared to a one-destructor comatch, purely for re-printing.
type LocalComatch struct {
	node
	Name          string
	IsLambdaSugar bool
	Body          *Comatch
}

func (*LocalComatch) isExp() {}
func (c *LocalComatch) String() string {
	return fmt.Sprintf("comatch %s { %s }", c.Name, c.Body)
}

// Hole is an incomplete program fragment; it evaluates to a neutral hole.
type Hole struct{ node }

func (*Hole) isExp()        {}
func (*Hole) String() string { return "?" }

// Case is one arm of a match or comatch body. Body == nil means the case
// is declared absurd (unreachable, no right-hand side).
type Case struct {
	Sp         *Span
	Name       string
	ParamCount int
	Body       Exp
}

func (c Case) IsAbsurd() bool { return c.Body == nil }

func (c Case) String() string {
	if c.IsAbsurd() {
		return fmt.Sprintf("%s => absurd", c.Name)
	}
	return fmt.Sprintf("%s => %s", c.Name, c.Body)
}

// Match is the body of a `match`/`def`: one case per data constructor.
type Match struct {
	Sp    *Span
	Cases []Case
}

func (m *Match) String() string { return casesString(m.Cases) }

// Comatch is the body of a `comatch`/`codef`: one cocase per destructor.
type Comatch struct {
	Sp    *Span
	Cases []Case
}

func (c *Comatch) String() string { return casesString(c.Cases) }

func argsString(args []Exp) string {
	if len(args) == 0 {
		return "()"
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func casesString(cases []Case) string {
	parts := make([]string, len(cases))
	for i, c := range cases {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

func spanOf(sp *Span) node { return node{Sp: sp} }

// NewVariable builds a de Bruijn variable reference.
func NewVariable(sp *Span, idx int) *Variable { return &Variable{node: spanOf(sp), Idx: idx} }

// NewCall builds a constructor/codef/def application.
func NewCall(sp *Span, name string, kind CallKind, args []Exp) *Call {
	return &Call{node: spanOf(sp), Name: name, Kind: kind, Args: args}
}

// NewDotCall builds a destructor/def dot-call.
func NewDotCall(sp *Span, recv Exp, name string, args []Exp) *DotCall {
	return &DotCall{node: spanOf(sp), Receiver: recv, Name: name, Args: args}
}

// NewHole builds a hole term.
func NewHole(sp *Span) *Hole { return &Hole{node: spanOf(sp)} }

// NewTypeConstructor builds a fully applied type former.
func NewTypeConstructor(sp *Span, name string, args []Exp) *TypeConstructor {
	return &TypeConstructor{node: spanOf(sp), Name: name, Args: args}
}

// NewAnnotation builds a type-annotated expression.
func NewAnnotation(sp *Span, exp, typ Exp) *Annotation {
	return &Annotation{node: spanOf(sp), Exp: exp, Typ: typ}
}

// NewTypeUniverse builds the sort of types.
func NewTypeUniverse(sp *Span) *TypeUniverse { return &TypeUniverse{node: spanOf(sp)} }

// NewLocalMatch builds an inline match expression.
func NewLocalMatch(sp *Span, name string, scrutinee Exp, body *Match) *LocalMatch {
	return &LocalMatch{node: spanOf(sp), Name: name, Scrutinee: scrutinee, Body: body}
}

// NewLocalComatch builds an inline comatch expression.
func NewLocalComatch(sp *Span, name string, isLambdaSugar bool, body *Comatch) *LocalComatch {
	return &LocalComatch{node: spanOf(sp), Name: name, IsLambdaSugar: isLambdaSugar, Body: body}
}
