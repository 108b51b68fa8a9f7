// Package value defines the evaluation targets of normalization-by-evaluation:
// values, neutral terms, and closures. Values are immutable; closures
// snapshot their defining environment by value so that mutation of a
// caller's environment after capture never leaks into an already-built
// closure.
package value

import (
	"fmt"
	"strings"

	"github.com/MangoIV/polarity/internal/ast"
)

// Value is the evaluation target of eval/apply: a weak-head-normal form.
type Value interface {
	String() string
	isValue()
}

// TypCtor is a fully applied type constructor value, e.g. List(Nat).
type TypCtor struct {
	Name string
	Args []Value
}

func (*TypCtor) isValue() {}
func (t *TypCtor) String() string { return t.Name + valuesString(t.Args) }

// Ctor is a constructor value: the application of a named xtor-introducer
// to its arguments. Kind records whether the name was a data constructor,
// a codef, or a def at the Call site; dispatch at DotCall time looks the
// name up in the declaration table rather than trusting Kind, since a
// codef-sourced value is otherwise indistinguishable from a hand-written
// constructor in its introduction role.
type Ctor struct {
	Kind ast.CallKind
	Name string
	Args []Value
}

func (*Ctor) isValue() {}
func (c *Ctor) String() string { return c.Name + valuesString(c.Args) }

// Comatch is a codata value: a bundle of cocases closed over an
// environment, optionally tagged as lambda-sugar for re-printing.
type Comatch struct {
	Name          string
	IsLambdaSugar bool
	Body          *MatchVal
}

func (*Comatch) isValue() {}
func (c *Comatch) String() string { return fmt.Sprintf("comatch %s { %s }", c.Name, c.Body) }

// TypeUniverse is the value of the type-of-types sort.
type TypeUniverse struct{}

func (*TypeUniverse) isValue()      {}
func (*TypeUniverse) String() string { return "Type" }

// Neu wraps a blocked (neutral) computation as a value.
type Neu struct {
	Inner Neutral
}

func (*Neu) isValue() {}
func (n *Neu) String() string { return n.Inner.String() }

// Neutral is a computation blocked on a free variable or an unresolved
// hole: it carries no redex to fire.
type Neutral interface {
	String() string
	isNeutral()
}

// NeuVar is a free de Bruijn variable.
type NeuVar struct{ Idx int }

func (*NeuVar) isNeutral()      {}
func (v *NeuVar) String() string { return fmt.Sprintf("#%d", v.Idx) }

// NeuDtor is a destructor applied to a blocked receiver.
type NeuDtor struct {
	Receiver Neutral
	Name     string
	Args     []Value
}

func (*NeuDtor) isNeutral() {}
func (d *NeuDtor) String() string {
	return fmt.Sprintf("%s.%s%s", d.Receiver, d.Name, valuesString(d.Args))
}

// NeuMatch is a `match` blocked on a neutral scrutinee.
type NeuMatch struct {
	Name      string
	Scrutinee Neutral
	Body      *MatchVal
}

func (*NeuMatch) isNeutral() {}
func (m *NeuMatch) String() string {
	return fmt.Sprintf("%s.match %s { %s }", m.Scrutinee, m.Name, m.Body)
}

// NeuHole is an unresolved hole.
type NeuHole struct{}

func (*NeuHole) isNeutral()      {}
func (*NeuHole) String() string { return "?" }

// Closure captures a closed body expression together with its arity and
// the environment in effect when it was built. Apply binds n_args fresh
// values on top of that captured environment and evaluates the body.
type Closure struct {
	Body  ast.Exp
	NArgs int
	Env   Env
}

// Env is the minimal surface value needs from an environment: enough to
// clone it cheaply when a closure captures it. The env package supplies
// the concrete implementation; value only needs the interface to avoid an
// import cycle between value and env.
type Env interface {
	Clone() Env
}

// CaseVal is one evaluated arm of a match/comatch: a name plus an
// optional closure (nil means the case was declared absurd).
type CaseVal struct {
	Name       string
	ParamCount int
	Body       *Closure
}

func (c CaseVal) IsAbsurd() bool { return c.Body == nil }

// MatchVal is the evaluated body of a match or comatch: a sequence of
// cases, each closing over the environment at the point the (co)match was
// evaluated.
type MatchVal struct {
	Cases []CaseVal
}

func (m *MatchVal) String() string {
	parts := make([]string, len(m.Cases))
	for i, c := range m.Cases {
		if c.IsAbsurd() {
			parts[i] = c.Name + " => absurd"
		} else {
			parts[i] = fmt.Sprintf("%s => <closure/%d>", c.Name, c.Body.NArgs)
		}
	}
	return strings.Join(parts, ", ")
}

// FindCase returns the unique case named name, or false if none matches.
// Case lookup is O(|cases|) by design (§5 hot paths): case lists are
// short and linear scan by name keeps the representation simple.
func (m *MatchVal) FindCase(name string) (CaseVal, bool) {
	for _, c := range m.Cases {
		if c.Name == name {
			return c, true
		}
	}
	return CaseVal{}, false
}

func valuesString(vs []Value) string {
	if len(vs) == 0 {
		return "()"
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
