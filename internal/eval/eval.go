// Package eval implements normalization-by-evaluation: eval reduces a
// syntactic term to a value using closures and de Bruijn indices; apply
// binds a closure's arguments and evaluates its captured body. Evaluation
// is a pure function of (term, environment, declaration table) to
// (value, error); it never retries and never suspends (§5).
package eval

import (
	"github.com/MangoIV/polarity/internal/ast"
	"github.com/MangoIV/polarity/internal/decls"
	"github.com/MangoIV/polarity/internal/env"
	"github.com/MangoIV/polarity/internal/perr"
	"github.com/MangoIV/polarity/internal/value"
)

// Eval reduces exp to a value under e, consulting tbl to resolve
// top-level def/codef calls. It is deterministic and side-effect free
// except for error production (§4.2).
func Eval(exp ast.Exp, e *env.Env, tbl *decls.Table) (value.Value, *perr.EvalError) {
	switch t := exp.(type) {
	case *ast.Variable:
		return e.Lookup(t.Idx), nil

	case *ast.TypeConstructor:
		args, err := evalArgs(t.Args, e, tbl)
		if err != nil {
			return nil, err
		}
		return &value.TypCtor{Name: t.Name, Args: args}, nil

	case *ast.Call:
		args, err := evalArgs(t.Args, e, tbl)
		if err != nil {
			return nil, err
		}
		return &value.Ctor{Kind: t.Kind, Name: t.Name, Args: args}, nil

	case *ast.DotCall:
		return evalDotCall(t, e, tbl)

	case *ast.Annotation:
		return Eval(t.Exp, e, tbl)

	case *ast.TypeUniverse:
		return &value.TypeUniverse{}, nil

	case *ast.LocalMatch:
		return evalLocalMatch(t, e, tbl)

	case *ast.LocalComatch:
		body := evalMatch(t.Body.Cases, e)
		return &value.Comatch{Name: t.Name, IsLambdaSugar: t.IsLambdaSugar, Body: body}, nil

	case *ast.Hole:
		return &value.Neu{Inner: &value.NeuHole{}}, nil

	default:
		return nil, perr.Impossible(exp.Span(), "unknown expression variant %T", exp)
	}
}

// Apply binds args on top of cl's captured environment and evaluates its
// body. The invariant len(args) == cl.NArgs is the caller's
// responsibility (§8 Closure arity); it always holds for well-typed
// programs since arities are fixed by the declaration that produced the
// closure.
func Apply(cl *value.Closure, args []value.Value, tbl *decls.Table) (value.Value, *perr.EvalError) {
	e := env.AsEnv(cl.Env)
	v, err := env.WithBindings(e, args, func(scoped *env.Env) (value.Value, error) {
		v, err := Eval(cl.Body, scoped, tbl)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
	if err != nil {
		return nil, err.(*perr.EvalError)
	}
	return v, nil
}

func evalArgs(args []ast.Exp, e *env.Env, tbl *decls.Table) ([]value.Value, *perr.EvalError) {
	out := make([]value.Value, len(args))
	for i, a := range args {
		v, err := Eval(a, e, tbl)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// evalMatch evaluates a (co)match body into a value.MatchVal: each case's
// body closes over e as captured at this point, with arity ParamCount.
// An absurd case (Body == nil) carries a nil Closure.
func evalMatch(cases []ast.Case, e *env.Env) *value.MatchVal {
	out := make([]value.CaseVal, len(cases))
	captured := e.Clone()
	for i, c := range cases {
		cv := value.CaseVal{Name: c.Name, ParamCount: c.ParamCount}
		if !c.IsAbsurd() {
			cv.Body = &value.Closure{Body: c.Body, NArgs: c.ParamCount, Env: captured}
		}
		out[i] = cv
	}
	return &value.MatchVal{Cases: out}
}

func evalLocalMatch(m *ast.LocalMatch, e *env.Env, tbl *decls.Table) (value.Value, *perr.EvalError) {
	scrutinee, err := Eval(m.Scrutinee, e, tbl)
	if err != nil {
		return nil, err
	}
	body := evalMatch(m.Body.Cases, e)
	switch s := scrutinee.(type) {
	case *value.Ctor:
		return betaMatch(tbl, body, s.Name, s.Args)
	case *value.Neu:
		return &value.Neu{Inner: &value.NeuMatch{Name: m.Name, Scrutinee: s.Inner, Body: body}}, nil
	default:
		return nil, perr.Impossible(m.Span(), "match scrutinee reduced to non-constructor, non-neutral value %s", scrutinee)
	}
}

// evalDotCall implements the four-case DotCall dispatch of §4.2.
func evalDotCall(d *ast.DotCall, e *env.Env, tbl *decls.Table) (value.Value, *perr.EvalError) {
	recv, err := Eval(d.Receiver, e, tbl)
	if err != nil {
		return nil, err
	}
	args, err := evalArgs(d.Args, e, tbl)
	if err != nil {
		return nil, err
	}

	switch v := recv.(type) {
	case *value.Ctor:
		typeDecl, lookErr := tbl.TypeDeclForMember(v.Name)
		if lookErr != nil {
			return nil, perr.WrapLookup(lookErr)
		}
		switch typeDecl.(type) {
		case *ast.Data:
			// v is a fully applied data constructor; the dot-call is a
			// top-level def invocation eliminating it.
			def, lookErr := tbl.Def(d.Name)
			if lookErr != nil {
				return nil, perr.WrapLookup(lookErr)
			}
			body := evalMatch(def.Body.Cases, env.Bound(args))
			return betaMatch(tbl, body, v.Name, v.Args)
		case *ast.Codata:
			// v packages a codef invocation in constructor shape.
			codef, lookErr := tbl.Codef(v.Name)
			if lookErr != nil {
				return nil, perr.WrapLookup(lookErr)
			}
			body := evalMatch(codef.Body.Cases, env.Bound(v.Args))
			return betaComatch(tbl, body, d.Name, args)
		default:
			return nil, perr.Impossible(d.Span(), "%s names neither a data nor a codata type", v.Name)
		}

	case *value.Comatch:
		return betaComatch(tbl, v.Body, d.Name, args)

	case *value.Neu:
		return &value.Neu{Inner: &value.NeuDtor{Receiver: v.Inner, Name: d.Name, Args: args}}, nil

	default:
		return nil, perr.Impossible(d.Span(), "dot-call receiver reduced to %s, which has no member %s", recv, d.Name)
	}
}

// betaMatch selects the unique case named ctorName and applies it to args
// (§4.2). Coverage is guaranteed by the type checker prior to evaluation;
// if no case matches at runtime, that invariant was violated and we
// report Impossible rather than panic (Open Question (a), §9).
func betaMatch(tbl *decls.Table, body *value.MatchVal, ctorName string, args []value.Value) (value.Value, *perr.EvalError) {
	c, ok := body.FindCase(ctorName)
	if !ok {
		return nil, perr.Impossible(nil, "no case for constructor %s in match %s", ctorName, body)
	}
	if c.IsAbsurd() {
		return nil, perr.Impossible(nil, "absurd case for %s was selected at runtime", ctorName)
	}
	return Apply(c.Body, args, tbl)
}

// betaComatch is the dual of betaMatch, dispatching by destructor name.
func betaComatch(tbl *decls.Table, body *value.MatchVal, dtorName string, args []value.Value) (value.Value, *perr.EvalError) {
	c, ok := body.FindCase(dtorName)
	if !ok {
		return nil, perr.Impossible(nil, "no cocase for destructor %s in comatch %s", dtorName, body)
	}
	if c.IsAbsurd() {
		return nil, perr.Impossible(nil, "absurd cocase for %s was selected at runtime", dtorName)
	}
	return Apply(c.Body, args, tbl)
}
