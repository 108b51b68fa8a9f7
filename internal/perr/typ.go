package perr

import (
	"fmt"
	"strings"

	"github.com/MangoIV/polarity/internal/ast"
)

// TypeError is the taxonomy a type-checker collaborator would raise. The
// core does not implement type-checking (out of scope, §1), but a
// TypeError can embed a UnifyError, an EvalError or a LookupError so
// that a future checker's diagnostics flatten transparently (§7:
// "nested error types flatten") into the same Reportable shape.
type TypeError struct {
	Code    string
	Message string
	Labels  []Label

	Unify  *UnifyError
	Eval   *EvalError
	Lookup LookupError
}

func (e *TypeError) Error() string { return e.Report().Error() }

func (e *TypeError) Report() *Report {
	switch {
	case e.Unify != nil:
		return e.Unify.Report()
	case e.Eval != nil:
		return e.Eval.Report()
	case e.Lookup != nil:
		return e.Lookup.Report()
	default:
		return &Report{Code: e.Code, Phase: "typecheck", Message: e.Message, Labels: e.Labels}
	}
}

// ArgLenMismatch reports a call with the wrong number of arguments.
func ArgLenMismatch(name string, expected, actual int, span *ast.Span) *TypeError {
	return &TypeError{
		Code:    TArgLenMismatch,
		Message: fmt.Sprintf("wrong number of arguments to %s: got %d, expected %d", name, actual, expected),
		Labels:  []Label{{Span: span}},
	}
}

// NotEq reports two terms that were expected to be definitionally equal.
func NotEq(lhs, rhs string, lhsSpan, rhsSpan *ast.Span) *TypeError {
	return &TypeError{
		Code:    TNotEq,
		Message: fmt.Sprintf("the following terms are not equal:\n  1: %s\n  2: %s\n", lhs, rhs),
		Labels: []Label{
			{Span: lhsSpan, Text: "Source of (1)"},
			{Span: rhsSpan, Text: "Source of (2)"},
		},
	}
}

// MatchOnCodata reports a `match` used against a codata scrutinee.
func MatchOnCodata(name string, span *ast.Span) *TypeError {
	return &TypeError{Code: TMatchOnCodata, Message: fmt.Sprintf("cannot match on codata type %s", name), Labels: []Label{{Span: span}}}
}

// ComatchOnData reports a `comatch` used where a data type was expected.
func ComatchOnData(name string, span *ast.Span) *TypeError {
	return &TypeError{Code: TComatchOnData, Message: fmt.Sprintf("cannot comatch on data type %s", name), Labels: []Label{{Span: span}}}
}

// InvalidMatch reports non-exhaustive, undeclared, or duplicate cases.
func InvalidMatch(missing, undeclared, duplicate []string, span *ast.Span) *TypeError {
	var msgs []string
	if len(missing) > 0 {
		msgs = append(msgs, "missing "+strings.Join(missing, ", "))
	}
	if len(undeclared) > 0 {
		msgs = append(msgs, "undeclared "+strings.Join(undeclared, ", "))
	}
	if len(duplicate) > 0 {
		msgs = append(msgs, "duplicate "+strings.Join(duplicate, ", "))
	}
	return &TypeError{Code: TInvalidMatch, Message: fmt.Sprintf("invalid pattern match: %s", strings.Join(msgs, "; ")), Labels: []Label{{Span: span}}}
}

// NotInType reports a constructor that does not belong to the expected type.
func NotInType(expected, actual string, span *ast.Span) *TypeError {
	return &TypeError{Code: TNotInType, Message: fmt.Sprintf("got %s, which is not in type %s", actual, expected), Labels: []Label{{Span: span}}}
}

// PatternIsNotAbsurd reports a case marked absurd that could not be proven so.
func PatternIsNotAbsurd(name string, span *ast.Span) *TypeError {
	return &TypeError{Code: TPatternIsNotAbsurd, Message: fmt.Sprintf("pattern for %s is marked as absurd but that could not be proven", name), Labels: []Label{{Span: span}}}
}

// PatternIsAbsurd reports a case that is absurd but not marked so.
func PatternIsAbsurd(name string, span *ast.Span) *TypeError {
	return &TypeError{Code: TPatternIsAbsurd, Message: fmt.Sprintf("pattern for %s is absurd and must be marked accordingly", name), Labels: []Label{{Span: span}}}
}

// CannotInferMatch reports a match requiring a type annotation.
func CannotInferMatch(span *ast.Span) *TypeError {
	return &TypeError{Code: TCannotInferMatch, Message: "type annotation required for match expression", Labels: []Label{{Span: span}}}
}

// CannotInferComatch reports a comatch requiring a type annotation.
func CannotInferComatch(span *ast.Span) *TypeError {
	return &TypeError{Code: TCannotInferComatch, Message: "type annotation required for comatch expression", Labels: []Label{{Span: span}}}
}

// ExpectedTypApp reports an expression used where a type constructor
// application was required.
func ExpectedTypApp(got string, span *ast.Span) *TypeError {
	return &TypeError{Code: TExpectedTypApp, Message: fmt.Sprintf("expected type constructor application, got %s", got), Labels: []Label{{Span: span}}}
}

// FromUnify lifts a UnifyError into a TypeError, transparently (§7).
func FromUnify(err *UnifyError) *TypeError { return &TypeError{Unify: err} }

// FromEval lifts an EvalError into a TypeError, transparently.
func FromEval(err *EvalError) *TypeError { return &TypeError{Eval: err} }

// FromLookup lifts a LookupError into a TypeError, transparently.
func FromLookup(err LookupError) *TypeError { return &TypeError{Lookup: err} }

// UnifyError is the taxonomy a unification/metavariable solver would
// raise. Not re-specified here (§1 Non-goals); only named so type
// errors can embed it without guessing at the shape later.
type UnifyError struct {
	Code    string
	Message string
	Labels  []Label
}

func (e *UnifyError) Error() string  { return e.Report().Error() }
func (e *UnifyError) Report() *Report {
	return &Report{Code: e.Code, Phase: "unify", Message: e.Message, Labels: e.Labels}
}

// OccursCheckFailed reports idx occurring in exp during unification.
func OccursCheckFailed(idx int, exp string, span *ast.Span) *UnifyError {
	return &UnifyError{Code: UOccursCheckFailed, Message: fmt.Sprintf("#%d occurs in %s", idx, exp), Labels: []Label{{Span: span}}}
}

// UnsupportedAnnotation reports an annotated expression unification cannot handle.
func UnsupportedAnnotation(exp string, span *ast.Span) *UnifyError {
	return &UnifyError{Code: UUnsupportedAnnotation, Message: fmt.Sprintf("cannot unify annotated expression %s", exp), Labels: []Label{{Span: span}}}
}

// CannotDecide reports two expressions unification cannot automatically
// relate.
func CannotDecide(lhs, rhs string, lhsSpan, rhsSpan *ast.Span) *UnifyError {
	return &UnifyError{
		Code:    UCannotDecide,
		Message: fmt.Sprintf("cannot automatically decide whether %s and %s unify", lhs, rhs),
		Labels:  []Label{{Span: lhsSpan}, {Span: rhsSpan}},
	}
}
