package perr

import (
	"fmt"

	"github.com/MangoIV/polarity/internal/ast"
)

// EvalError is raised by the evaluator. It either wraps a LookupError
// encountered while resolving a def/codef, or reports an Impossible: a
// "soft" failure (e.g. a missing case) that can only occur if the
// type-checker's invariants were violated, since local recovery is
// forbidden in the evaluator (§7).
type EvalError struct {
	Lookup      LookupError // non-nil when this wraps a lookup failure
	Impossible  string      // non-empty when this is a bare Impossible
	Span        *ast.Span
}

func (e *EvalError) Error() string { return e.Report().Error() }

func (e *EvalError) Report() *Report {
	if e.Lookup != nil {
		return e.Lookup.Report()
	}
	return &Report{
		Code:    EImpossible,
		Phase:   "eval",
		Message: fmt.Sprintf("the impossible happened: %s", e.Impossible),
		Labels:  []Label{{Span: e.Span, Text: "while evaluating"}},
	}
}

// WrapLookup lifts a LookupError into an EvalError.
func WrapLookup(err LookupError) *EvalError {
	return &EvalError{Lookup: err}
}

// Impossible builds an EvalError reporting a type-checker invariant
// violation discovered at evaluation time.
func Impossible(span *ast.Span, format string, args ...interface{}) *EvalError {
	return &EvalError{Impossible: fmt.Sprintf(format, args...), Span: span}
}
