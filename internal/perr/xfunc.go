package perr

import (
	"fmt"

	"github.com/MangoIV/polarity/internal/ast"
)

// XfuncError is raised by the xfunctionalizer. Impossible is the only
// variant: all other structural guarantees are established by the
// type-checker before xfunc runs, so the only way this component fails
// is a caller asking it to pivot a type it cannot find.
type XfuncError struct {
	Message string
	Span    *ast.Span
}

func (e *XfuncError) Error() string { return e.Report().Error() }
func (e *XfuncError) Report() *Report {
	return &Report{Code: XImpossible, Phase: "xfunc", Message: e.Message, Labels: []Label{{Span: e.Span}}}
}

// ImpossibleXfunc builds an XfuncError, e.g. for a misspelled type name.
func ImpossibleXfunc(span *ast.Span, format string, args ...interface{}) *XfuncError {
	return &XfuncError{Message: fmt.Sprintf(format, args...), Span: span}
}
