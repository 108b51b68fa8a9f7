package perr

import (
	"fmt"

	"github.com/MangoIV/polarity/internal/ast"
)

// Label attaches a human-readable hint to a span, e.g. "Source of (1)"
// when a diagnostic compares two terms.
type Label struct {
	Span *ast.Span
	Text string
}

// Report is the canonical structured diagnostic. Every error in this
// module can be flattened to one: parser/lookup/eval/type/unify errors
// all carry a stable Code, a Phase, a Message, and zero or more Labels.
type Report struct {
	Code    string
	Phase   string
	Message string
	Labels  []Label
}

func (r *Report) Error() string {
	if r == nil {
		return "unknown error"
	}
	return fmt.Sprintf("%s: %s", r.Code, r.Message)
}

// Reportable is implemented by every typed error in this package so the
// CLI and LSP can render a single diagnostic per error (§7) without a
// type switch over every concrete error type.
type Reportable interface {
	error
	Report() *Report
}
