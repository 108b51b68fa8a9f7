package perr

import (
	"fmt"
	"strings"

	"github.com/MangoIV/polarity/internal/ast"
)

// LookupError is raised by the declaration table (internal/decls) when a
// name cannot be resolved to the requested shape.
type LookupError interface {
	Reportable
	isLookupError()
}

// UndefinedDeclaration is raised when name has no entry at all.
type UndefinedDeclaration struct {
	Name string
	Span *ast.Span
}

func (*UndefinedDeclaration) isLookupError() {}
func (e *UndefinedDeclaration) Error() string { return e.Report().Error() }
func (e *UndefinedDeclaration) Report() *Report {
	return &Report{
		Code:    LUndefinedDeclaration,
		Phase:   "lookup",
		Message: fmt.Sprintf("undefined top-level declaration %q", e.Name),
		Labels:  []Label{{Span: e.Span, Text: "referenced here"}},
	}
}

// InvalidDeclarationKind is raised when name resolves but to a different
// kind of declaration than the caller expected, e.g. calling data() on a
// def.
type InvalidDeclarationKind struct {
	Name     string
	Expected []ast.DeclKind
	Actual   ast.DeclKind
	Span     *ast.Span
}

func (*InvalidDeclarationKind) isLookupError() {}
func (e *InvalidDeclarationKind) Error() string { return e.Report().Error() }
func (e *InvalidDeclarationKind) Report() *Report {
	return &Report{
		Code:  LInvalidDeclarationKind,
		Phase: "lookup",
		Message: fmt.Sprintf("expected %s to be a %s, but it is a %s",
			e.Name, anyOf(e.Expected), e.Actual),
		Labels: []Label{{Span: e.Span, Text: "used here"}},
	}
}

// MissingTypeDeclaration is raised by type_decl_for_member when name is
// neither a known xtor nor a known xdef.
type MissingTypeDeclaration struct {
	Name string
	Span *ast.Span
}

func (*MissingTypeDeclaration) isLookupError() {}
func (e *MissingTypeDeclaration) Error() string { return e.Report().Error() }
func (e *MissingTypeDeclaration) Report() *Report {
	return &Report{
		Code:    LMissingTypeDeclaration,
		Phase:   "lookup",
		Message: fmt.Sprintf("missing type declaration for %q", e.Name),
		Labels:  []Label{{Span: e.Span, Text: "referenced here"}},
	}
}

func anyOf(kinds []ast.DeclKind) string {
	if len(kinds) == 0 {
		return ""
	}
	if len(kinds) == 1 {
		return kinds[0].String()
	}
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = k.String()
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}
