package lspcore

import (
	"github.com/google/uuid"

	"github.com/MangoIV/polarity/internal/ast"
	"github.com/MangoIV/polarity/internal/decls"
	"github.com/MangoIV/polarity/internal/xfunc"
)

// TextEdit is one LSP-protocol-shaped edit: a byte span plus replacement
// text, mirroring xfunc.Edit but carrying a json tag set a client expects.
type TextEdit struct {
	Span ast.Span `json:"span"`
	Text string   `json:"newText"`
}

// CodeAction is the response to a textDocument/codeAction request that
// targets a (co)data declaration: xfunctionalize it in place. Id tags the
// action with a correlation id so a client can de-duplicate repeated
// requests against the same declaration, the nearest available home for
// google/uuid in this core (the teacher's domain deps table has no slot
// for it; see DESIGN.md) since nothing else in this module needs request
// identity.
type CodeAction struct {
	Id    string     `json:"id"`
	Title string     `json:"title"`
	Edits []TextEdit `json:"edits"`
}

// XfunctionalizeAction builds the code action that refunctionalizes or
// defunctionalizes typeName in mod, wiring xfunc.Run's edit set directly
// into the response (§6: "code actions wire xfunc's edit set directly").
func XfunctionalizeAction(mod *ast.Module, tbl *decls.Table, typeName string) (*CodeAction, error) {
	result, err := xfunc.Run(mod, tbl, typeName)
	if err != nil {
		return nil, err
	}

	edits := make([]TextEdit, len(result.Edits))
	for i, e := range result.Edits {
		edits[i] = TextEdit{Span: e.Span, Text: e.Text}
	}

	return &CodeAction{
		Id:    uuid.NewString(),
		Title: result.Title,
		Edits: edits,
	}, nil
}
