// Command polaritylsp is the LSP server entrypoint (§6 LSP server):
// stdio transport only, serving the capability set internal/lspcore
// advertises and wiring textDocument/codeAction requests directly into
// internal/xfunc.
package main

import (
	"fmt"
	"os"

	"github.com/MangoIV/polarity/internal/ast"
	"github.com/MangoIV/polarity/internal/decls"
	"github.com/MangoIV/polarity/internal/lspcore"
)

// moduleHandler resolves a codeAction request against a single
// in-memory module keyed by URI. There is no real document store (§5
// Persisted state: none) or parser (§1 Non-goal) to load arbitrary
// client-edited text from, so documents are registered ahead of time;
// a future parser collaborator would populate this map from
// textDocument/didOpen instead.
type moduleHandler struct {
	modules map[string]*ast.Module
	tables  map[string]*decls.Table
}

func (h *moduleHandler) CodeAction(uri, typeName string) (*lspcore.CodeAction, error) {
	mod, ok := h.modules[uri]
	if !ok {
		return nil, fmt.Errorf("no module loaded for %s", uri)
	}
	return lspcore.XfunctionalizeAction(mod, h.tables[uri], typeName)
}

func main() {
	h := &moduleHandler{modules: map[string]*ast.Module{}, tables: map[string]*decls.Table{}}
	if err := lspcore.Serve(os.Stdin, os.Stdout, h); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
