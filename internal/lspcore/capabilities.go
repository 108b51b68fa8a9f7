// Package lspcore implements the LSP server core consumed by
// cmd/polaritylsp (§6 LSP server). The capability set is pinned down by
// the original's util/lsp/src/capabilities.rs: full document sync,
// document-symbol, hover, and code-action, stdio transport only — no
// websocket variant (§1 Non-goal, and no ecosystem LSP library appears
// anywhere in the retrieval pack, so the JSON-RPC framing in server.go
// is the one piece of this module built directly on encoding/json and
// bufio rather than a third-party dependency; see DESIGN.md).
package lspcore

// TextDocumentSyncKind mirrors the LSP protocol's sync kind enum; only
// Full is ever used here, matching capabilities.rs's TextDocumentSyncKind::FULL.
type TextDocumentSyncKind int

const (
	SyncNone TextDocumentSyncKind = 0
	SyncFull TextDocumentSyncKind = 1
)

// TextDocumentSyncOptions mirrors lsp::TextDocumentSyncOptions.
type TextDocumentSyncOptions struct {
	OpenClose bool                 `json:"openClose"`
	Change    TextDocumentSyncKind `json:"change"`
}

// ServerCapabilities is the subset of the LSP capability set this core
// advertises, matching capabilities.rs's ServerCapabilities construction
// field-for-field (everything else defaults off, as `..Default::default()`
// does there).
type ServerCapabilities struct {
	TextDocumentSync     TextDocumentSyncOptions `json:"textDocumentSync"`
	DocumentSymbolProvider bool                  `json:"documentSymbolProvider"`
	HoverProvider          bool                  `json:"hoverProvider"`
	CodeActionProvider     bool                  `json:"codeActionProvider"`
}

// Capabilities returns the fixed capability set this server advertises
// during initialize.
func Capabilities() ServerCapabilities {
	return ServerCapabilities{
		TextDocumentSync:       TextDocumentSyncOptions{OpenClose: true, Change: SyncFull},
		DocumentSymbolProvider: true,
		HoverProvider:          true,
		CodeActionProvider:     true,
	}
}
