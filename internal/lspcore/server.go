package lspcore

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// request and response mirror the minimal JSON-RPC 2.0 envelope LSP uses
// over stdio. Full protocol dispatch (notifications, cancellation,
// workspace edits applied back to a client) is out of scope (§1
// Non-goal: "the full LSP protocol machinery") — dispatch answers only
// initialize and textDocument/codeAction; documentSymbol and hover are
// advertised but requests for them get a method-not-found error.
type request struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Handler resolves one codeAction request to the type name it targets,
// and the module/table to run xfunc against. The core has no document
// store of its own (no persisted state, §5); a caller-supplied Handler
// is how cmd/polaritylsp connects a request to an in-memory module.
type Handler interface {
	CodeAction(uri string, typeName string) (*CodeAction, error)
}

// Serve runs the stdio JSON-RPC loop: reads Content-Length framed
// messages from r, dispatches initialize/textDocument/codeAction, and
// writes framed responses to w. It returns when r reaches EOF.
func Serve(r io.Reader, w io.Writer, h Handler) error {
	reader := bufio.NewReader(r)
	for {
		msg, err := readMessage(reader)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("lspcore: reading message: %w", err)
		}

		var req request
		if err := json.Unmarshal(msg, &req); err != nil {
			continue
		}

		resp := dispatch(req, h)
		if resp == nil {
			continue // notification: no response expected
		}
		if err := writeMessage(w, resp); err != nil {
			return fmt.Errorf("lspcore: writing message: %w", err)
		}
	}
}

func dispatch(req request, h Handler) *response {
	switch req.Method {
	case "initialize":
		return &response{JSONRPC: "2.0", ID: req.ID, Result: struct {
			Capabilities ServerCapabilities `json:"capabilities"`
		}{Capabilities: Capabilities()}}

	case "textDocument/codeAction":
		var params struct {
			TextDocument struct {
				URI string `json:"uri"`
			} `json:"textDocument"`
			TypeName string `json:"typeName"`
		}
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return errorResponse(req.ID, 0, err.Error())
		}
		action, err := h.CodeAction(params.TextDocument.URI, params.TypeName)
		if err != nil {
			return errorResponse(req.ID, 0, err.Error())
		}
		return &response{JSONRPC: "2.0", ID: req.ID, Result: []*CodeAction{action}}

	default:
		if req.ID == nil {
			return nil
		}
		return errorResponse(req.ID, -32601, "method not found: "+req.Method)
	}
}

func errorResponse(id json.RawMessage, code int, message string) *response {
	return &response{JSONRPC: "2.0", ID: id, Error: &rpcError{Code: code, Message: message}}
}

func readMessage(r *bufio.Reader) ([]byte, error) {
	var length int
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		if strings.HasPrefix(line, "Content-Length:") {
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Content-Length:")))
			if err != nil {
				return nil, fmt.Errorf("bad Content-Length header %q: %w", line, err)
			}
			length = n
		}
	}
	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, err
	}
	return body, nil
}

func writeMessage(w io.Writer, resp *response) error {
	body, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(body)); err != nil {
		return err
	}
	_, err = w.Write(body)
	return err
}
