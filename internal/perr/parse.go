package perr

import (
	"fmt"

	"github.com/MangoIV/polarity/internal/ast"
)

// ParseError mirrors the external parser's error shape (§6: the parser
// itself is a consumed collaborator, out of scope here) so that the CLI's
// single-diagnostic-per-error rendering (§7) can treat a parse failure
// the same way it treats a lookup/eval/type failure.
type ParseError struct {
	Code    string
	Message string
	Span    *ast.Span
}

func (e *ParseError) Error() string { return e.Report().Error() }
func (e *ParseError) Report() *Report {
	return &Report{Code: e.Code, Phase: "parser", Message: e.Message, Labels: []Label{{Span: e.Span}}}
}

// InvalidToken reports a token (or EOF) the parser did not expect.
func InvalidToken(span *ast.Span) *ParseError {
	return &ParseError{Code: PInvalidToken, Message: "invalid token", Span: span}
}

// UnrecognizedEOF reports an EOF encountered where expected was wanted.
func UnrecognizedEOF(expected string, span *ast.Span) *ParseError {
	return &ParseError{Code: PUnrecognizedEOF, Message: fmt.Sprintf("unexpected end of file, expected %s", expected), Span: span}
}

// UnrecognizedToken reports a token the parser did not expect.
func UnrecognizedToken(token, expected string, span *ast.Span) *ParseError {
	return &ParseError{Code: PUnrecognizedToken, Message: fmt.Sprintf("unexpected %q, expected %s", token, expected), Span: span}
}

// ExtraToken reports additional, unexpected tokens after a complete parse.
func ExtraToken(token string, span *ast.Span) *ParseError {
	return &ParseError{Code: PExtraToken, Message: fmt.Sprintf("excessive %q", token), Span: span}
}

// UserParseError wraps a custom message raised by a parser action.
func UserParseError(msg string) *ParseError {
	return &ParseError{Code: PUser, Message: msg}
}
