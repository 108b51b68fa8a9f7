// Package perr provides the core's typed error taxonomy: parse, lookup,
// evaluation, type, and unification errors, each carrying a stable code
// and zero or more source spans. Errors are categorized by code, not by
// message text, so tooling (the CLI, the LSP) can switch on them.
package perr

// Parser error codes (external collaborator; defined here so that a
// ParseError flattens to the same Report shape as the other errors for
// the CLI's single-diagnostic-per-error presentation, §7).
const (
	PInvalidToken      = "P-001"
	PUnrecognizedEOF   = "P-002"
	PUnrecognizedToken = "P-003"
	PExtraToken        = "P-004"
	PUser              = "P-005"
)

// Lookup error codes.
const (
	LUndefinedDeclaration  = "L-001"
	LInvalidDeclarationKind = "L-002"
	LMissingTypeDeclaration = "L-003"
)

// Evaluation error codes.
const (
	EImpossible = "E-001"
)

// Xfunc error codes.
const (
	XImpossible = "X-001"
)

// Type error codes.
const (
	TArgLenMismatch      = "T-001"
	TNotEq               = "T-002"
	TMatchOnCodata        = "T-003"
	TComatchOnData         = "T-004"
	TInvalidMatch          = "T-005"
	TNotInType             = "T-006"
	TPatternIsNotAbsurd    = "T-007"
	TPatternIsAbsurd       = "T-008"
	TCannotInferMatch      = "T-009"
	TCannotInferComatch    = "T-010"
	TExpectedTypApp        = "T-011"
	TImpossible            = "T-XXX"
)

// Unification error codes.
const (
	UOccursCheckFailed      = "U-001"
	UUnsupportedAnnotation  = "U-002"
	UCannotDecide           = "U-003"
)
