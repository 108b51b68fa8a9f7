package perr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MangoIV/polarity/internal/ast"
)

func TestLookupErrorCodesAreStable(t *testing.T) {
	require.Equal(t, LUndefinedDeclaration, (&UndefinedDeclaration{Name: "x"}).Report().Code)
	require.Equal(t, LInvalidDeclarationKind, (&InvalidDeclarationKind{Name: "x", Expected: []ast.DeclKind{ast.KindData}, Actual: ast.KindDef}).Report().Code)
	require.Equal(t, LMissingTypeDeclaration, (&MissingTypeDeclaration{Name: "x"}).Report().Code)
}

func TestEvalErrorWrapsLookupTransparently(t *testing.T) {
	lookup := &UndefinedDeclaration{Name: "nope"}
	evalErr := WrapLookup(lookup)

	require.Equal(t, lookup.Report().Code, evalErr.Report().Code)
	require.Equal(t, lookup.Report().Message, evalErr.Report().Message)
}

func TestEvalErrorImpossibleReportsEImpossible(t *testing.T) {
	err := Impossible(nil, "no case %q in match", "Absurd")
	require.Equal(t, EImpossible, err.Report().Code)
	require.Contains(t, err.Report().Message, "Absurd")
}

func TestTypeErrorFlattensNestedUnifyEvalLookup(t *testing.T) {
	unify := CannotDecide("A", "B", nil, nil)
	fromUnify := FromUnify(unify)
	require.Equal(t, unify.Report().Code, fromUnify.Report().Code)

	evalErr := Impossible(nil, "boom")
	fromEval := FromEval(evalErr)
	require.Equal(t, evalErr.Report().Code, fromEval.Report().Code)

	lookup := &MissingTypeDeclaration{Name: "x"}
	fromLookup := FromLookup(lookup)
	require.Equal(t, lookup.Report().Code, fromLookup.Report().Code)
}

func TestReportErrorFormatsCodeAndMessage(t *testing.T) {
	r := &Report{Code: "X-001", Message: "something broke"}
	require.Equal(t, "X-001: something broke", r.Error())
}

func TestNilReportErrorIsUnknown(t *testing.T) {
	var r *Report
	require.Equal(t, "unknown error", r.Error())
}

func TestRenderAppendsOneCaretLinePerLabeledLabel(t *testing.T) {
	r := &Report{
		Code:    "L-001",
		Message: "undefined top-level declaration \"not\"",
		Labels: []Label{
			{Text: "referenced here"},
			{Text: ""}, // unlabeled spans are skipped
		},
	}
	out := Render(r)
	require.Equal(t, 1, strings.Count(out, "^"))
	require.Contains(t, out, "referenced here")
}

func TestVisualWidthCountsWideRunesAsTwoColumns(t *testing.T) {
	require.Equal(t, 4, visualWidth("not!"))
	require.Greater(t, visualWidth("日本語"), len([]rune("日本語")))
}

func TestInvalidMatchReportsDuplicateCase(t *testing.T) {
	err := InvalidMatch(nil, nil, []string{"True"}, nil)
	require.Equal(t, TInvalidMatch, err.Report().Code)
	require.Contains(t, err.Report().Message, "duplicate True")
}
