package rename

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MangoIV/polarity/internal/ast"
)

func TestRenameIsIdentity(t *testing.T) {
	codata := &ast.Codata{Name: "Bool", Dtors: []*ast.Dtor{{Name: "not", Arity: 0}}}

	got := Rename(codata)
	require.Same(t, ast.Decl(codata), got)
}
