package env

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MangoIV/polarity/internal/value"
)

func someVal(name string) value.Value {
	return &value.Ctor{Kind: 0, Name: name, Args: nil}
}

func TestLookupIndexesFromInnermostBinder(t *testing.T) {
	e := Bound([]value.Value{someVal("outer"), someVal("inner")})

	require.Equal(t, someVal("inner"), e.Lookup(0))
	require.Equal(t, someVal("outer"), e.Lookup(1))
}

func TestWithBindingsRestoresDepthOnSuccess(t *testing.T) {
	e := Empty()
	require.Equal(t, 0, e.Depth())

	_, err := WithBindings(e, []value.Value{someVal("a"), someVal("b")}, func(scoped *Env) (struct{}, error) {
		require.Equal(t, 2, scoped.Depth())
		return struct{}{}, nil
	})

	require.NoError(t, err)
	require.Equal(t, 0, e.Depth())
}

func TestWithBindingsRestoresDepthOnError(t *testing.T) {
	e := Bound([]value.Value{someVal("outer")})
	require.Equal(t, 1, e.Depth())

	_, err := WithBindings(e, []value.Value{someVal("a"), someVal("b")}, func(scoped *Env) (struct{}, error) {
		require.Equal(t, 3, scoped.Depth())
		return struct{}{}, errors.New("boom")
	})

	require.Error(t, err)
	require.Equal(t, 1, e.Depth(), "depth must be restored even when f returns an error")
}

func TestWithBindingsNesting(t *testing.T) {
	e := Empty()

	_, _ = WithBindings(e, []value.Value{someVal("a")}, func(scoped *Env) (struct{}, error) {
		require.Equal(t, 1, scoped.Depth())
		_, _ = WithBindings(scoped, []value.Value{someVal("b"), someVal("c")}, func(inner *Env) (struct{}, error) {
			require.Equal(t, 3, inner.Depth())
			require.Equal(t, someVal("c"), inner.Lookup(0))
			require.Equal(t, someVal("a"), inner.Lookup(2))
			return struct{}{}, nil
		})
		require.Equal(t, 1, scoped.Depth())
		return struct{}{}, nil
	})

	require.Equal(t, 0, e.Depth())
}

func TestCloneIsValueDisjoint(t *testing.T) {
	e := Bound([]value.Value{someVal("a")})
	cloned := AsEnv(e.Clone())

	_, _ = WithBindings(e, []value.Value{someVal("b")}, func(scoped *Env) (struct{}, error) {
		return struct{}{}, nil
	})

	require.Equal(t, 1, cloned.Depth())
}

func TestAsEnvOnNilReturnsEmpty(t *testing.T) {
	e := AsEnv(nil)
	require.Equal(t, 0, e.Depth())
}
