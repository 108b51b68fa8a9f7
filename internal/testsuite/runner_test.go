package testsuite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunFiltersByGlobAndComparesExpected(t *testing.T) {
	m := &Manifest{Cases: []ManifestEntry{
		{Name: "bool/not-true", Expected: "False()"},
		{Name: "bool/not-false", Expected: "True()"},
	}}

	res, err := Run(Cases, m, Config{Filter: "bool/*"})
	require.NoError(t, err)
	require.Len(t, res.Cases, 2)
	require.True(t, res.Success())
}

func TestRunFailsOnMismatch(t *testing.T) {
	m := &Manifest{Cases: []ManifestEntry{{Name: "bool/not-true", Expected: "wrong"}}}

	res, err := Run(Cases, m, Config{Filter: "bool/not-true"})
	require.NoError(t, err)
	require.Len(t, res.Cases, 1)
	require.False(t, res.Success())
	require.NotEmpty(t, res.Cases[0].Diff)
}

func TestRunUpdateExpectedWritesManifest(t *testing.T) {
	m := &Manifest{}

	res, err := Run(Cases, m, Config{Filter: "pair/fst", UpdateExpected: true})
	require.NoError(t, err)
	require.True(t, res.Success())

	expected, ok := m.Expected("pair/fst")
	require.True(t, ok)
	require.Equal(t, "Succ(Zero())", expected)
}

func TestRunUnrecordedCaseFails(t *testing.T) {
	m := &Manifest{}

	res, err := Run(Cases, m, Config{Filter: "pair/snd"})
	require.NoError(t, err)
	require.Len(t, res.Cases, 1)
	require.False(t, res.Cases[0].Passed)
}
