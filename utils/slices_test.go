package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlias1D(t *testing.T) {
	s := []float64{1, 2, 3, 4}
	require.True(t, Alias1D(s, s[1:]))
	require.False(t, Alias1D(s, CopyNew(s)))
	require.False(t, Alias1D(s, nil))
}

func TestCopyNew(t *testing.T) {
	s := []float64{1, 2, 3}
	c := CopyNew(s)
	require.Equal(t, s, c)
	c[0] = 42
	require.Equal(t, 1.0, s[0], "should not modify input slice")
	require.NotNil(t, CopyNew[float64](nil))
}

func TestTrimTrailing(t *testing.T) {
	require.Equal(t, []float64{1, 2}, TrimTrailing([]float64{1, 2, 0, 0}))
	require.Equal(t, []float64{0}, TrimTrailing([]float64{0, 0, 0}))
	require.Equal(t, []float64{0, 1}, TrimTrailing([]float64{0, 1}))
	require.Equal(t, []float64{}, TrimTrailing([]float64{}))
}
