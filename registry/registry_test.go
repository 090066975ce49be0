package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineq/registry"
)

func TestIndex_FirstSeenOrder(t *testing.T) {
	r := registry.New()

	col, added := r.Index("Beta")
	require.Equal(t, 0, col)
	require.True(t, added)

	col, added = r.Index("Alpha")
	require.Equal(t, 1, col)
	require.True(t, added)

	col, added = r.Index("Beta")
	require.Equal(t, 0, col)
	require.False(t, added, "a known name keeps its column")

	require.Equal(t, 2, r.Len())
	require.Equal(t, []string{"Beta", "Alpha"}, r.Names())
	require.Equal(t, []string{"Alpha", "Beta"}, r.Sorted())
}

func TestIndex_CaseSensitive(t *testing.T) {
	var r registry.Registry // zero value
	a, _ := r.Index("x")
	b, _ := r.Index("X")
	require.NotEqual(t, a, b)
}

func TestLookupAndName(t *testing.T) {
	r := registry.New()
	r.Index("A")

	c, ok := r.Lookup("A")
	require.True(t, ok)
	require.Equal(t, 0, c)

	_, ok = r.Lookup("B")
	require.False(t, ok)

	require.Equal(t, "A", r.Name(0))
	require.Empty(t, r.Name(1))
	require.Empty(t, r.Name(-1))
}

func TestNamesIsACopy(t *testing.T) {
	r := registry.New()
	r.Index("A")
	names := r.Names()
	names[0] = "mutated"
	require.Equal(t, "A", r.Name(0))
}
