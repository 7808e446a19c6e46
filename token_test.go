package rete

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToken_FlatTupleOrdersRootToLeaf(t *testing.T) {
	a := widget{ID: "a"}
	b := widget{ID: "b"}
	c := widget{ID: "c"}

	t1 := newToken(rootToken, a)
	t2 := newToken(t1, b)
	t3 := newToken(t2, c)

	require.Equal(t, []Fact{a, b, c}, t3.FlatTuple())
	require.Equal(t, []Fact{a, b}, t2.FlatTuple())
	require.Equal(t, []Fact{a}, t1.FlatTuple())
}

func TestToken_FlatTupleIsMemoized(t *testing.T) {
	tok := newToken(rootToken, widget{ID: "only"})
	first := tok.FlatTuple()
	second := tok.FlatTuple()
	require.Same(t, &first[0], &second[0])
}

func TestToken_RootTokenHasEmptyTuple(t *testing.T) {
	require.Empty(t, rootToken.FlatTuple())
}

func TestToken_FactAtOutOfRange(t *testing.T) {
	tok := newToken(rootToken, widget{ID: "only"})
	_, ok := tok.FactAt(1)
	require.False(t, ok)
	_, ok = tok.FactAt(-1)
	require.False(t, ok)
}

func TestToken_FactAtInRange(t *testing.T) {
	a := widget{ID: "a"}
	b := widget{ID: "b"}
	tok := newToken(newToken(rootToken, a), b)
	fact, ok := tok.FactAt(0)
	require.True(t, ok)
	require.Equal(t, a, fact)
	fact, ok = tok.FactAt(1)
	require.True(t, ok)
	require.Equal(t, b, fact)
}
