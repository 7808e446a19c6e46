package rete

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sharedFact struct {
	Kind  string
	Level int
}

func TestCompiler_AlphaNodesShareIdenticalConstraints(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	r1 := NewRule("r1", func(sharedFact) {}, NewPattern(sharedFact{}, C("Kind", "x"), C("Level__gt", 5)))
	r2 := NewRule("r2", func(sharedFact) {}, NewPattern(sharedFact{}, C("Kind", "x"), C("Level__gt", 5)))
	require.NoError(t, e.AddRule(r1))
	require.NoError(t, e.AddRule(r2))

	typeNode := e.node(e.typeNodes[schemaOf(sharedFact{})])
	require.Len(t, typeNode.children, 1, "identical constraints must share the same Alpha child")

	kindAlpha := e.node(typeNode.children[0])
	require.Len(t, kindAlpha.children, 1, "identical second-level constraints must share the same Alpha child")
}

func TestCompiler_DifferingConstraintsDoNotShare(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	r1 := NewRule("r1", func(sharedFact) {}, NewPattern(sharedFact{}, C("Kind", "x")))
	r2 := NewRule("r2", func(sharedFact) {}, NewPattern(sharedFact{}, C("Kind", "y")))
	require.NoError(t, e.AddRule(r1))
	require.NoError(t, e.AddRule(r2))

	typeNode := e.node(e.typeNodes[schemaOf(sharedFact{})])
	require.Len(t, typeNode.children, 2)
}

func TestCompiler_BetaNodesNeverSharedAcrossRules(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	r1 := NewRule("r1", func(schemaA, schemaB) {}, NewPattern(schemaA{}), NewPattern(schemaB{}))
	r2 := NewRule("r2", func(schemaA, schemaB) {}, NewPattern(schemaA{}), NewPattern(schemaB{}))
	require.NoError(t, e.AddRule(r1))
	require.NoError(t, e.AddRule(r2))

	typeA := e.node(e.typeNodes[schemaOf(schemaA{})])
	require.Len(t, typeA.children, 2, "each rule gets its own private first-beta adapter")

	for _, childID := range typeA.children {
		require.Equal(t, KindCartesianBeta, e.node(childID).kind)
	}
	require.NotEqual(t, typeA.children[0], typeA.children[1])
}

func TestCompiler_SinglePatternRuleHasNoBetaLayer(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	rule := NewRule("single", func(person) {}, NewPattern(person{}, C("Age__gte", 18)))
	require.NoError(t, e.AddRule(rule))

	for _, n := range e.nodes {
		require.NotEqual(t, KindHashBeta, n.kind)
		require.NotEqual(t, KindCartesianBeta, n.kind)
	}
}

func TestCompiler_FirstReusePerPatternPolicy(t *testing.T) {
	// Pattern 2 reuses a variable bound by BOTH pattern 0 and pattern 1;
	// only the first (pattern 0's) binding becomes the join key.
	type withTwo struct {
		A int
		B int
	}
	type refersBoth struct {
		A int
		B int
	}

	e, err := New()
	require.NoError(t, err)

	rule := NewRule("multi", func(schemaA, withTwo, refersBoth) {},
		NewPattern(schemaA{}, C("X", Var("v"))),
		NewPattern(withTwo{}, C("A", Var("v")), C("B", Var("v"))),
		NewPattern(refersBoth{}, C("A", Var("v"))),
	)
	require.NoError(t, e.AddRule(rule))

	// The join built for pattern index 2 must reference pattern 0 (the
	// first introducer of "v"), not pattern 1.
	var hashJoins []*node
	for _, n := range e.nodes {
		if n.kind == KindHashBeta {
			hashJoins = append(hashJoins, n)
		}
	}
	require.Len(t, hashJoins, 2)
	require.Equal(t, 0, hashJoins[1].leftIdx)
}
