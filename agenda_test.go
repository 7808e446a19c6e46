package rete

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAgenda_PopsHighestPriorityFirst(t *testing.T) {
	a := newAgenda()
	a.push(Activation{RuleName: "low", Priority: 0})
	a.push(Activation{RuleName: "high", Priority: 10})
	a.push(Activation{RuleName: "mid", Priority: 5})

	act, ok := a.pop()
	require.True(t, ok)
	require.Equal(t, "high", act.RuleName)

	act, ok = a.pop()
	require.True(t, ok)
	require.Equal(t, "mid", act.RuleName)

	act, ok = a.pop()
	require.True(t, ok)
	require.Equal(t, "low", act.RuleName)
}

func TestAgenda_TiesBrokenByEnqueueOrder(t *testing.T) {
	a := newAgenda()
	a.push(Activation{RuleName: "first", Priority: 1, sequence: 1})
	a.push(Activation{RuleName: "second", Priority: 1, sequence: 2})
	a.push(Activation{RuleName: "third", Priority: 1, sequence: 3})

	var order []string
	for {
		act, ok := a.pop()
		if !ok {
			break
		}
		order = append(order, act.RuleName)
	}
	require.Equal(t, []string{"first", "second", "third"}, order)
}

func TestAgenda_PopEmptyReportsFalse(t *testing.T) {
	a := newAgenda()
	_, ok := a.pop()
	require.False(t, ok)
}

func TestAgenda_Clear(t *testing.T) {
	a := newAgenda()
	a.push(Activation{RuleName: "x"})
	require.Equal(t, 1, a.Len())
	a.clear()
	require.Equal(t, 0, a.Len())
}
