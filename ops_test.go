package rete

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareOp_Eq(t *testing.T) {
	require.True(t, compareOp(Eq, "red", "red"))
	require.False(t, compareOp(Eq, "red", "blue"))
}

func TestCompareOp_NumericCrossKind(t *testing.T) {
	require.True(t, compareOp(Eq, int32(10), 10))
	require.True(t, compareOp(Eq, float32(10), 10))
	require.True(t, compareOp(Gt, 11, 10))
	require.False(t, compareOp(Gt, 10, 10))
	require.True(t, compareOp(Gte, 10, 10))
	require.True(t, compareOp(Lt, 9, 10))
	require.True(t, compareOp(Lte, 10, 10))
}

func TestCompareOp_NonNumericOrderingFails(t *testing.T) {
	require.False(t, compareOp(Gt, "a", "b"))
}

func TestCompareOp_Neq(t *testing.T) {
	require.True(t, compareOp(Neq, 1, 2))
	require.False(t, compareOp(Neq, 1, 1))
}

func TestToFloat(t *testing.T) {
	cases := []any{int(1), int8(1), int16(1), int32(1), int64(1),
		uint(1), uint8(1), uint16(1), uint32(1), uint64(1),
		float32(1), float64(1)}
	for _, v := range cases {
		f, ok := toFloat(v)
		require.True(t, ok, "%T", v)
		require.Equal(t, 1.0, f)
	}
	_, ok := toFloat("not numeric")
	require.False(t, ok)
}
