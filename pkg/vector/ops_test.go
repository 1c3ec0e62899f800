package vector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAddBroadcastsScalars(t *testing.T) {
	v := New(1, 5, 2)

	assert.Equal(t, New(6, 10, 7), Add(v, 5))
	assert.Equal(t, New(6, 10, 7), Add(5, v), "broadcast addition must commute")
	assert.Equal(t, New(11, 3, -4), Add(v, New(10, -2, -6)))
}

func TestSub(t *testing.T) {
	v1 := New(1, 5, 2)
	v2 := New(10, -2, -6)

	assert.Equal(t, New(-9, 7, 8), Sub(v1, v2))
	assert.Equal(t, Sub(v1, v2), Sub(v2, v1).Neg())
}

func TestNeg(t *testing.T) {
	assert.Equal(t, New(-1, 5, -2), Neg(New(1, -5, 2)))
	assert.Equal(t, New(-5, -5, -5), Neg(5), "scalar negation broadcasts")
}

func TestPowAllowsVectorExponent(t *testing.T) {
	v := New(1, 5, 2)

	assert.Equal(t, New(1, 3125, 32), Pow(v, 5))
	// vector-to-a-vector power carries no scalar requirement
	assert.Equal(t, New(1, 25, 8), Pow(v, New(0, 2, 3)))
}

func TestMulScalar(t *testing.T) {
	v := New(1, 5, 2)

	got, err := Mul(v, 5)
	require.NoError(t, err)
	assert.Equal(t, New(5, 25, 10), got)

	got, err = Mul(5, v)
	require.NoError(t, err)
	assert.Equal(t, New(5, 25, 10), got)

	got, err = Mul(4, 5)
	require.NoError(t, err)
	assert.Equal(t, New(20, 20, 20), got, "two scalars are accepted")
}

func TestDivScalar(t *testing.T) {
	v := New(1, 5, 2)

	got, err := Div(v, 5)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, got.X, 1e-12)
	assert.InDelta(t, 1.0, got.Y, 1e-12)
	assert.InDelta(t, 0.4, got.Z, 1e-12)
}

func TestMulDivRejectVectorPairs(t *testing.T) {
	v1 := New(1, 5, 2)
	v2 := New(10, -2, -6)

	for _, op := range []func(a, b any) (Vector3, error){Mul, Div} {
		got, err := op(v1, v2)
		require.Error(t, err)
		assert.Equal(t, Vector3{}, got)

		var opErr *InvalidOperandError
		require.True(t, errors.As(err, &opErr))
		assert.Contains(t, opErr.Error(), "vector.Vector3")
	}

	// vector-shaped aggregates count as vectors, not scalars
	_, err := Mul([]float64{1, 2, 3}, map[string]float64{"x": 1})
	require.Error(t, err)
}

func TestRejectionEmitsDiagnostic(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	_, err := Mul(New(1, 5, 2), New(10, -2, -6))
	require.Error(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "invalid operand combination", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "*", fields["op"])
	assert.Equal(t, "vector.Vector3", fields["left_type"])
	assert.Equal(t, "vector.Vector3", fields["right_type"])
}

func TestConcat(t *testing.T) {
	v := New(1, 5, 2)

	assert.Equal(t, "v1 is { [1]: 1, [2]: 5, [3]: 2, }", Concat("v1 is ", v))
	assert.Equal(t, "{ [1]: 1, [2]: 5, [3]: 2, } it was", Concat(v, " it was"))
	assert.Equal(t, "5true", Concat(5, true), "non-vector sides use plain rendering")
}
