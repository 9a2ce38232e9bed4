package dual_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/twofold/dual"
	"github.com/katalvlaran/twofold/typealg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApply_StaysDual: incrementing a dual[int|float64] with branch-typed
// increments keeps the result representation dual, and the payload follows
// the active branch.
func TestApply_StaysDual(t *testing.T) {
	x := dual.Left[int, float64](1)

	v := dual.Apply(x,
		func(a int) int { return a + 1 },
		func(b float64) float64 { return b + 1 })

	assert.True(t, v.IsDual(), "distinct branch result types must stay dual")
	assert.True(t, v.Type().Equal(typealg.DualFor[int, float64]()))

	got, err := dual.AsDual[int, float64](v)
	require.NoError(t, err)
	assert.Equal(t, dual.Left[int, float64](2), got, "increment must run on the active branch")
}

// TestApply_Collapses: when both branch functions produce the same type the
// representation collapses to a plain scalar.
func TestApply_Collapses(t *testing.T) {
	x := dual.Left[int, float64](1)

	v := dual.Apply(x,
		func(a int) float64 { return float64(a) + 1.0 },
		func(b float64) float64 { return b + 1.0 })

	assert.False(t, v.IsDual(), "identical branch result types must collapse")
	assert.True(t, v.Type().Equal(typealg.ScalarFor[float64]()))

	got, err := dual.As[float64](v)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

// TestApply_RepresentationIsBranchIndependent: the computed representation
// must be identical for both runtime branches of one instantiation.
func TestApply_RepresentationIsBranchIndependent(t *testing.T) {
	fa := func(a int) int { return a + 1 }
	fb := func(b float64) float64 { return b + 1 }

	vl := dual.Apply(dual.Left[int, float64](1), fa, fb)
	vr := dual.Apply(dual.Right[int, float64](1.5), fa, fb)

	assert.True(t, vl.Type().Equal(vr.Type()), "representation must not depend on the discriminant")
	assert.True(t, vl.IsLeft())
	assert.False(t, vr.IsLeft(), "the payload branch must follow the operand branch")
}

// TestApply2_FourCombinations verifies branch selection of the binary
// dual⊗dual broadcast against label-returning functions.
func TestApply2_FourCombinations(t *testing.T) {
	combos := []struct {
		x    dual.Dual[int, string]
		y    dual.Dual[int, string]
		want string
	}{
		{dual.Left[int, string](1), dual.Left[int, string](2), "AC(1,2)"},
		{dual.Left[int, string](1), dual.Right[int, string]("d"), "AD(1,d)"},
		{dual.Right[int, string]("b"), dual.Left[int, string](2), "BC(b,2)"},
		{dual.Right[int, string]("b"), dual.Right[int, string]("d"), "BD(b,d)"},
	}

	for _, c := range combos {
		v, err := dual.Apply2(c.x, c.y, labelAC, labelAD, labelBC, labelBD)
		require.NoError(t, err)
		assert.False(t, v.IsDual(), "four string candidates must collapse")

		got, err := dual.As[string](v)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "wrong computation selected for %s⊗%s", c.x, c.y)
	}
}

// TestApply2_DualResult: candidates spanning exactly two types wrap under
// the dual representation, with the payload on the matching branch.
func TestApply2_DualResult(t *testing.T) {
	x := dual.Left[int, float64](3)
	y := dual.Right[int, float64](0.5)

	v, err := dual.Apply2(x, y,
		func(a, c int) int { return a + c },
		func(a int, d float64) float64 { return float64(a) + d },
		func(b float64, c int) float64 { return b + float64(c) },
		func(b, d float64) float64 { return b + d })
	require.NoError(t, err)

	assert.True(t, v.IsDual())
	got, err := dual.AsDual[int, float64](v)
	require.NoError(t, err)
	assert.Equal(t, dual.Right[int, float64](3.5), got, "A⊗D combination produces the float branch")
}

// TestApply2_CapacityError: three distinct candidate result types must fail
// with the algebra's capacity error before any computation runs.
func TestApply2_CapacityError(t *testing.T) {
	x := dual.Left[int, string](1)
	y := dual.Left[int, string](2)

	ran := false
	_, err := dual.Apply2(x, y,
		func(a, c int) int { ran = true; return a + c },
		func(a int, d string) string { ran = true; return d },
		func(b string, c int) float64 { ran = true; return float64(c) },
		func(b, d string) string { ran = true; return b + d })

	assert.ErrorIs(t, err, typealg.ErrCapacity, "three distinct result types must exceed capacity")
	assert.False(t, ran, "no branch computation may run on a capacity failure")
}

// TestApplyWith verifies the dual⊗plain shapes in both operand orders,
// collapsed and dual representations.
func TestApplyWith(t *testing.T) {
	x := dual.Left[int, float64](4)

	v := dual.ApplyWith(x, 2,
		func(a, c int) int { return a * c },
		func(b float64, c int) float64 { return b * float64(c) })
	assert.True(t, v.IsDual())
	got, err := dual.AsDual[int, float64](v)
	require.NoError(t, err)
	assert.Equal(t, dual.Left[int, float64](8), got)

	w := dual.WithApply("n=", x,
		func(p string, a int) string { return fmt.Sprintf("%s%d", p, a) },
		func(p string, b float64) string { return fmt.Sprintf("%s%v", p, b) })
	assert.False(t, w.IsDual(), "both candidates are string, so the result collapses")
	s, err := dual.As[string](w)
	require.NoError(t, err)
	assert.Equal(t, "n=4", s)
}

// TestValue_Recovery covers the mismatch paths of As and AsDual.
func TestValue_Recovery(t *testing.T) {
	collapsed := dual.Apply(dual.Left[int, float64](1),
		func(a int) float64 { return float64(a) },
		func(b float64) float64 { return b })
	wrapped := dual.Apply(dual.Left[int, float64](1),
		func(a int) int { return a },
		func(b float64) float64 { return b })

	// Scalar-shaped Value refuses dual recovery and wrong scalar types.
	_, err := dual.AsDual[int, float64](collapsed)
	assert.ErrorIs(t, err, dual.ErrTypeMismatch)
	_, err = dual.As[int](collapsed)
	assert.ErrorIs(t, err, dual.ErrTypeMismatch)

	// Dual-shaped Value refuses scalar recovery.
	_, err = dual.As[int](wrapped)
	assert.ErrorIs(t, err, dual.ErrTypeMismatch)

	// Recovery is exact: swapped type arguments do not match.
	_, err = dual.AsDual[float64, int](wrapped)
	assert.ErrorIs(t, err, dual.ErrTypeMismatch, "AsDual recovery is order-sensitive")

	// Interface always exposes the payload.
	assert.Equal(t, 1, wrapped.Interface())
	assert.Equal(t, "dual[int|float64](1)", wrapped.String())
	assert.Equal(t, "float64(1)", collapsed.String())
}
