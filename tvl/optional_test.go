package tvl_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/twofold/dual"
	"github.com/katalvlaran/twofold/tvl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptional_HasValue verifies the discriminant queries.
func TestOptional_HasValue(t *testing.T) {
	assert.False(t, tvl.HasValue(tvl.UnknownOf[int]()), "an unknown optional has no known value")
	assert.True(t, tvl.HasValue(tvl.Known(5)))
}

// TestOptional_Get verifies checked extraction for both states.
func TestOptional_Get(t *testing.T) {
	v, ok := tvl.Get(tvl.Known(5))
	require.True(t, ok)
	assert.Equal(t, 5, v)

	v, ok = tvl.Get(tvl.UnknownOf[int]())
	assert.False(t, ok)
	assert.Equal(t, 0, v, "the failed extraction returns the zero value with ok=false")
}

// TestOptional_MustGet verifies the panicking accessor, a defined failure
// rather than a read of unspecified storage.
func TestOptional_MustGet(t *testing.T) {
	assert.Equal(t, 5, tvl.MustGet(tvl.Known(5)))
	assert.PanicsWithValue(t, dual.ErrWrongBranch, func() { tvl.MustGet(tvl.UnknownOf[int]()) })
}

// TestOptional_IsDualSpecialization documents that Optional is the dual
// container itself, so the container surface keeps working on it.
func TestOptional_IsDualSpecialization(t *testing.T) {
	o := tvl.Known(5)

	assert.True(t, o.IsLeft(), "HasValue is the left-branch discriminant")
	assert.Equal(t, "left(5)", o.String())

	u := tvl.UnknownOf[int]()
	assert.True(t, u.IsRight())
	assert.Equal(t, "right(unknown(int))", u.String())

	m, err := u.Right()
	require.NoError(t, err)
	assert.Equal(t, tvl.Unknown[int]{}, m, "unknown markers are interchangeable")
}

// TestUnknown_Marker covers the marker's reflection hook and rendering.
func TestUnknown_Marker(t *testing.T) {
	u := tvl.Unknown[float64]{}

	assert.Equal(t, reflect.TypeFor[float64](), u.ElemType())
	assert.Equal(t, "unknown(float64)", u.String())
	assert.Equal(t, tvl.Unknown[float64]{}, u, "the marker is a singleton per type")
}
