package tvl

import (
	"reflect"

	"github.com/katalvlaran/twofold/dual"
)

// Unknown is a zero-payload marker standing in for a value of type T that
// exists but whose identity is not known. It carries no data and no
// identity beyond T: any two Unknown[T] values are interchangeable.
type Unknown[T any] struct{}

// ElemType returns the descriptor of the type the marker stands in for,
// for callers working at the reflection level.
func (Unknown[T]) ElemType() reflect.Type { return reflect.TypeFor[T]() }

// String renders the marker as "unknown(T)".
func (Unknown[T]) String() string {
	return "unknown(" + reflect.TypeFor[T]().String() + ")"
}

// Optional is a dual container specialized so that its second branch records
// "the value exists but is not known". HasValue is the discriminant; the
// first branch carries the known value.
type Optional[T any] = dual.Dual[T, Unknown[T]]

// Known constructs an Optional holding the known value v.
func Known[T any](v T) Optional[T] {
	return dual.Left[T, Unknown[T]](v)
}

// UnknownOf constructs an Optional whose value exists but is not known.
func UnknownOf[T any]() Optional[T] {
	return dual.Right[T, Unknown[T]](Unknown[T]{})
}

// HasValue reports whether o carries a known value.
func HasValue[T any](o Optional[T]) bool { return o.IsLeft() }

// Get returns the known value and true, or T's zero value and false when
// the value is unknown.
func Get[T any](o Optional[T]) (T, bool) {
	v, err := o.Left()

	return v, err == nil
}

// MustGet returns the known value and panics with dual.ErrWrongBranch when
// it is unknown. For call sites that have already checked HasValue.
func MustGet[T any](o Optional[T]) T { return o.MustLeft() }
