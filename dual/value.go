package dual

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/twofold/typealg"
)

// Value is the erased result of a representation-computing broadcast: a
// typealg descriptor plus the payload of the branch that actually ran.
//
// A Value is scalar-shaped when the algebra collapsed all candidate result
// types into one, and dual-shaped otherwise. Its descriptor is fixed by the
// broadcast's instantiation: both runtime branches of the same call site
// produce Values with the same Type().
type Value struct {
	t      typealg.Type
	isLeft bool // branch of t holding the payload; true for scalar shapes
	v      any
}

// valueOf builds a Value, deriving the active branch of a dual-shaped
// descriptor from the payload's static type rt.
func valueOf(t typealg.Type, rt reflect.Type, payload any) Value {
	return Value{t: t, isLeft: t.IsScalar() || t.Left() == rt, v: payload}
}

// Type returns the computed result representation.
func (v Value) Type() typealg.Type { return v.t }

// IsDual reports whether the representation is dual-shaped.
func (v Value) IsDual() bool { return v.t.IsDual() }

// IsLeft reports which branch of a dual-shaped Value holds the payload.
// Scalar-shaped Values report true.
func (v Value) IsLeft() bool { return v.isLeft }

// Interface returns the payload without type recovery.
func (v Value) Interface() any { return v.v }

// String renders the descriptor and payload for diagnostics.
func (v Value) String() string {
	return fmt.Sprintf("%s(%v)", v.t, v.v)
}

// As recovers a scalar-shaped Value as its concrete type.
//
// Errors with ErrTypeMismatch when the Value is dual-shaped or when T is not
// the collapsed type.
func As[T any](v Value) (T, error) {
	var zero T
	if v.t.IsDual() {
		return zero, fmt.Errorf("%s is dual-shaped: %w", v.t, ErrTypeMismatch)
	}
	if v.t.Left() != reflect.TypeFor[T]() {
		return zero, fmt.Errorf("%s is not %s: %w", v.t, reflect.TypeFor[T](), ErrTypeMismatch)
	}

	return v.v.(T), nil
}

// AsDual recovers a dual-shaped Value as Dual[A, B]. Recovery is exact: the
// type arguments must match the descriptor's branches in declared order
// (use Swap on the result for the reversed view).
//
// Errors with ErrTypeMismatch when the Value is scalar-shaped or when A, B
// disagree with the descriptor.
func AsDual[A, B any](v Value) (Dual[A, B], error) {
	if !v.t.IsDual() {
		return Dual[A, B]{}, fmt.Errorf("%s is scalar-shaped: %w", v.t, ErrTypeMismatch)
	}
	if v.t.Left() != reflect.TypeFor[A]() || v.t.Right() != reflect.TypeFor[B]() {
		return Dual[A, B]{}, fmt.Errorf("%s does not recover as dual[%s|%s]: %w",
			v.t, reflect.TypeFor[A](), reflect.TypeFor[B](), ErrTypeMismatch)
	}
	if v.isLeft {
		return Left[A, B](v.v.(A)), nil
	}

	return Right[A, B](v.v.(B)), nil
}
