// Package typealg: descriptor type and constructors.
// A Type is a value-level description of a broadcast result representation:
// either one concrete type (scalar) or exactly two distinct branch types
// (dual). Descriptors are immutable values; the zero Type is invalid and is
// rejected with ErrNilType wherever it can reach the algebra.

package typealg

import "reflect"

// Type describes the representation of an operation result: a single
// concrete type, or a dual type with exactly two distinct branches.
//
// Construct via Scalar, ScalarFor, Dual or DualFor; the zero Type is not a
// valid descriptor.
type Type struct {
	left  reflect.Type
	right reflect.Type // nil for scalar descriptors
}

// Scalar returns the descriptor of the single concrete type t.
// It panics on a nil reflect.Type (programmer error, as there is nothing
// meaningful to describe).
func Scalar(t reflect.Type) Type {
	if t == nil {
		panic(ErrNilType)
	}

	return Type{left: t}
}

// ScalarFor returns the scalar descriptor of the compile-time type T.
func ScalarFor[T any]() Type {
	return Type{left: reflect.TypeFor[T]()}
}

// Dual returns the descriptor with branches a and b, in that order.
// Identical branches collapse to the scalar descriptor (rule 1 applied at
// construction, so dual[T|T] never exists). Nil inputs yield ErrNilType.
func Dual(a, b reflect.Type) (Type, error) {
	if a == nil || b == nil {
		return Type{}, ErrNilType
	}
	if a == b {
		return Type{left: a}, nil
	}

	return Type{left: a, right: b}, nil
}

// DualFor returns the descriptor with branch types A and B. As with Dual,
// identical branch types collapse to a scalar descriptor.
func DualFor[A, B any]() Type {
	a, b := reflect.TypeFor[A](), reflect.TypeFor[B]()
	if a == b {
		return Type{left: a}
	}

	return Type{left: a, right: b}
}

// IsScalar reports whether t describes a single concrete type.
func (t Type) IsScalar() bool { return t.left != nil && t.right == nil }

// IsDual reports whether t describes a two-branch dual type.
func (t Type) IsDual() bool { return t.right != nil }

// Left returns the first (or only) branch type; nil for the zero Type.
func (t Type) Left() reflect.Type { return t.left }

// Right returns the second branch type; nil for scalar descriptors.
func (t Type) Right() reflect.Type { return t.right }

// Has reports whether rt is one of t's branch types (for a scalar, whether
// rt is the described type itself).
func (t Type) Has(rt reflect.Type) bool {
	return rt != nil && (t.left == rt || t.right == rt)
}

// Equal reports whether t and u describe the same representation.
// For duals the comparison is order-insensitive: dual[A|B] equals dual[B|A].
func (t Type) Equal(u Type) bool {
	if t.IsDual() != u.IsDual() {
		return false
	}
	if !t.IsDual() {
		return t.left == u.left
	}

	return (t.left == u.left && t.right == u.right) ||
		(t.left == u.right && t.right == u.left)
}

// String renders the descriptor as "int" or "dual[int|float64]".
func (t Type) String() string {
	switch {
	case t.left == nil:
		return "<invalid>"
	case t.right == nil:
		return t.left.String()
	default:
		return "dual[" + t.left.String() + "|" + t.right.String() + "]"
	}
}
