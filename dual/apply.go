package dual

import (
	"reflect"

	"github.com/katalvlaran/twofold/typealg"
)

// Representation-computing broadcast. Each shape first folds the candidate
// result types of every branch combination through the algebra, then runs
// exactly one branch computation selected by the discriminant(s), and wraps
// or collapses the payload under the computed representation.
//
// The representation depends only on the instantiated result types; the
// runtime discriminants select a computation, never a representation.

// Apply is the unary broadcast: the output representation is
// Result(RA, RB). When RA and RB coincide the Value collapses to a plain
// scalar; otherwise it wraps under dual[RA|RB].
//
// Two candidate types never exceed capacity, so Apply cannot fail.
func Apply[A, B, RA, RB any](x Dual[A, B], fa func(A) RA, fb func(B) RB) Value {
	// Two scalar descriptors always fold (rules 1-2).
	t, _ := typealg.Result(typealg.ScalarFor[RA](), typealg.ScalarFor[RB]())

	if x.isLeft {
		return valueOf(t, reflect.TypeFor[RA](), fa(x.left))
	}

	return valueOf(t, reflect.TypeFor[RB](), fb(x.right))
}

// Apply2 is the binary dual⊗dual broadcast: the output representation is the
// fold of the four candidate result types, one per branch combination
// (fac for A⊗C, fad for A⊗D, fbc for B⊗C, fbd for B⊗D).
//
// Errors with typealg.ErrCapacity when the candidates span three or more
// distinct concrete types; no branch computation runs in that case.
func Apply2[A, B, C, D, RAC, RAD, RBC, RBD any](
	x Dual[A, B], y Dual[C, D],
	fac func(A, C) RAC, fad func(A, D) RAD,
	fbc func(B, C) RBC, fbd func(B, D) RBD,
) (Value, error) {
	t, err := typealg.Fold(
		typealg.ScalarFor[RAC](),
		typealg.ScalarFor[RAD](),
		typealg.ScalarFor[RBC](),
		typealg.ScalarFor[RBD](),
	)
	if err != nil {
		return Value{}, err
	}

	switch {
	case x.isLeft && y.isLeft:
		return valueOf(t, reflect.TypeFor[RAC](), fac(x.left, y.left)), nil
	case x.isLeft:
		return valueOf(t, reflect.TypeFor[RAD](), fad(x.left, y.right)), nil
	case y.isLeft:
		return valueOf(t, reflect.TypeFor[RBC](), fbc(x.right, y.left)), nil
	default:
		return valueOf(t, reflect.TypeFor[RBD](), fbd(x.right, y.right)), nil
	}
}

// ApplyWith is the binary broadcast with a plain second operand, treated as
// a scalar: the output representation is Result(RA, RB) over the two
// candidates. Cannot fail.
func ApplyWith[A, B, C, RA, RB any](x Dual[A, B], y C, fa func(A, C) RA, fb func(B, C) RB) Value {
	t, _ := typealg.Result(typealg.ScalarFor[RA](), typealg.ScalarFor[RB]())

	if x.isLeft {
		return valueOf(t, reflect.TypeFor[RA](), fa(x.left, y))
	}

	return valueOf(t, reflect.TypeFor[RB](), fb(x.right, y))
}

// WithApply mirrors ApplyWith for a plain first operand.
func WithApply[C, A, B, RA, RB any](x C, y Dual[A, B], fa func(C, A) RA, fb func(C, B) RB) Value {
	t, _ := typealg.Result(typealg.ScalarFor[RA](), typealg.ScalarFor[RB]())

	if y.isLeft {
		return valueOf(t, reflect.TypeFor[RA](), fa(x, y.left))
	}

	return valueOf(t, reflect.TypeFor[RB](), fb(x, y.right))
}
