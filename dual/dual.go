package dual

import "fmt"

// Dual is an immutable container holding exactly one of two possible typed
// values, selected by a discriminant. The inactive slot keeps its zero value
// and is never observable through the public surface.
//
// The zero Dual is a right-branch value holding B's zero value; prefer the
// Left / Right constructors, which make the active branch explicit.
type Dual[A, B any] struct {
	left   A
	right  B
	isLeft bool
}

// Left constructs a dual value holding v on the first branch.
func Left[A, B any](v A) Dual[A, B] {
	return Dual[A, B]{left: v, isLeft: true}
}

// Right constructs a dual value holding v on the second branch.
func Right[A, B any](v B) Dual[A, B] {
	return Dual[A, B]{right: v}
}

// IsLeft reports whether the first branch is active.
func (d Dual[A, B]) IsLeft() bool { return d.isLeft }

// IsRight reports whether the second branch is active.
func (d Dual[A, B]) IsRight() bool { return !d.isLeft }

// Left extracts the first branch's value.
// Returns ErrWrongBranch when the second branch is active; the inactive
// slot's zero value never escapes.
func (d Dual[A, B]) Left() (A, error) {
	if !d.isLeft {
		var zero A

		return zero, ErrWrongBranch
	}

	return d.left, nil
}

// Right extracts the second branch's value.
// Returns ErrWrongBranch when the first branch is active.
func (d Dual[A, B]) Right() (B, error) {
	if d.isLeft {
		var zero B

		return zero, ErrWrongBranch
	}

	return d.right, nil
}

// MustLeft extracts the first branch's value and panics with ErrWrongBranch
// when the second branch is active. For call sites that have already checked
// the discriminant.
func (d Dual[A, B]) MustLeft() A {
	if !d.isLeft {
		panic(ErrWrongBranch)
	}

	return d.left
}

// MustRight extracts the second branch's value and panics with
// ErrWrongBranch when the first branch is active.
func (d Dual[A, B]) MustRight() B {
	if d.isLeft {
		panic(ErrWrongBranch)
	}

	return d.right
}

// String renders the active branch for diagnostics, e.g. "left(42)".
func (d Dual[A, B]) String() string {
	if d.isLeft {
		return fmt.Sprintf("left(%v)", d.left)
	}

	return fmt.Sprintf("right(%v)", d.right)
}

// Swap returns the same value with the branch order reversed. Branch order
// carries no meaning in the algebra (dual[A|B] equals dual[B|A]); Swap is
// the container-level counterpart of that rule.
func Swap[A, B any](d Dual[A, B]) Dual[B, A] {
	if d.isLeft {
		return Right[B, A](d.left)
	}

	return Left[B, A](d.right)
}
