package typealg

import "fmt"

// Result collapses two candidate result types into the narrowest
// representation that can hold either.
//
// Rules (first match wins):
//
//  1. identical descriptors collapse to themselves;
//  2. two distinct concrete types pair into a dual descriptor, preserving
//     argument order as branch order;
//  3. a dual absorbs a scalar equal to one of its own branches, in either
//     argument order;
//  4. identical duals collapse to themselves;
//  5. duals differing only in branch order collapse to the left operand;
//  6. any other combination needs a third distinct concrete type and is a
//     hard ErrCapacity.
//
// Result is pure and never inspects runtime values; the returned descriptor
// depends only on its inputs.
//
// Errors:
//   - ErrNilType  — either operand is the zero Type.
//   - ErrCapacity — more than two distinct branch types required.
func Result(x, y Type) (Type, error) {
	if x.left == nil || y.left == nil {
		return Type{}, ErrNilType
	}

	switch {
	case x.IsScalar() && y.IsScalar():
		if x.left == y.left {
			return x, nil // rule 1: identical concrete types
		}

		return Type{left: x.left, right: y.left}, nil // rule 2: pair up

	case x.IsDual() && y.IsScalar():
		if x.Has(y.left) { // rule 3: absorption
			return x, nil
		}

		return Type{}, capacityError(x, y)

	case x.IsScalar() && y.IsDual():
		if y.Has(x.left) { // rule 3, mirrored
			return y, nil
		}

		return Type{}, capacityError(x, y)

	default: // both dual; rules 4-5 via order-insensitive equality
		if x.Equal(y) {
			return x, nil
		}

		return Type{}, capacityError(x, y)
	}
}

// Fold collapses any number of candidate result types pairwise via Result.
// Because Result is associative and commutative up to branch order, any fold
// order that succeeds yields an Equal descriptor.
func Fold(first Type, rest ...Type) (Type, error) {
	acc, err := first, error(nil)
	for _, t := range rest {
		if acc, err = Result(acc, t); err != nil {
			return Type{}, err
		}
	}

	return acc, nil
}

// capacityError decorates ErrCapacity with the offending descriptors;
// callers keep matching it via errors.Is.
func capacityError(x, y Type) error {
	return fmt.Errorf("cannot merge %s with %s: %w", x, y, ErrCapacity)
}
