package dual

// Monomorphized broadcast: the fast path for call sites that already know
// the result representation. Each function dispatches on the relevant
// discriminant(s) with a single conditional per dual operand; no type
// computation happens at runtime.
//
// Naming: Map/Zip produce a collapsed (plain) result — every branch
// combination yields the same type R. The ...Both forms produce a dual
// result split by the first dual operand's branch. For representations that
// are not known at the call site, use Apply and friends instead.

// Map applies one function per branch, both producing the same type.
// This is the unary broadcast whose result representation collapses.
func Map[A, B, R any](x Dual[A, B], fa func(A) R, fb func(B) R) R {
	if x.isLeft {
		return fa(x.left)
	}

	return fb(x.right)
}

// MapBoth applies one function per branch, each producing its own type.
// This is the unary broadcast whose result representation stays dual; the
// active branch of the result follows the active branch of x.
func MapBoth[A, B, RA, RB any](x Dual[A, B], fa func(A) RA, fb func(B) RB) Dual[RA, RB] {
	if x.isLeft {
		return Left[RA, RB](fa(x.left))
	}

	return Right[RA, RB](fb(x.right))
}

// Zip applies one function per branch combination of two dual operands, all
// four producing the same type. Exactly one function runs, selected by the
// pair of discriminants.
func Zip[A, B, C, D, R any](
	x Dual[A, B], y Dual[C, D],
	fac func(A, C) R, fad func(A, D) R,
	fbc func(B, C) R, fbd func(B, D) R,
) R {
	switch {
	case x.isLeft && y.isLeft:
		return fac(x.left, y.left)
	case x.isLeft:
		return fad(x.left, y.right)
	case y.isLeft:
		return fbc(x.right, y.left)
	default:
		return fbd(x.right, y.right)
	}
}

// ZipBoth is the binary dual⊗dual broadcast whose result representation
// stays dual, split by x's branch: both A-row functions produce RA, both
// B-row functions produce RB.
func ZipBoth[A, B, C, D, RA, RB any](
	x Dual[A, B], y Dual[C, D],
	fac func(A, C) RA, fad func(A, D) RA,
	fbc func(B, C) RB, fbd func(B, D) RB,
) Dual[RA, RB] {
	if x.isLeft {
		if y.isLeft {
			return Left[RA, RB](fac(x.left, y.left))
		}

		return Left[RA, RB](fad(x.left, y.right))
	}
	if y.isLeft {
		return Right[RA, RB](fbc(x.right, y.left))
	}

	return Right[RA, RB](fbd(x.right, y.right))
}

// ZipWith is the binary broadcast with a plain second operand, collapsed
// result. The plain operand is treated as a scalar.
func ZipWith[A, B, C, R any](x Dual[A, B], y C, fa func(A, C) R, fb func(B, C) R) R {
	if x.isLeft {
		return fa(x.left, y)
	}

	return fb(x.right, y)
}

// ZipWithBoth is ZipWith with a dual result split by x's branch.
func ZipWithBoth[A, B, C, RA, RB any](x Dual[A, B], y C, fa func(A, C) RA, fb func(B, C) RB) Dual[RA, RB] {
	if x.isLeft {
		return Left[RA, RB](fa(x.left, y))
	}

	return Right[RA, RB](fb(x.right, y))
}

// WithZip mirrors ZipWith for a plain first operand.
func WithZip[C, A, B, R any](x C, y Dual[A, B], fa func(C, A) R, fb func(C, B) R) R {
	if y.isLeft {
		return fa(x, y.left)
	}

	return fb(x, y.right)
}

// WithZipBoth mirrors ZipWithBoth for a plain first operand; the result is
// split by y's branch.
func WithZipBoth[C, A, B, RA, RB any](x C, y Dual[A, B], fa func(C, A) RA, fb func(C, B) RB) Dual[RA, RB] {
	if y.isLeft {
		return Left[RA, RB](fa(x, y.left))
	}

	return Right[RA, RB](fb(x, y.right))
}
