package tvl

import "github.com/katalvlaran/twofold/dual"

// Lifting turns plain functions into unknown-propagating ones. Both lifts
// are thin layers over dual's broadcast: known operands reach f, any
// unknown operand short-circuits to an unknown of the result type without
// evaluating f — propagation needs only the result type, never the result.

// Lift lifts a unary function over Optional: known applies f, unknown stays
// unknown (of the result type R).
func Lift[T, R any](f func(T) R) func(Optional[T]) Optional[R] {
	return func(x Optional[T]) Optional[R] {
		return dual.Map(x,
			func(v T) Optional[R] { return Known(f(v)) },
			func(Unknown[T]) Optional[R] { return UnknownOf[R]() },
		)
	}
}

// Lift2 lifts a binary function over two Optionals. R is the promoted result
// type, fixed at instantiation: for mixed numeric operands the caller names
// the promotion explicitly (Go has no implicit one), e.g.
//
//	Lift2(func(a int, b float64) float64 { return float64(a) + b })
//
// yields unknown float64 whenever either operand is unknown.
func Lift2[T1, T2, R any](f func(T1, T2) R) func(Optional[T1], Optional[T2]) Optional[R] {
	return func(x Optional[T1], y Optional[T2]) Optional[R] {
		return dual.Zip(x, y,
			func(a T1, b T2) Optional[R] { return Known(f(a, b)) },
			func(T1, Unknown[T2]) Optional[R] { return UnknownOf[R]() },
			func(Unknown[T1], T2) Optional[R] { return UnknownOf[R]() },
			func(Unknown[T1], Unknown[T2]) Optional[R] { return UnknownOf[R]() },
		)
	}
}
