package tvl

// Bool is the three-valued boolean: Known(true), Known(false) or unknown.
type Bool = Optional[bool]

// True returns the known true value.
func True() Bool { return Known(true) }

// False returns the known false value.
func False() Bool { return Known(false) }

// UnknownBool returns the unknown boolean.
func UnknownBool() Bool { return UnknownOf[bool]() }

// Not negates a three-valued boolean; unknown stays unknown.
func Not(x Bool) Bool {
	return Lift(func(b bool) bool { return !b })(x)
}

// And is three-valued conjunction. A known false operand determines the
// result regardless of the other operand, so false ∧ unknown = false; the
// remaining unknown-involving combinations stay unknown.
func And(x, y Bool) Bool {
	xv, xk := Get(x)
	yv, yk := Get(y)

	switch {
	case xk && yk:
		return Known(xv && yv)
	case xk && !xv, yk && !yv:
		return False()
	default:
		return UnknownBool()
	}
}

// Or is three-valued disjunction. A known true operand determines the
// result regardless of the other operand, so true ∨ unknown = true; the
// remaining unknown-involving combinations stay unknown.
func Or(x, y Bool) Bool {
	xv, xk := Get(x)
	yv, yk := Get(y)

	switch {
	case xk && yk:
		return Known(xv || yv)
	case xk && xv, yk && yv:
		return True()
	default:
		return UnknownBool()
	}
}

// Xor is three-valued exclusive or. No single known operand can determine
// the result, so any unknown operand makes the result unknown.
func Xor(x, y Bool) Bool {
	return Lift2(func(a, b bool) bool { return a != b })(x, y)
}
