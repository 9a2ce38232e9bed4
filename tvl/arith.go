package tvl

// Numeric constraints and the arithmetic operator surface. Every operator is
// a thin named wrapper over the lift layer: the three broadcast shapes are
// the two-Optional form, the Optional⊗plain form (XScalar) and the
// plain⊗Optional form (ScalarX). Unknown operands propagate without
// evaluating the operator, so integer division by zero, overflow and the
// like can only arise from known⊗known applications, where Go's own
// semantics apply unchanged.

// Integer is any integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Number is any type the binary operators accept.
type Number interface {
	Integer | Float
}

// Signed is any type closed under negation.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | Float
}

// Neg negates a known value; unknown stays unknown.
func Neg[T Signed](x Optional[T]) Optional[T] {
	return Lift(func(v T) T { return -v })(x)
}

// Add returns the elementwise sum; any unknown operand yields unknown.
func Add[T Number](x, y Optional[T]) Optional[T] {
	return Lift2(func(a, b T) T { return a + b })(x, y)
}

// Sub returns the elementwise difference; any unknown operand yields unknown.
func Sub[T Number](x, y Optional[T]) Optional[T] {
	return Lift2(func(a, b T) T { return a - b })(x, y)
}

// Mul returns the elementwise product; any unknown operand yields unknown.
func Mul[T Number](x, y Optional[T]) Optional[T] {
	return Lift2(func(a, b T) T { return a * b })(x, y)
}

// Div returns the elementwise quotient; any unknown operand yields unknown.
// Known integer division by a known zero panics, exactly as plain Go does.
func Div[T Number](x, y Optional[T]) Optional[T] {
	return Lift2(func(a, b T) T { return a / b })(x, y)
}

// Mod returns the elementwise remainder; any unknown operand yields unknown.
func Mod[T Integer](x, y Optional[T]) Optional[T] {
	return Lift2(func(a, b T) T { return a % b })(x, y)
}

// Optional⊗plain forms: the plain operand is a known scalar.

// AddScalar adds a plain value to an optional one.
func AddScalar[T Number](x Optional[T], y T) Optional[T] { return Add(x, Known(y)) }

// SubScalar subtracts a plain value from an optional one.
func SubScalar[T Number](x Optional[T], y T) Optional[T] { return Sub(x, Known(y)) }

// MulScalar multiplies an optional value by a plain one.
func MulScalar[T Number](x Optional[T], y T) Optional[T] { return Mul(x, Known(y)) }

// DivScalar divides an optional value by a plain one.
func DivScalar[T Number](x Optional[T], y T) Optional[T] { return Div(x, Known(y)) }

// ModScalar takes the remainder of an optional value by a plain one.
func ModScalar[T Integer](x Optional[T], y T) Optional[T] { return Mod(x, Known(y)) }

// plain⊗Optional forms, for the non-commutative operators' sake.

// ScalarAdd adds an optional value to a plain one.
func ScalarAdd[T Number](x T, y Optional[T]) Optional[T] { return Add(Known(x), y) }

// ScalarSub subtracts an optional value from a plain one.
func ScalarSub[T Number](x T, y Optional[T]) Optional[T] { return Sub(Known(x), y) }

// ScalarMul multiplies a plain value by an optional one.
func ScalarMul[T Number](x T, y Optional[T]) Optional[T] { return Mul(Known(x), y) }

// ScalarDiv divides a plain value by an optional one.
func ScalarDiv[T Number](x T, y Optional[T]) Optional[T] { return Div(Known(x), y) }

// ScalarMod takes the remainder of a plain value by an optional one.
func ScalarMod[T Integer](x T, y Optional[T]) Optional[T] { return Mod(Known(x), y) }
