package typealg

import (
	"fmt"
	"reflect"
)

// Numeric promotion.
//
// Go performs no implicit arithmetic conversion, so unknown-value arithmetic
// over mixed numeric types needs an explicit table of "the type the result
// would have". Promote implements that table over reflect.Type descriptors:
//
//   - identical types promote to themselves (named types survive);
//   - within one class (signed, unsigned, float, complex) the wider kind
//     wins; the plain int/uint kinds rank just below their 64-bit forms;
//   - integer ⊗ float promotes to the float operand's kind;
//   - anything ⊗ complex promotes to the complex operand's kind;
//   - signed ⊗ unsigned has no defined common type (ErrNoPromotion), as
//     neither class can represent the other;
//   - non-numeric operands are ErrNoPromotion.
//
// Promotion never evaluates an operator; it only names the output type.

// numeric kind classes, ordered so that a higher class absorbs a lower one
// (float absorbs integers, complex absorbs floats and integers).
const (
	classSigned = iota + 1
	classUnsigned
	classFloat
	classComplex
)

// kindClass maps a reflect.Kind to its class and within-class width rank.
// ok is false for non-numeric kinds (and uintptr, which is not arithmetic).
func kindClass(k reflect.Kind) (class, rank int, ok bool) {
	switch k {
	case reflect.Int8:
		return classSigned, 1, true
	case reflect.Int16:
		return classSigned, 2, true
	case reflect.Int32:
		return classSigned, 3, true
	case reflect.Int:
		return classSigned, 4, true
	case reflect.Int64:
		return classSigned, 5, true
	case reflect.Uint8:
		return classUnsigned, 1, true
	case reflect.Uint16:
		return classUnsigned, 2, true
	case reflect.Uint32:
		return classUnsigned, 3, true
	case reflect.Uint:
		return classUnsigned, 4, true
	case reflect.Uint64:
		return classUnsigned, 5, true
	case reflect.Float32:
		return classFloat, 1, true
	case reflect.Float64:
		return classFloat, 2, true
	case reflect.Complex64:
		return classComplex, 1, true
	case reflect.Complex128:
		return classComplex, 2, true
	default:
		return 0, 0, false
	}
}

// canonical maps a numeric kind to its predeclared Go type.
var canonical = map[reflect.Kind]reflect.Type{
	reflect.Int8:       reflect.TypeFor[int8](),
	reflect.Int16:      reflect.TypeFor[int16](),
	reflect.Int32:      reflect.TypeFor[int32](),
	reflect.Int:        reflect.TypeFor[int](),
	reflect.Int64:      reflect.TypeFor[int64](),
	reflect.Uint8:      reflect.TypeFor[uint8](),
	reflect.Uint16:     reflect.TypeFor[uint16](),
	reflect.Uint32:     reflect.TypeFor[uint32](),
	reflect.Uint:       reflect.TypeFor[uint](),
	reflect.Uint64:     reflect.TypeFor[uint64](),
	reflect.Float32:    reflect.TypeFor[float32](),
	reflect.Float64:    reflect.TypeFor[float64](),
	reflect.Complex64:  reflect.TypeFor[complex64](),
	reflect.Complex128: reflect.TypeFor[complex128](),
}

// Promote returns the type a binary numeric operator over operands of types
// a and b would produce. Identical types are returned unchanged; mixed types
// promote to the predeclared type of the winning kind.
//
// Errors:
//   - ErrNilType     — either operand is nil.
//   - ErrNoPromotion — no common numeric type exists for a and b.
func Promote(a, b reflect.Type) (reflect.Type, error) {
	if a == nil || b == nil {
		return nil, ErrNilType
	}
	if a == b {
		if _, _, ok := kindClass(a.Kind()); !ok {
			return nil, noPromotion(a, b)
		}

		return a, nil
	}

	ac, ar, aok := kindClass(a.Kind())
	bc, br, bok := kindClass(b.Kind())
	if !aok || !bok {
		return nil, noPromotion(a, b)
	}

	switch {
	case ac == bc: // same class: the wider kind wins
		if ar >= br {
			return canonical[a.Kind()], nil
		}

		return canonical[b.Kind()], nil

	case ac == classSigned && bc == classUnsigned,
		ac == classUnsigned && bc == classSigned:
		// Mixed signedness has no representable common type.
		return nil, noPromotion(a, b)

	case ac > bc: // higher class absorbs: float over ints, complex over all
		return canonical[a.Kind()], nil

	default:
		return canonical[b.Kind()], nil
	}
}

// noPromotion decorates ErrNoPromotion with the operand types.
func noPromotion(a, b reflect.Type) error {
	return fmt.Errorf("%s and %s: %w", a, b, ErrNoPromotion)
}
