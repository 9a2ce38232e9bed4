// SPDX-License-Identifier: MIT
// Package typealg: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// typealg package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. When context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) — callers still match with errors.Is.

package typealg

import "errors"

var (
	// ErrCapacity is returned when a result would need to represent a third
	// distinct concrete type. A dual descriptor holds exactly two branches;
	// this constraint is hard and never silently approximated.
	ErrCapacity = errors.New("typealg: a dual value cannot represent more than two distinct branch types")

	// ErrNilType indicates a nil reflect.Type or an uninitialized (zero)
	// Type descriptor was passed where a constructed descriptor is required.
	ErrNilType = errors.New("typealg: nil type descriptor")

	// ErrNoPromotion indicates that the numeric promotion table defines no
	// common type for the two operand types (mixed signedness, or a
	// non-numeric operand).
	ErrNoPromotion = errors.New("typealg: no numeric promotion between operand types")
)
