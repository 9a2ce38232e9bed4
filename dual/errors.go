// SPDX-License-Identifier: MIT
// Package dual: sentinel error set. All public operations return these
// sentinels (possibly wrapped with context) and tests match them via
// errors.Is. Panics are reserved for the Must* accessors.

package dual

import "errors"

var (
	// ErrWrongBranch is returned when the inactive branch of a dual value is
	// extracted. The inactive slot holds an unspecified zero value and is
	// never handed to the caller.
	ErrWrongBranch = errors.New("dual: inactive branch access")

	// ErrTypeMismatch is returned by As / AsDual when the requested type
	// arguments do not match the Value's computed representation.
	ErrTypeMismatch = errors.New("dual: value type mismatch")
)
