// SPDX-License-Identifier: MIT

// Package lorentz: sentinel error set.
// Every public operation returns one of these (possibly wrapped with call-site
// context via %w); callers match with errors.Is. No operation panics on a
// user-triggered condition.

package lorentz

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a component index outside 0..3.
	// At and Set MUST return this, not panic.
	ErrOutOfRange = errors.New("lorentz: index out of range; components are 0,1,2,3")

	// ErrUnknownSystem indicates a CoordinateSystem value outside the four
	// known systems, or an unparsable system name.
	ErrUnknownSystem = errors.New("lorentz: unknown coordinate system")

	// ErrMismatchedSystem is returned by Sum/Diff/Inner under WithStrictSystems
	// when the operands carry different coordinate systems.
	ErrMismatchedSystem = errors.New("lorentz: mismatched coordinate systems")
)

// vectorErrorf wraps a sentinel with the Vector method and index that raised it.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// systemErrorf wraps a sentinel with the operation and offending system.
func systemErrorf(op string, sys CoordinateSystem, err error) error {
	return fmt.Errorf("%s(%s): %w", op, sys, err)
}
