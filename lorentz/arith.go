// SPDX-License-Identifier: MIT

// Package lorentz - system-aware binary operations.
// Sum, Diff and Inner wrap the raw Vector.Add/Sub/Dot with a SystemPolicy
// chosen through options (see options.go).

package lorentz

import "fmt"

// Sum returns a+b under the resolved SystemPolicy; the result carries a's system.
//
// Errors:
//   - ErrMismatchedSystem under WithStrictSystems when the systems differ.
func Sum(a, b Vector, opts ...Option) (Vector, error) {
	rhs, err := alignOperand("Sum", a, b, gatherOptions(opts...))
	if err != nil {
		return Vector{}, err
	}

	return a.Add(rhs), nil
}

// Diff returns a−b under the resolved SystemPolicy; the result carries a's system.
func Diff(a, b Vector, opts ...Option) (Vector, error) {
	rhs, err := alignOperand("Diff", a, b, gatherOptions(opts...))
	if err != nil {
		return Vector{}, err
	}

	return a.Sub(rhs), nil
}

// Inner returns the Minkowski inner product of a and b under the resolved
// SystemPolicy.
func Inner(a, b Vector, opts ...Option) (float64, error) {
	rhs, err := alignOperand("Inner", a, b, gatherOptions(opts...))
	if err != nil {
		return 0, err
	}

	return a.Dot(rhs), nil
}

// alignOperand returns the right operand prepared for combination with a.
func alignOperand(op string, a, b Vector, o Options) (Vector, error) {
	if a.sys == b.sys {
		return b, nil
	}
	switch o.policy {
	case PolicyStrict:
		return Vector{}, fmt.Errorf("%s(%s, %s): %w", op, a.sys, b.sys, ErrMismatchedSystem)
	case PolicyConvert:
		return mustConvert(b, a.sys), nil
	default:
		return b, nil
	}
}

// InvariantMass returns the Minkowski magnitude of v evaluated in Cartesian
// coordinates, whatever system v is stored in. For a four-momentum this is
// the invariant mass; for Cartesian input it equals v.Mag().
func InvariantMass(v Vector) float64 {
	return mustConvert(v, Cartesian).Mag()
}
