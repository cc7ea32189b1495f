// SPDX-License-Identifier: MIT

// Package lorentz: domain types.
// This file contains ONLY the CoordinateSystem tag and its parsing helpers;
// the Vector value type lives in vector.go, errors in errors.go and the
// arithmetic policy options in options.go.
package lorentz

import (
	"fmt"
	"strings"
)

// CoordinateSystem selects how components 1..3 of a Vector are interpreted.
// Component 0 is always the time-like (or energy-like) coordinate.
//
//	Cartesian    t  x   y  z
//	Spherical    t  r   θ  φ     r ∈ [0,∞), θ ∈ [0,π], φ ∈ [0,2π)
//	Cylindrical  t  s   φ  z     s ∈ [0,∞)
//	Collider     E  pT  φ  η     η = −ln tan(θ/2) ∈ (−∞,∞)
//
// The zero value is Cartesian, the default system.
type CoordinateSystem int

const (
	// Cartesian stores (t, x, y, z).
	Cartesian CoordinateSystem = iota
	// Spherical stores (t, r, θ, φ) with θ the polar angle from +z.
	Spherical
	// Cylindrical stores (t, s, φ, z) with s the transverse radius.
	Cylindrical
	// Collider stores (E, pT, φ, η) as used by collider experiments.
	Collider
)

// DefaultSystem is the system used by New and by the zero Vector.
const DefaultSystem = Cartesian

// numSystems is the count of known systems; valid tags are [0, numSystems).
const numSystems = 4

var systemNames = [numSystems]string{
	Cartesian:   "cartesian",
	Spherical:   "spherical",
	Cylindrical: "cylindrical",
	Collider:    "collider",
}

// systemAliases maps accepted short names onto systems (lower-case keys).
var systemAliases = map[string]CoordinateSystem{
	"car": Cartesian,
	"sph": Spherical,
	"cyl": Cylindrical,
	"col": Collider,
}

// Valid reports whether s is one of the four known systems.
func (s CoordinateSystem) Valid() bool {
	return s >= 0 && s < numSystems
}

// String implements fmt.Stringer.
func (s CoordinateSystem) String() string {
	if !s.Valid() {
		return fmt.Sprintf("CoordinateSystem(%d)", int(s))
	}

	return systemNames[s]
}

// Systems returns the four systems in declaration order.
// A fresh slice is returned on every call.
func Systems() []CoordinateSystem {
	return []CoordinateSystem{Cartesian, Spherical, Cylindrical, Collider}
}

// ParseCoordinateSystem resolves a system from its name ("spherical") or
// short alias ("sph"), case-insensitively and ignoring surrounding spaces.
// Unknown input yields ErrUnknownSystem.
func ParseCoordinateSystem(name string) (CoordinateSystem, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range systemNames {
		if n == key {
			return CoordinateSystem(i), nil
		}
	}
	if s, ok := systemAliases[key]; ok {
		return s, nil
	}

	return Cartesian, fmt.Errorf("ParseCoordinateSystem(%q): %w", name, ErrUnknownSystem)
}
