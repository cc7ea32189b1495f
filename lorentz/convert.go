// SPDX-License-Identifier: MIT

// Package lorentz - coordinate conversion graph.
//
// Purpose:
//   - Twelve converters, one per ordered pair of systems, plus a table-driven
//     dispatcher (Convert).
//   - Six converters are direct closed forms; the other six compose two of
//     them through Cartesian or Spherical.
//
// Edge-case policy (kept bit-for-bit, callers rely on it):
//   - Every φ produced here lies in [0, 2π).
//   - Undefined angles at zero radius / zero transverse magnitude become 0.
//   - Cartesian→Spherical guards φ on x > 0, not on r > 0: vectors with x ≤ 0
//     get φ = 0.
//
// Component 0 passes through every converter unchanged.

package lorentz

import "math"

// converter maps a vector in one system onto the same quantity in another.
// Input tag is trusted; the result carries the converter's target tag.
type converter func(Vector) Vector

// route is a dispatch key: ordered (from, to) pair of systems.
type route struct {
	from, to CoordinateSystem
}

// converters holds exactly one converter per ordered pair with from != to.
var converters = map[route]converter{
	{Cartesian, Spherical}:   cartesianToSpherical,
	{Cartesian, Cylindrical}: cartesianToCylindrical,
	{Cartesian, Collider}:    cartesianToCollider,

	{Spherical, Cartesian}:   sphericalToCartesian,
	{Spherical, Cylindrical}: sphericalToCylindrical,
	{Spherical, Collider}:    sphericalToCollider,

	{Cylindrical, Cartesian}: cylindricalToCartesian,
	{Cylindrical, Spherical}: cylindricalToSpherical,
	{Cylindrical, Collider}:  cylindricalToCollider,

	{Collider, Cartesian}:   colliderToCartesian,
	{Collider, Spherical}:   colliderToSpherical,
	{Collider, Cylindrical}: colliderToCylindrical,
}

// Convert returns v re-expressed in sys; v itself is not modified.
//
// Implementation:
//   - Stage 1: validate sys.
//   - Stage 2: identity short-circuit when v is already in sys.
//   - Stage 3: look up the single converter for (v.System(), sys).
//
// Errors:
//   - ErrUnknownSystem if sys is not a known system.
//
// Complexity: O(1).
func Convert(v Vector, sys CoordinateSystem) (Vector, error) {
	if !sys.Valid() {
		return Vector{}, systemErrorf("Convert", sys, ErrUnknownSystem)
	}
	if v.sys == sys {
		return v, nil
	}

	return converters[route{v.sys, sys}](v), nil
}

// mustConvert is Convert for targets known to be valid at compile time.
func mustConvert(v Vector, sys CoordinateSystem) Vector {
	if v.sys == sys {
		return v
	}

	return converters[route{v.sys, sys}](v)
}

// polarAngle returns acos(z/r), or 0 when r is not positive.
func polarAngle(z, r float64) float64 {
	if r > 0 {
		return math.Acos(z / r)
	}

	return 0
}

// azimuth returns atan2(y, x) mapped into [0, 2π).
func azimuth(y, x float64) float64 {
	phi := math.Atan2(y, x)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	if phi >= 2*math.Pi {
		phi = 0
	}

	return phi
}

// transverse returns (s, φ) of the (x, y) projection; φ is 0 when s == 0.
func transverse(x, y float64) (s, phi float64) {
	s = math.Sqrt(x*x + y*y)
	if s > 0 {
		phi = azimuth(y, x)
	}

	return s, phi
}

// pseudorapidity returns −ln(tan(θ/2)); θ = 0 gives +Inf.
func pseudorapidity(theta float64) float64 {
	return -math.Log(math.Tan(theta / 2))
}

// ---------- direct converters ----------

// cartesianToSpherical: (t,x,y,z) → (t, r, θ, φ).
func cartesianToSpherical(v Vector) Vector {
	x, y, z := v.c[1], v.c[2], v.c[3]
	r := v.Mag3()

	var phi float64
	if x > 0 {
		phi = azimuth(y, x)
	}

	return Vector{c: [dim]float64{v.c[0], r, polarAngle(z, r), phi}, sys: Spherical}
}

// cartesianToCylindrical: (t,x,y,z) → (t, s, φ, z).
func cartesianToCylindrical(v Vector) Vector {
	s, phi := transverse(v.c[1], v.c[2])

	return Vector{c: [dim]float64{v.c[0], s, phi, v.c[3]}, sys: Cylindrical}
}

// cartesianToCollider: (t,x,y,z) → (t, pT, φ, η).
func cartesianToCollider(v Vector) Vector {
	s, phi := transverse(v.c[1], v.c[2])
	theta := polarAngle(v.c[3], v.Mag3())

	return Vector{c: [dim]float64{v.c[0], s, phi, pseudorapidity(theta)}, sys: Collider}
}

// sphericalToCartesian: (t, r, θ, φ) → (t,x,y,z).
// θ is the polar angle from +z, matching cartesianToSpherical; do not swap sin/cos.
func sphericalToCartesian(v Vector) Vector {
	r, theta, phi := v.c[1], v.c[2], v.c[3]
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)

	return Vector{c: [dim]float64{v.c[0], r * st * cp, r * st * sp, r * ct}, sys: Cartesian}
}

// cylindricalToCartesian: (t, s, φ, z) → (t,x,y,z).
func cylindricalToCartesian(v Vector) Vector {
	s, phi := v.c[1], v.c[2]
	sp, cp := math.Sincos(phi)

	return Vector{c: [dim]float64{v.c[0], s * cp, s * sp, v.c[3]}, sys: Cartesian}
}

// colliderToSpherical: (E, pT, φ, η) → (E, r, θ, φ).
// η = +Inf gives θ = 0 and an infinite (or NaN for pT = 0) radius.
func colliderToSpherical(v Vector) Vector {
	pt, phi, eta := v.c[1], v.c[2], v.c[3]
	theta := 2 * math.Atan(math.Exp(-eta))

	return Vector{c: [dim]float64{v.c[0], pt / math.Sin(theta), theta, phi}, sys: Spherical}
}

// ---------- composed converters ----------

func sphericalToCylindrical(v Vector) Vector {
	return cartesianToCylindrical(sphericalToCartesian(v))
}

func sphericalToCollider(v Vector) Vector {
	return cartesianToCollider(sphericalToCartesian(v))
}

func cylindricalToSpherical(v Vector) Vector {
	return cartesianToSpherical(cylindricalToCartesian(v))
}

func cylindricalToCollider(v Vector) Vector {
	return cartesianToCollider(cylindricalToCartesian(v))
}

func colliderToCartesian(v Vector) Vector {
	return sphericalToCartesian(colliderToSpherical(v))
}

func colliderToCylindrical(v Vector) Vector {
	return sphericalToCylindrical(colliderToSpherical(v))
}
