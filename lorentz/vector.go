// SPDX-License-Identifier: MIT

// Package lorentz - Vector value type & safe accessors.
//
// Purpose:
//   - Hold four float64 components together with the CoordinateSystem that
//     gives them meaning; the pair is only ever read or written as a unit.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep copy semantics sound: Array returns an owned copy, never a live alias.
//
// Caveat:
//   - Mag3, Mag, Add, Sub and Dot operate on the raw stored numbers. They are
//     physically meaningful only for Cartesian vectors (or same-system operands).
//     Use InvariantMass and Sum/Diff/Inner (options.go) for system-aware variants.

package lorentz

import (
	"fmt"
	"math"
)

// dim is the number of components of a four-vector.
const dim = 4

// Vector is a relativistic four-vector in one of four coordinate systems.
// The zero value is the zero vector in Cartesian coordinates.
// Vector has value semantics: assignment copies both components and system.
type Vector struct {
	c   [dim]float64     // components; c[0] is always the time-like coordinate
	sys CoordinateSystem // active system; only valid tags are ever stored
}

var _ fmt.Stringer = Vector{}

// New returns the Cartesian vector (t, x, y, z).
func New(t, x, y, z float64) Vector {
	return Vector{c: [dim]float64{t, x, y, z}, sys: DefaultSystem}
}

// NewIn returns the vector (c0, c1, c2, c3) interpreted in sys.
// Coordinate domains are not validated (a negative radius is accepted);
// only the system tag is checked.
//
// Errors:
//   - ErrUnknownSystem if sys is not one of the four known systems.
func NewIn(sys CoordinateSystem, c0, c1, c2, c3 float64) (Vector, error) {
	return FromArray(sys, [dim]float64{c0, c1, c2, c3})
}

// NewZero returns the zero vector tagged with sys.
func NewZero(sys CoordinateSystem) (Vector, error) {
	return FromArray(sys, [dim]float64{})
}

// FromArray returns the vector whose components are copied from c, tagged sys.
func FromArray(sys CoordinateSystem, c [dim]float64) (Vector, error) {
	if !sys.Valid() {
		return Vector{}, systemErrorf("FromArray", sys, ErrUnknownSystem)
	}

	return Vector{c: c, sys: sys}, nil
}

// At returns component i (0..3).
// Returns ErrOutOfRange for any other index, negatives included.
// Complexity: O(1).
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= dim {
		return 0, vectorErrorf("At", i, ErrOutOfRange)
	}

	return v.c[i], nil
}

// System returns the active coordinate system.
func (v Vector) System() CoordinateSystem {
	return v.sys
}

// Mag3 returns sqrt(c1² + c2² + c3²) computed on the stored numbers.
// It does not convert to Cartesian first, so the result is the spatial
// magnitude only when System() == Cartesian.
func (v Vector) Mag3() float64 {
	return math.Sqrt(v.mag3Sq())
}

// mag3Sq is the squared raw spatial norm shared by Mag3 and Mag.
func (v Vector) mag3Sq() float64 {
	return v.c[1]*v.c[1] + v.c[2]*v.c[2] + v.c[3]*v.c[3]
}

// Mag returns sqrt(c0² − Mag3()²), the Minkowski magnitude under the
// (+,−,−,−) metric, computed on the stored numbers. Like Mag3 it is only
// physical for Cartesian vectors. Space-like inputs yield NaN.
func (v Vector) Mag() float64 {
	return math.Sqrt(v.c[0]*v.c[0] - v.mag3Sq())
}

// SetComponents overwrites all four components; the system is unchanged.
func (v *Vector) SetComponents(c0, c1, c2, c3 float64) {
	v.c = [dim]float64{c0, c1, c2, c3}
}

// SetArray overwrites all four components from c; the system is unchanged.
func (v *Vector) SetArray(c [dim]float64) {
	v.c = c
}

// SetFrom copies o's components (not its system) into v.
func (v *Vector) SetFrom(o Vector) {
	v.c = o.c
}

// Reset zeroes all components; the system is unchanged.
func (v *Vector) Reset() {
	v.c = [dim]float64{}
}

// Set overwrites component i with x.
// On ErrOutOfRange the vector is left untouched.
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= dim {
		return vectorErrorf("Set", i, ErrOutOfRange)
	}
	v.c[i] = x

	return nil
}

// Add returns the componentwise sum v+o tagged with v's system.
// No system check is made: operands in different systems are mixed as-is.
func (v Vector) Add(o Vector) Vector {
	out := Vector{sys: v.sys}
	for i := 0; i < dim; i++ {
		out.c[i] = v.c[i] + o.c[i]
	}

	return out
}

// Sub returns the componentwise difference v−o tagged with v's system.
// No system check is made.
func (v Vector) Sub(o Vector) Vector {
	out := Vector{sys: v.sys}
	for i := 0; i < dim; i++ {
		out.c[i] = v.c[i] - o.c[i]
	}

	return out
}

// Dot returns the Minkowski inner product c0·d0 − (c1·d1 + c2·d2 + c3·d3)
// on the stored numbers. No system check is made.
func (v Vector) Dot(o Vector) float64 {
	p := v.c[0] * o.c[0]
	for i := 1; i < dim; i++ {
		p -= v.c[i] * o.c[i]
	}

	return p
}

// ConvertTo re-expresses v in sys, overwriting components and system together.
// On ErrUnknownSystem v is left untouched.
func (v *Vector) ConvertTo(sys CoordinateSystem) error {
	nv, err := Convert(*v, sys)
	if err != nil {
		return fmt.Errorf("Vector.ConvertTo: %w", err)
	}
	*v = nv

	return nil
}

// Array returns a copy of the four components.
// Mutating the returned array never affects v.
func (v Vector) Array() [dim]float64 {
	return v.c
}

// Equal reports whether v and o share a system and every component pair
// differs by at most eps. NaN components are never equal; infinities are
// equal only to the same infinity.
func (v Vector) Equal(o Vector, eps float64) bool {
	if v.sys != o.sys {
		return false
	}
	for i := 0; i < dim; i++ {
		a, b := v.c[i], o.c[i]
		if a == b {
			continue
		}
		if math.IsNaN(a) || math.IsNaN(b) || math.Abs(a-b) > eps {
			return false
		}
	}

	return true
}

// String renders the vector as "system(c0, c1, c2, c3)".
func (v Vector) String() string {
	return fmt.Sprintf("%s(%g, %g, %g, %g)", v.sys, v.c[0], v.c[1], v.c[2], v.c[3])
}
