// SPDX-License-Identifier: MIT

// Package lorentz - kinematic distances between directions.
// Both operands are always normalized into Collider coordinates first, so the
// result does not depend on the systems the caller happens to hold.

package lorentz

import "math"

// DeltaPhi returns the azimuthal separation |Δφ| of a and b.
//
// Implementation:
//   - Stage 1: convert both operands to Collider.
//   - Stage 2: if |φa − φb| > π, subtract 2π from φa when φa > π, else from φb.
//   - Stage 3: return |φa − φb|.
//
// Behavior highlights:
//   - The wraparound branches on which operand exceeds π rather than wrapping
//     symmetrically into [−π, π]; for φ in [0, 2π) the result is symmetric
//     in a and b.
//
// Complexity: O(1).
func DeltaPhi(a, b Vector) float64 {
	phiA := mustConvert(a, Collider).c[2]
	phiB := mustConvert(b, Collider).c[2]

	if math.Abs(phiA-phiB) > math.Pi {
		if phiA > math.Pi {
			phiA -= 2 * math.Pi
		} else {
			phiB -= 2 * math.Pi
		}
	}

	return math.Abs(phiA - phiB)
}

// DeltaR returns sqrt(Δη² + Δφ²) of a and b in Collider coordinates.
// Equal pseudorapidities (including two beam-axis vectors at η = +Inf) give
// Δη = 0, so DeltaR(a, a) is always 0.
func DeltaR(a, b Vector) float64 {
	etaA := mustConvert(a, Collider).c[3]
	etaB := mustConvert(b, Collider).c[3]

	var dEta float64
	if etaA != etaB {
		dEta = math.Abs(etaA - etaB)
	}
	dPhi := DeltaPhi(a, b)

	return math.Sqrt(dEta*dEta + dPhi*dPhi)
}

// DeltaPhi is the method form of the package-level DeltaPhi(v, o).
func (v Vector) DeltaPhi(o Vector) float64 {
	return DeltaPhi(v, o)
}

// DeltaR is the method form of the package-level DeltaR(v, o).
func (v Vector) DeltaR(o Vector) float64 {
	return DeltaR(v, o)
}
