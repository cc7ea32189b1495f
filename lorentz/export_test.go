// SPDX-License-Identifier: MIT

package lorentz

// Test bridge: exposes the unexported converters and option resolution to
// lorentz_test without widening the production API.

var (
	CartesianToSpherical   = cartesianToSpherical
	CartesianToCylindrical = cartesianToCylindrical
	CartesianToCollider    = cartesianToCollider

	SphericalToCartesian   = sphericalToCartesian
	SphericalToCylindrical = sphericalToCylindrical
	SphericalToCollider    = sphericalToCollider

	CylindricalToCartesian = cylindricalToCartesian
	CylindricalToSpherical = cylindricalToSpherical
	CylindricalToCollider  = cylindricalToCollider

	ColliderToCartesian   = colliderToCartesian
	ColliderToSpherical   = colliderToSpherical
	ColliderToCylindrical = colliderToCylindrical

	GatherOptions = gatherOptions
)

// NumConverters_TestOnly reports the size of the dispatch table.
func NumConverters_TestOnly() int { return len(converters) }
