// SPDX-License-Identifier: MIT

package lorentz_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hepvec/lorentz"
)

// tol is the absolute tolerance for floating comparisons in this package's tests.
const tol = 1e-9

// mustVec builds a vector in sys or fails the test.
func mustVec(t testing.TB, sys lorentz.CoordinateSystem, c0, c1, c2, c3 float64) lorentz.Vector {
	t.Helper()
	v, err := lorentz.NewIn(sys, c0, c1, c2, c3)
	require.NoError(t, err, "NewIn(%s)", sys)

	return v
}

// requireVecNear asserts same system and componentwise closeness within tol.
func requireVecNear(t *testing.T, want, got lorentz.Vector, msgAndArgs ...interface{}) {
	t.Helper()
	require.Equal(t, want.System(), got.System(), msgAndArgs...)
	require.InDeltaSlice(t, arr(want), arr(got), tol, msgAndArgs...)
}

// arr returns the components as a slice for testify's slice helpers.
func arr(v lorentz.Vector) []float64 {
	a := v.Array()

	return a[:]
}
