// SPDX-License-Identifier: MIT

package lorentz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hepvec/lorentz"
)

func TestCoordinateSystem_String(t *testing.T) {
	assert.Equal(t, "cartesian", lorentz.Cartesian.String())
	assert.Equal(t, "spherical", lorentz.Spherical.String())
	assert.Equal(t, "cylindrical", lorentz.Cylindrical.String())
	assert.Equal(t, "collider", lorentz.Collider.String())
	assert.Equal(t, "CoordinateSystem(9)", lorentz.CoordinateSystem(9).String())
	assert.Equal(t, "CoordinateSystem(-1)", lorentz.CoordinateSystem(-1).String())
}

func TestCoordinateSystem_Valid(t *testing.T) {
	for _, s := range lorentz.Systems() {
		assert.True(t, s.Valid(), "%s must be valid", s)
	}
	assert.False(t, lorentz.CoordinateSystem(4).Valid())
	assert.False(t, lorentz.CoordinateSystem(-1).Valid())
	assert.Equal(t, lorentz.Cartesian, lorentz.DefaultSystem, "Cartesian is the default")
}

func TestParseCoordinateSystem(t *testing.T) {
	cases := []struct {
		in   string
		want lorentz.CoordinateSystem
	}{
		{"cartesian", lorentz.Cartesian},
		{"Spherical", lorentz.Spherical},
		{"  CYLINDRICAL ", lorentz.Cylindrical},
		{"collider", lorentz.Collider},
		{"car", lorentz.Cartesian},
		{"sph", lorentz.Spherical},
		{"Cyl", lorentz.Cylindrical},
		{"col", lorentz.Collider},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := lorentz.ParseCoordinateSystem(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := lorentz.ParseCoordinateSystem("polar")
	assert.ErrorIs(t, err, lorentz.ErrUnknownSystem)
	_, err = lorentz.ParseCoordinateSystem("")
	assert.ErrorIs(t, err, lorentz.ErrUnknownSystem)
}

func TestSystems_FreshSlice(t *testing.T) {
	s := lorentz.Systems()
	require.Len(t, s, 4)
	s[0] = lorentz.Collider
	assert.Equal(t, lorentz.Cartesian, lorentz.Systems()[0], "callers must not mutate the shared order")
}
