// SPDX-License-Identifier: MIT

package lorentz_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hepvec/lorentz"
)

func TestOptions_Defaults(t *testing.T) {
	assert.Equal(t, lorentz.PolicyRaw, lorentz.GatherOptions().Policy())
	assert.Equal(t, lorentz.DefaultSystemPolicy, lorentz.GatherOptions(nil).Policy())
	assert.Equal(t, lorentz.PolicyStrict, lorentz.GatherOptions(lorentz.WithStrictSystems()).Policy())
	assert.Equal(t, lorentz.PolicyConvert,
		lorentz.GatherOptions(lorentz.WithStrictSystems(), lorentz.WithAutoConvert()).Policy(), "last option wins")
	assert.Equal(t, lorentz.PolicyRaw,
		lorentz.GatherOptions(lorentz.WithAutoConvert(), lorentz.WithRawSystems()).Policy())
}

func TestSystemPolicy_String(t *testing.T) {
	assert.Equal(t, "raw", lorentz.PolicyRaw.String())
	assert.Equal(t, "strict", lorentz.PolicyStrict.String())
	assert.Equal(t, "convert", lorentz.PolicyConvert.String())
	assert.Equal(t, "unknown", lorentz.SystemPolicy(9).String())
}

// TestSum_SameSystem behaves like Add under every policy.
func TestSum_SameSystem(t *testing.T) {
	a := lorentz.New(1, 1, 0, 0)
	b := lorentz.New(1, 0, 1, 0)
	for _, opt := range []lorentz.Option{lorentz.WithRawSystems(), lorentz.WithStrictSystems(), lorentz.WithAutoConvert()} {
		s, err := lorentz.Sum(a, b, opt)
		require.NoError(t, err)
		assert.Equal(t, a.Add(b), s)

		d, err := lorentz.Diff(a, b, opt)
		require.NoError(t, err)
		assert.Equal(t, a.Sub(b), d)

		p, err := lorentz.Inner(a, b, opt)
		require.NoError(t, err)
		assert.Equal(t, 1.0, p)
	}
}

// TestSum_Strict rejects mismatched systems.
func TestSum_Strict(t *testing.T) {
	a := lorentz.New(0, 1, 0, 0)
	b := mustVec(t, lorentz.Cylindrical, 0, 2, math.Pi/2, 0)

	_, err := lorentz.Sum(a, b, lorentz.WithStrictSystems())
	assert.ErrorIs(t, err, lorentz.ErrMismatchedSystem)
	_, err = lorentz.Diff(a, b, lorentz.WithStrictSystems())
	assert.ErrorIs(t, err, lorentz.ErrMismatchedSystem)
	_, err = lorentz.Inner(a, b, lorentz.WithStrictSystems())
	assert.ErrorIs(t, err, lorentz.ErrMismatchedSystem)
}

// TestSum_Raw mixes stored numbers as-is, like Add.
func TestSum_Raw(t *testing.T) {
	a := lorentz.New(0, 1, 0, 0)
	b := mustVec(t, lorentz.Cylindrical, 0, 2, math.Pi/2, 0)

	s, err := lorentz.Sum(a, b)
	require.NoError(t, err)
	assert.Equal(t, a.Add(b), s)
	assert.Equal(t, lorentz.Cartesian, s.System())
}

// TestSum_AutoConvert converts the right operand into the left system.
func TestSum_AutoConvert(t *testing.T) {
	a := lorentz.New(0, 1, 0, 0)
	b := mustVec(t, lorentz.Cylindrical, 0, 2, math.Pi/2, 0) // (0, 0, 2, 0) in Cartesian

	s, err := lorentz.Sum(a, b, lorentz.WithAutoConvert())
	require.NoError(t, err)
	requireVecNear(t, lorentz.New(0, 1, 2, 0), s)

	d, err := lorentz.Diff(a, b, lorentz.WithAutoConvert())
	require.NoError(t, err)
	requireVecNear(t, lorentz.New(0, 1, -2, 0), d)

	p, err := lorentz.Inner(lorentz.New(3, 0, 1, 0), b, lorentz.WithAutoConvert())
	require.NoError(t, err)
	assert.InDelta(t, -2.0, p, tol)
}

// TestInvariantMass evaluates the Minkowski magnitude in Cartesian coordinates.
func TestInvariantMass(t *testing.T) {
	assert.Equal(t, 4.0, lorentz.InvariantMass(lorentz.New(5, 0, 0, 3)))

	col := mustVec(t, lorentz.Collider, 100, 20, 1.0, 0)
	assert.InDelta(t, math.Sqrt(9600), lorentz.InvariantMass(col), 1e-9)

	cyl := mustVec(t, lorentz.Cylindrical, 13, 3, 0.3, 4)
	assert.InDelta(t, 12.0, lorentz.InvariantMass(cyl), 1e-9)
}
