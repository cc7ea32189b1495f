package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/hepvec/lorentz"
)

// systemValue is a pflag.Value holding a coordinate system.
// set records whether the flag was given, so optional flags can fall back.
type systemValue struct {
	sys lorentz.CoordinateSystem
	set bool
}

var _ pflag.Value = (*systemValue)(nil)

func newSystemValue(def lorentz.CoordinateSystem) *systemValue {
	return &systemValue{sys: def}
}

func (s *systemValue) String() string { return s.sys.String() }

func (s *systemValue) Set(name string) error {
	sys, err := lorentz.ParseCoordinateSystem(name)
	if err != nil {
		return err
	}
	s.sys, s.set = sys, true

	return nil
}

func (s *systemValue) Type() string { return "system" }

// or returns the flag's system when it was given, else def.
func (s *systemValue) or(def lorentz.CoordinateSystem) lorentz.CoordinateSystem {
	if s.set {
		return s.sys
	}

	return def
}

// parseComponents reads exactly four numeric arguments.
func parseComponents(args []string) ([4]float64, error) {
	var c [4]float64
	if len(args) != len(c) {
		return c, fmt.Errorf("want 4 components, got %d", len(args))
	}
	for i, s := range args {
		x, err := cast.ToFloat64E(strings.TrimSpace(s))
		if err != nil {
			return c, fmt.Errorf("component %d (%q): %w", i, s, err)
		}
		c[i] = x
	}

	return c, nil
}

// formatVector renders "system c0 c1 c2 c3" with prec significant digits.
func formatVector(v lorentz.Vector, prec int) string {
	c := v.Array()
	parts := make([]string, 0, len(c)+1)
	parts = append(parts, v.System().String())
	for _, x := range c {
		parts = append(parts, formatFloat(x, prec))
	}

	return strings.Join(parts, " ")
}

func formatFloat(x float64, prec int) string {
	return strconv.FormatFloat(x, 'g', prec, 64)
}
