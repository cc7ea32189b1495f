package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hepvec/lorentz"
)

func (a *app) convertCmd() *cobra.Command {
	to := newSystemValue(lorentz.DefaultSystem)
	cmd := &cobra.Command{
		Use:   "convert --to SYSTEM c0 c1 c2 c3",
		Short: "Re-express a four-vector in another coordinate system",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.vector(a.cfg.System, args)
			if err != nil {
				return err
			}
			a.logf(cmd, "convert %s -> %s", v.System(), to.sys)
			if err := v.ConvertTo(to.sys); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.format(v))

			return nil
		},
	}
	cmd.Flags().Var(to, "to", "target coordinate system")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (a *app) magCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mag c0 c1 c2 c3",
		Short: "Print the spatial and Minkowski magnitudes and the invariant mass",
		Long: "mag prints Mag3 and Mag computed on the stored numbers, and the invariant mass\n" +
			"computed after converting to cartesian coordinates.",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.vector(a.cfg.System, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "mag3", a.float(v.Mag3()))
			fmt.Fprintln(out, "mag", a.float(v.Mag()))
			fmt.Fprintln(out, "mass", a.float(lorentz.InvariantMass(v)))

			return nil
		},
	}
}

func (a *app) deltaCmd() *cobra.Command {
	sysB := newSystemValue(lorentz.DefaultSystem)
	cmd := &cobra.Command{
		Use:   "delta a0 a1 a2 a3 b0 b1 b2 b3",
		Short: "Print the azimuthal (dphi) and combined (dr) separation of two vectors",
		Args:  cobra.ExactArgs(8),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := a.pair(sysB, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "dphi", a.float(lorentz.DeltaPhi(x, y)))
			fmt.Fprintln(out, "dr", a.float(lorentz.DeltaR(x, y)))

			return nil
		},
	}
	cmd.Flags().Var(sysB, "system-b", "coordinate system of the second vector (default --system)")

	return cmd
}

func (a *app) innerCmd() *cobra.Command {
	sysB := newSystemValue(lorentz.DefaultSystem)
	var strict, convert bool
	cmd := &cobra.Command{
		Use:   "inner a0 a1 a2 a3 b0 b1 b2 b3",
		Short: "Print the Minkowski inner product of two vectors",
		Args:  cobra.ExactArgs(8),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := a.pair(sysB, args)
			if err != nil {
				return err
			}
			opt := lorentz.WithRawSystems()
			switch {
			case strict:
				opt = lorentz.WithStrictSystems()
			case convert:
				opt = lorentz.WithAutoConvert()
			}
			p, err := lorentz.Inner(x, y, opt)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "inner", a.float(p))

			return nil
		},
	}
	cmd.Flags().Var(sysB, "system-b", "coordinate system of the second vector (default --system)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the two systems differ")
	cmd.Flags().BoolVar(&convert, "convert", false, "convert the second vector into the first vector's system")
	cmd.MarkFlagsMutuallyExclusive("strict", "convert")

	return cmd
}

// pair parses eight arguments into two vectors; the second uses sysB when given.
func (a *app) pair(sysB *systemValue, args []string) (lorentz.Vector, lorentz.Vector, error) {
	x, err := a.vector(a.cfg.System, args[:4])
	if err != nil {
		return lorentz.Vector{}, lorentz.Vector{}, err
	}
	y, err := a.vector(sysB.or(a.cfg.System), args[4:])
	if err != nil {
		return lorentz.Vector{}, lorentz.Vector{}, err
	}

	return x, y, nil
}
