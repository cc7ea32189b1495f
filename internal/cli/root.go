// Package cli implements the lorentz command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hepvec/internal/config"
	"github.com/katalvlaran/hepvec/lorentz"
)

// app carries state shared by all subcommands of one command tree.
type app struct {
	v   *viper.Viper
	cfg config.Config
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand returns a fresh lorentz command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "lorentz",
		Short: "Convert and compare relativistic four-vectors",
		Long: "lorentz converts four-vectors between cartesian, spherical, cylindrical and collider\n" +
			"coordinates and computes magnitudes, inner products and collider distances.\n" +
			"Put negative components after \"--\".",
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .lorentz.yaml)")
	pf.BoolP("verbose", "v", false, "verbose output on stderr")
	pf.VarP(newSystemValue(lorentz.DefaultSystem), "system", "s", "coordinate system of the input components")
	pf.IntP("precision", "p", config.DefaultPrecision, "significant digits printed")

	for _, key := range []string{config.KeyVerbose, config.KeySystem, config.KeyPrecision} {
		if err := a.v.BindPFlag(key, pf.Lookup(key)); err != nil {
			panic(fmt.Sprintf("lorentz: bind flag %q: %v", key, err))
		}
	}

	root.AddCommand(a.convertCmd(), a.magCmd(), a.deltaCmd(), a.innerCmd())

	return root
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	home, _ := os.UserHomeDir()
	if err := config.ReadFile(a.v, path, home); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logf(cmd, "system=%s precision=%d", cfg.System, cfg.Precision)

	return nil
}

// logf writes a diagnostic line to stderr when verbose output is enabled.
func (a *app) logf(cmd *cobra.Command, format string, args ...interface{}) {
	if !a.cfg.Verbose {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

// vector builds a vector in sys from four argument strings.
func (a *app) vector(sys lorentz.CoordinateSystem, args []string) (lorentz.Vector, error) {
	c, err := parseComponents(args)
	if err != nil {
		return lorentz.Vector{}, err
	}

	return lorentz.FromArray(sys, c)
}

func (a *app) format(v lorentz.Vector) string {
	return formatVector(v, a.cfg.Precision)
}

func (a *app) float(x float64) string {
	return formatFloat(x, a.cfg.Precision)
}
