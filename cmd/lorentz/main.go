// lorentz - four-vector conversion and kinematics from the command line.
//
// Usage:
//
//	lorentz convert --to spherical 10 0 0 6
//	lorentz -s collider mag 100 20 1 0
//	lorentz -s collider delta 10 5 0.1 0 10 5 6.18 0
//	lorentz inner --convert --system-b cyl 3 0 1 0 0 2 1.5708 0
//
// Settings come from flags, LORENTZ_* environment variables and .lorentz.yaml.
package main

import (
	"os"

	"github.com/katalvlaran/hepvec/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
