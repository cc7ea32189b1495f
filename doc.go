// Package hepvec is a small toolkit for relativistic kinematics in
// high-energy-physics analysis.
//
// 🚀 What is in hepvec?
//
//	• lorentz/ — four-vectors in cartesian, spherical, cylindrical and
//	             collider coordinates, the twelve conversions between them,
//	             Minkowski magnitude and inner product, ΔΦ and ΔR
//	• cmd/lorentz — a command-line front end for quick conversions
//
// Quick example:
//
//	p := lorentz.New(5, 3, 4, 0)
//	fmt.Println(p.Mag()) // 0: a light-like momentum
//
//	go get github.com/katalvlaran/hepvec/lorentz
package hepvec
