// Package lorentz implements relativistic four-vectors ("Lorentz vectors")
// for spacetime positions and energy-momentum in high-energy-physics analysis.
//
// 🚀 What is a Lorentz vector?
//
//	A 4-tuple whose component 0 is time-like (t, or E for momenta) and whose
//	components 1..3 are spatial. The same quantity can be stored in one of
//	four coordinate systems:
//	  • Cartesian   (t, x, y, z)
//	  • Spherical   (t, r, θ, φ)
//	  • Cylindrical (t, s, φ, z)
//	  • Collider    (E, pT, φ, η)   η = −ln tan(θ/2)
//
// ✨ Key features:
//   - value type: Vector copies on assignment; Array returns an owned copy
//   - bounds-checked At/Set returning ErrOutOfRange instead of panicking
//   - twelve converters between every ordered pair of systems (Convert, ConvertTo)
//   - Minkowski magnitude (Mag) and inner product (Dot)
//   - collider distances DeltaPhi and DeltaR with φ wraparound
//   - Sum/Diff/Inner with a selectable policy for mismatched systems
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hepvec/lorentz"
//
//	p := lorentz.New(5, 3, 4, 0)          // Cartesian
//	fmt.Println(p.Mag3(), p.Mag())         // 5 0
//
//	q, _ := lorentz.NewIn(lorentz.Collider, 100, 20, 1.0, 0)
//	_ = q.ConvertTo(lorentz.Spherical)
//	dr := lorentz.DeltaR(p, q)
//
// Caveat:
//
//	Mag3, Mag, Add, Sub and Dot use the stored numbers directly and are only
//	physical for Cartesian (or same-system) operands. InvariantMass and
//	Sum/Diff/Inner with WithAutoConvert are the system-aware alternatives.
//
// Concurrency:
//
//	Vectors carry no shared state. Distinct values may be used from different
//	goroutines without locking.
package lorentz
