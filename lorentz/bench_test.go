// Package lorentz_test provides benchmarks for conversions and distances.
package lorentz_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/hepvec/lorentz"
)

// sinks to defeat dead-code elimination
var (
	sinkV lorentz.Vector
	sinkF float64
)

func BenchmarkConvert(b *testing.B) {
	b.ReportAllocs()
	for _, from := range roundTripFixturesB(b) {
		for _, to := range lorentz.Systems() {
			b.Run(fmt.Sprintf("%s->%s", from.System(), to), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					v, err := lorentz.Convert(from, to)
					if err != nil {
						b.Fatal(err)
					}
					sinkV = v
				}
			})
		}
	}
}

func BenchmarkDeltaR(b *testing.B) {
	b.ReportAllocs()
	x := lorentz.New(7, 1.5, 2.0, -0.7)
	y := mustVec(b, lorentz.Collider, 100, 20, 1.0, 0.4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = lorentz.DeltaR(x, y)
	}
}

func BenchmarkInvariantMass(b *testing.B) {
	b.ReportAllocs()
	p := mustVec(b, lorentz.Collider, 100, 20, 1.0, 0.4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = lorentz.InvariantMass(p)
	}
}

// roundTripFixturesB mirrors roundTripFixtures for benchmarks.
func roundTripFixturesB(b *testing.B) []lorentz.Vector {
	b.Helper()

	return []lorentz.Vector{
		lorentz.New(7, 1.5, 2.0, -0.7),
		mustVec(b, lorentz.Spherical, 7, 2.5, 1.1, 0.6),
		mustVec(b, lorentz.Cylindrical, 7, 2.0, 0.8, 1.3),
		mustVec(b, lorentz.Collider, 100, 20, 1.0, 0.4),
	}
}
