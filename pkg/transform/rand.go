package transform

import "math/rand"

// Rand is the source of randomness used by the random transforms.
// *math/rand.Rand satisfies it, so callers can inject a private seeded
// generator for reproducible runs.
type Rand interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64

	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Ambient returns a Rand backed by the process-global math/rand
// generator. Reproducibility then depends on the caller seeding that
// generator beforehand.
func Ambient() Rand {
	return ambientRand{}
}

type ambientRand struct{}

func (ambientRand) Float64() float64 { return rand.Float64() }
func (ambientRand) Intn(n int) int   { return rand.Intn(n) }
