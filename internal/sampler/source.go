package sampler

import (
	"math/rand"
	"time"
)

// Source is the random stream every sampling call draws from.
// *rand.Rand satisfies it. Calls are not safe for concurrent use unless the
// implementation says so.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// NewSource returns a seeded *rand.Rand. Seed == 0 uses a time-based seed.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
