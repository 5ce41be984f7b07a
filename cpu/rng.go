package cpu

import (
	"math/rand"
	"time"
)

// RNG is the optional randomizer collaborator used to scramble register
// values at reset, so that hosts can build deterministic tests around
// "uninitialized memory" behaviour instead of getting a fixed pattern every
// run. Int must return a value in [0, upper] inclusive.
type RNG interface {
	Int(upper uint32) uint32
}

// defaultRNG wraps math/rand the way the source's own random collaborator
// wraps it: a fresh, time-seeded generator, used only when the host does not
// supply its own.
type defaultRNG struct {
	src *rand.Rand
}

func newDefaultRNG() *defaultRNG {
	return &defaultRNG{src: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Int returns a value in [0, upper] inclusive; rand.Intn is exclusive of its
// argument, so the upper bound is widened by one before narrowing back.
func (r *defaultRNG) Int(upper uint32) uint32 {
	return uint32(r.src.Intn(int(upper) + 1))
}
