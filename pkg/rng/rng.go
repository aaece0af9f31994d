// Package rng provides the pseudo-random generators used to deal cards.
//
// A Generator keeps no state of its own: every call receives the owning game's
// 32-bit state word, so independent games never share random-number state.
package rng

import (
	"sync"
	"time"
)

// Max is the largest value a Generator may return
const Max = 32767

// Generator produces values in [0, Max]
type Generator interface {
	// Rand advances state and returns the next value
	Rand(state *uint32) int
}

// GeneratorFunc adapts a function to a Generator
type GeneratorFunc func(state *uint32) int

// Rand calls f(state)
func (f GeneratorFunc) Rand(state *uint32) int {
	return f(state)
}

// Intner is anything that returns a random number up to but not including n,
// such as *math/rand.Rand
type Intner interface {
	Intn(n int) int
}

// FromIntn returns a Generator backed by an Intner. The state word is left untouched.
func FromIntn(src Intner) Generator {
	return GeneratorFunc(func(_ *uint32) int {
		return src.Intn(Max + 1)
	})
}

var (
	defaultLock sync.RWMutex
	defaultGen  Generator = LCG{}
)

// SetDefault installs the generator used by games that don't bring their own.
// A nil generator is ignored. This must be configured before games are created.
func SetDefault(gen Generator) {
	if gen == nil {
		return
	}

	defaultLock.Lock()
	defaultGen = gen
	defaultLock.Unlock()
}

// Default returns the installed default generator
func Default() Generator {
	defaultLock.RLock()
	defer defaultLock.RUnlock()

	return defaultGen
}

// now is replaced in tests
var now = time.Now

// Seed returns a fresh state word for gen.
// If seed is 0, the current time is used. One value is drawn and thrown away,
// the first output after seeding is still correlated with the seed.
func Seed(gen Generator, seed int64) uint32 {
	if seed == 0 {
		seed = now().UnixNano()
	}

	state := uint32(seed)
	gen.Rand(&state)
	return state
}
