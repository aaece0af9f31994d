package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto wraps the crypto/rand library
// The state word is ignored, so games using it cannot be replayed from a seed.
type Crypto struct{}

// Rand returns a value in [0, Max]
func (c Crypto) Rand(_ *uint32) int {
	return c.Intn(Max + 1)
}

// Intn returns a random number from 0 < n
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
