package rng

// LCG is the linear congruential generator behind the classic C runtime rand():
// state = (214013*state + 2531011) mod 2^31, output = state >> 16
type LCG struct{}

// Rand returns a value in [0, Max]
func (LCG) Rand(state *uint32) int {
	*state = (*state*214013 + 2531011) & 0x7fffffff
	return int(*state >> 16)
}
