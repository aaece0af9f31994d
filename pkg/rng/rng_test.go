package rng

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLCG_Rand(t *testing.T) {
	a := assert.New(t)

	// same sequence as srand(1) with the legacy C runtime
	state := uint32(1)
	for _, want := range []int{41, 18467, 6334, 26500, 19169} {
		a.Equal(want, LCG{}.Rand(&state))
	}

	state = 0
	a.Equal(38, LCG{}.Rand(&state))
	a.Equal(7719, LCG{}.Rand(&state))
}

func TestLCG_Range(t *testing.T) {
	state := uint32(0xdeadbeef)
	for i := 0; i < 10000; i++ {
		v := LCG{}.Rand(&state)
		if v < 0 || v > Max {
			t.Fatalf("value out of range: %d", v)
		}
	}
}

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		found[c.Intn(5)] = true
	}

	a.True(found[0])
	a.True(found[1])
	a.True(found[2])
	a.True(found[3])
	a.True(found[4])
	a.False(found[5])

	var state uint32
	for i := 0; i < 100; i++ {
		v := c.Rand(&state)
		a.True(v >= 0 && v <= Max)
	}
	a.Equal(uint32(0), state)
}

func TestSeed(t *testing.T) {
	a := assert.New(t)

	// the first output is thrown away
	a.Equal(uint32(172748308), Seed(LCG{}, 20240101))
	a.NotEqual(uint32(0), Seed(LCG{}, 0))
}

func TestSeed_Clock(t *testing.T) {
	a := assert.New(t)

	defer func(orig func() time.Time) { now = orig }(now)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return base }
	first := Seed(LCG{}, 0)

	// same second, one nanosecond later
	now = func() time.Time { return base.Add(time.Nanosecond) }
	second := Seed(LCG{}, 0)

	a.NotEqual(first, second)
	a.Equal(Seed(LCG{}, base.UnixNano()), first)
}

func TestFromIntn(t *testing.T) {
	gen := FromIntn(rand.New(rand.NewSource(0))) // nolint:gosec
	var state uint32
	for i := 0; i < 100; i++ {
		v := gen.Rand(&state)
		assert.True(t, v >= 0 && v <= Max)
	}
}

func TestSetDefault(t *testing.T) {
	a := assert.New(t)
	defer SetDefault(LCG{})

	a.Equal(LCG{}, Default())

	SetDefault(nil)
	a.Equal(LCG{}, Default())

	SetDefault(Crypto{})
	a.Equal(Crypto{}, Default())
}
