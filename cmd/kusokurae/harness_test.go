package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chinese-slacking-party/go-kusokurae/pkg/rng"
	"github.com/stretchr/testify/assert"
)

func TestHarness_Auto(t *testing.T) {
	a := assert.New(t)

	out := &bytes.Buffer{}
	h := newHarness(strings.NewReader(""), out, false)
	a.NoError(h.run(3, 1, 2))

	a.Equal(2, strings.Count(out.String(), "New deal: 11 cards each"))
	a.Equal(2, strings.Count(out.String(), "Game over"))
	a.Equal(22, strings.Count(out.String(), "takes"))
	a.Contains(out.String(), "Scores:")
}

func TestHarness_Interactive(t *testing.T) {
	a := assert.New(t)

	out := &bytes.Buffer{}
	h := newHarness(strings.NewReader("zz\n11b\nq\n"), out, true)
	a.Equal(errQuit, h.run(4, 1, 1))

	a.Contains(out.String(), "Trick 1, you lead")
	a.Contains(out.String(), "Your hand: ")
	a.Contains(out.String(), "could not parse card: zz")
	a.Contains(out.String(), "could not parse card: 11b")
	a.NotContains(out.String(), "Game over")

	// running out of input quits too
	h = newHarness(strings.NewReader(""), &bytes.Buffer{}, true)
	a.Equal(errQuit, h.run(3, 1, 1))
}

func TestGenerator(t *testing.T) {
	a := assert.New(t)
	a.IsType(rng.LCG{}, generator("lcg"))
	a.IsType(rng.LCG{}, generator(""))
	a.IsType(rng.Crypto{}, generator("crypto"))
}
