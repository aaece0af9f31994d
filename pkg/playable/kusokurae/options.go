package kusokurae

import (
	"github.com/chinese-slacking-party/go-kusokurae/pkg/rng"
)

// player limits
const (
	MinPlayers = 3
	MaxPlayers = 4
)

// Config is the table setup
type Config struct {
	NumPlayers int `json:"numPlayers"`
}

// Options are options for creating a new game
type Options struct {
	// Seed for the deal. 0 seeds from the clock.
	Seed int64

	// Generator used for the deal. nil uses rng.Default().
	Generator rng.Generator

	// Observer is told about status changes and finished tricks. May be nil.
	Observer Observer
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Seed:      0,
		Generator: nil,
		Observer:  nil,
	}
}
