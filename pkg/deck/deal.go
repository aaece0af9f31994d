package deck

import (
	"errors"

	"github.com/chinese-slacking-party/go-kusokurae/pkg/rng"
)

// ErrUnevenDeal is returned when the cards can't be split evenly between the players
var ErrUnevenDeal = errors.New("cards cannot be dealt evenly")

// ErrBadGenerator is returned when a generator's values fall outside [0, rng.Max]
// and the hands come out uneven
var ErrBadGenerator = errors.New("generator produced an uneven deal")

// Sample draws want cards from pool in a single pass, keeping their order.
// Each card is taken with probability want/remaining at the time it is looked at, which
// gives every want-sized subset of pool the same chance.
// Cards not taken are returned in rest, also in order.
func Sample(pool Hand, want int, gen rng.Generator, state *uint32) (chosen, rest Hand) {
	chosen = make(Hand, 0, len(pool))
	rest = make(Hand, 0, len(pool))

	remaining := len(pool)
	for _, card := range pool {
		dice := gen.Rand(state)
		threshold := (rng.Max + 1) * want / remaining
		if dice < threshold {
			chosen = append(chosen, card)
			want--
		} else {
			rest = append(rest, card)
		}

		remaining--
	}

	return chosen, rest
}

// Deal splits pool into equal hands, one per player.
// Each hand but the last is sampled from what the previous hands left; the last hand
// gets the rest. state is advanced even when an error is returned.
func Deal(pool Hand, players int, gen rng.Generator, state *uint32) ([]Hand, error) {
	if players <= 0 || len(pool)%players != 0 {
		return nil, ErrUnevenDeal
	}

	each := len(pool) / players
	hands := make([]Hand, players)
	rest := pool
	for i := 0; i < players-1; i++ {
		hands[i], rest = Sample(rest, each, gen, state)
		if len(hands[i]) != each {
			return nil, ErrBadGenerator
		}
	}
	hands[players-1] = rest.Clone()

	return hands, nil
}
