// Package deck models the 33-card deck and deals it into hands.
package deck

import (
	"sync"
)

// Size is the number of cards in a deck
const Size = 33

var (
	canonical [Size]Card
	buildOnce sync.Once
)

// Init builds the canonical deck. It runs once, later calls do nothing.
// Canonical calls it for you.
func Init() {
	buildOnce.Do(buildDeck)
}

func buildDeck() {
	// the two angels and the ghost. The ghost goes third so a four player game can
	// skip the very first card and still deal the ghost
	for i := 0; i < 3; i++ {
		canonical[i] = Card{
			Suit:         Baozi,
			Rank:         TopRank,
			DisplayOrder: Size - i,
		}
	}
	canonical[2].Suit = Ghost

	i := 3
	for _, suit := range []Suit{Baozi, Youtiao, Xiang} {
		for rank := 9; rank >= 0; rank-- {
			canonical[i] = Card{
				Suit:         suit,
				Rank:         rank,
				DisplayOrder: Size - i,
			}
			i++
		}
	}
}

// Canonical returns a copy of the unshuffled deck
func Canonical() [Size]Card {
	Init()
	return canonical
}

// New returns a new, unshuffled deck as a hand the caller owns
func New() Hand {
	cards := Canonical()
	return Hand(cards[:]).Clone()
}

// DealPool splits a new deck into the cards dealt to the given number of players and
// the leading cards left out so each player gets the same count.
// Four players leave out the first angel.
func DealPool(players int) (pool, excluded Hand) {
	cards := New()
	if players <= 0 {
		return cards, Hand{}
	}

	excess := Size % players
	return cards[excess:], cards[:excess]
}
